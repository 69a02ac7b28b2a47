// Copyright (c) 2025 JustTzyy
// SoftWear - retail inventory management core
// This source code is licensed under the MIT license found in the LICENSE file.

package auth

import "errors"

// ErrNotAuthenticated is the expected outcome of a valid-but-failed login
// attempt. Unknown email and wrong password both map here so callers cannot
// tell which check failed.
var ErrNotAuthenticated = errors.New("not authenticated")

// ErrStoreUnavailable indicates the credential store could not be reached.
// It is surfaced distinctly from ErrNotAuthenticated so UIs can show a
// connectivity message instead of "invalid login".
var ErrStoreUnavailable = errors.New("credential store unreachable")
