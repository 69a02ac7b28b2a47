// Copyright (c) 2025 JustTzyy
// SoftWear - retail inventory management core
// This source code is licensed under the MIT license found in the LICENSE file.

package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/JustTzyy/softwear/internal/db"
	"github.com/JustTzyy/softwear/internal/logging"
	"github.com/JustTzyy/softwear/internal/model"
)

// CredentialStore is the narrow query contract the authenticator needs from
// the database layer. *db.SqliteStore and friends satisfy it; tests inject
// fakes.
type CredentialStore interface {
	GetCredentialByEmail(ctx context.Context, email string) (*model.Credential, error)
}

// Authenticator verifies (email, password) pairs against the credential store.
// It holds no state between calls; every attempt re-queries the store.
type Authenticator struct {
	store CredentialStore
}

// NewAuthenticator returns an Authenticator backed by the given store.
func NewAuthenticator(store CredentialStore) *Authenticator {
	return &Authenticator{store: store}
}

// Authenticate returns the resolved Identity for a valid (email, password)
// pair. Unknown email and wrong password both return ErrNotAuthenticated;
// a store connectivity fault returns an error wrapping ErrStoreUnavailable;
// any other store failure is logged and propagated unchanged.
func (a *Authenticator) Authenticate(ctx context.Context, email, password string) (*model.Identity, error) {
	email = strings.TrimSpace(email)

	cred, err := a.store.GetCredentialByEmail(ctx, email)
	if err != nil {
		if db.IsUnreachable(err) {
			return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
		logging.Errorf("auth: credential lookup failed: %v", err)
		return nil, err
	}
	if cred == nil {
		return nil, ErrNotAuthenticated
	}

	if !VerifyPassword(password, cred.PasswordHash) {
		return nil, ErrNotAuthenticated
	}

	displayName := strings.TrimSpace(cred.DisplayName)
	if displayName == "" {
		displayName = cred.Email
	}

	return &model.Identity{
		ID:          cred.ID,
		Email:       cred.Email,
		DisplayName: displayName,
		Role:        strings.ToLower(cred.Role),
	}, nil
}
