// Copyright (c) 2025 JustTzyy
// SoftWear - retail inventory management core
// This source code is licensed under the MIT license found in the LICENSE file.

// Package auth implements credential verification and the in-process session
// state for the SoftWear core.
package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"golang.org/x/text/encoding/unicode"
)

// HashPassword computes the deterministic one-way hash stored for user
// passwords: the password is widened to UTF-16LE before hashing so the result
// matches hashes originally computed by the database engine over national
// (wide) character text, then SHA-256 is rendered as uppercase hex.
func HashPassword(password string) string {
	enc := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder()
	widened, err := enc.String(password)
	if err != nil {
		// Malformed UTF-8 cannot be widened; hash the raw bytes so the
		// result is still deterministic for the same input.
		widened = password
	}
	sum := sha256.Sum256([]byte(widened))
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}

// VerifyPassword reports whether the plaintext password hashes to storedHash.
// Comparison is case-insensitive since legacy rows may carry either casing.
func VerifyPassword(password, storedHash string) bool {
	return strings.EqualFold(HashPassword(password), storedHash)
}
