package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/JustTzyy/softwear/internal/model"
)

// fakeCredentialStore serves a fixed set of credentials keyed by email, or a
// canned error.
type fakeCredentialStore struct {
	creds map[string]*model.Credential
	err   error
}

func (f *fakeCredentialStore) GetCredentialByEmail(ctx context.Context, email string) (*model.Credential, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.creds[email], nil
}

func storeWith(creds ...*model.Credential) *fakeCredentialStore {
	m := make(map[string]*model.Credential)
	for _, c := range creds {
		m[c.Email] = c
	}
	return &fakeCredentialStore{creds: m}
}

func TestAuthenticate_Success(t *testing.T) {
	store := storeWith(&model.Credential{
		ID:           7,
		Email:        "ana@softwear.ph",
		PasswordHash: HashPassword("s3cret"),
		Role:         "Admin",
		DisplayName:  "Ana Reyes",
	})
	a := NewAuthenticator(store)

	identity, err := a.Authenticate(context.Background(), "  ana@softwear.ph ", "s3cret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if identity.ID != 7 {
		t.Fatalf("expected id 7, got %d", identity.ID)
	}
	if identity.Role != "admin" {
		t.Fatalf("expected lowercase role, got %q", identity.Role)
	}
	if identity.DisplayName != "Ana Reyes" {
		t.Fatalf("unexpected display name %q", identity.DisplayName)
	}
}

func TestAuthenticate_DisplayNameFallsBackToEmail(t *testing.T) {
	store := storeWith(&model.Credential{
		ID:           3,
		Email:        "ghost@softwear.ph",
		PasswordHash: HashPassword("pw"),
		Role:         "cashier",
		DisplayName:  "   ",
	})
	a := NewAuthenticator(store)

	identity, err := a.Authenticate(context.Background(), "ghost@softwear.ph", "pw")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if identity.DisplayName != "ghost@softwear.ph" {
		t.Fatalf("expected email fallback, got %q", identity.DisplayName)
	}
}

func TestAuthenticate_FailuresAreIndistinguishable(t *testing.T) {
	store := storeWith(&model.Credential{
		Email:        "ana@softwear.ph",
		PasswordHash: HashPassword("right"),
		Role:         "admin",
	})
	a := NewAuthenticator(store)

	_, unknownErr := a.Authenticate(context.Background(), "nobody@softwear.ph", "whatever")
	_, wrongErr := a.Authenticate(context.Background(), "ana@softwear.ph", "wrong")

	if !errors.Is(unknownErr, ErrNotAuthenticated) {
		t.Fatalf("unknown email: expected ErrNotAuthenticated, got %v", unknownErr)
	}
	if !errors.Is(wrongErr, ErrNotAuthenticated) {
		t.Fatalf("wrong password: expected ErrNotAuthenticated, got %v", wrongErr)
	}
	if unknownErr.Error() != wrongErr.Error() {
		t.Fatalf("failure shapes differ: %q vs %q", unknownErr, wrongErr)
	}
}

func TestAuthenticate_StoreUnreachable(t *testing.T) {
	store := &fakeCredentialStore{err: errors.New("dial tcp 10.0.0.5:5432: connect: connection refused")}
	a := NewAuthenticator(store)

	_, err := a.Authenticate(context.Background(), "ana@softwear.ph", "s3cret")
	if !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
	if errors.Is(err, ErrNotAuthenticated) {
		t.Fatal("connectivity fault must not look like invalid credentials")
	}
}

func TestAuthenticate_UnexpectedErrorPropagates(t *testing.T) {
	boom := errors.New("syntax error in prepared statement")
	store := &fakeCredentialStore{err: boom}
	a := NewAuthenticator(store)

	_, err := a.Authenticate(context.Background(), "ana@softwear.ph", "s3cret")
	if !errors.Is(err, boom) {
		t.Fatalf("expected the store error unchanged, got %v", err)
	}
	if errors.Is(err, ErrStoreUnavailable) || errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("unexpected classification of %v", err)
	}
}
