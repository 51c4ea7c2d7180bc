package auth

import "context"

// Identity is what the external identity provider yields: an opaque, stable
// user id plus display profile fields.
type Identity struct {
	UID   string
	Name  string
	Email string
}

// Verifier checks an ID token and returns the identity behind it.
type Verifier interface {
	Verify(ctx context.Context, idToken string) (*Identity, error)
}
