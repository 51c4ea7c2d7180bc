package auth

import (
	"context"
	"errors"
)

// LocalVerifier is the development-mode verifier: the "token" is taken at
// face value as the user id. Never run this in production.
type LocalVerifier struct{}

func (LocalVerifier) Verify(_ context.Context, idToken string) (*Identity, error) {
	if idToken == "" {
		return nil, errors.New("empty token provided")
	}
	return &Identity{UID: idToken}, nil
}
