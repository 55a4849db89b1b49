package usecase

import "context"

// Identity is what the identity provider asserts about a signed-in
// user. The sign-in flow itself (popup, stub) lives client-side; the
// service only ever sees tokens.
type Identity struct {
	UID   string
	Name  string
	Photo string
	Email string
}

type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (*Identity, error)
}
