package firebase

import (
	"context"
	"strings"

	"swapbook/internal/usecase"
	"swapbook/pkg/errors"
)

// DevVerifier is the stub identity flow used with the local storage
// driver: the bearer token is "uid" or "uid:Display Name", no
// identity provider is contacted. Never enable outside development.
type DevVerifier struct{}

func NewDevVerifier() *DevVerifier {
	return &DevVerifier{}
}

func (v *DevVerifier) VerifyToken(ctx context.Context, token string) (*usecase.Identity, error) {
	if token == "" {
		return nil, errors.Unauthorized("Empty token", nil)
	}

	uid, name, found := strings.Cut(token, ":")
	if !found || name == "" {
		name = uid
	}

	return &usecase.Identity{UID: uid, Name: name}, nil
}
