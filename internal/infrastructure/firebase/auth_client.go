package firebase

import (
	"context"

	"firebase.google.com/go/v4/auth"

	"swapbook/internal/usecase"
)

type FirebaseAuthClient struct {
	client *auth.Client
}

func NewFirebaseAuthClient(client *auth.Client) *FirebaseAuthClient {
	return &FirebaseAuthClient{
		client: client,
	}
}

// VerifyToken checks the ID token minted by the client-side sign-in
// popup and extracts the identity claims Firebase attaches to it.
func (f *FirebaseAuthClient) VerifyToken(ctx context.Context, idToken string) (*usecase.Identity, error) {
	token, err := f.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, err
	}

	identity := &usecase.Identity{UID: token.UID}
	if name, ok := token.Claims["name"].(string); ok {
		identity.Name = name
	}
	if photo, ok := token.Claims["picture"].(string); ok {
		identity.Photo = photo
	}
	if email, ok := token.Claims["email"].(string); ok {
		identity.Email = email
	}

	return identity, nil
}
