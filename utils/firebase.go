// utils/firebase.go
package utils

import (
	"context"
	"errors"
	"log"

	"github.com/kpasag/MedTime/config"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// Identity is the verified caller identity yielded by the identity provider.
type Identity struct {
	UID   string
	Email string
}

// IdentityVerifier validates a bearer credential and yields the caller identity.
type IdentityVerifier interface {
	Verify(ctx context.Context, token string) (Identity, error)
}

// FirebaseVerifier verifies Firebase ID tokens.
type FirebaseVerifier struct {
	client *auth.Client
}

// FirebaseInit initializes the Firebase App and Auth client.
func FirebaseInit() *FirebaseVerifier {
	ctx := context.Background()

	opts := []option.ClientOption{}
	if config.AppConfig.FirebaseCredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(config.AppConfig.FirebaseCredentialsFile))
	}

	var fbConfig *firebase.Config
	if config.AppConfig.FirebaseProjectID != "" {
		fbConfig = &firebase.Config{ProjectID: config.AppConfig.FirebaseProjectID}
	}

	app, err := firebase.NewApp(ctx, fbConfig, opts...)
	if err != nil {
		log.Fatalf("firebase: error initializing app: %v", err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		log.Fatalf("firebase: error getting Auth client: %v", err)
	}

	return &FirebaseVerifier{client: client}
}

// Verify validates a Firebase ID token and extracts the uid and email claims.
func (v *FirebaseVerifier) Verify(ctx context.Context, token string) (Identity, error) {
	decoded, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		return Identity{}, err
	}

	email, _ := decoded.Claims["email"].(string)
	if email == "" {
		return Identity{}, errors.New("token does not contain an email claim")
	}

	return Identity{UID: decoded.UID, Email: email}, nil
}
