package model

import "context"

// GoogleClaims holds the verified fields of a Google identity token.
type GoogleClaims struct {
	Audience      string
	Email         string
	EmailVerified bool
	Name          string
	Picture       string
}

// TokenVerifier introspects a third-party identity token and returns
// its claims, or an error if the token cannot be verified.
type TokenVerifier interface {
	Verify(ctx context.Context, idToken string) (GoogleClaims, error)
}
