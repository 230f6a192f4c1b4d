// Package googleauth verifies Google-issued ID tokens for federated sign-in.
package googleauth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "https://accounts.google.com"

// Claims are the fields of a verified Google ID token the rest of the
// system cares about.
type Claims struct {
	Subject    string
	Email      string
	Name       string
	GivenName  string
	FamilyName string
}

// Verifier validates a raw ID token and extracts its claims
type Verifier interface {
	Verify(ctx context.Context, idToken string) (*Claims, error)
}

type tokenClaims struct {
	jwt.RegisteredClaims
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	GivenName     string `json:"given_name"`
	FamilyName    string `json:"family_name"`
}

// JWTVerifier checks the token signature with the given key function and
// enforces issuer, audience and expiry.
type JWTVerifier struct {
	audience string
	keyfunc  jwt.Keyfunc
	parser   *jwt.Parser
}

// NewJWTVerifier creates a verifier for the given OAuth client audience.
// keyfunc resolves the signing key, typically from Google's JWKS endpoint.
func NewJWTVerifier(audience string, keyfunc jwt.Keyfunc) *JWTVerifier {
	return &JWTVerifier{
		audience: audience,
		keyfunc:  keyfunc,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{"RS256"}),
			jwt.WithIssuer(issuer),
			jwt.WithAudience(audience),
			jwt.WithExpirationRequired(),
			jwt.WithLeeway(30*time.Second),
		),
	}
}

// Verify validates the raw token and returns its claims
func (v *JWTVerifier) Verify(ctx context.Context, idToken string) (*Claims, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var claims tokenClaims
	token, err := v.parser.ParseWithClaims(idToken, &claims, v.keyfunc)
	if err != nil {
		return nil, fmt.Errorf("verify id token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("verify id token: token is not valid")
	}
	if claims.Subject == "" {
		return nil, errors.New("verify id token: missing subject")
	}
	if claims.Email == "" || !claims.EmailVerified {
		return nil, errors.New("verify id token: email is not verified")
	}

	return &Claims{
		Subject:    claims.Subject,
		Email:      claims.Email,
		Name:       claims.Name,
		GivenName:  claims.GivenName,
		FamilyName: claims.FamilyName,
	}, nil
}
