package authn

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// IDTokenClaims is the subset of the Firebase ID token the client reads.
type IDTokenClaims struct {
	UID       string
	Email     string
	ExpiresAt time.Time
}

// ParseIDToken extracts claims without verifying the signature. The
// token was just handed to us over TLS by the provider that minted it;
// server-side verification is the backend's job, not this client's.
func ParseIDToken(idToken string) (*IDTokenClaims, error) {
	parser := jwt.NewParser()
	token, _, err := parser.ParseUnverified(idToken, jwt.MapClaims{})
	if err != nil {
		return nil, fmt.Errorf("authn: parse id token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("authn: unexpected claims type %T", token.Claims)
	}

	out := &IDTokenClaims{}
	if sub, err := claims.GetSubject(); err == nil {
		out.UID = sub
	}
	if out.UID == "" {
		if uid, ok := claims["user_id"].(string); ok {
			out.UID = uid
		}
	}
	if email, ok := claims["email"].(string); ok {
		out.Email = email
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = exp.Time
	}
	return out, nil
}
