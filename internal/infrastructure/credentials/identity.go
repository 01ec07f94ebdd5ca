package credentials

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ersonp/timetable-sync/internal/domain/ports"
)

// ErrNoEmailClaim means the token decoded but carries no usable email.
var ErrNoEmailClaim = errors.New("token has no email claim")

// Claims are the bearer token fields this client reads.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Identity resolves the signed-in user's email from the current bearer token.
// The signature is not verified here; the backend does that on every request.
type Identity struct {
	provider ports.CredentialProvider
	parser   *jwt.Parser
}

// NewIdentity creates an Identity reading tokens from provider.
func NewIdentity(provider ports.CredentialProvider) *Identity {
	return &Identity{
		provider: provider,
		parser:   jwt.NewParser(),
	}
}

// Email implements ports.IdentityResolver. It returns "" when signed out.
func (i *Identity) Email(ctx context.Context) (string, error) {
	token, err := i.provider.Token(ctx)
	if err != nil {
		return "", fmt.Errorf("reading credential: %w", err)
	}
	if token == "" {
		return "", nil
	}

	claims, err := i.Claims(token)
	if err != nil {
		return "", err
	}

	email := strings.TrimSpace(claims.Email)
	if email == "" && strings.Contains(claims.Subject, "@") {
		email = claims.Subject
	}
	if email == "" {
		return "", ErrNoEmailClaim
	}
	return email, nil
}

// Claims decodes token without verifying its signature.
func (i *Identity) Claims(token string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := i.parser.ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("decoding token: %w", err)
	}
	return claims, nil
}
