package ports

import "context"

// CredentialProvider supplies the bearer token for backend calls.
// An empty token with a nil error means no credential is available.
type CredentialProvider interface {
	Token(ctx context.Context) (string, error)
}

// IdentityResolver reports who the current credential belongs to.
// An empty email with a nil error means no one is signed in.
type IdentityResolver interface {
	Email(ctx context.Context) (string, error)
}
