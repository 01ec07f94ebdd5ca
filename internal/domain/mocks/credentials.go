package mocks

import "context"

// CredentialProvider is a mock implementation of ports.CredentialProvider.
type CredentialProvider struct {
	Value string
	Err   error

	CallCount int
}

// Token returns the configured token or error.
func (m *CredentialProvider) Token(ctx context.Context) (string, error) {
	m.CallCount++
	if m.Err != nil {
		return "", m.Err
	}
	return m.Value, nil
}

// IdentityResolver is a mock implementation of ports.IdentityResolver.
type IdentityResolver struct {
	EmailValue string
	Err        error
}

// Email returns the configured email or error.
func (m *IdentityResolver) Email(ctx context.Context) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	return m.EmailValue, nil
}
