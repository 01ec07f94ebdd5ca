// Package credentials supplies bearer tokens and the identity they carry.
package credentials

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ersonp/timetable-sync/internal/domain/ports"
)

// Static always returns the same token. An empty Static means signed out.
type Static string

// Token implements ports.CredentialProvider.
func (s Static) Token(context.Context) (string, error) {
	return strings.TrimSpace(string(s)), nil
}

// Env reads the token from an environment variable on every call.
type Env string

// Token implements ports.CredentialProvider.
func (e Env) Token(context.Context) (string, error) {
	return strings.TrimSpace(os.Getenv(string(e))), nil
}

// File reads the token from a file on every call, so a refreshed token is
// picked up without restarting. A missing file means signed out.
type File string

// Token implements ports.CredentialProvider.
func (f File) Token(context.Context) (string, error) {
	if f == "" {
		return "", nil
	}
	data, err := os.ReadFile(string(f))
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading token file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Chain tries each provider in order and returns the first non-empty token.
type Chain []ports.CredentialProvider

// Token implements ports.CredentialProvider.
func (c Chain) Token(ctx context.Context) (string, error) {
	for _, p := range c {
		token, err := p.Token(ctx)
		if err != nil {
			return "", err
		}
		if token != "" {
			return token, nil
		}
	}
	return "", nil
}
