// Package credentials verifies bearer tokens and extracts the identity
// claims used to provision and resolve principals.
package credentials

import (
	"context"
	"errors"
	"strings"
)

var ErrInvalidToken = errors.New("invalid bearer token")

// Claims identify the caller. Subject is stable per identity provider
// account; Username is what managers use to grant roles.
type Claims struct {
	Subject  string
	Username string
}

type Verifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}

// Chain accepts a token if any of its verifiers does, trying them in order.
type Chain []Verifier

func (c Chain) Verify(ctx context.Context, token string) (Claims, error) {
	errs := make([]error, 0, len(c))
	for _, v := range c {
		claims, err := v.Verify(ctx, token)
		if err == nil {
			return claims, nil
		}
		errs = append(errs, err)
	}
	return Claims{}, errors.Join(append([]error{ErrInvalidToken}, errs...)...)
}

// BearerToken extracts the token from an Authorization header value.
func BearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}

type identityClaims struct {
	Subject           string `json:"sub"`
	PreferredUsername string `json:"preferred_username"`
	Username          string `json:"username"`
}

func (c identityClaims) toClaims() (Claims, error) {
	username := c.PreferredUsername
	if username == "" {
		username = c.Username
	}
	if c.Subject == "" || username == "" {
		return Claims{}, errors.Join(ErrInvalidToken, errors.New("token lacks sub or username"))
	}
	return Claims{Subject: c.Subject, Username: username}, nil
}
