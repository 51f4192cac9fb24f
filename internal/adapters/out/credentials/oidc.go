package credentials

import (
	"context"
	"errors"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"
)

// OIDCVerifier accepts ID tokens issued for clientID by an OpenID Connect
// provider. Signing keys are discovered and refreshed by go-oidc.
type OIDCVerifier struct {
	verifier *oidc.IDTokenVerifier
}

func NewOIDCVerifier(ctx context.Context, issuer, clientID string) (*OIDCVerifier, error) {
	provider, err := oidc.NewProvider(ctx, issuer)
	if err != nil {
		return nil, fmt.Errorf("discover oidc provider %s: %w", issuer, err)
	}
	return newOIDCVerifier(provider.Verifier(&oidc.Config{ClientID: clientID})), nil
}

func newOIDCVerifier(verifier *oidc.IDTokenVerifier) *OIDCVerifier {
	return &OIDCVerifier{verifier: verifier}
}

func (v *OIDCVerifier) Verify(ctx context.Context, token string) (Claims, error) {
	idToken, err := v.verifier.Verify(ctx, token)
	if err != nil {
		return Claims{}, errors.Join(ErrInvalidToken, err)
	}
	var claims identityClaims
	if err = idToken.Claims(&claims); err != nil {
		return Claims{}, errors.Join(ErrInvalidToken, err)
	}
	return claims.toClaims()
}
