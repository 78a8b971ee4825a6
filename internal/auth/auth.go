package auth

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
)

// Config is the auth configuration.
type Config struct {
	JWTSecret string `mapstructure:"jwt_secret"`
}

// Auth verifies bearer tokens and resolves the account id claim. The claim is
// the only tenant context in the service; handlers pass it down explicitly.
type Auth struct {
	ja *jwtauth.JWTAuth
}

// New creates an Auth from the config.
func New(cfg *Config) (*Auth, error) {
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("jwt secret is empty")
	}
	return &Auth{
		ja: jwtauth.New("HS256", []byte(cfg.JWTSecret), nil),
	}, nil
}

// Verifier seeks, parses and validates the request token.
func (a *Auth) Verifier() func(http.Handler) http.Handler {
	return jwtauth.Verifier(a.ja)
}

// Authenticator rejects requests without a valid token.
func (a *Auth) Authenticator() func(http.Handler) http.Handler {
	return jwtauth.Authenticator
}

// NewToken mints a token carrying the account id claim.
func (a *Auth) NewToken(accountID int) (string, error) {
	_, tokenString, err := a.ja.Encode(map[string]interface{}{
		"account_id": accountID,
	})
	if err != nil {
		return "", fmt.Errorf("can't encode token: %w", err)
	}
	return tokenString, nil
}

// AccountFromContext extracts the account id claim set by Verifier.
func AccountFromContext(ctx context.Context) (int, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("no token in context: %w", err)
	}
	raw, ok := claims["account_id"]
	if !ok {
		return 0, fmt.Errorf("token has no account_id claim")
	}
	switch v := raw.(type) {
	case float64:
		return int(v), nil
	case int:
		return v, nil
	case int64:
		return int(v), nil
	default:
		return 0, fmt.Errorf("unexpected account_id claim type %T", raw)
	}
}
