package nonce

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultTTL bounds how long an issued token verifies, mirroring the usual
// half-day form-nonce lifetime.
const DefaultTTL = 12 * time.Hour

// Option customises the token provider.
type Option func(*TokenProvider)

// WithTTL overrides the token lifetime.
func WithTTL(ttl time.Duration) Option {
	return func(p *TokenProvider) {
		if ttl > 0 {
			p.ttl = ttl
		}
	}
}

// WithClock injects the time source, used by tests.
func WithClock(now func() time.Time) Option {
	return func(p *TokenProvider) {
		if now != nil {
			p.now = now
		}
	}
}

// TokenProvider is the default Provider: HMAC-SHA256 signed JWTs carrying
// the action as audience and a uuid token id.
type TokenProvider struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenProvider constructs a provider from a signing secret.
func NewTokenProvider(secret []byte, options ...Option) (*TokenProvider, error) {
	if len(secret) == 0 {
		return nil, errors.New("nonce: signing secret is required")
	}

	p := &TokenProvider{
		secret: append([]byte(nil), secret...),
		ttl:    DefaultTTL,
		now:    time.Now,
	}
	for _, opt := range options {
		if opt != nil {
			opt(p)
		}
	}
	return p, nil
}

// Issue signs a token for the action.
func (p *TokenProvider) Issue(action string) (string, error) {
	now := p.now()
	claims := jwt.RegisteredClaims{
		Audience:  jwt.ClaimStrings{action},
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(p.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(p.secret)
	if err != nil {
		return "", fmt.Errorf("nonce: sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and checks the token against the action.
func (p *TokenProvider) Verify(token, action string) bool {
	if token == "" {
		return false
	}

	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{},
		func(*jwt.Token) (any, error) { return p.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithAudience(action),
		jwt.WithTimeFunc(p.now),
	)
	return err == nil && parsed.Valid
}
