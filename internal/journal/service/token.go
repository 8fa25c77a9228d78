package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/journal/pkg/jwtx"
	"github.com/aussiebroadwan/journal/pkg/slogx"
)

// TokenService issues and checks bearer tokens. It never touches the store.
type TokenService struct {
	Signer   jwtx.Signer
	Verifier jwtx.Verifier
	Issuer   string
	TTL      time.Duration // defaults to jwtx.TokenTTL

	// Now is used as the issue time. Defaults to time.Now.
	Now func() time.Time
}

// NewTokenService builds a TokenService that signs and verifies with secret.
// The verifier shares now with the service so issue and expiry agree on time.
func NewTokenService(secret []byte, issuer string, now func() time.Time) (*TokenService, error) {
	if now == nil {
		now = time.Now
	}

	signer, err := jwtx.NewSignerHS256(secret)
	if err != nil {
		return nil, err
	}
	verifier, err := jwtx.NewVerifierHS256(secret, issuer)
	if err != nil {
		return nil, err
	}
	verifier.Now = now

	return &TokenService{
		Signer:   signer,
		Verifier: verifier,
		Issuer:   issuer,
		TTL:      jwtx.TokenTTL,
		Now:      now,
	}, nil
}

// Issue mints a token for identity and reports when it expires.
func (s *TokenService) Issue(identity string) (string, time.Time, error) {
	now := s.now()
	ttl := s.TTL
	if ttl <= 0 {
		ttl = jwtx.TokenTTL
	}

	claims := jwtx.NewClaims(identity, s.Issuer, ttl, now)
	token, err := s.Signer.Sign(claims)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, claims.ExpiresAt.Time, nil
}

// Verify returns the identity a token was issued for. An expired token gives
// ErrTokenExpired; every other failure collapses to ErrInvalidToken.
func (s *TokenService) Verify(ctx context.Context, token string) (string, error) {
	claims, err := s.Verifier.Verify(token)
	if err != nil {
		if errors.Is(err, jwtx.ErrExpired) {
			return "", ErrTokenExpired
		}
		slogx.FromContext(ctx).Debug("token rejected", slog.Any("err", err))
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

func (s *TokenService) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}
