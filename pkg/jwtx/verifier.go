package jwtx

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/aussiebroadwan/journal/pkg/cryptox"
)

// Verifier validates a JWT and gives you back the claims if it's legit.
type Verifier interface {
	Verify(token string) (Claims, error)
}

var (
	ErrMalformed  = errors.New("jwtx: malformed token")
	ErrUnknownKID = errors.New("jwtx: unknown kid")
	ErrInvalidSig = errors.New("jwtx: invalid signature")

	ErrIssuer       = errors.New("jwtx: issuer mismatch")
	ErrExpired      = errors.New("jwtx: token expired")
	ErrNotYetValid  = errors.New("jwtx: token not yet valid")
	ErrInvalidClaim = errors.New("jwtx: invalid claims")
)

// HS256Verifier checks tokens produced by an HS256Signer holding the same
// secret. Time-based claims are checked against Now rather than the wall
// clock so callers can control it.
type HS256Verifier struct {
	kid    string
	secret []byte
	issuer string

	// Leeway allows small clock skew when validating exp/nbf.
	Leeway time.Duration

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// NewVerifierHS256 creates a verifier for tokens signed with secret. An empty
// issuer disables the issuer check.
func NewVerifierHS256(secret []byte, issuer string) (*HS256Verifier, error) {
	if len(secret) < MinSecretSize {
		return nil, ErrWeakSecret
	}
	return &HS256Verifier{
		kid:    cryptox.Fingerprint(secret),
		secret: append([]byte(nil), secret...),
		issuer: issuer,
		Now:    time.Now,
	}, nil
}

// Verify checks the signature and claims of tokenStr and returns its claims.
func (v *HS256Verifier) Verify(tokenStr string) (Claims, error) {
	// exp/nbf are checked below against v.Now, not by the library.
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)

	var claims Claims
	_, err := parser.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
		kid, _ := t.Header["kid"].(string)
		if kid != v.kid {
			return nil, ErrUnknownKID
		}
		return v.secret, nil
	})
	if err != nil {
		return Claims{}, classifyParseError(err)
	}

	if err := claims.ValidateSubject(); err != nil {
		return Claims{}, err
	}
	if err := claims.ValidateIssuer(v.issuer); err != nil {
		return Claims{}, err
	}
	if err := claims.ValidateExpiry(v.now(), v.Leeway); err != nil {
		return Claims{}, err
	}

	return claims, nil
}

func (v *HS256Verifier) now() time.Time {
	if v.Now == nil {
		return time.Now()
	}
	return v.Now()
}

func classifyParseError(err error) error {
	switch {
	case errors.Is(err, ErrUnknownKID):
		return ErrUnknownKID
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		// Also raised for any alg other than HS256.
		return ErrInvalidSig
	default:
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
}
