package cryptox

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

var (
	// ErrPasswordMismatch is returned when a password does not match its hash.
	ErrPasswordMismatch = errors.New("password does not match")

	// ErrMalformedHash is returned when an encoded hash cannot be parsed.
	ErrMalformedHash = errors.New("invalid hash format")
)

// Upper bounds on what an encoded hash may ask for. Anything above them is
// treated as malformed rather than computed.
const (
	maxMemory      = 64 * 1024 // KiB
	maxIterations  = 10
	maxParallelism = 16
	maxSaltLength  = 64
	maxKeyLength   = 64
)

// argonParams are the tunables recorded inside every encoded hash.
type argonParams struct {
	memory      uint32
	iterations  uint32
	parallelism uint8
}

// HashPassword derives a salted Argon2id hash of password and returns it in
// PHC string format: $argon2id$v=19$m=..,t=..,p=..$<salt>$<hash>.
// Every call draws a fresh random salt, so two hashes of the same password
// never compare equal.
func HashPassword(password string) (string, error) {
	p, err := GetPepper()
	if err != nil {
		return "", err
	}

	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	sum := argon2.IDKey([]byte(password+p), salt, iterations, memory, parallelism, keyLength)

	return fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		memory,
		iterations,
		parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(sum),
	), nil
}

// VerifyPassword recomputes the hash of password using the salt and
// parameters stored in encodedHash and compares in constant time.
func VerifyPassword(password, encodedHash string) error {
	params, salt, expected, err := decodeHash(encodedHash)
	if err != nil {
		return err
	}

	p, err := GetPepper()
	if err != nil {
		return err
	}

	computed := argon2.IDKey(
		[]byte(password+p),
		salt,
		params.iterations,
		params.memory,
		params.parallelism,
		uint32(len(expected)), // #nosec G115 - decoded from a short base64 field
	)

	if subtle.ConstantTimeCompare(computed, expected) != 1 {
		return ErrPasswordMismatch
	}
	return nil
}

// CheckPassword reports whether password matches encodedHash. Malformed
// hashes and pepper failures are treated as a mismatch.
func CheckPassword(password, encodedHash string) bool {
	return VerifyPassword(password, encodedHash) == nil
}

func decodeHash(encodedHash string) (argonParams, []byte, []byte, error) {
	var params argonParams

	// ["", "argon2id", "v=19", "m=X,t=Y,p=Z", "salt", "hash"]
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 || parts[0] != "" {
		return params, nil, nil, fmt.Errorf("%w: expected 6 parts", ErrMalformedHash)
	}
	if parts[1] != "argon2id" {
		return params, nil, nil, fmt.Errorf("%w: not argon2id", ErrMalformedHash)
	}
	if parts[2] != fmt.Sprintf("v=%d", argon2.Version) {
		return params, nil, nil, fmt.Errorf("%w: wrong version", ErrMalformedHash)
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &params.memory, &params.iterations, &params.parallelism); err != nil {
		return params, nil, nil, fmt.Errorf("%w: parameters: %v", ErrMalformedHash, err)
	}
	if params.memory == 0 || params.iterations == 0 || params.parallelism == 0 {
		return params, nil, nil, fmt.Errorf("%w: zero parameter", ErrMalformedHash)
	}
	if params.memory > maxMemory || params.iterations > maxIterations || params.parallelism > maxParallelism {
		return params, nil, nil, fmt.Errorf("%w: parameters out of range", ErrMalformedHash)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil || len(salt) == 0 || len(salt) > maxSaltLength {
		return params, nil, nil, fmt.Errorf("%w: salt", ErrMalformedHash)
	}
	sum, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(sum) == 0 || len(sum) > maxKeyLength {
		return params, nil, nil, fmt.Errorf("%w: hash", ErrMalformedHash)
	}

	return params, salt, sum, nil
}
