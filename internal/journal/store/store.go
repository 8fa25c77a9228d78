package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/journal/internal/journal/domain"
)

// ErrStorageUnavailable is returned when the backing medium cannot be read or
// written, or an operation did not finish within the repository timeout.
var ErrStorageUnavailable = errors.New("store: storage unavailable")

// Store is implemented by the persistence drivers (jsonfile, s3snapshot).
// A driver moves the whole account snapshot at once; it does not patch.
type Store interface {
	// Load reads the entire snapshot. A missing backing object is an empty
	// snapshot, not an error.
	Load(ctx context.Context) (domain.Accounts, error)

	// Save replaces the entire snapshot. Readers must never observe a
	// partially written snapshot.
	Save(ctx context.Context, accounts domain.Accounts) error

	// Ping checks the backing medium is reachable.
	Ping(ctx context.Context) error

	// Close releases any underlying resources.
	Close() error
}
