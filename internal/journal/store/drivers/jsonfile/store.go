package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/aussiebroadwan/journal/internal/journal/domain"
	"github.com/aussiebroadwan/journal/internal/journal/store"
)

// Store keeps the account snapshot in a single indented JSON file. Saves go
// through a temp file and rename so the file on disk is always either the
// old or the new snapshot.
type Store struct {
	path string
}

var _ store.Store = (*Store)(nil)

func NewStore(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("jsonfile: empty path")
	}

	path = filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("jsonfile: create dir: %w", err)
	}
	return &Store{path: path}, nil
}

func (s *Store) Path() string { return s.path }

func (s *Store) Load(ctx context.Context) (domain.Accounts, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return domain.Accounts{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", store.ErrStorageUnavailable, s.path, err)
	}

	accounts := domain.Accounts{}
	if len(data) == 0 {
		return accounts, nil
	}
	if err := json.Unmarshal(data, &accounts); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", store.ErrStorageUnavailable, s.path, err)
	}
	if err := accounts.CheckKeys(); err != nil {
		return nil, fmt.Errorf("%w: corrupt %s: %v", store.ErrStorageUnavailable, s.path, err)
	}
	return accounts, nil
}

func (s *Store) Save(ctx context.Context, accounts domain.Accounts) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(accounts, "", "  ")
	if err != nil {
		return fmt.Errorf("jsonfile: encode: %w", err)
	}

	if err := writeAtomic(s.path, data); err != nil {
		return fmt.Errorf("%w: write %s: %v", store.ErrStorageUnavailable, s.path, err)
	}
	return nil
}

// Ping checks the directory holding the snapshot is still there.
func (s *Store) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	info, err := os.Stat(filepath.Dir(s.path))
	if err != nil {
		return fmt.Errorf("%w: %v", store.ErrStorageUnavailable, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", store.ErrStorageUnavailable, filepath.Dir(s.path))
	}
	return nil
}

func (s *Store) Close() error { return nil }

func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	// Remove the temp file on any failure; after a successful rename this
	// is a no-op.
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o600); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}
