package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/aussiebroadwan/journal/internal/journal/domain"
	"github.com/aussiebroadwan/journal/internal/journal/store"
	"github.com/aussiebroadwan/journal/pkg/cryptox"
	"github.com/aussiebroadwan/journal/pkg/slogx"
)

type AccountService struct {
	Repo *store.Repository
	Now  func() time.Time

	dummyOnce sync.Once
	dummyHash string
	dummyErr  error
}

// NewAccountService builds the service and its decoy hash up front, so the
// first unknown-email login costs one verification like every other.
func NewAccountService(repo *store.Repository, now func() time.Time) (*AccountService, error) {
	s := &AccountService{Repo: repo, Now: now}
	if s.decoyHash(); s.dummyErr != nil {
		return nil, fmt.Errorf("build decoy hash: %w", s.dummyErr)
	}
	return s, nil
}

// Register creates an account for email. The password is hashed before the
// store lock is taken so the critical section stays short.
func (s *AccountService) Register(ctx context.Context, email, name, password string) (domain.Account, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return domain.Account{}, ErrInvalidInput
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.Account{}, fmt.Errorf("hash password: %w", err)
	}

	var created domain.Account
	err = s.Repo.Update(ctx, func(accounts domain.Accounts) error {
		if _, ok := accounts[email]; ok {
			return ErrAlreadyExists
		}
		a := domain.NewAccount(email, strings.TrimSpace(name), hash, s.now())
		accounts[email] = a
		created = a.Clone()
		return nil
	})
	if err != nil {
		return domain.Account{}, err
	}

	slogx.FromContext(ctx).Info("account registered", slog.String("email", email))
	return created, nil
}

// Authenticate checks email and password. Unknown emails and wrong passwords
// both yield ErrInvalidCredentials and cost one hash verification each.
func (s *AccountService) Authenticate(ctx context.Context, email, password string) (domain.Account, error) {
	l := slogx.FromContext(ctx)
	email = strings.TrimSpace(email)

	a, err := s.Get(ctx, email)
	if errors.Is(err, ErrNotFound) {
		cryptox.CheckPassword(password, s.decoyHash())
		l.Info("login failed", slog.String("email", email))
		return domain.Account{}, ErrInvalidCredentials
	}
	if err != nil {
		return domain.Account{}, err
	}

	if !cryptox.CheckPassword(password, a.PasswordHash) {
		l.Info("login failed", slog.String("email", email))
		return domain.Account{}, ErrInvalidCredentials
	}
	return a, nil
}

// Get returns a copy of the account stored under email.
func (s *AccountService) Get(ctx context.Context, email string) (domain.Account, error) {
	var found domain.Account
	err := s.Repo.View(ctx, func(accounts domain.Accounts) error {
		a, ok := accounts[email]
		if !ok {
			return ErrNotFound
		}
		found = a.Clone()
		return nil
	})
	if err != nil {
		return domain.Account{}, err
	}
	return found, nil
}

// Profile returns the summary of the account stored under email.
func (s *AccountService) Profile(ctx context.Context, email string) (domain.Profile, error) {
	a, err := s.Get(ctx, email)
	if err != nil {
		return domain.Profile{}, err
	}
	return a.Profile(), nil
}

func (s *AccountService) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

// decoyHash is verified against when the email is unknown so that lookup
// misses take as long as wrong passwords.
func (s *AccountService) decoyHash() string {
	s.dummyOnce.Do(func() {
		s.dummyHash, s.dummyErr = newDecoyHash()
	})
	return s.dummyHash
}

func newDecoyHash() (string, error) {
	secret, err := cryptox.GenerateSecret(cryptox.SecretSize256)
	if err != nil {
		return "", err
	}
	return cryptox.HashPassword(secret)
}
