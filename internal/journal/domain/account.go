package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrMissingEmail        = errors.New("account: email is empty")
	ErrMissingPasswordHash = errors.New("account: password hash is empty")
	ErrKeyMismatch         = errors.New("account: key does not match email")
	ErrSubmissionSequence  = errors.New("account: submission ids out of sequence")
)

// Account is a registered user together with every paper they submitted.
// Email is the identity and never changes once created.
type Account struct {
	Email        string       `json:"email"`
	Name         string       `json:"name"`
	PasswordHash string       `json:"password_hash"` // argon2id PHC string
	CreatedAt    time.Time    `json:"created_at"`
	Papers       []Submission `json:"papers"`
}

// NewAccount builds a fresh account with no submissions.
func NewAccount(email, name, passwordHash string, now time.Time) *Account {
	return &Account{
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		CreatedAt:    now.UTC(),
		Papers:       []Submission{},
	}
}

// Validate checks the invariants an account must hold before it is persisted.
func (a *Account) Validate() error {
	if a.Email == "" {
		return ErrMissingEmail
	}
	if a.PasswordHash == "" {
		return fmt.Errorf("%w: %s", ErrMissingPasswordHash, a.Email)
	}
	for i, p := range a.Papers {
		if p.ID != i+1 {
			return fmt.Errorf("%w: %s has id %d at position %d", ErrSubmissionSequence, a.Email, p.ID, i+1)
		}
	}
	return nil
}

// Append adds a new submission to the account, numbering it after the
// submissions already present.
func (a *Account) Append(title string, authors []string, abstract string, now time.Time) Submission {
	s := Submission{
		ID:          len(a.Papers) + 1,
		Title:       title,
		Authors:     append([]string{}, authors...),
		Abstract:    abstract,
		SubmittedAt: now.UTC(),
		Status:      StatusSubmitted,
	}
	a.Papers = append(a.Papers, s)
	return s
}

// Clone returns a deep copy safe to hand out after the store lock is released.
func (a *Account) Clone() Account {
	c := *a
	c.Papers = make([]Submission, len(a.Papers))
	for i, p := range a.Papers {
		c.Papers[i] = p.Clone()
	}
	return c
}

// Profile is the summary view of an account.
type Profile struct {
	Email       string
	Name        string
	CreatedAt   time.Time
	PapersCount int
}

// Profile projects the account to its summary.
func (a *Account) Profile() Profile {
	return Profile{
		Email:       a.Email,
		Name:        a.Name,
		CreatedAt:   a.CreatedAt,
		PapersCount: len(a.Papers),
	}
}

// Accounts is the full persisted snapshot, keyed by email.
type Accounts map[string]*Account

// CheckKeys reports a nil entry or an entry filed under someone else's
// email. Drivers run it on every decoded snapshot.
func (as Accounts) CheckKeys() error {
	for key, a := range as {
		if a == nil {
			return fmt.Errorf("%w: nil account under %q", ErrMissingEmail, key)
		}
		if key != a.Email {
			return fmt.Errorf("%w: %q holds %q", ErrKeyMismatch, key, a.Email)
		}
	}
	return nil
}

// Validate checks every account in the snapshot.
func (as Accounts) Validate() error {
	if err := as.CheckKeys(); err != nil {
		return err
	}
	for _, a := range as {
		if err := a.Validate(); err != nil {
			return err
		}
	}
	return nil
}
