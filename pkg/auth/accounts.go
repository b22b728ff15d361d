package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"tableflip.dev/plannow/pkg/store"
)

// MinPasswordLength is the shortest password SignUp accepts.
const MinPasswordLength = 6

var (
	ErrAccountExists      = errors.New("auth: account already exists")
	ErrInvalidCredentials = errors.New("auth: invalid email or password")
	ErrInvalidInput       = errors.New("auth: invalid input")
	ErrSessionMismatch    = errors.New("auth: session does not belong to this account")
)

// Account is the persisted identity record, keyed by normalized email.
type Account struct {
	UserID       string    `json:"userId"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Accounts is a local email/password identity provider stored in the same
// key-value backend as the journal.
type Accounts struct {
	Backend store.Backend
	// Cost is the bcrypt cost; zero means bcrypt.DefaultCost.
	Cost int
}

// NormalizeEmail lower-cases and trims an email address and checks its
// shape.
func NormalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 || strings.ContainsAny(email, "/\\ ") {
		return "", fmt.Errorf("%w: malformed email %q", ErrInvalidInput, email)
	}
	return email, nil
}

func (a *Accounts) cost() int {
	if a.Cost == 0 {
		return bcrypt.DefaultCost
	}
	return a.Cost
}

func (a *Accounts) load(ctx context.Context, email string) (*Account, error) {
	data, ok, err := a.Backend.Get(ctx, store.Key(store.PrefixAccount, email))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	acct := &Account{}
	if err := json.Unmarshal(data, acct); err != nil {
		return nil, fmt.Errorf("auth: decode account %s: %w", email, err)
	}
	return acct, nil
}

func (a *Accounts) save(ctx context.Context, acct *Account) error {
	data, err := json.Marshal(acct)
	if err != nil {
		return err
	}
	return a.Backend.Set(ctx, store.Key(store.PrefixAccount, acct.Email), data)
}

func (a *Accounts) hash(password string) (string, error) {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return "", fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, MinPasswordLength)
	}
	h, err := bcrypt.GenerateFromPassword([]byte(password), a.cost())
	if err != nil {
		return "", fmt.Errorf("auth: hash password: %w", err)
	}
	return string(h), nil
}

// SignUp registers a new account and returns its session.
func (a *Accounts) SignUp(ctx context.Context, email, password string) (Session, error) {
	email, err := NormalizeEmail(email)
	if err != nil {
		return Session{}, err
	}
	existing, err := a.load(ctx, email)
	if err != nil {
		return Session{}, err
	}
	if existing != nil {
		return Session{}, fmt.Errorf("%w: %s", ErrAccountExists, email)
	}
	hash, err := a.hash(password)
	if err != nil {
		return Session{}, err
	}
	acct := &Account{
		UserID:       uuid.New().String(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := a.save(ctx, acct); err != nil {
		return Session{}, err
	}
	log.Info("account created", "email", email, "uid", acct.UserID)
	return Session{UserID: acct.UserID, Email: email}, nil
}

// SignIn checks the credentials and returns the account's session.
func (a *Accounts) SignIn(ctx context.Context, email, password string) (Session, error) {
	acct, err := a.verify(ctx, email, password)
	if err != nil {
		return Session{}, err
	}
	return Session{UserID: acct.UserID, Email: acct.Email}, nil
}

func (a *Accounts) verify(ctx context.Context, email, password string) (*Account, error) {
	email, err := NormalizeEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	acct, err := a.load(ctx, email)
	if err != nil {
		return nil, err
	}
	if acct == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return acct, nil
}

// ChangePassword replaces the password after checking the current one.
func (a *Accounts) ChangePassword(ctx context.Context, email, current, next string) error {
	acct, err := a.verify(ctx, email, current)
	if err != nil {
		return err
	}
	hash, err := a.hash(next)
	if err != nil {
		return err
	}
	acct.PasswordHash = hash
	return a.save(ctx, acct)
}

// Verify checks password against the account sess was issued for. A
// session whose user no longer owns the email, for example after the
// account was deleted and signed up again, gets ErrSessionMismatch.
func (a *Accounts) Verify(ctx context.Context, sess Session, password string) error {
	acct, err := a.verify(ctx, sess.Email, password)
	if err != nil {
		return err
	}
	if acct.UserID != sess.UserID {
		return fmt.Errorf("%w: %s", ErrSessionMismatch, acct.Email)
	}
	return nil
}

// Delete removes the account record of sess. Callers check the password
// with Verify and remove the user's data first.
func (a *Accounts) Delete(ctx context.Context, sess Session) error {
	email, err := NormalizeEmail(sess.Email)
	if err != nil {
		return err
	}
	acct, err := a.load(ctx, email)
	if err != nil {
		return err
	}
	if acct == nil {
		return nil
	}
	if acct.UserID != sess.UserID {
		return fmt.Errorf("%w: %s", ErrSessionMismatch, acct.Email)
	}
	if err := a.Backend.Delete(ctx, store.Key(store.PrefixAccount, acct.Email)); err != nil {
		return err
	}
	log.Info("account deleted", "email", acct.Email, "uid", acct.UserID)
	return nil
}
