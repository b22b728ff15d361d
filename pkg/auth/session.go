// Package auth supplies the authenticated session every journal operation
// runs under, plus a local email/password identity provider.
package auth

import (
	"context"
	"errors"
	"strings"
)

// ErrNotAuthenticated is returned when an operation runs without a user.
var ErrNotAuthenticated = errors.New("auth: not authenticated")

// Session identifies the user an operation acts for. It is passed
// explicitly to every store call.
type Session struct {
	UserID string `json:"userId"`
	Email  string `json:"email,omitempty"`
}

// Require returns the session's user id or ErrNotAuthenticated.
func (s Session) Require() (string, error) {
	uid := strings.TrimSpace(s.UserID)
	if uid == "" {
		return "", ErrNotAuthenticated
	}
	return uid, nil
}

// Provider reports who is currently signed in.
type Provider interface {
	CurrentSession(ctx context.Context) (Session, error)
}

// CurrentUserID resolves the signed-in user's id from p.
func CurrentUserID(ctx context.Context, p Provider) (string, error) {
	if p == nil {
		return "", ErrNotAuthenticated
	}
	s, err := p.CurrentSession(ctx)
	if err != nil {
		return "", err
	}
	return s.Require()
}

// Static is a Provider that always returns the same session.
type Static Session

func (s Static) CurrentSession(context.Context) (Session, error) {
	sess := Session(s)
	if _, err := sess.Require(); err != nil {
		return Session{}, err
	}
	return sess, nil
}
