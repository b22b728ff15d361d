// Package profile keeps the small per-user values shown on the profile
// screen: a display name and a picture reference.
package profile

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/plannow/pkg/auth"
	"tableflip.dev/plannow/pkg/store"
)

// ErrEmptyUsername is returned when a username is blank after trimming.
var ErrEmptyUsername = errors.New("profile: username is required")

// Profile is a user's stored profile values.
type Profile struct {
	UserID   string `json:"userId"`
	Email    string `json:"email,omitempty"`
	Username string `json:"username"`
	Picture  string `json:"picture"`
}

type Store struct {
	Backend store.Backend
}

func New(b store.Backend) *Store {
	return &Store{Backend: b}
}

func (s *Store) get(ctx context.Context, sess auth.Session, prefix string) (string, error) {
	uid, err := sess.Require()
	if err != nil {
		return "", err
	}
	v, ok, err := s.Backend.Get(ctx, store.Key(prefix, uid))
	if err != nil || !ok {
		return "", err
	}
	return string(v), nil
}

func (s *Store) set(ctx context.Context, sess auth.Session, prefix, value string) error {
	uid, err := sess.Require()
	if err != nil {
		return err
	}
	return s.Backend.Set(ctx, store.Key(prefix, uid), []byte(value))
}

// Username returns the stored display name, "" when unset.
func (s *Store) Username(ctx context.Context, sess auth.Session) (string, error) {
	return s.get(ctx, sess, store.PrefixUsername)
}

func (s *Store) SetUsername(ctx context.Context, sess auth.Session, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyUsername
	}
	return s.set(ctx, sess, store.PrefixUsername, name)
}

// Picture returns the stored picture reference, "" when unset.
func (s *Store) Picture(ctx context.Context, sess auth.Session) (string, error) {
	return s.get(ctx, sess, store.PrefixProfilePicture)
}

// SetPicture stores uri as the picture reference. An empty uri clears it.
func (s *Store) SetPicture(ctx context.Context, sess auth.Session, uri string) error {
	uri = strings.TrimSpace(uri)
	if uri == "" {
		uid, err := sess.Require()
		if err != nil {
			return err
		}
		return s.Backend.Delete(ctx, store.Key(store.PrefixProfilePicture, uid))
	}
	return s.set(ctx, sess, store.PrefixProfilePicture, uri)
}

// Get loads both profile values.
func (s *Store) Get(ctx context.Context, sess auth.Session) (*Profile, error) {
	name, err := s.Username(ctx, sess)
	if err != nil {
		return nil, fmt.Errorf("profile: username: %w", err)
	}
	pic, err := s.Picture(ctx, sess)
	if err != nil {
		return nil, fmt.Errorf("profile: picture: %w", err)
	}
	return &Profile{UserID: sess.UserID, Email: sess.Email, Username: name, Picture: pic}, nil
}

// Purge removes every profile value of the session's user.
func (s *Store) Purge(ctx context.Context, sess auth.Session) error {
	uid, err := sess.Require()
	if err != nil {
		return err
	}
	for _, prefix := range []string{store.PrefixUsername, store.PrefixProfilePicture} {
		if err := s.Backend.Delete(ctx, store.Key(prefix, uid)); err != nil {
			return err
		}
	}
	return nil
}
