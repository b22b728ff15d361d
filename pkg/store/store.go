// Package store provides the key-value backends that hold per-user journal
// data. Every backend stores opaque byte values under flat string keys.
package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrBackend marks failures of the underlying storage.
var ErrBackend = errors.New("store: backend failure")

// Backend is the key-value contract the journal is written against.
type Backend interface {
	// Get returns the value for key and whether it exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set replaces the value for key.
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes key. Removing a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// Watcher is implemented by backends that can stream change notifications.
type Watcher interface {
	Watch(ctx context.Context) (<-chan Event, error)
}

// Key prefixes used by the journal and profile data.
const (
	PrefixTasks          = "tasks"
	PrefixUsername       = "username"
	PrefixProfilePicture = "profilePicture"
	PrefixAccount        = "account"
)

// Key joins a prefix and an id, e.g. Key("tasks", uid) == "tasks_<uid>".
func Key(prefix, id string) string {
	return prefix + "_" + id
}

// SplitKey is the inverse of Key.
func SplitKey(key string) (prefix, id string, ok bool) {
	return strings.Cut(key, "_")
}

func backendErr(op, key string, err error) error {
	return fmt.Errorf("%w: %s %q: %v", ErrBackend, op, key, err)
}

// Close closes b when it holds resources that need releasing.
func Close(b Backend) error {
	if c, ok := b.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
