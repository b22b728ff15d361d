// Package journal is the gateway between entries and the key-value backend.
// A user's entries live under one key, "tasks_<uid>", as a JSON array, and
// every write rewrites that whole array.
//
// There is no locking around the read-modify-write cycle: a second writer
// racing the first loses updates, last write wins for the whole collection.
// The store assumes one active writer per user.
package journal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"tableflip.dev/plannow/pkg/auth"
	"tableflip.dev/plannow/pkg/entry"
	"tableflip.dev/plannow/pkg/store"
)

// ErrCorruptData is returned when a stored collection cannot be decoded.
var ErrCorruptData = errors.New("journal: corrupt data")

// Store reads and writes whole per-user collections.
type Store struct {
	Backend store.Backend
}

func New(b store.Backend) *Store {
	return &Store{Backend: b}
}

// CollectionKey returns the backend key holding uid's entries.
func CollectionKey(uid string) string {
	return store.Key(store.PrefixTasks, uid)
}

// Load returns the user's full collection in stored order. A user with no
// stored value has an empty collection.
func (s *Store) Load(ctx context.Context, sess auth.Session) ([]*entry.Entry, error) {
	uid, err := sess.Require()
	if err != nil {
		return nil, err
	}
	return s.load(ctx, uid)
}

func (s *Store) load(ctx context.Context, uid string) ([]*entry.Entry, error) {
	if s.Backend == nil {
		return nil, errors.New("journal: no backend configured")
	}
	key := CollectionKey(uid)
	data, ok, err := s.Backend.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []*entry.Entry{}, nil
	}
	entries := make([]*entry.Entry, 0)
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptData, key, err)
	}
	for i, e := range entries {
		if e == nil {
			return nil, fmt.Errorf("%w: %s: null record at %d", ErrCorruptData, key, i)
		}
	}
	return entries, nil
}

func (s *Store) save(ctx context.Context, uid string, entries []*entry.Entry) error {
	if entries == nil {
		entries = []*entry.Entry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("journal: encode collection: %w", err)
	}
	if err := s.Backend.Set(ctx, CollectionKey(uid), data); err != nil {
		return err
	}
	log.Debug("collection saved", "uid", uid, "entries", len(entries))
	return nil
}

// mutate runs the load / transform / save cycle. fn reports whether it
// changed anything; unchanged collections are not written back.
func (s *Store) mutate(ctx context.Context, sess auth.Session, fn func([]*entry.Entry) ([]*entry.Entry, bool, error)) error {
	uid, err := sess.Require()
	if err != nil {
		return err
	}
	entries, err := s.load(ctx, uid)
	if err != nil {
		return err
	}
	next, changed, err := fn(entries)
	if err != nil || !changed {
		return err
	}
	return s.save(ctx, uid, next)
}

// Append adds e to the end of the user's collection.
func (s *Store) Append(ctx context.Context, sess auth.Session, e *entry.Entry) error {
	if e == nil {
		return errors.New("journal: nil entry")
	}
	return s.mutate(ctx, sess, func(entries []*entry.Entry) ([]*entry.Entry, bool, error) {
		for _, existing := range entries {
			if existing.ID == e.ID {
				return nil, false, fmt.Errorf("journal: duplicate entry id %s", e.ID)
			}
		}
		return append(entries, e), true, nil
	})
}

// UpdateByID merges patch into the entry with the given id. An unknown id is
// a no-op.
func (s *Store) UpdateByID(ctx context.Context, sess auth.Session, id string, patch entry.Patch) error {
	if err := patch.Validate(); err != nil {
		return err
	}
	return s.mutate(ctx, sess, func(entries []*entry.Entry) ([]*entry.Entry, bool, error) {
		for _, e := range entries {
			if e.ID == id {
				return entries, !patch.Empty(), e.Apply(patch)
			}
		}
		return entries, false, nil
	})
}

// UpdateAt merges patch into the entry at index of the full collection as
// the caller last fetched it. Positions are not stable across writes, so
// prefer UpdateByID. An out of range index is a no-op.
func (s *Store) UpdateAt(ctx context.Context, sess auth.Session, index int, patch entry.Patch) error {
	if err := patch.Validate(); err != nil {
		return err
	}
	return s.mutate(ctx, sess, func(entries []*entry.Entry) ([]*entry.Entry, bool, error) {
		if index < 0 || index >= len(entries) {
			return entries, false, nil
		}
		return entries, !patch.Empty(), entries[index].Apply(patch)
	})
}

// DeleteWithinDate removes the entry at position among the entries dated
// day. The collection is written back as the other days' entries followed
// by the remaining entries of day, so deleting moves that day's entries to
// the end of the collection. An out of range position is a no-op.
func (s *Store) DeleteWithinDate(ctx context.Context, sess auth.Session, day entry.Day, position int) error {
	return s.mutate(ctx, sess, func(entries []*entry.Entry) ([]*entry.Entry, bool, error) {
		others := make([]*entry.Entry, 0, len(entries))
		dated := make([]*entry.Entry, 0)
		for _, e := range entries {
			if e.Date == day {
				dated = append(dated, e)
			} else {
				others = append(others, e)
			}
		}
		if position < 0 || position >= len(dated) {
			return entries, false, nil
		}
		log.Debug("deleting entry", "date", day, "position", position, "id", dated[position].ID)
		remaining := append(dated[:position:position], dated[position+1:]...)
		return append(others, remaining...), true, nil
	})
}

// DeleteByID removes the entry with the given id, keeping the order of the
// rest. An unknown id is a no-op.
func (s *Store) DeleteByID(ctx context.Context, sess auth.Session, id string) error {
	return s.mutate(ctx, sess, func(entries []*entry.Entry) ([]*entry.Entry, bool, error) {
		for i, e := range entries {
			if e.ID == id {
				return append(entries[:i:i], entries[i+1:]...), true, nil
			}
		}
		return entries, false, nil
	})
}

// ToggleCompletion flips the completed flag of the task with the given id.
// Unknown ids and non-task entries are left alone.
func (s *Store) ToggleCompletion(ctx context.Context, sess auth.Session, id string) error {
	return s.mutate(ctx, sess, func(entries []*entry.Entry) ([]*entry.Entry, bool, error) {
		for _, e := range entries {
			if e.ID == id {
				return entries, e.Toggle(), nil
			}
		}
		return entries, false, nil
	})
}

// Purge removes the user's whole collection.
func (s *Store) Purge(ctx context.Context, sess auth.Session) error {
	uid, err := sess.Require()
	if err != nil {
		return err
	}
	return s.Backend.Delete(ctx, CollectionKey(uid))
}

// Find returns the entry with the given id from entries.
func Find(entries []*entry.Entry, id string) (*entry.Entry, bool) {
	for _, e := range entries {
		if e.ID == id {
			return e, true
		}
	}
	return nil, false
}

// Resolve maps a position among the entries of day to that entry's id, so
// callers can mutate by id instead of by position.
func Resolve(entries []*entry.Entry, day entry.Day, position int) (string, bool) {
	if position < 0 {
		return "", false
	}
	n := 0
	for _, e := range entries {
		if e.Date != day {
			continue
		}
		if n == position {
			return e.ID, true
		}
		n++
	}
	return "", false
}
