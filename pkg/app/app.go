package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"tableflip.dev/plannow/pkg/auth"
	"tableflip.dev/plannow/pkg/entry"
	"tableflip.dev/plannow/pkg/index"
	"tableflip.dev/plannow/pkg/journal"
	"tableflip.dev/plannow/pkg/profile"
	"tableflip.dev/plannow/pkg/store"
)

var (
	ErrNotFound = errors.New("app: entry not found")
	ErrNotTask  = errors.New("app: entry is not a task")
)

// Service provides high-level operations on a signed-in user's journal.
// It resolves the session once per call and hands it to the stores, so the
// CLI and the MCP server share the same logic.
type Service struct {
	Journal  *journal.Store
	Profiles *profile.Store
	Accounts *auth.Accounts
	Auth     auth.Provider
}

// New wires a Service over a single backend.
func New(b store.Backend, p auth.Provider) *Service {
	return &Service{
		Journal:  journal.New(b),
		Profiles: profile.New(b),
		Accounts: &auth.Accounts{Backend: b},
		Auth:     p,
	}
}

// Session returns the current session or auth.ErrNotAuthenticated.
func (s *Service) Session(ctx context.Context) (auth.Session, error) {
	if s.Auth == nil {
		return auth.Session{}, auth.ErrNotAuthenticated
	}
	sess, err := s.Auth.CurrentSession(ctx)
	if err != nil {
		return auth.Session{}, err
	}
	if _, err := sess.Require(); err != nil {
		return auth.Session{}, err
	}
	return sess, nil
}

func (s *Service) load(ctx context.Context) (auth.Session, []*entry.Entry, error) {
	if s.Journal == nil {
		return auth.Session{}, nil, errors.New("app: no journal configured")
	}
	sess, err := s.Session(ctx)
	if err != nil {
		return auth.Session{}, nil, err
	}
	entries, err := s.Journal.Load(ctx, sess)
	return sess, entries, err
}

// AddRequest describes a new entry.
type AddRequest struct {
	Date     entry.Day
	Title    string
	Text     string
	Type     entry.Type
	ImageURI string
}

// Add creates and stores a new entry for the current user.
func (s *Service) Add(ctx context.Context, req AddRequest) (*entry.Entry, error) {
	sess, err := s.Session(ctx)
	if err != nil {
		return nil, err
	}
	if req.Date.IsZero() {
		req.Date = entry.Today()
	}
	e, err := entry.New(sess.UserID, req.Date, req.Title, req.Text, req.Type, req.ImageURI)
	if err != nil {
		return nil, err
	}
	if err := s.Journal.Append(ctx, sess, e); err != nil {
		return nil, err
	}
	log.Debug("entry added", "id", e.ID, "date", e.Date, "type", e.Type)
	return e, nil
}

// All lists every entry in stored order.
func (s *Service) All(ctx context.Context) ([]*entry.Entry, error) {
	_, entries, err := s.load(ctx)
	return entries, err
}

// Day lists the entries of day in stored order.
func (s *Service) Day(ctx context.Context, day entry.Day) ([]*entry.Entry, error) {
	_, entries, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return index.ByDate(entries, day), nil
}

// Entry returns the entry with the given id.
func (s *Service) Entry(ctx context.Context, id string) (*entry.Entry, error) {
	_, entries, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	e, ok := journal.Find(entries, id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return e, nil
}

// Edit applies patch to the entry with the given id and returns the result.
func (s *Service) Edit(ctx context.Context, id string, patch entry.Patch) (*entry.Entry, error) {
	sess, err := s.Session(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.Journal.UpdateByID(ctx, sess, id, patch); err != nil {
		return nil, err
	}
	return s.Entry(ctx, id)
}

// EditAt applies patch to the entry at index of the full collection. A miss
// is reported as ErrNotFound.
func (s *Service) EditAt(ctx context.Context, idx int, patch entry.Patch) (*entry.Entry, error) {
	sess, entries, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if idx < 0 || idx >= len(entries) {
		return nil, fmt.Errorf("%w: index %d", ErrNotFound, idx)
	}
	id := entries[idx].ID
	if err := s.Journal.UpdateAt(ctx, sess, idx, patch); err != nil {
		return nil, err
	}
	return s.Entry(ctx, id)
}

// Toggle flips the completion of the task with the given id. Toggling a
// note changes nothing and reports ErrNotTask.
func (s *Service) Toggle(ctx context.Context, id string) (*entry.Entry, error) {
	sess, entries, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	e, ok := journal.Find(entries, id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if !e.IsTask() {
		return e, fmt.Errorf("%w: %s", ErrNotTask, id)
	}
	if err := s.Journal.ToggleCompletion(ctx, sess, id); err != nil {
		return nil, err
	}
	return s.Entry(ctx, id)
}

// Delete removes the entry at position within day and returns it. Other
// entries of that day move to the end of the collection.
func (s *Service) Delete(ctx context.Context, day entry.Day, position int) (*entry.Entry, error) {
	sess, entries, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	id, ok := journal.Resolve(entries, day, position)
	if !ok {
		return nil, fmt.Errorf("%w: %s #%d", ErrNotFound, day, position)
	}
	removed, _ := journal.Find(entries, id)
	if err := s.Journal.DeleteWithinDate(ctx, sess, day, position); err != nil {
		return nil, err
	}
	log.Debug("entry deleted", "id", id, "date", day, "position", position)
	return removed, nil
}

// DeleteByID removes the entry with the given id.
func (s *Service) DeleteByID(ctx context.Context, id string) (*entry.Entry, error) {
	sess, entries, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	e, ok := journal.Find(entries, id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err := s.Journal.DeleteByID(ctx, sess, id); err != nil {
		return nil, err
	}
	return e, nil
}

// Tag lists entries carrying tag. A tag given without '#' gets one.
func (s *Service) Tag(ctx context.Context, tag string) ([]*entry.Entry, error) {
	_, entries, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return index.ByHashtag(entries, NormalizeTag(tag)), nil
}

func (s *Service) TagCounts(ctx context.Context) (index.Counts, error) {
	_, entries, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return index.HashtagCounts(entries), nil
}

// DayTags lists the hashtags used on day.
func (s *Service) DayTags(ctx context.Context, day entry.Day) ([]string, error) {
	entries, err := s.Day(ctx, day)
	if err != nil {
		return nil, err
	}
	return index.Tags(entries), nil
}

// Dates lists the days that have entries, oldest first.
func (s *Service) Dates(ctx context.Context) ([]entry.Day, error) {
	_, entries, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return index.Dates(entries), nil
}

// Open lists tasks that are not completed.
func (s *Service) Open(ctx context.Context) ([]*entry.Entry, error) {
	_, entries, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return index.Open(entries), nil
}

// Profile returns the current user's profile values.
func (s *Service) Profile(ctx context.Context) (*profile.Profile, error) {
	sess, err := s.Session(ctx)
	if err != nil {
		return nil, err
	}
	return s.Profiles.Get(ctx, sess)
}

func (s *Service) SetUsername(ctx context.Context, name string) error {
	sess, err := s.Session(ctx)
	if err != nil {
		return err
	}
	return s.Profiles.SetUsername(ctx, sess, name)
}

func (s *Service) SetPicture(ctx context.Context, uri string) error {
	sess, err := s.Session(ctx)
	if err != nil {
		return err
	}
	return s.Profiles.SetPicture(ctx, sess, uri)
}

// DeleteAccount verifies password, removes every value stored for the user
// and then the account itself. Nothing is removed when the session belongs
// to an earlier account with the same email.
func (s *Service) DeleteAccount(ctx context.Context, password string) error {
	sess, err := s.Session(ctx)
	if err != nil {
		return err
	}
	if s.Accounts == nil {
		return errors.New("app: no account store configured")
	}
	if err := s.Accounts.Verify(ctx, sess, password); err != nil {
		return err
	}
	if err := s.Journal.Purge(ctx, sess); err != nil {
		return err
	}
	if err := s.Profiles.Purge(ctx, sess); err != nil {
		return err
	}
	if err := s.Accounts.Delete(ctx, sess); err != nil {
		return err
	}
	log.Debug("account data purged", "uid", sess.UserID)
	return nil
}

// Watch subscribes to backend change events, when the backend supports it.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Journal == nil {
		return nil, errors.New("app: no journal configured")
	}
	w, ok := s.Journal.Backend.(store.Watcher)
	if !ok {
		return nil, errors.New("app: backend does not support watching")
	}
	return w.Watch(ctx)
}

// NormalizeTag adds the leading '#' when missing.
func NormalizeTag(tag string) string {
	tag = strings.TrimSpace(tag)
	if tag == "" || strings.HasPrefix(tag, "#") {
		return tag
	}
	return "#" + tag
}
