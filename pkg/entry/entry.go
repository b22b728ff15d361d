// Package entry defines the journal entry record and its derived fields.
package entry

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// MaxTitleLength is the longest title, in characters, an entry may carry.
const MaxTitleLength = 30

// ErrValidation is returned when an entry fails field validation.
var ErrValidation = errors.New("entry: validation failed")

// Type distinguishes plain journal entries from checkbox tasks.
type Type string

const (
	// TypeEntry is a free-form journal note.
	TypeEntry Type = "entry"
	// TypeTask is an entry with a completion checkbox.
	TypeTask Type = "task"
)

// ParseType resolves a type name. An empty value means TypeEntry.
func ParseType(raw string) (Type, error) {
	switch Type(strings.ToLower(strings.TrimSpace(raw))) {
	case "", TypeEntry, "note":
		return TypeEntry, nil
	case TypeTask, "todo":
		return TypeTask, nil
	}
	return "", fmt.Errorf("%w: unknown type %q", ErrValidation, raw)
}

// Entry is one journal note or task as persisted in a user's collection.
type Entry struct {
	ID        string    `json:"id"`
	Type      Type      `json:"type"`
	Title     string    `json:"title"`
	Text      string    `json:"text"`
	Hashtags  []string  `json:"hashtags"`
	Date      Day       `json:"date"`
	ImageURI  string    `json:"imageUri"`
	UserID    string    `json:"userId"`
	CreatedAt Timestamp `json:"createdAt"`
	Completed bool      `json:"completed"`
}

// New builds a validated entry for the given user and day. Title and text
// are trimmed, hashtags are extracted from the text.
func New(userID string, date Day, title, text string, typ Type, imageURI string) (*Entry, error) {
	title, err := ValidateTitle(title)
	if err != nil {
		return nil, err
	}
	if typ == "" {
		typ = TypeEntry
	}
	if typ != TypeEntry && typ != TypeTask {
		return nil, fmt.Errorf("%w: unknown type %q", ErrValidation, typ)
	}
	if date.IsZero() {
		return nil, fmt.Errorf("%w: date required", ErrValidation)
	}
	text = strings.TrimSpace(text)
	return &Entry{
		ID:        uuid.New().String(),
		Type:      typ,
		Title:     title,
		Text:      text,
		Hashtags:  ExtractHashtags(text),
		Date:      date,
		ImageURI:  strings.TrimSpace(imageURI),
		UserID:    userID,
		CreatedAt: Timestamp{Time: time.Now().UTC()},
		Completed: false,
	}, nil
}

// ValidateTitle trims the title and checks its length.
func ValidateTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", fmt.Errorf("%w: title required", ErrValidation)
	}
	if n := utf8.RuneCountInString(title); n > MaxTitleLength {
		return "", fmt.Errorf("%w: title is %d characters, max %d", ErrValidation, n, MaxTitleLength)
	}
	return title, nil
}

// IsTask reports whether the entry participates in completion tracking.
func (e *Entry) IsTask() bool {
	return e.Type == TypeTask
}

// HasHashtag reports whether tag is one of the entry's hashtags. The match
// is exact and includes the leading '#'.
func (e *Entry) HasHashtag(tag string) bool {
	for _, h := range e.Hashtags {
		if h == tag {
			return true
		}
	}
	return false
}

// Toggle flips the completion flag of a task. It reports whether anything
// changed; plain entries are left alone.
func (e *Entry) Toggle() bool {
	if !e.IsTask() {
		return false
	}
	e.Completed = !e.Completed
	return true
}

// Clone returns a deep copy.
func (e *Entry) Clone() *Entry {
	if e == nil {
		return nil
	}
	cp := *e
	if e.Hashtags != nil {
		cp.Hashtags = append([]string(nil), e.Hashtags...)
	}
	return &cp
}

func (e *Entry) String() string {
	return fmt.Sprintf("%s %s %s", e.Date, e.Type, e.Title)
}
