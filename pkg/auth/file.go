package auth

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FileSession keeps the signed-in user's token in a file, so consecutive
// CLI invocations share one sign-in.
type FileSession struct {
	Path   string
	Tokens *Tokens
}

// CurrentSession reads and verifies the stored token. A missing file means
// nobody is signed in.
func (f *FileSession) CurrentSession(context.Context) (Session, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Session{}, ErrNotAuthenticated
		}
		return Session{}, fmt.Errorf("auth: read session: %w", err)
	}
	raw := strings.TrimSpace(string(data))
	if raw == "" {
		return Session{}, ErrNotAuthenticated
	}
	return f.Tokens.Parse(raw)
}

// Save stores a freshly issued token for s.
func (f *FileSession) Save(s Session) error {
	token, err := f.Tokens.Issue(s)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(f.Path), 0o700); err != nil {
		return fmt.Errorf("auth: ensure session dir: %w", err)
	}
	tmp := f.Path + ".tmp"
	if err := os.WriteFile(tmp, []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("auth: write session: %w", err)
	}
	return os.Rename(tmp, f.Path)
}

// Clear signs out. Clearing an absent session is not an error.
func (f *FileSession) Clear() error {
	if err := os.Remove(f.Path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("auth: clear session: %w", err)
	}
	return nil
}
