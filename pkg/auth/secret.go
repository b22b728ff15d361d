package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

const secretBytes = 32

// LoadOrCreateSecret returns the signing secret kept at path, generating
// a random one readable only by the owner the first time.
func LoadOrCreateSecret(path string) (string, error) {
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		secret := strings.TrimSpace(string(data))
		if secret == "" {
			return "", fmt.Errorf("auth: empty secret in %s", path)
		}
		return secret, nil
	case !errors.Is(err, fs.ErrNotExist):
		return "", fmt.Errorf("auth: read secret: %w", err)
	}

	buf := make([]byte, secretBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("auth: generate secret: %w", err)
	}
	secret := hex.EncodeToString(buf)
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("auth: ensure secret dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			// Lost a race with another invocation, use its secret.
			return LoadOrCreateSecret(path)
		}
		return "", fmt.Errorf("auth: write secret: %w", err)
	}
	if _, err := f.WriteString(secret + "\n"); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("auth: write secret: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("auth: write secret: %w", err)
	}
	log.Debug("generated session secret", "path", path)
	return secret, nil
}
