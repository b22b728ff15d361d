package store

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/peterbourgon/diskv/v3"
)

const tempDir = ".tmp"

// Diskv stores each key as a file under BasePath: "tasks_<uid>" lands in
// "<base>/tasks/<uid>".
type Diskv struct {
	d        *diskv.Diskv
	basePath string
}

// NewDiskv opens (and creates if needed) a diskv store rooted at basePath.
func NewDiskv(basePath string) (*Diskv, error) {
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, backendErr("ensure base path", basePath, err)
	}
	return &Diskv{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		TempDir:           filepath.Join(basePath, tempDir),
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		// No read cache: the CLI and a running MCP server write the same files.
		CacheSizeMax:      0,
	}), basePath: basePath}, nil
}

// BasePath is the directory the store writes under.
func (s *Diskv) BasePath() string {
	return s.basePath
}

func (s *Diskv) Get(_ context.Context, key string) ([]byte, bool, error) {
	val, err := s.d.Read(key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, backendErr("read", key, err)
	}
	log.Debug("diskv read", "key", key, "bytes", len(val))
	return val, true, nil
}

func (s *Diskv) Set(_ context.Context, key string, value []byte) error {
	if err := s.d.Write(key, value); err != nil {
		return backendErr("write", key, err)
	}
	log.Debug("diskv write", "key", key, "bytes", len(value))
	return nil
}

func (s *Diskv) Delete(_ context.Context, key string) error {
	if !s.d.Has(key) {
		return nil
	}
	if err := s.d.Erase(key); err != nil {
		return backendErr("erase", key, err)
	}
	log.Debug("diskv erase", "key", key)
	return nil
}

func keyToPathTransform(key string) *diskv.PathKey {
	prefix, id, ok := SplitKey(key)
	if !ok {
		return &diskv.PathKey{Path: []string{}, FileName: key}
	}
	return &diskv.PathKey{
		Path:     []string{prefix},
		FileName: id,
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	if len(pathKey.Path) == 0 {
		return pathKey.FileName
	}
	return Key(pathKey.Path[0], pathKey.FileName)
}
