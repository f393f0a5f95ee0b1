package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sync"

	"github.com/heartmarshall/premier-dashboard/internal/domain"
)

var fileKeyRe = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

// File stores every key as <dir>/<key>.json. Writes go to a temporary file
// that is renamed over the target, so a crash never leaves a torn value.
type File struct {
	dir string
	mu  sync.Mutex
}

// NewFile creates dir if needed and returns a store rooted there.
func NewFile(dir string) (*File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return &File{dir: dir}, nil
}

func (f *File) path(key string) (string, error) {
	if !fileKeyRe.MatchString(key) {
		return "", domain.NewValidationError("key", fmt.Sprintf("invalid storage key %q", key))
	}
	return filepath.Join(f.dir, key+".json"), nil
}

func (f *File) Get(_ context.Context, key string) ([]byte, error) {
	p, err := f.path(key)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("key %q: %w", key, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", p, err)
	}
	return data, nil
}

func (f *File) Put(_ context.Context, key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.write(key, value)
}

// PutMany writes entries one by one. Each file is replaced atomically but
// the batch as a whole is not.
func (f *File) PutMany(_ context.Context, entries map[string][]byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for k, v := range entries {
		if err := f.write(k, v); err != nil {
			return err
		}
	}
	return nil
}

func (f *File) write(key string, value []byte) error {
	p, err := f.path(key)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(f.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), p); err != nil {
		return fmt.Errorf("replace %s: %w", p, err)
	}
	return nil
}

// Ping checks that the directory is still there.
func (f *File) Ping(context.Context) error {
	st, err := os.Stat(f.dir)
	if err != nil {
		return fmt.Errorf("storage dir: %w", err)
	}
	if !st.IsDir() {
		return fmt.Errorf("storage dir %s is not a directory", f.dir)
	}
	return nil
}

func (f *File) Close() error { return nil }
