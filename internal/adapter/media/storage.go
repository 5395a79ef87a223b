// Package media stores uploaded files on the local disk.
package media

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// ErrInvalidName rejects names that are not a clean path inside the root.
var ErrInvalidName = errors.New("invalid media name")

// Storage writes files under a root directory. Names are slash-separated and
// relative to the root, e.g. "posts/3f2a.png".
type Storage struct {
	root string
}

// New creates the root directory if needed.
func New(root string) (*Storage, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create media dir: %w", err)
	}
	return &Storage{root: root}, nil
}

// Root returns the directory files are written to.
func (s *Storage) Root() string { return s.root }

// Save writes data under name. Existing files are never overwritten.
func (s *Storage) Save(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	full, err := s.resolve(name)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("create media subdir: %w", err)
	}

	f, err := os.OpenFile(full, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(full)
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(full)
		return fmt.Errorf("close %s: %w", name, err)
	}

	return nil
}

// Delete removes name. A missing file is not an error.
func (s *Storage) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	full, err := s.resolve(name)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove %s: %w", name, err)
	}
	return nil
}

func (s *Storage) resolve(name string) (string, error) {
	clean := path.Clean("/" + name)
	if name == "" || strings.HasSuffix(name, "/") || clean == "/" || clean[1:] != name {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return filepath.Join(s.root, filepath.FromSlash(clean[1:])), nil
}
