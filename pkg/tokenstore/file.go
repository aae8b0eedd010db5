package tokenstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Ensure File implements Store.
var _ Store = (*File)(nil)

// File persists the credential as a single file on disk, created with
// 0600 permissions and replaced atomically via rename. The default
// location is <user config dir>/<app>/auth_token.
type File struct {
	mu   sync.Mutex
	path string
}

// NewFile creates a file-backed store at the given path. The parent
// directory is created on first Set.
func NewFile(path string) (*File, error) {
	if path == "" {
		return nil, fmt.Errorf("tokenstore: empty file path")
	}
	return &File{path: path}, nil
}

// NewFileInConfigDir creates a file-backed store under the user's config
// directory, scoped by application name: <config dir>/<app>/auth_token.
func NewFileInConfigDir(app string) (*File, error) {
	if app == "" {
		return nil, fmt.Errorf("tokenstore: empty application name")
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("tokenstore: resolve config dir: %w", err)
	}
	return NewFile(filepath.Join(dir, app, "auth_token"))
}

// Path returns the location of the underlying token file.
func (f *File) Path() string {
	return f.path
}

func (f *File) Get(ctx context.Context) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("tokenstore: read token file: %w", err)
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", ErrNotFound
	}
	return token, nil
}

func (f *File) Set(ctx context.Context, token string) error {
	if token == "" {
		return ErrEmptyToken
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("tokenstore: create token dir: %w", err)
	}

	// Write-then-rename keeps readers from ever observing a partial token.
	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".auth_token-*")
	if err != nil {
		return fmt.Errorf("tokenstore: create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if err := tmp.Chmod(0o600); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("tokenstore: chmod temp file: %w", err)
	}
	if _, err := tmp.WriteString(token); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("tokenstore: write token: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("tokenstore: close temp file: %w", err)
	}

	if err := os.Rename(tmpName, f.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("tokenstore: replace token file: %w", err)
	}
	return nil
}

func (f *File) Clear(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("tokenstore: remove token file: %w", err)
	}
	return nil
}
