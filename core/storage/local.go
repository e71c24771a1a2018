package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// tempFilePrefix marks in-flight atomic writes. It starts with a dot, so
// ValidateName rejects it and List never reports a temp file.
const tempFilePrefix = ".doccms-tmp-"

// Local stores documents as regular files directly under a root directory.
type Local struct {
	root     string
	filePerm os.FileMode
	dirPerm  os.FileMode
}

// LocalOption configures a Local store.
type LocalOption func(*Local)

// WithFilePermissions sets the mode of created files. Default 0o644.
func WithFilePermissions(perm os.FileMode) LocalOption {
	return func(l *Local) {
		l.filePerm = perm
	}
}

// WithDirPermissions sets the mode used when the root is created. Default 0o755.
func WithDirPermissions(perm os.FileMode) LocalOption {
	return func(l *Local) {
		l.dirPerm = perm
	}
}

// NewLocal returns a store rooted at root, creating the directory if needed.
func NewLocal(root string, opts ...LocalOption) (*Local, error) {
	if root == "" {
		return nil, fmt.Errorf("%w: empty root directory", ErrStorage)
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, Fail("resolve root", "", err)
	}

	l := &Local{
		root:     abs,
		filePerm: 0o644,
		dirPerm:  0o755,
	}
	for _, opt := range opts {
		opt(l)
	}

	if err := os.MkdirAll(l.root, l.dirPerm); err != nil {
		return nil, Fail("create root", "", err)
	}
	return l, nil
}

// Root returns the absolute root directory.
func (l *Local) Root() string {
	return l.root
}

func (l *Local) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(l.root)
	if err != nil {
		return nil, Fail("list", "", err)
	}

	// ReadDir returns entries sorted by filename.
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() || ValidateName(entry.Name()) != nil {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}

func (l *Local) Exists(ctx context.Context, name string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	p, err := l.path(name)
	if err != nil {
		return false, err
	}

	info, err := os.Lstat(p)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	case err != nil:
		return false, Fail("stat", name, err)
	}
	return info.Mode().IsRegular(), nil
}

func (l *Local) Read(ctx context.Context, name string) ([]byte, error) {
	ok, err := l.Exists(ctx, name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	content, err := os.ReadFile(filepath.Join(l.root, name))
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	case err != nil:
		return nil, Fail("read", name, err)
	}
	return content, nil
}

func (l *Local) Write(ctx context.Context, name string, content []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p, err := l.path(name)
	if err != nil {
		return err
	}
	if err := writeFileAtomic(p, content, l.filePerm); err != nil {
		return Fail("write", name, err)
	}
	return nil
}

func (l *Local) Create(ctx context.Context, name string, content []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p, err := l.path(name)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(p, os.O_WRONLY|os.O_CREATE|os.O_EXCL, l.filePerm)
	switch {
	case errors.Is(err, fs.ErrExist):
		return fmt.Errorf("%w: %s", ErrAlreadyExists, name)
	case err != nil:
		return Fail("create", name, err)
	}

	if _, err := f.Write(content); err != nil {
		f.Close()
		os.Remove(p)
		return Fail("create", name, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(p)
		return Fail("create", name, err)
	}
	return nil
}

func (l *Local) Delete(ctx context.Context, name string) error {
	ok, err := l.Exists(ctx, name)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	err = os.Remove(filepath.Join(l.root, name))
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	case err != nil:
		return Fail("delete", name, err)
	}
	return nil
}

func (l *Local) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	info, err := os.Stat(l.root)
	if err != nil {
		return Fail("ping", "", err)
	}
	if !info.IsDir() {
		return Fail("ping", "", fmt.Errorf("%s is not a directory", l.root))
	}
	return nil
}

// path validates name and joins it to the root.
func (l *Local) path(name string) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}
	return filepath.Join(l.root, name), nil
}

// writeFileAtomic writes data to a temp file in the target directory and
// renames it over filename, so readers see either the old or the new content.
func writeFileAtomic(filename string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(filename), tempFilePrefix+"*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), perm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), filename); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
