package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LocalUploader writes objects under a directory that is served statically.
type LocalUploader struct {
	Dir        string
	PublicBase string
}

func NewLocalUploader(dir, publicBase string) (*LocalUploader, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return &LocalUploader{Dir: dir, PublicBase: publicBase}, nil
}

func (u *LocalUploader) path(key string) (string, error) {
	clean := filepath.Clean("/" + key)
	if strings.Contains(clean, "..") {
		return "", fmt.Errorf("invalid key %q", key)
	}
	return filepath.Join(u.Dir, filepath.FromSlash(clean)), nil
}

func (u *LocalUploader) Upload(_ context.Context, key string, data []byte, _ string) (string, error) {
	p, err := u.path(key)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(p, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", key, err)
	}
	return publicURL(u.PublicBase, key), nil
}

func (u *LocalUploader) Delete(_ context.Context, key string) error {
	p, err := u.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
