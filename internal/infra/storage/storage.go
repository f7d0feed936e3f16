package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabriel-vasile/mimetype"
)

// MaxLogoBytes caps uploaded branding images.
const MaxLogoBytes = 2 << 20

var (
	ErrTooLarge        = errors.New("file too large")
	ErrUnsupportedType = errors.New("unsupported file type")
	ErrNotConfigured   = errors.New("storage not configured")
)

// Logos are served from the API origin, so scriptable formats such as SVG are
// not accepted.
var allowedTypes = map[string]string{
	"image/png":  "png",
	"image/jpeg": "jpg",
	"image/webp": "webp",
}

// Uploader stores an object and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

// Default is the process-wide uploader, set at startup. Nil means uploads are
// disabled.
var Default Uploader

// DetectImage validates size and sniffed type and returns the content type
// with its file extension.
func DetectImage(data []byte) (string, string, error) {
	if len(data) > MaxLogoBytes {
		return "", "", ErrTooLarge
	}
	if len(data) == 0 {
		return "", "", ErrUnsupportedType
	}

	mt := mimetype.Detect(data)
	for ct, ext := range allowedTypes {
		if mt.Is(ct) {
			return ct, ext, nil
		}
	}
	return "", "", fmt.Errorf("%w: %s", ErrUnsupportedType, mt.String())
}

// LogoKey is the object key of a user's branding logo.
func LogoKey(userID uint, ext string) string {
	return fmt.Sprintf("logos/user-%d.%s", userID, ext)
}
