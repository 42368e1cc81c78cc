package storage

import (
	"context"
	"io"
)

// Uploader stores an image and returns the public URL serving it.
type Uploader interface {
	UploadImage(ctx context.Context, file io.Reader, publicID string) (string, error)
}
