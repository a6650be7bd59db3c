package storage

import (
	"context"
	"io"
)

// StorageService uploads room photos to the external image host and returns
// public URLs for them.
type StorageService interface {
	UploadPhoto(ctx context.Context, file io.Reader, folder string) (string, error)
}
