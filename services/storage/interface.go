package storage

import (
	"context"
	"time"
)

// StorageService persists inspection report files. The rest of the system
// only carries the opaque public ID it returns.
type StorageService interface {
	UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error)
	DeleteFile(ctx context.Context, publicID string) error
	GetDownloadURL(ctx context.Context, publicID string, expires time.Duration) (string, error)
}
