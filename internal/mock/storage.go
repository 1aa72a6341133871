package mock

import (
	"context"
	"io"
	"time"

	"github.com/aiforge/tasks-ms-go/internal/port"
)

// Storage implements object storage for tests.
type Storage struct {
	// presigned URL to return
	DownloadURL string

	// errors
	InitBucketErr error
	SaveFileErr   error
	PresignErr    error

	// call flags and captured args
	InitBucketCalled bool
	SaveFileCalled   bool
	PresignCalled    bool
	SavedBucket      string
	SavedKey         string
	SavedSize        int64
	SavedOpts        map[string]string
}

// compile-time check: *Storage must satisfy port.Storage
var _ port.Storage = (*Storage)(nil)

func (s *Storage) InitBucket(bucket string) error {
	s.InitBucketCalled = true
	return s.InitBucketErr
}

func (s *Storage) SaveFile(ctx context.Context, bucket, fileKey string, reader io.Reader, fileSize int64, opts map[string]string) error {
	s.SaveFileCalled = true
	s.SavedBucket, s.SavedKey, s.SavedSize, s.SavedOpts = bucket, fileKey, fileSize, opts
	if s.SaveFileErr != nil {
		return s.SaveFileErr
	}
	_, _ = io.Copy(io.Discard, reader)
	return nil
}

func (s *Storage) GeneratePresignedDownloadURL(ctx context.Context, bucket, fileKey string, expiry time.Duration) (string, error) {
	s.PresignCalled = true
	if s.PresignErr != nil {
		return "", s.PresignErr
	}
	return s.DownloadURL, nil
}
