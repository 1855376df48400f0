package assets

import (
	"errors"
	"fmt"
)

var (
	ErrFileRequired    = errors.New("assets: file is required")
	ErrUnknownCategory = errors.New("assets: unknown asset category")
	ErrInvalidFileType = errors.New("assets: file type not allowed for category")
	ErrFileTooLarge    = errors.New("assets: file exceeds category size limit")
)

// UploadFailedError wraps a storage provider failure during upload.
type UploadFailedError struct {
	Category string
	Key      string
	Err      error
}

func (e *UploadFailedError) Error() string {
	return fmt.Sprintf("assets: upload %s/%s failed: %v", e.Category, e.Key, e.Err)
}

func (e *UploadFailedError) Unwrap() error {
	return e.Err
}

// IsUploadFailed reports whether err represents a provider upload failure.
func IsUploadFailed(err error) bool {
	var failed *UploadFailedError
	return errors.As(err, &failed)
}
