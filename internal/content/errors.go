package content

import (
	"errors"
	"fmt"
)

var (
	ErrSlugRequired          = errors.New("content: slug is required")
	ErrSlugInvalid           = errors.New("content: slug contains invalid characters")
	ErrSlugExists            = errors.New("content: slug already exists")
	ErrIDRequired            = errors.New("content: id required")
	ErrNoTranslations        = errors.New("content: at least one translation is required")
	ErrDefaultLocaleRequired = errors.New("content: default locale translation is required")
	ErrDuplicateLocale       = errors.New("content: duplicate locale provided")
	ErrUnknownLocale         = errors.New("content: unknown locale")
	ErrNameRequired          = errors.New("content: name is required")
	ErrValueRequired         = errors.New("content: value is required")
	ErrIconRequired          = errors.New("content: icon is required")
)

// NotFoundError represents missing records from repository lookups.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %q not found", e.Resource, e.Key)
}

// IsNotFound reports whether err represents a missing record.
func IsNotFound(err error) bool {
	var notFound *NotFoundError
	return errors.As(err, &notFound)
}
