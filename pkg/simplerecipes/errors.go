package simplerecipes

import (
	"errors"
	"fmt"
)

// Error types
var (
	// ErrFetch indicates the CMS could not be reached or rejected the request
	ErrFetch = errors.New("fetch failed")

	// ErrNotFound indicates the CMS has no entry for the requested identifier
	ErrNotFound = errors.New("entry not found")

	// ErrContentClientRequired indicates a service was built without a content client
	ErrContentClientRequired = errors.New("content client is required")

	// ErrInvalidSortOrder indicates a sort order other than newest or oldest
	ErrInvalidSortOrder = errors.New("invalid sort order")

	// ErrInvalidCatalog indicates the recipe catalog could not be decoded
	ErrInvalidCatalog = errors.New("invalid recipe catalog")

	// ErrSuperseded indicates a fetch result was dropped because a newer fetch began
	ErrSuperseded = errors.New("fetch superseded by a newer request")
)

// FetchError represents a failed CMS operation
type FetchError struct {
	Op          string
	ContentType string
	EntryID     string
	Err         error
}

func (e *FetchError) Error() string {
	if e.EntryID != "" {
		return fmt.Sprintf("cms operation %s failed for entry %s: %v", e.Op, e.EntryID, e.Err)
	}
	return fmt.Sprintf("cms operation %s failed for content type %s: %v", e.Op, e.ContentType, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err means the requested entry does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
