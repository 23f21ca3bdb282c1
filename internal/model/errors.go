package model

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingLinkTarget means a link has no single resolvable content type
	ErrMissingLinkTarget = errors.New("missing link target")
	// ErrInvalidLinkType means a link names neither Asset nor Entry
	ErrInvalidLinkType = errors.New("invalid link type")
	// ErrInvalidFieldType means a field declares an unknown type
	ErrInvalidFieldType = errors.New("invalid field type")
	// ErrNameCollision means two identifiers normalize to the same name
	ErrNameCollision = errors.New("name collision")
)

// FieldError identifies the field and content type a failure belongs to
type FieldError struct {
	ContentTypeID string
	FieldID       string
	// Detail completes the sentence "Field X for content type Y ..."
	Detail string
	Err    error
}

// Error implements the error interface
func (e *FieldError) Error() string {
	return fmt.Sprintf("Field %q for content type %q %s.", e.FieldID, e.ContentTypeID, e.Detail)
}

// Unwrap returns the sentinel error
func (e *FieldError) Unwrap() error {
	return e.Err
}

func missingLinkValidation(contentTypeID, fieldID string) error {
	return &FieldError{
		ContentTypeID: contentTypeID,
		FieldID:       fieldID,
		Detail:        "is missing link validation, must have content type validation",
		Err:           ErrMissingLinkTarget,
	}
}

func unknownLinkTarget(contentTypeID, fieldID, target string) error {
	return &FieldError{
		ContentTypeID: contentTypeID,
		FieldID:       fieldID,
		Detail:        fmt.Sprintf("links to unknown content type %q", target),
		Err:           ErrMissingLinkTarget,
	}
}
