package validators

import (
	"errors"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrNameTooShort        = errors.New("name must be at least 3 characters")
	ErrInvalidEmail        = errors.New("invalid email format")
	ErrPasswordTooShort    = errors.New("password must be at least 8 characters")
	ErrTitleTooShort       = errors.New("title must be at least 5 characters")
	ErrDescriptionTooShort = errors.New("description must be at least 10 characters")
	ErrPhotoRequired       = errors.New("photo is required")
	ErrPhotoNotImage       = errors.New("photo must be an image")
	ErrPhotoTooLarge       = errors.New("photo is too large")
	ErrLocationRequired    = errors.New("location is required")
	ErrInvalidLatitude     = errors.New("latitude must be between -90 and 90")
	ErrInvalidLongitude    = errors.New("longitude must be between -180 and 180")
)

// FieldError binds a validation failure to the form field that caused it.
type FieldError struct {
	Field string
	Err   error
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e FieldError) Unwrap() error {
	return e.Err
}

// ValidationError lists every field that failed validation, in the order the
// fields were checked. errors.Is matches any of the underlying sentinels.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Error())
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() []error {
	errs := make([]error, 0, len(e.Fields))
	for _, f := range e.Fields {
		errs = append(errs, f.Err)
	}
	return errs
}

// Field returns the error recorded for field, or nil.
func (e *ValidationError) Field(field string) error {
	for _, f := range e.Fields {
		if f.Field == field {
			return f.Err
		}
	}
	return nil
}

func (e *ValidationError) add(field string, err error) {
	e.Fields = append(e.Fields, FieldError{Field: field, Err: err})
}

// orNil keeps the Validate signature returning a plain nil error when no
// field failed.
func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}
