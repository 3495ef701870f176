package validators

import (
	"context"
	"math"
	"net/http"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-story-keeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldName        = "name"
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldPhoto       = "photo"
	FieldLocation    = "location"
)

const (
	minNameLength        = 3
	minPasswordLength    = 8
	minTitleLength       = 5
	minDescriptionLength = 10

	// DefaultMaxPhotoSize is used when a non-positive limit is configured.
	DefaultMaxPhotoSize = 5 << 20
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// FormValidator implements Validator for the authentication and story
// submission forms: RegisterRequest, LoginRequest and NewStory, in both
// value and pointer form.
type FormValidator struct {
	maxPhotoSize int64
}

// NewFormValidator returns a validator rejecting photos above maxPhotoSize bytes.
func NewFormValidator(maxPhotoSize int64) Validator {
	if maxPhotoSize <= 0 {
		maxPhotoSize = DefaultMaxPhotoSize
	}
	return &FormValidator{maxPhotoSize: maxPhotoSize}
}

// Validate dispatches on the dynamic type of obj. All requested fields are
// checked and every failure is collected into a *ValidationError.
// Returns ErrUnsupportedType for any other type and ErrUnknownField when
// a requested field does not belong to the form.
func (v *FormValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegister(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegister(*value, fields...)

	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)

	case models.NewStory:
		return v.validateNewStory(value, fields...)
	case *models.NewStory:
		return v.validateNewStory(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *FormValidator) validateRegister(request models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldPassword}
	}

	verr := &ValidationError{}
	for _, f := range fields {
		switch f {
		case FieldName:
			if runeLen(strings.TrimSpace(request.Name)) < minNameLength {
				verr.add(f, ErrNameTooShort)
			}
		case FieldEmail:
			if !isEmail(request.Email) {
				verr.add(f, ErrInvalidEmail)
			}
		case FieldPassword:
			if runeLen(request.Password) < minPasswordLength {
				verr.add(f, ErrPasswordTooShort)
			}
		default:
			return ErrUnknownField
		}
	}

	return verr.orNil()
}

func (v *FormValidator) validateLogin(request models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	verr := &ValidationError{}
	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !isEmail(request.Email) {
				verr.add(f, ErrInvalidEmail)
			}
		case FieldPassword:
			if runeLen(request.Password) < minPasswordLength {
				verr.add(f, ErrPasswordTooShort)
			}
		default:
			return ErrUnknownField
		}
	}

	return verr.orNil()
}

func (v *FormValidator) validateNewStory(story models.NewStory, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldDescription, FieldPhoto, FieldLocation}
	}

	verr := &ValidationError{}
	for _, f := range fields {
		switch f {
		case FieldTitle:
			if runeLen(strings.TrimSpace(story.Title)) < minTitleLength {
				verr.add(f, ErrTitleTooShort)
			}
		case FieldDescription:
			if runeLen(strings.TrimSpace(story.Body)) < minDescriptionLength {
				verr.add(f, ErrDescriptionTooShort)
			}
		case FieldPhoto:
			if err := v.checkPhoto(story); err != nil {
				verr.add(f, err)
			}
		case FieldLocation:
			if err := checkLocation(story.Lat, story.Lon); err != nil {
				verr.add(f, err)
			}
		default:
			return ErrUnknownField
		}
	}

	return verr.orNil()
}

func (v *FormValidator) checkPhoto(story models.NewStory) error {
	if len(story.Photo) == 0 {
		return ErrPhotoRequired
	}

	contentType := story.PhotoContentType
	if contentType == "" {
		contentType = http.DetectContentType(story.Photo)
	}
	if !strings.HasPrefix(strings.ToLower(contentType), "image/") {
		return ErrPhotoNotImage
	}

	if int64(len(story.Photo)) > v.maxPhotoSize {
		return ErrPhotoTooLarge
	}
	return nil
}

func checkLocation(lat, lon *float64) error {
	if lat == nil || lon == nil {
		return ErrLocationRequired
	}
	if math.IsNaN(*lat) || *lat < -90 || *lat > 90 {
		return ErrInvalidLatitude
	}
	if math.IsNaN(*lon) || *lon < -180 || *lon > 180 {
		return ErrInvalidLongitude
	}
	return nil
}

func isEmail(s string) bool {
	return emailPattern.MatchString(strings.TrimSpace(s))
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
