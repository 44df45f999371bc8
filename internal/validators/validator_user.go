package validators

import (
	"context"
	"net/mail"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/go-recipe-keeper/models"
)

const (
	minNameLength     = 3
	minPhoneDigits    = 10
	minPasswordLength = 6
)

// UserValidator validates registration forms, login requests and profiles.
type UserValidator struct{}

func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SignUp:
		return v.validateSignUp(ctx, value, fields...)
	case *models.SignUp:
		return v.validateSignUp(ctx, *value, fields...)

	case models.Profile:
		return v.validateProfile(ctx, value, fields...)
	case *models.Profile:
		return v.validateProfile(ctx, *value, fields...)

	case models.LoginRequest:
		return v.validateLogin(ctx, value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateSignUp(_ context.Context, form models.SignUp, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldPhone, FieldPassword, FieldPasswordConfirmation}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(form.Name) == "" {
				return invalid(f, ErrEmptyName)
			}
			if utf8.RuneCountInString(strings.TrimSpace(form.Name)) < minNameLength {
				return invalid(f, ErrNameTooShort)
			}
		case FieldEmail:
			if err := checkEmail(form.Email); err != nil {
				return invalid(f, err)
			}
		case FieldPhone:
			if countDigits(form.Phone) < minPhoneDigits {
				return invalid(f, ErrPhoneTooShort)
			}
		case FieldPassword:
			if utf8.RuneCountInString(form.Password) < minPasswordLength {
				return invalid(f, ErrPasswordTooShort)
			}
		case FieldPasswordConfirmation:
			if form.PasswordConfirmation != form.Password {
				return invalid(f, ErrPasswordMismatch)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateProfile checks an edited profile. Phone and photo stay optional.
func (v *UserValidator) validateProfile(_ context.Context, profile models.Profile, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(profile.Name) == "" {
				return invalid(f, ErrEmptyName)
			}
		case FieldEmail:
			if strings.TrimSpace(profile.Email) == "" {
				return invalid(f, ErrEmptyEmail)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *UserValidator) validateLogin(_ context.Context, req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if strings.TrimSpace(req.Email) == "" {
				return invalid(f, ErrEmptyEmail)
			}
		case FieldPassword:
			if req.Password == "" {
				return invalid(f, ErrPasswordTooShort)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// checkEmail accepts a bare addr-spec such as "ana@example.com". Display
// names ("Ana <ana@example.com>") and addresses without a dotted domain are
// rejected.
func checkEmail(raw string) error {
	email := strings.TrimSpace(raw)
	if email == "" {
		return ErrEmptyEmail
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || addr.Name != "" {
		return ErrInvalidEmail
	}

	at := strings.LastIndexByte(email, '@')
	domain := email[at+1:]
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return ErrInvalidEmail
	}

	return nil
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}
