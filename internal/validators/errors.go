package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrValidation matches every rejected input. The field error is wrapped
	// alongside it.
	ErrValidation = errors.New("validation failed")

	ErrNameTooShort         = errors.New("name must have at least 3 characters")
	ErrEmptyName            = errors.New("name is required")
	ErrInvalidEmail         = errors.New("invalid email")
	ErrEmptyEmail           = errors.New("email is required")
	ErrPhoneTooShort        = errors.New("phone must have at least 10 digits")
	ErrPasswordTooShort     = errors.New("password must have at least 6 characters")
	ErrPasswordMismatch     = errors.New("passwords do not match")
	ErrEmptyTitle           = errors.New("title is required")
	ErrEmptyIngredients     = errors.New("ingredients are required")
	ErrEmptyPreparation     = errors.New("preparation is required")
	ErrEmptyPreparationTime = errors.New("preparation time is required")
)
