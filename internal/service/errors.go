package service

import "errors"

var (
	ErrNoAccount = errors.New("no registered account")
	ErrMismatch  = errors.New("email or password do not match")
	ErrNoProfile = errors.New("no active profile")

	ErrUnknownOrigin = errors.New("unknown favorite origin")

	ErrInvalidDataProvided     = errors.New("invalid data provided")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrSessionEnded            = errors.New("session ended")
)
