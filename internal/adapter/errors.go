package adapter

import "errors"

// ErrNetwork matches every failure to obtain a usable response from the
// public recipe API.
var ErrNetwork = errors.New("recipe api unreachable")

var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrDecodingResponse    = errors.New("error decoding response")
)
