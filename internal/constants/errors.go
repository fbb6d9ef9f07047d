package constants

import "errors"

// Configuration errors.
var (
	ErrNoTokenConfigured   = errors.New("no bearer token configured, use 'emsearch login' or --token")
	ErrUnknownConfigKey    = errors.New("unknown configuration key")
	ErrInvalidHeaderFormat = errors.New("invalid header format, expected key=value")
	ErrEmptyToken          = errors.New("token must not be empty")
)

// Output errors.
var (
	ErrUnsupportedOutputFormat = errors.New("unsupported output format")
)
