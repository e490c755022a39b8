package entity

import "errors"

var (
	// ErrShortCodeExists is returned when attempting to create a URL with a short code that already exists.
	ErrShortCodeExists = errors.New("short code exists")
	// ErrLongURLExists is returned when a canonical auto-generated record for the long URL already exists.
	ErrLongURLExists = errors.New("long url exists")
	// ErrURLNotFound is returned when a URL with the specified short code cannot be found.
	ErrURLNotFound = errors.New("url not found")

	// ErrInvalidURL is returned when a long URL cannot be shortened.
	ErrInvalidURL = errors.New("invalid url")
	// ErrURLUnreachable is returned when the liveness probe of a long URL fails.
	ErrURLUnreachable = errors.New("url unreachable")
	// ErrURLMalformed is returned when a long URL cannot be parsed or has an unsupported scheme.
	ErrURLMalformed = errors.New("url malformed")

	// ErrInvalidAliasLength is returned when a custom alias is shorter than 7 or longer than 10 characters.
	ErrInvalidAliasLength = errors.New("invalid alias length")
	// ErrInvalidAlias is returned when a custom alias contains symbols outside [0-9a-zA-Z].
	ErrInvalidAlias = errors.New("invalid alias")
	// ErrAliasTaken is returned when a custom alias is already registered.
	ErrAliasTaken = errors.New("alias taken")
	// ErrAliasNotFound is returned when a user has no such alias for the long URL.
	ErrAliasNotFound = errors.New("alias not found")
	// ErrUserNotFound is returned when the user an alias is bound to does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrCounterExhausted is returned when too many consecutive counter values map to taken codes.
	ErrCounterExhausted = errors.New("counter exhausted")
	// ErrUnknownChart is returned for an unsupported chart kind.
	ErrUnknownChart = errors.New("unknown chart")
)
