package progression

import "errors"

var (
	// ErrOutOfRange marks a level/week/session index outside the curriculum
	// bounds. This is a programming error with validated data; callers should
	// surface it loudly rather than recover.
	ErrOutOfRange = errors.New("out of range")

	// ErrInvalidInput marks malformed caller input such as an empty weekday
	// set or a non-positive distance.
	ErrInvalidInput = errors.New("invalid input")
)
