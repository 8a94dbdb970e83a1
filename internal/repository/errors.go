package repository

import "errors"

// ErrNotFound is returned when a referenced row does not exist. Callers test
// for it with errors.Is; it is never recovered inside the repositories.
var ErrNotFound = errors.New("not found")
