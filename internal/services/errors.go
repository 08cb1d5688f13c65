package services

import "errors"

// ErrLookup marks recoverable failures from external lookup services.
// Callers count these against the row and continue; a lookup failure never
// aborts a run.
var ErrLookup = errors.New("lookup error")
