package library

import "errors"

// ErrCorruptDocument reports a backing file that exists but does not hold a
// valid catalog document. Callers can use errors.Is to distinguish it from
// plain filesystem failures.
var ErrCorruptDocument = errors.New("corrupt catalog document")
