// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios. For
// example, ErrConflict signals that an operation cannot proceed because
// of dependent records (deleting an area that still has tables) or an
// illegal state transition (refunding a transaction that was never
// captured).
package repository

import "errors"

// ErrConflict is returned when a delete or update cannot be performed
// because of conflicting state. Handlers translate this into HTTP 409.
var ErrConflict = errors.New("conflict")
