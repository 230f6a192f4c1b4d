package store

import "errors"

// ErrNotFound is returned by every store when the requested record does
// not exist. Missing referenced records are a not-found condition, never
// treated as corruption.
var ErrNotFound = errors.New("record not found")
