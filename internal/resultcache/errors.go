package resultcache

import "errors"

// ErrNotFound is returned by Get when no cache row matches the key.
var ErrNotFound = errors.New("resultcache: no cached entry for key")
