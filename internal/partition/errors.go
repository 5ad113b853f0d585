package partition

import "errors"

// ErrUnknownMethod is returned when Run is called with a Method value
// outside {OnGrid, NearGrid}.
var ErrUnknownMethod = errors.New("partition: unknown method")
