package tensor

import "errors"

// ErrOutOfMemory is returned when an aligned allocation cannot be satisfied.
// It is the only error the kernel layer reports; every other precondition is
// a caller contract.
var ErrOutOfMemory = errors.New("out of memory")
