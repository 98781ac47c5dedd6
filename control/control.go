package control

import "github.com/zeebo/errs"

// Error is the error class for control block failures.
var Error = errs.Class("control")

// ErrInvalidOperation is returned when a read is not valid for the current
// field type.
var ErrInvalidOperation = Error.New("invalid operation")

// MaxDataSize is the largest payload a Data Size Size block may carry.
const MaxDataSize = 1 << 32
