package matmul

import "github.com/pkg/errors"

// ErrUnavailable is returned when the numeric backend was excluded at build
// time (nogorgonia tag) but a matrix-multiply benchmark was requested.
var ErrUnavailable = errors.New("matrix multiply backend not compiled in (built with the nogorgonia tag)")
