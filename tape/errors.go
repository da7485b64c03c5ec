package tape

import (
	"errors"
)

// Errors used by the package.
var (
	ErrInvalidTickSide   = errors.New("invalid tick side")
	ErrInvalidTickPrice  = errors.New("invalid tick price")
	ErrInvalidTickVolume = errors.New("invalid tick volume")
	ErrTapeEmpty         = errors.New("tape is empty")
	ErrInvalidQuantile   = errors.New("invalid quantile")
)
