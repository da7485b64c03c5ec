package list

import (
	"errors"
)

// Errors used by the package.
var (
	ErrNilElement       = errors.New("list element is nil")
	ErrElementNotInList = errors.New("list element is not in the list")
)
