package usage

import "errors"

var ErrCounterNotFound = errors.New("counter not found")
