package repository

import "errors"

var ErrStoreUnavailable = errors.New("resort store unavailable")
