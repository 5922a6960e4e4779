package repository

import "errors"

// ErrNotFound signals a lookup miss for any entity. Storage failures
// other than a miss propagate as the driver error.
var ErrNotFound = errors.New("record not found")
