package repositories

import "errors"

// Sentinel errors returned by repositories so callers can map them to HTTP
// statuses without string matching.
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrProducerNotFound = errors.New("producer not found")
)
