package ratelimiter

import "errors"

var (
	// ErrInvalidConfig is returned by NewBucket for non-positive settings.
	ErrInvalidConfig = errors.New("ratelimiter: invalid config")
	// ErrInvalidTokenCount is returned by AllowN for n < 1 or n > Capacity.
	ErrInvalidTokenCount = errors.New("ratelimiter: token count out of range")
)
