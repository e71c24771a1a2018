package redis

import "errors"

// Connection errors.
var (
	ErrEmptyConnectionURL           = errors.New("redis: REDIS_URL is empty")
	ErrFailedToParseRedisConnString = errors.New("redis: cannot parse connection URL")
	ErrRedisNotReady                = errors.New("redis: no ping reply before the deadline")
	ErrHealthcheckFailed            = errors.New("redis: health ping failed")
)

// Session store errors.
var (
	ErrEncodeSession = errors.New("redis: encoding session")
	ErrDecodeSession = errors.New("redis: stored session is not valid JSON")
)
