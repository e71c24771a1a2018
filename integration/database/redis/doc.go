// Package redis connects to Redis and keeps server-side sessions in it.
//
// Connect parses REDIS_URL (redis:// or rediss://), then pings the server with
// retries until it answers or ConnectTimeout passes. Healthcheck wraps a ping
// for readiness probes.
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	store := redis.NewSessionStore[cms.SessionData](client, cfg.SessionKeyPrefix)
//	manager := session.NewManager(store)
//
// SessionStore implements session.Store. Each session is a JSON value under
// prefix + token with a TTL equal to the time left until ExpiresAt, so Redis
// drops expired sessions on its own.
//
// Errors:
//
//   - ErrEmptyConnectionURL: no URL configured.
//   - ErrFailedToParseRedisConnString: the URL could not be parsed.
//   - ErrRedisNotReady: the server never answered the ping.
//   - ErrHealthcheckFailed: a health ping failed.
//   - ErrDecodeSession / ErrEncodeSession: a stored value is not a valid session.
package redis
