// Package ratelimiter implements token bucket rate limiting.
//
// A Bucket holds Capacity tokens and gains RefillRate tokens every
// RefillInterval. Each Allow takes one token; when none are left the Result
// reports Allowed() == false and how long to wait before retrying.
//
//	store := ratelimiter.NewMemoryStore()
//	limiter, err := ratelimiter.NewBucket(store, ratelimiter.Config{
//		Capacity:       10,
//		RefillRate:     10,
//		RefillInterval: time.Minute,
//	})
//	if err != nil {
//		return err
//	}
//
//	result, err := limiter.Allow(ctx, clientip.GetIP(r))
//	if err == nil && !result.Allowed() {
//		w.Header().Set("Retry-After", strconv.Itoa(int(result.RetryAfter().Seconds())))
//	}
//
// MemoryStore keeps state per process. Run its sweeper alongside the server
// so idle keys do not accumulate:
//
//	g.Go(store.Run(ctx))
package ratelimiter
