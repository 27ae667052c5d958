// Package ratelimiter throttles form submissions with a token bucket.
//
// Each key (typically client address plus form name) owns a bucket holding
// up to Capacity tokens. Every request takes one; RefillRate tokens come back
// every RefillInterval. A request that leaves the bucket negative is denied.
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//
//	bucket, err := ratelimiter.NewBucket(store, ratelimiter.Config{
//	    Capacity:       10,
//	    RefillRate:     1,
//	    RefillInterval: 6 * time.Second,
//	})
//	if err != nil {
//	    return err
//	}
//	r.With(ratelimiter.Middleware(bucket, ratelimiter.ByClientIP)).Post("/forms/{name}", h)
//
// Middleware sets X-RateLimit-Limit, X-RateLimit-Remaining and
// X-RateLimit-Reset on every response and Retry-After on denied ones.
//
// MemoryStore keeps buckets in process memory and drops those idle for an
// hour. Other backends implement Store.
package ratelimiter
