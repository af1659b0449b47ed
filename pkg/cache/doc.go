// Package cache provides an in-memory LRU cache with optional per-entry expiry.
//
// The portal uses it to hold parsed reference data and, when Redis is not
// configured, to remember recent submissions for duplicate detection.
//
//	seen := cache.NewLRU[string, struct{}](10_000, cache.WithTTL(10*time.Minute))
//	if !seen.PutIfAbsent(fingerprint, struct{}{}) {
//		// duplicate within the window
//	}
package cache
