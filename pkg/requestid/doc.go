// Package requestid assigns every HTTP request an id, propagates it through
// the request context and exposes it to the logger.
package requestid
