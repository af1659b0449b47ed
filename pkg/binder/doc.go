// Package binder fills request structs from JSON bodies, query strings and
// router path parameters.
//
//	type communesRequest struct {
//		Region string `path:"region"`
//	}
//
//	r.Get("/api/reference/regions/{region}/communes", handler.Wrap(h,
//		handler.WithBinders[handler.Context, communesRequest](binder.Path(chi.URLParam)),
//	))
//
// Every binder wraps its failures in one of the package errors, so callers
// can answer 400 or 415 with errors.Is.
package binder
