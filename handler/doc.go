// Package handler adapts typed request handlers to net/http.
//
// A handler receives a Context and a request struct filled by binders, and
// returns a Response:
//
//	type formatRequest struct {
//		Value string `query:"value"`
//	}
//
//	r.Get("/api/rut/format", handler.Wrap(
//		handler.HandlerFunc[handler.Context, formatRequest](func(ctx handler.Context, req formatRequest) handler.Response {
//			return handler.JSON(map[string]string{"formatted": rut.Format(req.Value)})
//		}),
//		handler.WithBinders[handler.Context, formatRequest](binder.Query()),
//		handler.WithErrorHandler[handler.Context, formatRequest](errorHandler),
//	))
//
// Errors from binders or responses go to the ErrorHandler. NewErrorHandler
// classifies them with Classify, localizes validator.ValidationErrors through
// a Localizer and answers with a JSON error body:
//
//	{"error": {"code": "validation_error", "message": "...", "details": {"rut": ["..."]}}}
//
// DataStar requests get the same information as "error" and "errors"
// signals instead.
package handler
