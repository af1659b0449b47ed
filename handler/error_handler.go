package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/atnchile/portal/pkg/binder"
	"github.com/atnchile/portal/pkg/logger"
	"github.com/atnchile/portal/pkg/requestid"
	"github.com/atnchile/portal/pkg/validator"
)

// Localizer translates keys into the request's language. *i18n.Translator
// implements it.
type Localizer interface {
	Tc(ctx context.Context, key string, args ...string) string
}

// ErrorInfo is the classification of an error for the response and the log.
type ErrorInfo struct {
	StatusCode int
	Code       string
	Key        string
	LogLevel   slog.Level
	Fields     validator.ValidationErrors
	Messages   ValidationError
}

// Classifier maps application errors to HTTP errors. It returns false for
// errors it does not know.
type Classifier func(err error) (HTTPError, bool)

// Classify maps err to a status code and translation key. Validation errors
// answer 422, binding errors 400, 413 or 415 and anything unknown 500.
func Classify(err error) ErrorInfo {
	return classify(err, nil)
}

func classify(err error, classifiers []Classifier) ErrorInfo {
	info := ErrorInfo{StatusCode: ErrInternal.Code, Key: ErrInternal.Key}

	var (
		httpErr HTTPError
		verrs   validator.ValidationErrors
		msgs    ValidationError
	)
	switch {
	case errors.As(err, &verrs):
		info.StatusCode, info.Key, info.Fields = http.StatusUnprocessableEntity, "validation.failed", verrs
	case errors.As(err, &msgs):
		info.StatusCode, info.Key, info.Messages = http.StatusUnprocessableEntity, "validation.failed", msgs
	case errors.As(err, &httpErr):
		info.StatusCode, info.Key = httpErr.Code, httpErr.Key
	case errors.Is(err, binder.ErrUnsupportedMediaType):
		info.StatusCode, info.Key = ErrUnsupportedMediaType.Code, ErrUnsupportedMediaType.Key
	case errors.Is(err, binder.ErrBodyTooLarge):
		info.StatusCode, info.Key = ErrPayloadTooLarge.Code, ErrPayloadTooLarge.Key
	case errors.Is(err, binder.ErrInvalidJSON), errors.Is(err, binder.ErrInvalidQuery),
		errors.Is(err, binder.ErrInvalidPath), errors.Is(err, ErrNotDataStar):
		info.StatusCode, info.Key = ErrBadRequest.Code, ErrBadRequest.Key
	default:
		for _, c := range classifiers {
			if he, ok := c(err); ok {
				info.StatusCode, info.Key = he.Code, he.Key
				break
			}
		}
	}

	info.Code = errorCode(info.Key)
	info.LogLevel = slog.LevelError
	if info.StatusCode < http.StatusInternalServerError {
		info.LogLevel = slog.LevelWarn
	}
	if info.StatusCode == http.StatusUnprocessableEntity {
		info.LogLevel = slog.LevelDebug
	}
	return info
}

// errorCode turns "errors.not_found" into "not_found".
func errorCode(key string) string {
	if key == "validation.failed" {
		return "validation_error"
	}
	if i := strings.LastIndexByte(key, '.'); i >= 0 {
		return key[i+1:]
	}
	return key
}

type errorHandlerConfig struct {
	localizer   Localizer
	classifiers []Classifier
}

type ErrorHandlerOption func(*errorHandlerConfig)

// WithLocalizer translates messages. Without it the translation key is sent.
func WithLocalizer(l Localizer) ErrorHandlerOption {
	return func(c *errorHandlerConfig) { c.localizer = l }
}

// WithClassifiers maps errors the handler package does not know.
func WithClassifiers(classifiers ...Classifier) ErrorHandlerOption {
	return func(c *errorHandlerConfig) { c.classifiers = append(c.classifiers, classifiers...) }
}

// NewErrorHandler answers errors with a JSON error body, or with "error"
// and "errors" signals for DataStar requests, and logs them at a level
// matching the status.
func NewErrorHandler(log *slog.Logger, opts ...ErrorHandlerOption) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}
	log = log.With(logger.Component("error_handler"))

	var cfg errorHandlerConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		info := classify(err, cfg.classifiers)

		log.LogAttrs(r.Context(), info.LogLevel, "request error",
			logger.Error(err),
			slog.Int("status_code", info.StatusCode),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)

		translate := func(key string, args ...string) string {
			if cfg.localizer == nil {
				return key
			}
			return cfg.localizer.Tc(r.Context(), key, args...)
		}
		details := info.Messages
		if info.Fields != nil {
			details = Localize(info.Fields, translate)
		}
		message := translate(info.Key)

		var resp Response
		if IsDataStar(r) {
			resp = Signals(map[string]any{"error": message, "errors": details})
		} else {
			resp = JSONError(info.StatusCode, ErrorDetail{
				Code:      info.Code,
				Message:   message,
				Details:   details,
				RequestID: requestid.FromContext(r.Context()),
			})
		}
		if rerr := resp.Render(ctx.ResponseWriter(), r); rerr != nil {
			log.ErrorContext(r.Context(), "failed to render error", logger.Error(rerr))
		}
	}
}
