package portal

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/atnchile/portal/handler"
	"github.com/atnchile/portal/pkg/logger"
	"github.com/atnchile/portal/pkg/metrics"
)

// Deps are shared by every portal service. All fields are optional.
type Deps struct {
	// Localizer translates messages into the request language; *i18n.Translator
	// implements it. Without one, translation keys are returned.
	Localizer handler.Localizer
	Metrics   *metrics.Metrics
	Logger    *slog.Logger
}

func (d Deps) log(component string) *slog.Logger {
	l := d.Logger
	if l == nil {
		l = logger.Discard()
	}
	return l.With(logger.Component(component))
}

func (d Deps) translate(ctx context.Context, key string, args ...string) string {
	if d.Localizer == nil {
		return key
	}
	return d.Localizer.Tc(ctx, key, args...)
}

// errorHandler answers with localized JSON errors, or signals for DataStar
// requests, using the portal's error classification.
func (d Deps) errorHandler() handler.ErrorHandler[handler.Context] {
	opts := []handler.ErrorHandlerOption{handler.WithClassifiers(classify)}
	if d.Localizer != nil {
		opts = append(opts, handler.WithLocalizer(d.Localizer))
	}
	return handler.NewErrorHandler(d.log("portal"), opts...)
}

// wrap adapts h with the given binders and the portal error handler.
func wrap[R any](eh handler.ErrorHandler[handler.Context], h handler.HandlerFunc[handler.Context, R], binders ...handler.Bind) http.HandlerFunc {
	return handler.Wrap(h,
		handler.WithBinders[handler.Context, R](binders...),
		handler.WithErrorHandler[handler.Context, R](eh),
	)
}
