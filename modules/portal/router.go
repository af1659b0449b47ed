package portal

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/atnchile/portal/pkg/httpserver"
	"github.com/atnchile/portal/pkg/i18n"
	"github.com/atnchile/portal/pkg/logger"
	"github.com/atnchile/portal/pkg/metrics"
	"github.com/atnchile/portal/pkg/requestid"
)

// Mountable is a service that registers its routes under /api.
type Mountable interface {
	Mount(r chi.Router)
}

// RouterOptions configures the portal router. Services left nil are not
// mounted.
type RouterOptions struct {
	Logger     *slog.Logger
	Metrics    *metrics.Metrics
	Translator *i18n.Translator

	RUT       Mountable
	Wizard    Mountable
	Requests  Mountable
	Reference Mountable

	// Checks run on GET /readyz.
	Checks []httpserver.Check
}

// Router builds the portal HTTP handler.
//
//	deps := portal.Deps{Localizer: translator, Metrics: m, Logger: log}
//	wiz := portal.NewWizardService(deps, wizard.NewNavigator())
//	r := portal.Router(portal.RouterOptions{
//		Logger:   log,
//		RUT:      portal.NewRUTService(deps),
//		Wizard:   wiz,
//		Requests: portal.NewRequestService(deps, svc, wiz),
//	})
func Router(opts RouterOptions) chi.Router {
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(accessLog(log.With(logger.Component("http")), opts.Metrics))
	r.Use(middleware.Recoverer)
	if opts.Translator != nil {
		r.Use(i18n.Middleware(opts.Translator))
	}

	r.Get("/healthz", httpserver.LivenessHandler())
	r.Get("/readyz", httpserver.ReadinessHandler(log, opts.Checks...))
	r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())

	r.Route("/api", func(api chi.Router) {
		for _, svc := range []Mountable{opts.RUT, opts.Wizard, opts.Requests, opts.Reference} {
			if svc != nil {
				svc.Mount(api)
			}
		}
	})

	return r
}
