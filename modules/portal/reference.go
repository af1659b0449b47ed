package portal

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/atnchile/portal/handler"
	"github.com/atnchile/portal/pkg/binder"
	"github.com/atnchile/portal/svc/refdata"
)

// Catalog is the reference data behind the form selects. *refdata.Store
// implements it.
type Catalog interface {
	Countries() ([]string, error)
	Regions() ([]string, error)
	Communes(region string) ([]string, error)
	SocietyCountries() ([]string, error)
	Societies(country string) ([]string, error)
}

type regionRequest struct {
	Region string `path:"region"`
}

type societiesRequest struct {
	Country string `query:"country"`
}

type classesRequest struct {
	Scope string `query:"scope"`
}

// ReferenceService serves countries, regions, communes, societies and
// author classes.
type ReferenceService struct {
	catalog Catalog
	errors  handler.ErrorHandler[handler.Context]
}

func NewReferenceService(deps Deps, catalog Catalog) *ReferenceService {
	return &ReferenceService{catalog: catalog, errors: deps.errorHandler()}
}

// Mount registers the /reference routes.
func (s *ReferenceService) Mount(r chi.Router) {
	r.Route("/reference", func(r chi.Router) {
		r.Get("/countries", wrap(s.errors, func(handler.Context, struct{}) handler.Response {
			return list(s.catalog.Countries())
		}))
		r.Get("/regions", wrap(s.errors, func(handler.Context, struct{}) handler.Response {
			return list(s.catalog.Regions())
		}))
		r.Get("/regions/{region}/communes", wrap(s.errors, s.communes, binder.Path(unescapedParam)))
		r.Get("/societies", wrap(s.errors, s.societies, binder.Query()))
		r.Get("/scopes", wrap(s.errors, func(handler.Context, struct{}) handler.Response {
			return list(refdata.Scopes(), nil)
		}))
		r.Get("/classes", wrap(s.errors, s.classes, binder.Query()))
	})
}

func (s *ReferenceService) communes(_ handler.Context, req regionRequest) handler.Response {
	return list(s.catalog.Communes(req.Region))
}

// societies lists the countries with societies, or the societies of one
// country followed by the "Otra" option.
func (s *ReferenceService) societies(_ handler.Context, req societiesRequest) handler.Response {
	if req.Country == "" {
		return list(s.catalog.SocietyCountries())
	}
	return list(s.catalog.Societies(req.Country))
}

func (s *ReferenceService) classes(_ handler.Context, req classesRequest) handler.Response {
	if req.Scope == "" {
		return handler.Error(handler.ErrBadRequest)
	}
	return list(refdata.Classes(req.Scope))
}

func list(items []string, err error) handler.Response {
	if err != nil {
		return fail(err)
	}
	if items == nil {
		items = []string{}
	}
	return handler.JSON(items)
}

// unescapedParam reads a chi path parameter. Region names carry spaces and
// accents, which chi leaves escaped when the request has a raw path.
func unescapedParam(r *http.Request, name string) string {
	v := chi.URLParam(r, name)
	if u, err := url.PathUnescape(v); err == nil {
		return u
	}
	return v
}
