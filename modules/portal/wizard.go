package portal

import (
	"context"
	"log/slog"
	"slices"

	"github.com/go-chi/chi/v5"

	"github.com/atnchile/portal/handler"
	"github.com/atnchile/portal/pkg/binder"
	"github.com/atnchile/portal/pkg/logger"
	"github.com/atnchile/portal/svc/requests"
	"github.com/atnchile/portal/svc/wizard"
)

// Wizard actions accepted by POST /api/wizard/{action}.
const (
	ActionSelect = "select"
	ActionBack   = "back"
	ActionJump   = "jump"
	ActionHome   = "home"
	ActionReset  = "reset"
)

// WizardView is a wizard state as the page renders it.
type WizardView struct {
	State wizard.State `json:"state"`
	// Allowed lists the steps the page may offer as links.
	Allowed []wizard.Step `json:"allowed"`
	// RequestType is set when the step files a request.
	RequestType requests.Type `json:"requestType,omitempty"`
	Message     string        `json:"message,omitempty"`
}

type identityRequest struct {
	RUT      string          `json:"rut"`
	UserType wizard.UserType `json:"tipoUsuario"`
	Email    string          `json:"email"`
}

type navigateRequest struct {
	Action string       `json:"-" path:"action"`
	State  wizard.State `json:"state"`
	Step   wizard.Step  `json:"step,omitempty"`
}

// WizardService verifies identities and moves sessions through the wizard.
// The session state lives in the page and is posted with every action.
type WizardService struct {
	deps      Deps
	navigator *wizard.Navigator
	log       *slog.Logger
	errors    handler.ErrorHandler[handler.Context]
}

func NewWizardService(deps Deps, navigator *wizard.Navigator) *WizardService {
	return &WizardService{
		deps:      deps,
		navigator: navigator,
		log:       deps.log("wizard_http"),
		errors:    deps.errorHandler(),
	}
}

// Mount registers /identity and /wizard/{action}.
func (s *WizardService) Mount(r chi.Router) {
	r.Post("/identity", wrap(s.errors, s.identify, binder.JSON()))
	r.Post("/wizard/{action}", wrap(s.errors, s.navigate, binder.JSON(), binder.Path(chi.URLParam)))
}

func (s *WizardService) identify(ctx handler.Context, req identityRequest) handler.Response {
	id, err := wizard.VerifyIdentity(req.RUT, req.UserType, req.Email)
	if err != nil {
		return fail(err)
	}
	state, err := s.navigator.Identify(ctx, wizard.Start(), id)
	if err != nil {
		return fail(err)
	}

	s.log.InfoContext(ctx, "identity verified",
		logger.RUT(id.RUT),
		logger.Event("identify"),
	)
	view := s.View(ctx, state)
	view.Message = s.deps.translate(ctx, "identity.verified")
	return handler.JSON(view)
}

func (s *WizardService) navigate(ctx handler.Context, req navigateRequest) handler.Response {
	var (
		next wizard.State
		err  error
	)
	switch req.Action {
	case ActionSelect:
		next, err = s.navigator.Select(ctx, req.State, req.Step)
	case ActionBack:
		next, err = s.navigator.Back(ctx, req.State)
	case ActionJump:
		next, err = s.navigator.Jump(ctx, req.State, req.Step)
	case ActionHome:
		next, err = s.navigator.Home(ctx, req.State)
	case ActionReset:
		next, err = s.navigator.Reset(ctx, req.State)
	default:
		return handler.Error(handler.ErrNotFound)
	}
	if err != nil {
		return fail(err)
	}
	return handler.JSON(s.View(ctx, next))
}

// View adds the allowed steps and the request type to state and translates
// its breadcrumb labels.
func (s *WizardService) View(ctx context.Context, state wizard.State) WizardView {
	state.Breadcrumb = slices.Clone(state.Breadcrumb)
	for i, crumb := range state.Breadcrumb {
		key := "wizard." + crumb.Step.String()
		if label := s.deps.translate(ctx, key); label != key {
			state.Breadcrumb[i].Label = label
		}
	}

	allowed := s.navigator.Allowed(ctx, state)
	if allowed == nil {
		allowed = []wizard.Step{}
	}
	t, _ := requests.ForStep(state.Step)
	return WizardView{State: state, Allowed: allowed, RequestType: t}
}
