package portal

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/atnchile/portal/handler"
	"github.com/atnchile/portal/pkg/binder"
	"github.com/atnchile/portal/svc/requests"
	"github.com/atnchile/portal/svc/wizard"
)

// Submitter forwards validated requests to the workflow. *requests.Service
// implements it.
type Submitter interface {
	Submit(ctx context.Context, id wizard.Identity, t requests.Type, p requests.Payload) (requests.Submission, error)
}

// SubmitResult is the answer to an accepted request. View is the wizard
// back on the home menu.
type SubmitResult struct {
	Submission requests.Submission `json:"submission"`
	Message    string              `json:"message"`
	View       WizardView          `json:"wizard"`
}

type submitRequest struct {
	Type  string          `json:"-" path:"type"`
	State wizard.State    `json:"state"`
	Data  json.RawMessage `json:"datos"`
}

// RequestService accepts the forms of every request type.
type RequestService struct {
	deps      Deps
	submitter Submitter
	wizard    *WizardService
	errors    handler.ErrorHandler[handler.Context]
}

func NewRequestService(deps Deps, submitter Submitter, wiz *WizardService) *RequestService {
	return &RequestService{
		deps:      deps,
		submitter: submitter,
		wizard:    wiz,
		errors:    deps.errorHandler(),
	}
}

// Mount registers /requests/{type}.
func (s *RequestService) Mount(r chi.Router) {
	r.Post("/requests/{type}", wrap(s.errors, s.submit, binder.JSONLimit(256<<10), binder.Path(chi.URLParam)))
}

// submit accepts a request filed from the step the posted state is on.
func (s *RequestService) submit(ctx handler.Context, req submitRequest) handler.Response {
	t, err := requests.ParseType(req.Type)
	if err != nil {
		return fail(err)
	}
	if !req.State.Identified() {
		return fail(requests.ErrIdentityRequired)
	}
	if req.State.Step != t.Step() {
		return fail(fmt.Errorf("%w: %s is filed from %s, not %s", wizard.ErrNavigationBlocked, t, t.Step(), req.State.Step))
	}

	p, err := requests.Decode(t, req.Data)
	if err != nil {
		return fail(err)
	}
	sub, err := s.submitter.Submit(ctx, *req.State.Identity, t, p)
	if err != nil {
		return fail(err)
	}

	next, err := s.wizard.navigator.Reset(ctx, req.State)
	if err != nil {
		return fail(err)
	}
	return handler.JSON(SubmitResult{
		Submission: sub,
		Message:    s.deps.translate(ctx, "request.sent"),
		View:       s.wizard.View(ctx, next),
	}, handler.WithJSONStatus(http.StatusAccepted))
}
