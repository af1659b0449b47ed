package portal

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"

	"github.com/atnchile/portal/handler"
	"github.com/atnchile/portal/pkg/binder"
	"github.com/atnchile/portal/pkg/logger"
	"github.com/atnchile/portal/pkg/rut"
)

// RUT check outcomes, also used as metric labels.
const (
	RUTValid     = "valid"
	RUTRequired  = "required"
	RUTMalformed = "malformed"
	RUTInvalid   = "invalid"
)

// RUTCheck is the answer of POST /api/rut/validate.
type RUTCheck struct {
	Valid     bool   `json:"valid"`
	Formatted string `json:"formatted"`
	Code      string `json:"code"`
	Message   string `json:"message"`
}

type validateRequest struct {
	RUT string `json:"rut"`
}

type formatRequest struct {
	Value string `query:"value"`
}

// liveSignals are the signals of a RUT input bound with data-bind-rut.
// Caret is the input's selectionStart after the keystroke. Event is "paste"
// when the change came from a paste.
type liveSignals struct {
	RUT   string `json:"rut"`
	Caret int    `json:"rutCaret"`
	Event string `json:"rutEvent,omitempty"`
}

// signalField exposes liveSignals as a rut.Field with a caret.
type signalField struct {
	value  string
	caret  int
	placed bool
}

func (f *signalField) Value() string     { return f.value }
func (f *signalField) SetValue(v string) { f.value = v }

func (f *signalField) Cursor() (int, error) {
	if f.caret < 0 || f.caret > utf8.RuneCountInString(f.value) {
		return 0, fmt.Errorf("caret %d outside value", f.caret)
	}
	return f.caret, nil
}

func (f *signalField) SetCursor(pos int) error {
	f.caret, f.placed = pos, true
	return nil
}

// RUTService validates and formats RUTs for the identity form.
type RUTService struct {
	deps   Deps
	live   *rut.LiveFormatter
	errors handler.ErrorHandler[handler.Context]
}

func NewRUTService(deps Deps) *RUTService {
	l := deps.Logger
	if l == nil {
		l = logger.Discard()
	}
	return &RUTService{
		deps:   deps,
		live:   rut.NewLiveFormatter(rut.WithLogger(l)),
		errors: deps.errorHandler(),
	}
}

// Mount registers /rut/validate, /rut/format and /rut/live.
func (s *RUTService) Mount(r chi.Router) {
	r.Route("/rut", func(r chi.Router) {
		r.Post("/validate", wrap(s.errors, s.validate, binder.JSON()))
		r.Get("/format", wrap(s.errors, s.format, binder.Query()))

		live := wrap(s.errors, s.reformat)
		r.Get("/live", live)
		r.Post("/live", live)
	})
}

// Check validates value and explains the outcome in the request language.
func (s *RUTService) Check(ctx context.Context, value string) RUTCheck {
	res := RUTCheck{Formatted: rut.Format(value)}
	key := "rut.valid"

	err := rut.Validate(value)
	switch {
	case err == nil:
		res.Valid, res.Code = true, RUTValid
		res.Formatted = rut.MustParse(value).String()
	case errors.Is(err, rut.ErrEmptyInput):
		res.Code, key = RUTRequired, "validation.required"
	case errors.Is(err, rut.ErrMalformedBody):
		res.Code, key = RUTMalformed, "validation.rut_malformed"
	default:
		res.Code, key = RUTInvalid, "validation.rut_invalid"
	}

	s.deps.Metrics.IncRUTValidation(res.Code)
	res.Message = s.deps.translate(ctx, key, "field", "RUT")
	return res
}

func (s *RUTService) validate(ctx handler.Context, req validateRequest) handler.Response {
	return handler.JSON(s.Check(ctx, req.RUT))
}

func (s *RUTService) format(_ handler.Context, req formatRequest) handler.Response {
	return handler.JSON(map[string]string{"formatted": rut.Format(req.Value)})
}

// reformat reformats the rut signal as the user types and moves the caret
// past the separators the reformat inserted. Pastes and carets the binding
// could not place leave the caret at the end of the value.
func (s *RUTService) reformat(ctx handler.Context, _ struct{}) handler.Response {
	var sig liveSignals
	if err := handler.ReadSignals(ctx.Request(), &sig); err != nil {
		return handler.Error(err)
	}

	field := &signalField{value: sig.RUT, caret: sig.Caret}
	b := s.live.Bind(field)
	if sig.Event == "paste" {
		b.Paste()
		b.Flush()
	} else {
		b.Input()
	}
	if !field.placed {
		field.caret = utf8.RuneCountInString(field.value)
	}

	return handler.Signals(map[string]any{
		"rut":      field.value,
		"rutCaret": field.caret,
		"rutValid": rut.IsValid(field.value),
	})
}
