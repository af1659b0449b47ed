package requests

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/atnchile/portal/pkg/validator"
	"github.com/atnchile/portal/svc/wizard"
)

// Envelope is the body posted to the workflow.
type Envelope struct {
	Type   Type           `json:"tipoSolicitud"`
	Data   map[string]any `json:"datos"`
	SentOn string         `json:"fechaEnvio"`
}

// NewEnvelope flattens p into datos next to the requester's identity.
// SentOn is now's date in DD-MM-YYYY.
func NewEnvelope(t Type, id wizard.Identity, p Payload, now time.Time) (Envelope, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return Envelope{}, errors.Join(ErrInvalidPayload, err)
	}
	data := make(map[string]any)
	if err := json.Unmarshal(raw, &data); err != nil {
		return Envelope{}, errors.Join(ErrInvalidPayload, err)
	}

	data["rut"] = id.RUT
	data["tipoUsuario"] = string(id.UserType)
	data["emailValidacion"] = id.Email

	return Envelope{
		Type:   t,
		Data:   data,
		SentOn: now.Format(validator.DateLayout),
	}, nil
}
