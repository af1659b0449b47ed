package wizard

import (
	"strings"

	"github.com/atnchile/portal/pkg/rut"
	"github.com/atnchile/portal/pkg/validator"
)

// UserType tells whether the person filling the wizard is the author or acts for one.
type UserType string

const (
	UserMember              UserType = "socio-vigente"
	UserLegalRepresentative UserType = "representante-legal"
)

var userTypes = []UserType{UserMember, UserLegalRepresentative}

// Identity is the author a request is filed for, as validated on the first screen.
type Identity struct {
	RUT      string   `json:"rut"`
	UserType UserType `json:"tipoUsuario"`
	Email    string   `json:"email"`
}

// VerifyIdentity validates the three identity fields and returns the
// identity with the RUT in display format and the email trimmed.
func VerifyIdentity(rutInput string, userType UserType, email string) (Identity, error) {
	id := Identity{RUT: rutInput, UserType: userType, Email: email}
	if err := id.Validate(); err != nil {
		return Identity{}, err
	}
	return id.Canonical(), nil
}

// Canonical returns id with the RUT in display format and the email trimmed.
// The RUT is left as is when it does not parse.
func (id Identity) Canonical() Identity {
	if r, err := rut.Parse(id.RUT); err == nil {
		id.RUT = r.String()
	}
	id.Email = strings.TrimSpace(id.Email)
	return id
}

// Validate reports every invalid identity field as validator.ValidationErrors.
func (id Identity) Validate() error {
	return validator.Apply(
		validator.ValidRUT("rut", id.RUT),
		validator.OneOf("tipoUsuario", id.UserType, userTypes),
		validator.ValidEmail("email", id.Email),
	)
}
