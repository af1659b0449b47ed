package requests

import (
	"fmt"

	"github.com/atnchile/portal/svc/wizard"
)

// Type is the tipoSolicitud sent to the workflow.
type Type string

const (
	TypePersonalData     Type = "actualizacion-datos-personales"
	TypeContactData      Type = "actualizacion-datos-contacto"
	TypeBankData         Type = "actualizacion-datos-bancarios"
	TypeAuthorScope      Type = "actualizacion-datos-autor-ambito"
	TypeAuthorSocieties  Type = "actualizacion-datos-autor-sociedades"
	TypeExhibition       Type = "exhibicion-obra-extranjero"
	TypeConflict         Type = "conflicto-obra"
	TypeAffiliation      Type = "certificado-afiliacion"
	TypeDeclaredWorks    Type = "certificado-obras-declaradas"
	TypeRightsReceived   Type = "certificado-derechos-recibidos"
	TypeOtherCertificate Type = "otro-certificado"
	TypeDisaffiliation   Type = "desafiliacion"
	TypeOther            Type = "otro"
)

type typeInfo struct {
	step    wizard.Step
	payload func() Payload
}

var types = []Type{
	TypePersonalData,
	TypeContactData,
	TypeBankData,
	TypeAuthorScope,
	TypeAuthorSocieties,
	TypeExhibition,
	TypeConflict,
	TypeAffiliation,
	TypeDeclaredWorks,
	TypeRightsReceived,
	TypeOtherCertificate,
	TypeDisaffiliation,
	TypeOther,
}

var registry = map[Type]typeInfo{
	TypePersonalData:     {wizard.StepPersonal, func() Payload { return &PersonalData{} }},
	TypeContactData:      {wizard.StepContact, func() Payload { return &ContactData{} }},
	TypeBankData:         {wizard.StepBank, func() Payload { return &BankData{} }},
	TypeAuthorScope:      {wizard.StepScope, func() Payload { return &AuthorScope{} }},
	TypeAuthorSocieties:  {wizard.StepSocieties, func() Payload { return &AuthorSocieties{} }},
	TypeExhibition:       {wizard.StepExhibition, func() Payload { return &Exhibitions{} }},
	TypeConflict:         {wizard.StepConflict, func() Payload { return &Conflict{} }},
	TypeAffiliation:      {wizard.StepAffiliation, func() Payload { return &AffiliationCertificate{} }},
	TypeDeclaredWorks:    {wizard.StepDeclaredWorks, func() Payload { return &DeclaredWorksCertificate{} }},
	TypeRightsReceived:   {wizard.StepRightsReceived, func() Payload { return &RightsReceivedCertificate{} }},
	TypeOtherCertificate: {wizard.StepOtherCertificate, func() Payload { return &OtherCertificate{} }},
	TypeDisaffiliation:   {wizard.StepDisaffiliation, func() Payload { return &Disaffiliation{} }},
	TypeOther:            {wizard.StepOther, func() Payload { return &Other{} }},
}

// Types returns every request type in menu order.
func Types() []Type {
	return append([]Type(nil), types...)
}

// ParseType returns the request type named s.
func ParseType(s string) (Type, error) {
	t := Type(s)
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownType, s)
	}
	return t, nil
}

func (t Type) Valid() bool {
	_, ok := registry[t]
	return ok
}

func (t Type) String() string {
	return string(t)
}

// Step returns the wizard screen that files requests of type t.
func (t Type) Step() wizard.Step {
	return registry[t].step
}

// ForStep returns the request type filed from step, if any.
func ForStep(step wizard.Step) (Type, bool) {
	for _, t := range types {
		if registry[t].step == step {
			return t, true
		}
	}
	return "", false
}
