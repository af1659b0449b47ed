package wizard

import "fmt"

// Step identifies a screen of the request wizard.
type Step string

const (
	StepValidation          Step = "validacion-inicial"
	StepHome                Step = "inicio"
	StepUpdate              Step = "actualizacion"
	StepPersonal            Step = "datos-personales"
	StepContact             Step = "datos-contacto"
	StepBank                Step = "datos-bancarios"
	StepAuthor              Step = "datos-autor"
	StepScope               Step = "ambito-clase"
	StepSocieties           Step = "sociedades"
	StepExhibition          Step = "exhibicion"
	StepConflict            Step = "conflicto"
	StepCertificate         Step = "certificado"
	StepAffiliation         Step = "afiliacion"
	StepDeclaredWorks       Step = "obras-declaradas"
	StepOtherCertificate    Step = "otro-certificado"
	StepRightsReceived      Step = "derechos-recibidos"
	StepDisaffiliation      Step = "desafiliacion"
	StepLegalRepresentative Step = "representante-legal"
	StepOther               Step = "otro"
)

type node struct {
	label  string
	parent Step
}

// steps lists every step in menu order.
var steps = []Step{
	StepValidation,
	StepHome,
	StepUpdate,
	StepPersonal,
	StepContact,
	StepBank,
	StepAuthor,
	StepScope,
	StepSocieties,
	StepExhibition,
	StepConflict,
	StepCertificate,
	StepAffiliation,
	StepDeclaredWorks,
	StepOtherCertificate,
	StepRightsReceived,
	StepDisaffiliation,
	StepLegalRepresentative,
	StepOther,
}

var tree = map[Step]node{
	StepValidation:          {label: "Validación inicial"},
	StepHome:                {label: "Inicio"},
	StepUpdate:              {label: "Actualización de datos", parent: StepHome},
	StepPersonal:            {label: "Datos personales", parent: StepUpdate},
	StepContact:             {label: "Datos de contacto", parent: StepUpdate},
	StepBank:                {label: "Datos bancarios", parent: StepUpdate},
	StepAuthor:              {label: "Datos de autor", parent: StepUpdate},
	StepScope:               {label: "Ámbito y clase", parent: StepAuthor},
	StepSocieties:           {label: "Sociedades", parent: StepAuthor},
	StepExhibition:          {label: "Exhibición de obra en el extranjero", parent: StepHome},
	StepConflict:            {label: "Conflicto de obra", parent: StepHome},
	StepCertificate:         {label: "Certificados", parent: StepHome},
	StepAffiliation:         {label: "Certificado de afiliación", parent: StepCertificate},
	StepDeclaredWorks:       {label: "Certificado de obras declaradas", parent: StepCertificate},
	StepOtherCertificate:    {label: "Otro certificado", parent: StepCertificate},
	StepRightsReceived:      {label: "Certificado de derechos recibidos", parent: StepCertificate},
	StepDisaffiliation:      {label: "Desafiliación", parent: StepHome},
	StepLegalRepresentative: {label: "Representante legal", parent: StepHome},
	StepOther:               {label: "Otra solicitud", parent: StepHome},
}

// ParseStep returns the step named s.
func ParseStep(s string) (Step, error) {
	step := Step(s)
	if !step.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownStep, s)
	}
	return step, nil
}

// Steps returns every step in menu order.
func Steps() []Step {
	return append([]Step(nil), steps...)
}

// Name implements statemachine.State.
func (s Step) Name() string {
	return string(s)
}

func (s Step) String() string {
	return string(s)
}

func (s Step) Valid() bool {
	_, ok := tree[s]
	return ok
}

// Label returns the Spanish screen title.
func (s Step) Label() string {
	return tree[s].label
}

// Parent returns the step s is reached from, or "" for the wizard roots.
func (s Step) Parent() Step {
	return tree[s].parent
}

// Children returns the steps whose parent is s, in menu order.
func (s Step) Children() []Step {
	if s == "" {
		return nil
	}
	var children []Step
	for _, step := range steps {
		if tree[step].parent == s {
			children = append(children, step)
		}
	}
	return children
}

// Ancestors returns the chain of parents of s, nearest first.
func (s Step) Ancestors() []Step {
	var chain []Step
	for p := s.Parent(); p != ""; p = p.Parent() {
		chain = append(chain, p)
	}
	return chain
}

// Path returns the steps from the wizard root down to s inclusive.
func (s Step) Path() []Step {
	ancestors := s.Ancestors()
	path := make([]Step, 0, len(ancestors)+1)
	for i := len(ancestors) - 1; i >= 0; i-- {
		path = append(path, ancestors[i])
	}
	return append(path, s)
}
