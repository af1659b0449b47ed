package requests

import (
	"fmt"

	"github.com/atnchile/portal/pkg/sanitizer"
	"github.com/atnchile/portal/pkg/validator"
	"github.com/atnchile/portal/svc/refdata"
)

// Exhibition is one screening or staging of a work abroad.
type Exhibition struct {
	Scope           string `json:"ambito"`
	Work            string `json:"obra"`
	TranslatedTitle string `json:"tituloTraducido,omitempty"`
	Country         string `json:"pais"`
	Channel         string `json:"canal"`
	Date            string `json:"fecha"`
	EndDate         string `json:"fechaTermino,omitempty"`
}

// Exhibitions reports works exhibited abroad.
type Exhibitions struct {
	Exhibitions []Exhibition `json:"exhibiciones"`
}

func (e *Exhibitions) Normalize() {
	for i := range e.Exhibitions {
		x := &e.Exhibitions[i]
		for _, v := range []*string{&x.Scope, &x.Work, &x.TranslatedTitle, &x.Country, &x.Channel, &x.Date, &x.EndDate} {
			*v = sanitizer.SingleLine(*v)
		}
	}
}

func (e *Exhibitions) Validate() error {
	rules := []validator.Rule{
		rule("exhibiciones", "request.exhibitions_empty", "at least one exhibition is required", len(e.Exhibitions) > 0),
	}
	for i, x := range e.Exhibitions {
		rules = append(rules, validator.Nested(fmt.Sprintf("exhibiciones[%d].", i), join(
			[]validator.Rule{validator.Required("ambito", x.Scope)},
			validator.When(x.Scope != "", validator.OneOf("ambito", x.Scope, refdata.Scopes())),
			requiredLine("obra", x.Work),
			[]validator.Rule{line("tituloTraducido", x.TranslatedTitle)},
			requiredLine("pais", x.Country),
			requiredLine("canal", x.Channel),
			[]validator.Rule{validator.Required("fecha", x.Date)},
			validator.When(x.Date != "", validator.ValidDate("fecha", x.Date)),
			validator.When(x.EndDate != "",
				validator.ValidDate("fechaTermino", x.EndDate),
				validator.DateNotBefore("fechaTermino", x.EndDate, x.Date),
			),
		)...)...)
	}
	return validator.Apply(rules...)
}

func (e *Exhibitions) catalogRules(cat Catalog) []validator.Rule {
	var rules []validator.Rule
	for i, x := range e.Exhibitions {
		if x.Country == "" {
			continue
		}
		country := x.Country
		rules = append(rules, known(fmt.Sprintf("exhibiciones[%d].pais", i), "unknown country",
			func() bool { return cat.HasCountry(country) }))
	}
	return rules
}

// Conflict reports a dispute over the authorship or shares of a work.
type Conflict struct {
	Scope       string `json:"ambito"`
	Work        string `json:"obra"`
	Description string `json:"descripcion"`
}

func (c *Conflict) Normalize() {
	c.Scope = sanitizer.SingleLine(c.Scope)
	c.Work = sanitizer.SingleLine(c.Work)
	c.Description = sanitizer.MultiLine(c.Description)
}

func (c *Conflict) Validate() error {
	return validator.Apply(join(
		[]validator.Rule{validator.Required("ambito", c.Scope)},
		validator.When(c.Scope != "", validator.OneOf("ambito", c.Scope, refdata.Scopes())),
		requiredLine("obra", c.Work),
		requiredText("descripcion", c.Description),
	)...)
}

// AffiliationCertificate requests proof of membership, optionally stating
// the author's class.
type AffiliationCertificate struct {
	Scope        string `json:"ambitoAfiliacion"`
	IncludeClass string `json:"claseAfiliacion"`
	Reason       string `json:"motivo,omitempty"`
}

func (a *AffiliationCertificate) Normalize() {
	a.Scope = sanitizer.SingleLine(a.Scope)
	a.IncludeClass = orNo(sanitizer.SingleLine(a.IncludeClass))
	a.Reason = sanitizer.MultiLine(a.Reason)
}

func (a *AffiliationCertificate) Validate() error {
	return validator.Apply(join(
		[]validator.Rule{validator.Required("ambitoAfiliacion", a.Scope)},
		validator.When(a.Scope != "", validator.OneOf("ambitoAfiliacion", a.Scope, refdata.Scopes())),
		[]validator.Rule{
			validator.OneOf("claseAfiliacion", a.IncludeClass, yesNo),
			text("motivo", a.Reason),
		},
	)...)
}

// DeclaredWorksCertificate requests the list of works on file for the
// given scopes.
type DeclaredWorksCertificate struct {
	Scopes       []string `json:"ambitosObras"`
	IncludeRole  string   `json:"incluirRolObras"`
	IncludeShare string   `json:"incluirPorcentajeObras"`
	Reason       string   `json:"motivo"`
}

func (d *DeclaredWorksCertificate) Normalize() {
	d.Scopes = unique(sanitizer.Slice(d.Scopes, sanitizer.SingleLine))
	d.IncludeRole = orNo(sanitizer.SingleLine(d.IncludeRole))
	d.IncludeShare = orNo(sanitizer.SingleLine(d.IncludeShare))
	d.Reason = sanitizer.MultiLine(d.Reason)
}

func (d *DeclaredWorksCertificate) Validate() error {
	return validator.Apply(join(
		[]validator.Rule{
			validator.RequiredSlice("ambitosObras", d.Scopes),
			validator.AllOf("ambitosObras", d.Scopes, refdata.Scopes()),
			validator.OneOf("incluirRolObras", d.IncludeRole, yesNo),
			validator.OneOf("incluirPorcentajeObras", d.IncludeShare, yesNo),
		},
		requiredText("motivo", d.Reason),
	)...)
}

// RightsReceivedCertificate requests the royalties paid over a period.
type RightsReceivedCertificate struct {
	From string `json:"fechaInicio"`
	To   string `json:"fechaFin"`
}

func (r *RightsReceivedCertificate) Normalize() {
	r.From = sanitizer.SingleLine(r.From)
	r.To = sanitizer.SingleLine(r.To)
}

func (r *RightsReceivedCertificate) Validate() error {
	return validator.Apply(join(
		[]validator.Rule{
			validator.Required("fechaInicio", r.From),
			validator.Required("fechaFin", r.To),
		},
		validator.When(r.From != "", validator.ValidDate("fechaInicio", r.From)),
		validator.When(r.To != "",
			validator.ValidDate("fechaFin", r.To),
			validator.DateNotBefore("fechaFin", r.To, r.From),
		),
	)...)
}

// OtherCertificate requests a certificate not covered by the other types.
type OtherCertificate struct {
	Details string `json:"detallesCertificadoOtro"`
	Reason  string `json:"motivo"`
}

func (o *OtherCertificate) Normalize() {
	o.Details = sanitizer.MultiLine(o.Details)
	o.Reason = sanitizer.MultiLine(o.Reason)
}

func (o *OtherCertificate) Validate() error {
	return validator.Apply(join(
		requiredText("detallesCertificadoOtro", o.Details),
		requiredText("motivo", o.Reason),
	)...)
}

// Disaffiliation asks to leave the corporation.
type Disaffiliation struct {
	Reason string `json:"motivo"`
}

func (d *Disaffiliation) Normalize() { d.Reason = sanitizer.MultiLine(d.Reason) }

func (d *Disaffiliation) Validate() error {
	return validator.Apply(requiredText("motivo", d.Reason)...)
}

// Other is a free-form request.
type Other struct {
	Details string `json:"detalleSolicitud"`
}

func (o *Other) Normalize() { o.Details = sanitizer.MultiLine(o.Details) }

func (o *Other) Validate() error {
	return validator.Apply(requiredText("detalleSolicitud", o.Details)...)
}

func orNo(v string) string {
	if v == "" {
		return no
	}
	return v
}
