package requests

import (
	"fmt"
	"slices"
	"strings"

	"github.com/atnchile/portal/pkg/sanitizer"
	"github.com/atnchile/portal/pkg/validator"
	"github.com/atnchile/portal/svc/refdata"
)

const countryChile = "Chile"

// Bank types.
const (
	BankNational = "nacional"
	BankForeign  = "extranjero"
)

// PersonalData updates the author's name, pseudonym or gender. A name
// change must be explained in the remarks.
type PersonalData struct {
	Fields  PersonalFields `json:"campos"`
	Remarks string         `json:"observaciones"`
}

type PersonalFields struct {
	Name      string `json:"nombre,omitempty"`
	Pseudonym string `json:"seudonimo,omitempty"`
	Gender    string `json:"genero,omitempty"`
}

func (p *PersonalData) Normalize() {
	p.Fields.Name = sanitizer.SingleLine(p.Fields.Name)
	p.Fields.Pseudonym = sanitizer.SingleLine(p.Fields.Pseudonym)
	p.Fields.Gender = sanitizer.SingleLine(p.Fields.Gender)
	p.Remarks = sanitizer.MultiLine(p.Remarks)
}

func (p *PersonalData) Validate() error {
	f := p.Fields
	return validator.Apply(join(
		[]validator.Rule{
			rule("campos", "request.personal_empty", "at least one field must be updated",
				f.Name != "" || f.Pseudonym != "" || f.Gender != ""),
			line("campos.nombre", f.Name),
			line("campos.seudonimo", f.Pseudonym),
			line("campos.genero", f.Gender),
			text("observaciones", p.Remarks),
		},
		validator.When(f.Name != "",
			rule("observaciones", "request.personal_reason", "a name change needs a reason", strings.TrimSpace(p.Remarks) != ""),
		),
	)...)
}

// ContactData updates the postal address, email or phone. Chilean addresses
// carry region and comuna; foreign ones carry estado and distrito.
type ContactData struct {
	Fields  ContactFields `json:"campos"`
	Remarks string        `json:"observaciones"`
}

type ContactFields struct {
	Country  string `json:"pais,omitempty"`
	Region   string `json:"region,omitempty"`
	Commune  string `json:"comuna,omitempty"`
	State    string `json:"estado,omitempty"`
	District string `json:"distrito,omitempty"`
	Address  string `json:"direccion,omitempty"`
	Unit     string `json:"deptoCasaOficina,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"telefono,omitempty"`
}

// HasAddress reports whether the address is being updated.
func (f ContactFields) HasAddress() bool {
	return f.Country != "" || f.Address != "" || f.Region != "" || f.Commune != "" ||
		f.State != "" || f.District != "" || f.Unit != ""
}

func (c *ContactData) Normalize() {
	f := &c.Fields
	for _, v := range []*string{&f.Country, &f.Region, &f.Commune, &f.State, &f.District, &f.Address, &f.Unit, &f.Phone} {
		*v = sanitizer.SingleLine(*v)
	}
	f.Email = strings.ToLower(sanitizer.SingleLine(f.Email))
	c.Remarks = sanitizer.MultiLine(c.Remarks)

	if f.Country == countryChile {
		f.State, f.District = "", ""
	} else if f.Country != "" {
		f.Region, f.Commune = "", ""
	}
}

func (c *ContactData) Validate() error {
	f := c.Fields
	address := f.HasAddress()
	chile := f.Country == countryChile

	return validator.Apply(join(
		[]validator.Rule{
			rule("campos", "request.contact_empty", "at least one contact field must be updated",
				address || f.Email != "" || f.Phone != ""),
			text("observaciones", c.Remarks),
		},
		validator.When(address, join(
			requiredLine("campos.pais", f.Country),
			requiredLine("campos.direccion", f.Address),
			[]validator.Rule{line("campos.deptoCasaOficina", f.Unit)},
		)...),
		validator.When(address && chile, join(
			requiredLine("campos.region", f.Region),
			requiredLine("campos.comuna", f.Commune),
		)...),
		validator.When(address && !chile && f.Country != "", join(
			requiredLine("campos.estado", f.State),
			requiredLine("campos.distrito", f.District),
		)...),
		validator.When(f.Email != "", validator.ValidEmail("campos.email", f.Email)),
		validator.When(f.Phone != "", validator.ValidPhone("campos.telefono", f.Phone)),
	)...)
}

func (c *ContactData) catalogRules(cat Catalog) []validator.Rule {
	f := c.Fields
	if !f.HasAddress() || f.Country == "" {
		return nil
	}
	return join(
		[]validator.Rule{known("campos.pais", "unknown country", func() bool { return cat.HasCountry(f.Country) })},
		validator.When(f.Country == countryChile && f.Region != "" && f.Commune != "",
			known("campos.comuna", "comuna does not belong to region", func() bool { return cat.HasCommune(f.Region, f.Commune) }),
		),
	)
}

// BankData updates the account royalties are paid into.
type BankData struct {
	Fields  BankFields `json:"campos"`
	Remarks string     `json:"observaciones"`
}

type BankFields struct {
	BankType      string `json:"tipo-banco"`
	Bank          string `json:"banco"`
	AccountNumber string `json:"numero-cuenta"`
	AccountType   string `json:"tipo-cuenta,omitempty"`
	Country       string `json:"pais,omitempty"`
	BankAddress   string `json:"direccion-banco,omitempty"`
	SwiftIBAN     string `json:"swift-iban,omitempty"`
}

// needsAccountType reports whether the account is held in Chile.
func (f BankFields) needsAccountType() bool {
	return f.BankType == BankNational || (f.BankType == BankForeign && f.Country == countryChile)
}

func (b *BankData) Normalize() {
	f := &b.Fields
	for _, v := range []*string{&f.BankType, &f.Bank, &f.AccountNumber, &f.AccountType, &f.Country, &f.BankAddress} {
		*v = sanitizer.SingleLine(*v)
	}
	f.SwiftIBAN = strings.ToUpper(strings.Join(strings.Fields(sanitizer.SingleLine(f.SwiftIBAN)), ""))
	b.Remarks = sanitizer.MultiLine(b.Remarks)

	switch {
	case f.BankType == BankNational:
		f.Country, f.BankAddress, f.SwiftIBAN = "", "", ""
	case f.needsAccountType():
		f.BankAddress, f.SwiftIBAN = "", ""
	case f.BankType == BankForeign:
		f.AccountType = ""
	}
}

func (b *BankData) Validate() error {
	f := b.Fields
	foreign := f.BankType == BankForeign

	return validator.Apply(join(
		[]validator.Rule{
			validator.Required("campos.tipo-banco", f.BankType),
		},
		validator.When(f.BankType != "", validator.OneOf("campos.tipo-banco", f.BankType, []string{BankNational, BankForeign})),
		requiredLine("campos.banco", f.Bank),
		requiredLine("campos.numero-cuenta", f.AccountNumber),
		[]validator.Rule{text("observaciones", b.Remarks)},
		validator.When(f.needsAccountType(), requiredLine("campos.tipo-cuenta", f.AccountType)...),
		validator.When(foreign, requiredLine("campos.pais", f.Country)...),
		validator.When(foreign && f.Country != "" && f.Country != countryChile, join(
			requiredLine("campos.swift-iban", f.SwiftIBAN),
			[]validator.Rule{
				validator.MaxLen("campos.swift-iban", f.SwiftIBAN, 34),
				line("campos.direccion-banco", f.BankAddress),
			},
		)...),
	)...)
}

func (b *BankData) catalogRules(cat Catalog) []validator.Rule {
	f := b.Fields
	return validator.When(f.BankType == BankForeign && f.Country != "",
		known("campos.pais", "unknown country", func() bool { return cat.HasCountry(f.Country) }),
	)
}

// AuthorScope updates the author's scopes and classes. When both scopes are
// chosen, at least one class of each is required.
type AuthorScope struct {
	Fields  AuthorScopeFields `json:"campos"`
	Remarks string            `json:"observaciones"`
}

type AuthorScopeFields struct {
	Scopes  []string `json:"ambitos"`
	Classes []string `json:"clases"`
}

func (a *AuthorScope) Normalize() {
	a.Fields.Scopes = unique(sanitizer.Slice(a.Fields.Scopes, sanitizer.SingleLine))
	a.Fields.Classes = unique(sanitizer.Slice(a.Fields.Classes, sanitizer.SingleLine))
	a.Remarks = sanitizer.MultiLine(a.Remarks)
}

func (a *AuthorScope) Validate() error {
	f := a.Fields

	var allowed []string
	for _, scope := range f.Scopes {
		if classes, err := refdata.Classes(scope); err == nil {
			allowed = append(allowed, classes...)
		}
	}

	rules := join(
		[]validator.Rule{
			rule("campos.ambitos", "request.author_empty", "at least one scope must be selected", len(f.Scopes) > 0),
			validator.AllOf("campos.ambitos", f.Scopes, refdata.Scopes()),
			validator.RequiredSlice("campos.clases", f.Classes),
			validator.AllOf("campos.clases", f.Classes, allowed),
		},
		requiredText("observaciones", a.Remarks),
	)

	if len(f.Scopes) > 1 {
		for _, scope := range f.Scopes {
			classes, err := refdata.Classes(scope)
			if err != nil {
				continue
			}
			has := slices.ContainsFunc(f.Classes, func(c string) bool { return slices.Contains(classes, c) })
			rules = append(rules, rule("campos.clases", "request.author_class",
				fmt.Sprintf("at least one %s class must be selected", scope), has, "scope", scope))
		}
	}
	return validator.Apply(rules...)
}

// Society is one collective management society the author belongs to.
// Name holds refdata.OtherSociety when the society is not on file, with the
// actual name in OtherName.
type Society struct {
	Name      string `json:"sociedad"`
	OtherName string `json:"otraSociedad,omitempty"`
	Country   string `json:"pais"`
	Scope     string `json:"ambito"`
	Class     string `json:"clase"`
}

// AuthorSocieties declares the author's memberships in foreign societies.
type AuthorSocieties struct {
	Societies []Society `json:"sociedades"`
	Remarks   string    `json:"observaciones"`
}

func (a *AuthorSocieties) Normalize() {
	for i := range a.Societies {
		s := &a.Societies[i]
		for _, v := range []*string{&s.Name, &s.OtherName, &s.Country, &s.Scope, &s.Class} {
			*v = sanitizer.SingleLine(*v)
		}
		if s.Name == refdata.OtherSociety {
			s.Name, s.OtherName = s.OtherName, ""
		}
	}
	a.Remarks = sanitizer.MultiLine(a.Remarks)
}

func (a *AuthorSocieties) Validate() error {
	rules := []validator.Rule{
		rule("sociedades", "request.societies_empty", "at least one society is required", len(a.Societies) > 0),
		text("observaciones", a.Remarks),
	}
	for i, s := range a.Societies {
		classes, _ := refdata.Classes(s.Scope)
		rules = append(rules, validator.Nested(fmt.Sprintf("sociedades[%d].", i), join(
			requiredLine("sociedad", s.Name),
			requiredLine("pais", s.Country),
			[]validator.Rule{validator.Required("ambito", s.Scope)},
			validator.When(s.Scope != "", validator.OneOf("ambito", s.Scope, refdata.Scopes())),
			[]validator.Rule{validator.Required("clase", s.Class)},
			validator.When(s.Class != "" && classes != nil, validator.OneOf("clase", s.Class, classes)),
		)...)...)
	}
	return validator.Apply(rules...)
}
