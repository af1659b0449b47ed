package wizard

// Crumb is one entry of the breadcrumb trail.
type Crumb struct {
	Step  Step   `json:"step"`
	Label string `json:"label"`
}

// State is the full navigation state of one wizard session. It is a plain
// value: every operation returns a new State and leaves its input intact.
type State struct {
	Step       Step      `json:"step"`
	Breadcrumb []Crumb   `json:"breadcrumb"`
	Identity   *Identity `json:"identity,omitempty"`
}

// Start returns the state of a fresh session on the identity screen.
func Start() State {
	return at(StepValidation, nil)
}

// Identified reports whether the state carries an identity that still validates.
func (s State) Identified() bool {
	return s.Identity != nil && s.Identity.Validate() == nil
}

func at(step Step, id *Identity) State {
	return State{Step: step, Breadcrumb: breadcrumb(step), Identity: id}
}

// breadcrumb is empty before identification, as the trail starts at inicio.
func breadcrumb(step Step) []Crumb {
	if step == StepValidation {
		return []Crumb{}
	}
	path := step.Path()
	crumbs := make([]Crumb, len(path))
	for i, s := range path {
		crumbs[i] = Crumb{Step: s, Label: s.Label()}
	}
	return crumbs
}
