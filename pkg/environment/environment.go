package environment

import (
	"fmt"
	"strings"
)

// Environment represents the deployment environment of the portal.
type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Production  Environment = "production"
)

// Parse maps an environment name or its short alias to an Environment.
func Parse(name string) (Environment, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "dev", string(Development):
		return Development, nil
	case "stage", string(Staging):
		return Staging, nil
	case "prod", string(Production):
		return Production, nil
	default:
		return "", fmt.Errorf("unknown environment %q", name)
	}
}

// UnmarshalText lets Environment be loaded straight from env variables.
func (e *Environment) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

func (e Environment) String() string { return string(e) }

func (e Environment) IsProduction() bool { return e == Production }

func (e Environment) IsDevelopment() bool { return e == Development || e == "" }
