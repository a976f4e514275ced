package victoriaos

import "fmt"

// Environment selects which VictoriaOS deployment the credential talks to.
type Environment string

const (
	EnvironmentProduction  Environment = "produccion"
	EnvironmentDevelopment Environment = "desarrollo"
)

// Valid reports whether e is one of the known environments.
func (e Environment) Valid() bool {
	return e == EnvironmentProduction || e == EnvironmentDevelopment
}

// Credentials is the stored credential record. Only these two fields are read.
type Credentials struct {
	APIKey      string      `json:"apiKey" yaml:"apiKey"`
	Environment Environment `json:"entorno" yaml:"entorno"`
}

// BaseURL resolves the API root for the credential's environment.
func (c Credentials) BaseURL() string {
	return ResolveBaseURL(c.Environment)
}

// Validate checks the credential can be used to authenticate.
func (c Credentials) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	if c.Environment != "" && !c.Environment.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownEnvironment, c.Environment)
	}
	return nil
}

// ResolveBaseURL maps an environment to its base URL. Anything other than
// development resolves to production.
func ResolveBaseURL(env Environment) string {
	if env == EnvironmentDevelopment {
		return DevelopmentBaseURL
	}
	return ProductionBaseURL
}
