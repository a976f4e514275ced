package model

// Environment is the deployment environment of this service.
type Environment string

const (
	EnvironmentProduction  Environment = "production"
	EnvironmentDevelopment Environment = "development"
)

// Scope identifies the trigger instance that owns persisted state.
type Scope struct {
	// ID is unique per trigger instance, e.g. "<workflow>/<node>".
	ID string
	// WorkflowName is used for auto-generated descriptions.
	WorkflowName string
}
