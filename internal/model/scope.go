package model

// Environment identifies the deployment environment.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Scope carries the caller identity for a request. The engine only uses it
// to key session state; authentication is an external concern.
type Scope struct {
	UserID    string
	SessionID string
}
