package model

// Environment names used for mode switching.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Scope carries the authenticated caller's identity through every layer.
// Token is the raw bearer token, forwarded to the enrichment webhook.
type Scope struct {
	UserID string
	Email  string
	Token  string
}
