package model

// Scope identifies the caller of a request. There is no authentication: the
// user id arrives in the X-Sharer-User-Id header and is trusted as-is.
type Scope struct {
	UserID int64
}

// Environment is the deployment environment name.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
