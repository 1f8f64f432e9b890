// Package constants holds values shared across layers.
package constants

// Deployment environments.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Echo context keys set by the auth middleware.
const (
	ContextKeyUserID = "userID"
)
