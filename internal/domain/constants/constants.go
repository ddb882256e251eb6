// Package constants holds shared domain-level constant values.
package constants

const (
	// EnvDevelop marks the local development environment.
	EnvDevelop = "develop"

	// EnvProduction marks the production environment.
	EnvProduction = "production"
)

const (
	// PubSubProviderLocal publishes events to a local HTTP endpoint for development.
	PubSubProviderLocal = "local"

	// PubSubProviderGoogle publishes events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)
