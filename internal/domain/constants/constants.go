// Package constants defines shared application-level constants.
package constants

// Deployment environments.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub provider types.
const (
	PubSubProviderGoogle = "google"
	PubSubProviderLocal  = "local"
)

// Routing profiles accepted by the route provider.
const (
	ProfileCar = "driving-car"
	ProfileHGV = "driving-hgv"
)
