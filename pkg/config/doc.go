// Package config loads typed configuration from environment variables.
//
// Struct fields are bound with caarlos0/env tags and an optional .env file
// is read through godotenv. Load caches one value per configuration type so
// packages can ask for their configuration without threading it through
// every constructor; Parse skips the cache.
package config
