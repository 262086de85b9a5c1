// Package config loads typed configuration from environment variables.
//
// Struct fields are bound with github.com/caarlos0/env tags and an optional
// .env file is read with github.com/joho/godotenv. Load caches each
// configuration type so repeated calls are cheap; Parse skips the cache and
// accepts an explicit environment, which suits tests:
//
//	cfg, err := config.Parse[authform.Config](config.WithEnvironment(map[string]string{
//		"API_URL": "http://localhost:5050/api",
//	}))
package config
