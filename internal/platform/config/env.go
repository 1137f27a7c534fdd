// Package config loads process configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every env tag, nested structs included, so
// `env:"OTEL_ENDPOINT"` reads MAPREG_OTEL_ENDPOINT.
const EnvPrefix = "MAPREG_"

// ParseEnv fills target from MAPREG_-prefixed environment variables.
func ParseEnv(target any) error {
	return parseEnv(target, env.Options{Prefix: EnvPrefix})
}

func parseEnv(target any, opts env.Options) error {
	if target == nil {
		return fmt.Errorf("parse env: target is required")
	}
	if err := env.ParseWithOptions(target, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
