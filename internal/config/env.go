package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the environment following the `env` and
// `envPrefix` tags of [StructuredConfig] (APP_ENV, AUTH_TOKEN_SIGN_KEY,
// RATE_LIMIT_WINDOW, ...). Unset variables leave fields untouched.
func parseEnv(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}
	return nil
}
