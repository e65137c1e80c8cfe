package config

import "time"

// DefaultTokenIssuer is the "iss" claim used when none is configured.
const DefaultTokenIssuer = "go-rest-boilerplate"

// defaults returns the lowest-priority configuration source.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Env:        EnvProduction,
			APIVersion: "1",
			LogLevel:   "info",
		},
		Auth: Auth{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: time.Hour,
			SaltRounds:    10,
		},
		Storage: Storage{
			DB: DB{
				Driver: DriverMemory,
			},
		},
		Server: Server{
			HTTPAddress:     ":8080",
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		RateLimit: RateLimit{
			Window:        15 * time.Minute,
			Limit:         100,
			CriticalLimit: 20,
			DelayAfter:    5,
			DelayStep:     100 * time.Millisecond,
			SkipIPs:       []string{"127.0.0.1", "::1"},
		},
		Workers: Workers{
			LimiterSweepInterval: time.Minute,
			HealthProbeInterval:  15 * time.Second,
		},
	}
}
