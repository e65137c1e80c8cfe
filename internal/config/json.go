package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the JSON configuration file.
type StructuredJSONConfig struct {
	App struct {
		Env        string `json:"env"`
		APIVersion string `json:"api_version"`
		LogLevel   string `json:"log_level"`
		Version    string `json:"version"`
	} `json:"app,omitempty"`

	Auth struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		SaltRounds    int      `json:"salt_rounds"`
	} `json:"auth,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		GRPCAddress     string   `json:"grpc_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
		TrustedProxies  []string `json:"trusted_proxies"`
	} `json:"server,omitempty"`

	RateLimit struct {
		Window        Duration `json:"window"`
		Limit         int      `json:"limit"`
		CriticalLimit int      `json:"critical_limit"`
		DelayAfter    int      `json:"delay_after"`
		DelayStep     Duration `json:"delay_step"`
		SkipIPs       []string `json:"skip_ips"`
	} `json:"rate_limit,omitempty"`

	Workers struct {
		LimiterSweepInterval Duration `json:"limiter_sweep_interval"`
		HealthProbeInterval  Duration `json:"health_probe_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Env:        jsonCfg.App.Env,
			APIVersion: jsonCfg.App.APIVersion,
			LogLevel:   jsonCfg.App.LogLevel,
			Version:    jsonCfg.App.Version,
		},
		Auth: Auth{
			TokenSignKey:  jsonCfg.Auth.TokenSignKey,
			TokenIssuer:   jsonCfg.Auth.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.Auth.TokenDuration),
			SaltRounds:    jsonCfg.Auth.SaltRounds,
		},
		Storage: Storage{
			DB: DB{
				Driver: jsonCfg.Storage.DB.Driver,
				DSN:    jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			GRPCAddress:     jsonCfg.Server.GRPCAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
			TrustedProxies:  jsonCfg.Server.TrustedProxies,
		},
		RateLimit: RateLimit{
			Window:        time.Duration(jsonCfg.RateLimit.Window),
			Limit:         jsonCfg.RateLimit.Limit,
			CriticalLimit: jsonCfg.RateLimit.CriticalLimit,
			DelayAfter:    jsonCfg.RateLimit.DelayAfter,
			DelayStep:     time.Duration(jsonCfg.RateLimit.DelayStep),
			SkipIPs:       jsonCfg.RateLimit.SkipIPs,
		},
		Workers: Workers{
			LimiterSweepInterval: time.Duration(jsonCfg.Workers.LimiterSweepInterval),
			HealthProbeInterval:  time.Duration(jsonCfg.Workers.HealthProbeInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as from integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
