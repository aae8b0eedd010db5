// Package config loads environment-backed configuration structs.
//
// A .env file is loaded once per process (best-effort, missing files are
// fine), after which struct fields annotated with `env` tags are populated
// via github.com/caarlos0/env.
//
// Example:
//
//	type APIConfig struct {
//	    BaseURL string        `env:"API_BASE_URL,required"`
//	    Timeout time.Duration `env:"API_TIMEOUT" envDefault:"15s"`
//	}
//
//	var cfg APIConfig
//	if err := config.Load(&cfg); err != nil {
//	    // handle error
//	}
package config
