// README: Config loader with env defaults for the HTTP server and logging.
package config

import "os"

type Config struct {
	HTTP struct {
		Addr string
	}
	Log struct {
		Level string
	}
}

func Load() (Config, error) {
	var cfg Config
	cfg.HTTP.Addr = envOrDefault("SUBE_HTTP_ADDR", ":8080")
	cfg.Log.Level = envOrDefault("SUBE_LOG_LEVEL", "info")
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
