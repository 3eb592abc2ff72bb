package shared

import "os"

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string
}

func Load() Config {
	return Config{
		AppEnv:      env("APP_ENV", "prod"),
		HTTPAddr:    env("HTTP_ADDR", "127.0.0.1:8000"),
		MetricsAddr: env("METRICS_ADDR", ""), // empty disables the metrics listener
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
