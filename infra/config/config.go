package config

import "os"

const defaultServiceName = "shopping-cart"

type Config struct {
	LogLevel     string
	CatalogFile  string
	LokiURL      string
	ServiceName  string
	OTLPEndpoint string
}

func Load() Config {
	return Config{
		LogLevel:     getEnv("LOG_LEVEL", "warn"),
		CatalogFile:  getEnv("CART_CATALOG_FILE", ""),
		LokiURL:      getEnv("LOKI_URL", ""),
		ServiceName:  getEnv("OTEL_SERVICE_NAME", defaultServiceName),
		OTLPEndpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
