package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"LOG_LEVEL", "CART_CATALOG_FILE", "LOKI_URL", "OTEL_SERVICE_NAME", "OTEL_EXPORTER_OTLP_ENDPOINT"} {
		t.Setenv(key, "")
	}
	cfg := Load()
	if cfg.LogLevel != "warn" {
		t.Errorf("Expected log level warn, got %q", cfg.LogLevel)
	}
	if cfg.ServiceName != defaultServiceName {
		t.Errorf("Expected service name %q, got %q", defaultServiceName, cfg.ServiceName)
	}
	if cfg.CatalogFile != "" || cfg.LokiURL != "" || cfg.OTLPEndpoint != "" {
		t.Errorf("Expected optional settings to be empty, got %+v", cfg)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CART_CATALOG_FILE", "/etc/cart/catalog.yaml")
	t.Setenv("LOKI_URL", "http://loki:3100")
	t.Setenv("OTEL_SERVICE_NAME", "cart-demo")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "http://collector:4318")

	cfg := Load()
	want := Config{
		LogLevel:     "debug",
		CatalogFile:  "/etc/cart/catalog.yaml",
		LokiURL:      "http://loki:3100",
		ServiceName:  "cart-demo",
		OTLPEndpoint: "http://collector:4318",
	}
	if cfg != want {
		t.Errorf("Expected %+v, got %+v", want, cfg)
	}
}
