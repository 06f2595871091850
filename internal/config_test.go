package internal

import (
	"testing"
)

func TestAppConfig_EmptyEnvDefaultsDevelopment(t *testing.T) {
	cfg := ApplicationConfig{Env: "", HTTP: HTTPConfig{Port: 8080}}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("empty env should default to development: %v", err)
	}
	if cfg.Env != EnvDevelopment {
		t.Errorf("env = %q, want %q", cfg.Env, EnvDevelopment)
	}
	if cfg.Production() {
		t.Error("development must not report production")
	}
}

func TestAppConfig_ProductionEnv(t *testing.T) {
	cfg := ApplicationConfig{Env: EnvProduction, HTTP: HTTPConfig{Port: 8080}}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("production env should pass: %v", err)
	}
	if !cfg.Production() {
		t.Error("production env should report production")
	}
}

func TestAppConfig_InvalidEnv(t *testing.T) {
	cfg := ApplicationConfig{Env: "staging", HTTP: HTTPConfig{Port: 8080}}
	if err := cfg.Validate(); err == nil {
		t.Fatal("invalid env should fail validation")
	}
}

func TestHTTPConfig_PortBounds(t *testing.T) {
	for _, port := range []int{0, -1, 70000} {
		cfg := HTTPConfig{Port: port}
		if err := cfg.Validate(); err == nil {
			t.Errorf("port %d should fail validation", port)
		}
	}
	cfg := HTTPConfig{Port: 8080}
	if err := cfg.Validate(); err != nil {
		t.Errorf("port 8080 should pass: %v", err)
	}
}

func TestSQLiteConfig_PathRequired(t *testing.T) {
	cfg := SQLiteConfig{Path: ""}
	if err := cfg.Validate(); err == nil {
		t.Fatal("empty sqlite path should fail validation")
	}
}

func TestCORSConfig_DefaultsToAnyOrigin(t *testing.T) {
	cfg := CORSConfig{}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "*" {
		t.Errorf("allowed origins = %v, want [*]", cfg.AllowedOrigins)
	}
}

func TestDefaultConfigValidates(t *testing.T) {
	cfg := NewDefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}
