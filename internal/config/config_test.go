package config

import (
	"testing"
	"time"
)

func TestLoad_RequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatal("Load() should fail when JWT_SECRET is not set")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.Environment != "development" {
		t.Errorf("Environment = %q, want %q", cfg.Environment, "development")
	}
	if cfg.PessoaCollection != "pessoas" {
		t.Errorf("PessoaCollection = %q, want %q", cfg.PessoaCollection, "pessoas")
	}
	if cfg.CounterCollection != "counters" {
		t.Errorf("CounterCollection = %q, want %q", cfg.CounterCollection, "counters")
	}
	if cfg.JWTExpiration != 3*time.Hour {
		t.Errorf("JWTExpiration = %v, want 3h", cfg.JWTExpiration)
	}
	if cfg.JWTSecret != "secret" {
		t.Errorf("JWTSecret = %q, want %q", cfg.JWTSecret, "secret")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("PORT", "9090")
	t.Setenv("MONGODB_PESSOA_COLLECTION", "registros")
	t.Setenv("JWT_EXPIRATION", "30m")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Port != 9090 {
		t.Errorf("Port = %d, want 9090", cfg.Port)
	}
	if cfg.PessoaCollection != "registros" {
		t.Errorf("PessoaCollection = %q, want %q", cfg.PessoaCollection, "registros")
	}
	if cfg.JWTExpiration != 30*time.Minute {
		t.Errorf("JWTExpiration = %v, want 30m", cfg.JWTExpiration)
	}
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("PORT", "not-a-number")

	if _, err := Load(); err == nil {
		t.Fatal("Load() should fail on invalid PORT")
	}
}
