package config_test

import (
	"testing"

	"github.com/instashare/backend/pkg/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("MONGO_URI", "")
	t.Setenv("MONGO_DATABASE", "")

	cfg := config.Load()
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want %q", cfg.Port, "8080")
	}
	if cfg.MongoURI != "mongodb://127.0.0.1:27017" {
		t.Errorf("MongoURI = %q", cfg.MongoURI)
	}
	if cfg.MongoDatabase != "instashare" {
		t.Errorf("MongoDatabase = %q, want %q", cfg.MongoDatabase, "instashare")
	}
	if cfg.Env != "development" {
		t.Errorf("Env = %q, want %q", cfg.Env, "development")
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("MONGO_DATABASE", "instashare_test")
	t.Setenv("JWT_SECRET", "a-real-secret")

	cfg := config.Load()
	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want %q", cfg.Port, "9090")
	}
	if cfg.MongoDatabase != "instashare_test" {
		t.Errorf("MongoDatabase = %q, want %q", cfg.MongoDatabase, "instashare_test")
	}
	if cfg.JWTSecret != "a-real-secret" {
		t.Errorf("JWTSecret = %q, want %q", cfg.JWTSecret, "a-real-secret")
	}
}
