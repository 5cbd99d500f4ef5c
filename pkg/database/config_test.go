package database_test

import (
	"strings"
	"testing"

	"github.com/vitrine-ai/vitrine/pkg/database"
)

func TestFinalizeDefaults(t *testing.T) {
	cfg := &database.Config{Name: "vitrine", User: "vitrine"}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	if cfg.Host != "localhost" {
		t.Errorf("host: got %q, want localhost", cfg.Host)
	}
	if cfg.Port != 5432 {
		t.Errorf("port: got %d, want 5432", cfg.Port)
	}
	if cfg.SSLMode != "disable" {
		t.Errorf("ssl_mode: got %q, want disable", cfg.SSLMode)
	}
	if cfg.MaxOpenConns != 25 {
		t.Errorf("max_open_conns: got %d, want 25", cfg.MaxOpenConns)
	}
}

func TestEnabled(t *testing.T) {
	tests := []struct {
		name string
		cfg  database.Config
		want bool
	}{
		{"name and user", database.Config{Name: "vitrine", User: "vitrine"}, true},
		{"missing name", database.Config{User: "vitrine"}, false},
		{"missing user", database.Config{Name: "vitrine"}, false},
		{"empty", database.Config{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.Enabled(); got != tt.want {
				t.Errorf("Enabled() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDsn(t *testing.T) {
	cfg := &database.Config{Name: "vitrine", User: "app", Password: "secret"}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	dsn := cfg.Dsn()
	for _, part := range []string{"host=localhost", "port=5432", "dbname=vitrine", "user=app", "sslmode=disable"} {
		if !strings.Contains(dsn, part) {
			t.Errorf("dsn missing %q: %s", part, dsn)
		}
	}
}

func TestFinalizeEnvOverride(t *testing.T) {
	t.Setenv("TEST_DB_HOST", "db.internal")
	t.Setenv("TEST_DB_PORT", "5433")

	cfg := &database.Config{Name: "vitrine", User: "vitrine"}
	env := &database.Env{Host: "TEST_DB_HOST", Port: "TEST_DB_PORT"}

	if err := cfg.Finalize(env); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	if cfg.Host != "db.internal" {
		t.Errorf("host: got %q, want db.internal", cfg.Host)
	}
	if cfg.Port != 5433 {
		t.Errorf("port: got %d, want 5433", cfg.Port)
	}
}

func TestFinalizeInvalidDuration(t *testing.T) {
	cfg := &database.Config{Name: "vitrine", User: "vitrine", ConnTimeout: "bogus"}
	if err := cfg.Finalize(nil); err == nil {
		t.Error("expected error for invalid conn_timeout")
	}
}

func TestMerge(t *testing.T) {
	cfg := &database.Config{Host: "localhost", Port: 5432, Name: "vitrine", User: "vitrine"}
	cfg.Merge(&database.Config{Host: "prodhost", Password: "secret"})

	if cfg.Host != "prodhost" {
		t.Errorf("host: got %q, want prodhost", cfg.Host)
	}
	if cfg.Port != 5432 {
		t.Errorf("port: got %d, want 5432", cfg.Port)
	}
	if cfg.Password != "secret" {
		t.Errorf("password: got %q, want secret", cfg.Password)
	}
}
