// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"testing"
	"time"
)

func TestParseFlags_EnvVars(t *testing.T) {
	// Set env vars
	os.Setenv("PORT", "9000")
	os.Setenv("DATABASE_URL", "postgres://test")
	os.Setenv("JWT_SECRET", "test-secret")
	os.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "15")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.TokenTTL != 15*time.Minute {
		t.Errorf("expected token ttl 15m, got %s", cfg.TokenTTL)
	}
	if cfg.DatabaseType != DatabasePostgres {
		t.Errorf("expected default database type postgres, got %s", cfg.DatabaseType)
	}
	if cfg.CORSOrigin != "*" {
		t.Errorf("expected default CORS origin *, got %s", cfg.CORSOrigin)
	}
	if cfg.ConnectTimeout != 0 {
		t.Errorf("expected connect timeout 0, got %s", cfg.ConnectTimeout)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	os.Setenv("PORT", "9000")
	os.Setenv("DATABASE_TYPE", "pgx")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "file:test.db", "-t", "sqlite", "-jwt-secret", "s1", "-token-ttl", "1h", "-connect-timeout", "10s"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.DatabaseType != DatabaseSQLite {
		t.Errorf("CLI should override env: expected sqlite, got %s", cfg.DatabaseType)
	}
	if cfg.TokenTTL != time.Hour {
		t.Errorf("expected token ttl 1h, got %s", cfg.TokenTTL)
	}
	if cfg.ConnectTimeout != 10*time.Second {
		t.Errorf("expected connect timeout 10s, got %s", cfg.ConnectTimeout)
	}
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{"missing database url", map[string]string{"JWT_SECRET": "s"}, nil},
		{"missing jwt secret", map[string]string{"DATABASE_URL": "postgres://x"}, nil},
		{"bad port", map[string]string{"PORT": "abc", "DATABASE_URL": "postgres://x", "JWT_SECRET": "s"}, nil},
		{"unsupported type", map[string]string{"DATABASE_URL": "postgres://x", "JWT_SECRET": "s"}, []string{"-t", "mysql"}},
		{"bad ttl env", map[string]string{"DATABASE_URL": "postgres://x", "JWT_SECRET": "s", "ACCESS_TOKEN_EXPIRE_MINUTES": "-5"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()
			defer os.Clearenv()
			for k, v := range tt.env {
				os.Setenv(k, v)
			}

			if _, err := ParseFlags(tt.args); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
