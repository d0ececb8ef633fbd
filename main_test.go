package main

import (
	"context"
	"log/slog"
	"testing"

	"github.com/danielhkuo/quickpost/cliparse"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name    string
		cfg     cliparse.Config
		wantErr bool
		debug   bool
	}{
		{name: "defaults", cfg: cliparse.Config{}},
		{name: "json debug", cfg: cliparse.Config{LogFormat: "json", LogLevel: "debug"}, debug: true},
		{name: "upper-case format", cfg: cliparse.Config{LogFormat: "TEXT", LogLevel: "warn"}},
		{name: "bad level", cfg: cliparse.Config{LogLevel: "loud"}, wantErr: true},
		{name: "bad format", cfg: cliparse.Config{LogFormat: "xml"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := newLogger(tt.cfg)
			if tt.wantErr {
				if err == nil {
					t.Fatal("Expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got := logger.Enabled(context.Background(), slog.LevelDebug); got != tt.debug {
				t.Errorf("Expected debug enabled=%v, got %v", tt.debug, got)
			}
		})
	}
}

func TestRootCommandHasSubcommands(t *testing.T) {
	root := newRootCmd()

	for _, name := range []string{"serve", "migrate"} {
		cmd, _, err := root.Find([]string{name})
		if err != nil {
			t.Fatalf("Find(%s) failed: %v", name, err)
		}
		if cmd.Name() != name {
			t.Errorf("Expected %s subcommand, got %s", name, cmd.Name())
		}
	}
}

func TestMigrateRequiresConfig(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "")

	if err := migrate(nil); err == nil {
		t.Fatal("Expected error without a database URL")
	}
}

func TestMigrateSQLite(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "")
	path := t.TempDir() + "/quickpost.db"

	if err := migrate([]string{"-t", "sqlite", "-d", path, "-jwt-secret", "x"}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
}
