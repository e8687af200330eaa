// cliparse/cliparse_test.go
package cliparse

import (
	"errors"
	"log/slog"
	"testing"
	"time"
)

func TestParseFlags_Defaults(t *testing.T) {
	t.Setenv("API_BASE", "")
	t.Setenv("DATABASE_TYPE", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("HTTP_TIMEOUT", "")
	t.Setenv("PORT", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.DatabaseType != "sqlite" || cfg.DatabaseURL != "imbtrack.db" {
		t.Errorf("unexpected database defaults %q %q", cfg.DatabaseType, cfg.DatabaseURL)
	}
	if cfg.HTTPTimeout != 30*time.Second {
		t.Errorf("expected 30s timeout, got %v", cfg.HTTPTimeout)
	}
	if cfg.Port != 3318 {
		t.Errorf("expected port 3318, got %d", cfg.Port)
	}
	if !errors.Is(cfg.RequireAPI(), ErrAPIBaseRequired) {
		t.Error("expected API base to be required")
	}
}

func TestParseFlags_EnvVars(t *testing.T) {
	t.Setenv("API_BASE", "https://track.example")
	t.Setenv("PORT", "9000")
	t.Setenv("HTTP_TIMEOUT", "5s")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.APIBase != "https://track.example" {
		t.Errorf("unexpected API base %q", cfg.APIBase)
	}
	if cfg.HTTPTimeout != 5*time.Second {
		t.Errorf("expected 5s, got %v", cfg.HTTPTimeout)
	}
	if level, _ := cfg.SlogLevel(); level != slog.LevelDebug {
		t.Errorf("expected debug level, got %v", level)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("API_BASE", "https://env.example")

	cfg, err := ParseFlags([]string{"-p", "8080", "--api-base", "https://flag.example", "-d", "file.db"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.APIBase != "https://flag.example" {
		t.Errorf("CLI should override env: got %q", cfg.APIBase)
	}
	if cfg.DatabaseURL != "file.db" {
		t.Errorf("unexpected database URL %q", cfg.DatabaseURL)
	}
}

func TestParseFlags_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{"bad port", map[string]string{"PORT": "abc"}, nil},
		{"bad timeout", map[string]string{"HTTP_TIMEOUT": "soon"}, nil},
		{"bad db type", nil, []string{"-t", "mysql"}},
		{"postgres without url", map[string]string{"DATABASE_URL": ""}, []string{"-t", "postgres"}},
		{"bad log level", nil, []string{"--log-level", "chatty"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PORT", "")
			t.Setenv("HTTP_TIMEOUT", "")
			t.Setenv("LOG_LEVEL", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := ParseFlags(tt.args); err == nil {
				t.Error("expected error")
			}
		})
	}
}
