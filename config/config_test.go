package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearLauncherEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"HOST", "PORT", "USERNAME", "PASSWORD", "DATABASE", "BUCKET", "MLFLOW_BIN", "LOG_LEVEL", "LOG_FORMAT", "LOG_OUTPUT", "LOG_NO_COLOR"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadRemoteVariableSet(t *testing.T) {
	clearLauncherEnv(t)
	t.Setenv("HOST", "db.example.com")
	t.Setenv("PORT", "3306")
	t.Setenv("USERNAME", "u")
	t.Setenv("PASSWORD", "p")
	t.Setenv("DATABASE", "mlflow")
	t.Setenv("BUCKET", "s3://bucket/path")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Backend.Host != "db.example.com" {
		t.Errorf("expected host 'db.example.com', got %q", cfg.Backend.Host)
	}
	if cfg.Backend.Port != "3306" || cfg.Backend.Username != "u" || cfg.Backend.Password != "p" || cfg.Backend.Database != "mlflow" {
		t.Errorf("backend variables not bound: %+v", cfg.Backend)
	}
	if cfg.ArtifactRoot != "s3://bucket/path" {
		t.Errorf("expected artifact root 's3://bucket/path', got %q", cfg.ArtifactRoot)
	}
}

func TestLoadLocalVariableSet(t *testing.T) {
	clearLauncherEnv(t)
	t.Setenv("BUCKET", "s3://bucket/path")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Backend.Host != "" {
		t.Errorf("expected empty host, got %q", cfg.Backend.Host)
	}
	if cfg.ArtifactRoot != "s3://bucket/path" {
		t.Errorf("expected artifact root 's3://bucket/path', got %q", cfg.ArtifactRoot)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearLauncherEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ServerBinary != "mlflow" {
		t.Errorf("expected default binary 'mlflow', got %q", cfg.ServerBinary)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected default log level 'info', got %q", cfg.Logging.Level)
	}
}

func TestLoadEnvFile(t *testing.T) {
	clearLauncherEnv(t)

	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	content := "HOST=from-dotenv\nBUCKET=s3://dotenv-bucket\n"
	if err := os.WriteFile(envFile, []byte(content), 0o600); err != nil {
		t.Fatalf("writing env file: %v", err)
	}

	cfg, err := Load(WithEnvFile(envFile))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Backend.Host != "from-dotenv" {
		t.Errorf("expected host from .env, got %q", cfg.Backend.Host)
	}
	if cfg.ArtifactRoot != "s3://dotenv-bucket" {
		t.Errorf("expected bucket from .env, got %q", cfg.ArtifactRoot)
	}
}

func TestLoadEnvWinsOverEnvFile(t *testing.T) {
	clearLauncherEnv(t)
	t.Setenv("HOST", "from-env")

	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	if err := os.WriteFile(envFile, []byte("HOST=from-dotenv\n"), 0o600); err != nil {
		t.Fatalf("writing env file: %v", err)
	}

	cfg, err := Load(WithEnvFile(envFile))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Backend.Host != "from-env" {
		t.Errorf("expected real env to win over .env, got %q", cfg.Backend.Host)
	}
}

func TestLoadUnreadableEnvFileIsWarning(t *testing.T) {
	clearLauncherEnv(t)
	t.Setenv("BUCKET", "s3://b")

	cfg, err := Load(WithEnvFile(filepath.Join(t.TempDir(), "missing.env")))
	if err != nil {
		t.Fatalf("missing .env must not be fatal: %v", err)
	}
	if cfg.ArtifactRoot != "s3://b" {
		t.Errorf("expected env to load anyway, got %q", cfg.ArtifactRoot)
	}
}

func TestValidateSkipsBackendFields(t *testing.T) {
	// Partial remote configuration is forwarded, never rejected.
	cfg := &Config{Backend: BackendConfig{Host: "db"}}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("partial backend config must validate: %v", err)
	}
}

func TestValidateRejectsBadLogLevel(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()
	cfg.Logging.Level = "loud"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for invalid log level")
	}
}
