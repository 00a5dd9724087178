package launch_test

import (
	"context"
	"testing"

	"github.com/mlopskit/mlflow-launcher/config"
	"github.com/mlopskit/mlflow-launcher/launch"
	"github.com/mlopskit/mlflow-launcher/logger"
)

func TestStartReturnsServerExitCode(t *testing.T) {
	cfg := &config.Config{ArtifactRoot: "s3://b", ServerBinary: "true"}
	cfg.ApplyDefaults()

	code, err := launch.Start(context.Background(), cfg, logger.NewDefault("test"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
}

func TestStartPropagatesFailure(t *testing.T) {
	cfg := &config.Config{ArtifactRoot: "s3://b", ServerBinary: "false"}
	cfg.ApplyDefaults()

	code, err := launch.Start(context.Background(), cfg, logger.NewDefault("test"))
	if err == nil {
		t.Fatal("expected error from failing server process")
	}
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
}
