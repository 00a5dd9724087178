package launch

import (
	"context"

	"github.com/google/uuid"

	"github.com/mlopskit/mlflow-launcher/config"
	"github.com/mlopskit/mlflow-launcher/logger"
	"github.com/mlopskit/mlflow-launcher/store"
)

// Start performs the one-shot bootstrap dispatch: select the backend
// store from the configuration, build the matching launch command, and
// run the tracking server in the foreground until it exits or the
// context is canceled.
//
// The branch decision is made exactly once. Start never retries, never
// falls back to the other branch, and returns the server's exit code.
func Start(ctx context.Context, cfg *config.Config, log *logger.Logger) (int, error) {
	desc := store.Select(cfg.Backend)
	spec := Build(cfg, desc)

	fields := map[string]interface{}{
		"launch_id":     uuid.NewString(),
		"backend":       string(desc.Kind),
		"artifact_root": cfg.ArtifactRoot,
		"listen":        ListenHost + ":" + ListenPort,
	}
	if desc.Remote() {
		fields["backend_store_uri"] = desc.RedactedURI
	}
	log.Info("Starting tracking server", fields)

	result, err := Run(ctx, Command{
		Binary: spec.Binary,
		Args:   spec.Args,
	})
	if result == nil {
		return 1, err
	}
	return result.ExitCode, err
}
