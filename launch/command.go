package launch

import (
	"github.com/mlopskit/mlflow-launcher/config"
	"github.com/mlopskit/mlflow-launcher/store"
)

const (
	// ListenHost binds the tracking server to all interfaces.
	ListenHost = "0.0.0.0"
	// ListenPort is the fixed tracking-server port.
	ListenPort = "5000"
)

// Spec is a fully constructed tracking-server launch command.
type Spec struct {
	Binary string
	Args   []string
}

// Build constructs the launch command for the selected backend store.
// Exactly one of the two variants is produced:
//
//	remote: server --host 0.0.0.0 --port 5000 --default-artifact-root B --backend-store-uri U
//	local:  server --host 0.0.0.0 --port 5000 --default-artifact-root B
//
// The artifact root is forwarded as-is in both variants.
func Build(cfg *config.Config, d store.Descriptor) Spec {
	args := []string{
		"server",
		"--host", ListenHost,
		"--port", ListenPort,
		"--default-artifact-root", cfg.ArtifactRoot,
	}
	if d.Remote() {
		args = append(args, "--backend-store-uri", d.URI)
	}
	return Spec{Binary: cfg.ServerBinary, Args: args}
}
