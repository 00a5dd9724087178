package config

import (
	"github.com/mlopskit/mlflow-launcher/logger"
)

// BackendConfig holds the remote backend store variables. All fields are
// optional: Host decides the branch, the rest are forwarded untouched.
type BackendConfig struct {
	Host     string `yaml:"host" mapstructure:"host"`
	Port     string `yaml:"port" mapstructure:"port"`
	Username string `yaml:"username" mapstructure:"username"`
	Password string `yaml:"password" mapstructure:"password"`
	Database string `yaml:"database" mapstructure:"database"`
}

// Config is the launcher configuration, read once at process start and
// immutable afterwards.
type Config struct {
	Backend      BackendConfig `yaml:"backend" mapstructure:"backend"`
	ArtifactRoot string        `yaml:"artifact_root" mapstructure:"artifact_root"`
	ServerBinary string        `yaml:"server_binary" mapstructure:"server_binary"`
	Logging      logger.Config `yaml:"logging" mapstructure:"logging"`
}

// ApplyDefaults applies default values. Backend values get no defaults:
// an absent HOST is meaningful (it selects the local branch).
func (c *Config) ApplyDefaults() {
	if c.ServerBinary == "" {
		c.ServerBinary = "mlflow"
	}
	c.Logging.ApplyDefaults()
}

// Validate validates the launcher's own configuration. The backend
// variable set is deliberately not validated here: partial remote
// configuration is forwarded and fails inside the tracking server.
func (c *Config) Validate() error {
	return c.Logging.Validate()
}
