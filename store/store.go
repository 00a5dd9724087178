// Package store derives the backend store descriptor for the tracking
// server: either a remote MySQL-compatible backend reached through a
// connection URI, or the server's own embedded default store.
package store

import (
	"fmt"

	"github.com/mlopskit/mlflow-launcher/config"
)

// Kind identifies the selected backend store variant.
type Kind string

const (
	// Remote means metadata lives in an external MySQL-compatible database.
	Remote Kind = "remote"
	// Local means the server falls back to its embedded default store.
	Local Kind = "local"
)

// Scheme is the driver scheme of the constructed connection URI. The
// tracking server speaks to MySQL through the pymysql driver.
const Scheme = "mysql+pymysql"

// Descriptor is the backend store selection, computed once at startup
// and never mutated.
type Descriptor struct {
	Kind Kind
	// URI is the full connection string. Set only when Kind is Remote.
	URI string
	// RedactedURI is URI with the password masked, safe for logs.
	RedactedURI string
}

// Remote reports whether the remote backend branch was selected.
func (d Descriptor) Remote() bool {
	return d.Kind == Remote
}

// Select computes the backend store descriptor from the backend variable
// set. Presence of a non-empty Host is the sole branching condition: the
// remaining fields never influence the decision, and they are substituted
// into the URI without validation.
func Select(b config.BackendConfig) Descriptor {
	if b.Host == "" {
		return Descriptor{Kind: Local}
	}
	return Descriptor{
		Kind:        Remote,
		URI:         connectionURI(b, b.Password),
		RedactedURI: connectionURI(b, "****"),
	}
}

func connectionURI(b config.BackendConfig, password string) string {
	return fmt.Sprintf("%s://%s:%s@%s:%s/%s",
		Scheme, b.Username, password, b.Host, b.Port, b.Database)
}
