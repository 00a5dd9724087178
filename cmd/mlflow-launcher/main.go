// Command mlflow-launcher bootstraps the mlflow tracking server inside
// the container image. The serve subcommand reads the backend variable
// set from the environment, picks the remote or local backend store, and
// runs the server in the foreground on port 5000.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mlopskit/mlflow-launcher/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "mlflow-launcher",
		Short:         "Environment-driven bootstrap for the mlflow tracking server",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.Version = version.String()
	rootCmd.SetVersionTemplate("{{printf \"%s\\n\" .Version}}")

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newPolicyCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
