package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mlopskit/mlflow-launcher/policy"
)

func newPolicyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "policy",
		Short: "Work with the permission document templates",
	}
	cmd.AddCommand(newPolicyRenderCmd())
	return cmd
}

func newPolicyRenderCmd() *cobra.Command {
	var (
		templatePath string
		params       []string
		format       string
		outPath      string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Substitute parameters into a policy template",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPolicyRender(templatePath, params, format, outPath)
		},
	}
	cmd.Flags().StringVar(&templatePath, "template", "", "policy template file (YAML or JSON)")
	cmd.Flags().StringArrayVar(&params, "param", nil, "template parameter as key=value (repeatable)")
	cmd.Flags().StringVar(&format, "format", "json", "output format: json or yaml")
	cmd.Flags().StringVar(&outPath, "out", "", "output file (default stdout)")
	_ = cmd.MarkFlagRequired("template")
	return cmd
}

func runPolicyRender(templatePath string, params []string, format, outPath string) error {
	values := make(map[string]string, len(params))
	for _, p := range params {
		key, value, ok := strings.Cut(p, "=")
		if !ok || key == "" {
			return fmt.Errorf("invalid --param %q: expected key=value", p)
		}
		values[key] = value
	}

	f, err := os.Open(templatePath)
	if err != nil {
		return fmt.Errorf("opening template: %w", err)
	}
	defer f.Close()

	doc, err := policy.Load(f)
	if err != nil {
		return err
	}
	rendered, err := policy.Render(doc, values)
	if err != nil {
		return err
	}

	out := os.Stdout
	if outPath != "" {
		out, err = os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer out.Close()
	}
	return policy.Write(out, rendered, policy.Format(format))
}
