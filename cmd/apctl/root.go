package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var version = "1.0.0"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "apctl",
		Short: "Offline tools for accounts payable reconciliation",
		Long: `apctl runs the AP classifier against invoice files without a database.

Input files may be JSON or YAML. Output is written as JSON in the same
shape the HTTP API returns.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newAgingCmd(), newMatchCmd(), newMigrateCmd())
	return root
}

// readDocument decodes a JSON or YAML file into dst. JSON is a subset of YAML,
// so one decoder serves both.
func readDocument(path string, dst any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
