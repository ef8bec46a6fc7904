package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/longregen/doccheck/internal/adapters/outbound/config"
)

func newRulesCmd() *cobra.Command {
	var (
		root       string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Print the effective rule set",
		Long:  "Print the rule tables the validator would use for the workspace: artifact paths, the section-to-struct map, mandatory probes, documented env vars, and ignore lists, including any .doccheck.yaml overrides.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rules, err := config.New().Load(root)
			if err != nil {
				return fmt.Errorf("loading rules: %w", err)
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(rules)
			}

			data, err := yaml.Marshal(rules)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), string(data))
			return nil
		},
	}

	cmd.Flags().StringVarP(&root, "workspace", "w", ".", "Workspace root")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
