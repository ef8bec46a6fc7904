package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/longregen/doccheck/internal/adapters/outbound/config"
	"github.com/longregen/doccheck/internal/adapters/outbound/gitinfo"
	"github.com/longregen/doccheck/internal/adapters/outbound/tui"
	"github.com/longregen/doccheck/internal/adapters/outbound/workspace"
	"github.com/longregen/doccheck/internal/application"
)

func newValidateCmd() *cobra.Command {
	var (
		verbose    bool
		root       string
		jsonOutput bool
		fix        bool
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Run all documentation-consistency checks",
		Long:  "Run the five validation passes (API routes, config fields, CLI commands, eBPF probes, env vars) against the workspace and print a summary. Exits nonzero if any check fails.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if fix {
				return fmt.Errorf("--fix is reserved and not implemented")
			}

			// JSON mode keeps stdout machine-readable: no progress lines.
			progress := io.Writer(cmd.OutOrStdout())
			if jsonOutput {
				progress = io.Discard
			}

			svc := application.NewValidateService(
				config.New(),
				workspace.New(),
				gitinfo.New(),
				progress,
				verbose,
			)

			report, err := svc.Validate(root)
			if err != nil {
				return fmt.Errorf("validate failed: %w", err)
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(report); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), "\n"+tui.RenderReport(report))
			}

			if n := report.FailedCount(); n > 0 {
				return fmt.Errorf("%d validation failure(s)", n)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print extracted fact sets while validating")
	cmd.Flags().StringVarP(&root, "workspace", "w", ".", "Workspace root")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the report as JSON")
	cmd.Flags().BoolVar(&fix, "fix", false, "Reserved")
	_ = cmd.Flags().MarkHidden("fix")

	return cmd
}
