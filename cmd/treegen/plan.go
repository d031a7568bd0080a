package main

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/treegen/pkg/core"
	"github.com/arthur-debert/treegen/pkg/output"
)

func newPlanCmd() *cobra.Command {
	var root string

	cmd := &cobra.Command{
		Use:   "plan <spec-file> [vars-file]",
		Short: MsgPlanShort,
		Long:  MsgPlanLong,
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			specPath := args[0]
			varsPath := ""
			if len(args) == 2 {
				varsPath = args[1]
			}

			opts, err := buildExecuteOptions(root, specPath, varsPath, true)
			if err != nil {
				return err
			}

			result, err := core.Execute(opts)
			if err != nil {
				return err
			}

			renderer := output.NewRenderer(cmd.OutOrStdout(), noColor)
			return renderer.RenderResult(result)
		},
	}

	cmd.Flags().StringVar(&root, "root", ".", "Creation root the plan is resolved against")

	return cmd
}
