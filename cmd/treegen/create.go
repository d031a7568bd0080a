package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/treegen/pkg/core"
	"github.com/arthur-debert/treegen/pkg/filesystem"
	"github.com/arthur-debert/treegen/pkg/logging"
	"github.com/arthur-debert/treegen/pkg/output"
	"github.com/arthur-debert/treegen/pkg/spec"
)

func newCreateCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:     "create <root> <spec-file> [vars-file]",
		Short:   MsgCreateShort,
		Long:    MsgCreateLong,
		Example: MsgCreateExample,
		Args:    cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.create")

			root, specPath := args[0], args[1]
			varsPath := ""
			if len(args) == 3 {
				varsPath = args[2]
			}

			logger.Info().
				Str("root", root).
				Str("spec", specPath).
				Str("vars", varsPath).
				Bool("dryRun", dryRun).
				Msg("Starting create")

			opts, err := buildExecuteOptions(root, specPath, varsPath, dryRun)
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

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Resolve the tree but write nothing to disk")

	return cmd
}

// buildExecuteOptions loads the spec and vars documents and assembles the
// pipeline options shared by create and plan.
func buildExecuteOptions(root, specPath, varsPath string, dryRun bool) (core.ExecuteOptions, error) {
	node, err := spec.Load(specPath)
	if err != nil {
		return core.ExecuteOptions{}, err
	}

	vars := map[string]string{}
	if varsPath != "" {
		vars, err = spec.LoadVars(varsPath)
		if err != nil {
			return core.ExecuteOptions{}, err
		}
	}

	absSpec, err := filepath.Abs(specPath)
	if err != nil {
		absSpec = specPath
	}

	return core.ExecuteOptions{
		Spec:        node,
		Vars:        vars,
		Root:        root,
		SpecBaseDir: filepath.Dir(absSpec),
		FileSystem:  filesystem.NewOS(),
		DryRun:      dryRun,
	}, nil
}
