package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/treegen/pkg/docs"
)

func newDocsCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "docs [topic]",
		Short:     MsgDocsShort,
		Long:      MsgDocsLong,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: docs.Topics(),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Available topics: %s\n",
					strings.Join(docs.Topics(), ", "))
				return nil
			}

			rendered, err := docs.Render(args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), rendered)
			return nil
		},
	}
}
