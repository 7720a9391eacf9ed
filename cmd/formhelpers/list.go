package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formhelpers/pkg/helpers"
)

func listCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the helper names a configuration registers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.helperOptions()
			if err != nil {
				return err
			}
			h := helpers.New(opts...)
			for _, entry := range h.Entries() {
				fmt.Fprintln(cmd.OutOrStdout(), h.Config().QualifiedName(entry.Name))
			}
			return nil
		},
	}
}
