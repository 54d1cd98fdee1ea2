package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-highway/dotbench/hwy/contrib/dot"
)

func newListCommand() *cobra.Command {
	var available bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List kernel variant names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			variants := dot.Variants()
			if available {
				variants = dot.Available()
			}
			for _, v := range variants {
				fmt.Fprintln(cmd.OutOrStdout(), v)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&available, "available", false, "only list variants with a native kernel on this machine")
	return cmd
}
