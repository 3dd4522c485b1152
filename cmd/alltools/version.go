package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ZaguanLabs/alltools"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		// Printing the version needs no configuration.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, _ []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s %s\n", alltools.Name, version)
			if commit != "unknown" && commit != "" {
				fmt.Fprintf(w, "  commit:  %s\n", commit)
			}
			if buildDate != "unknown" && buildDate != "" {
				fmt.Fprintf(w, "  built:   %s\n", buildDate)
			}
		},
	}
}
