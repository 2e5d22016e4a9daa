package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// VersionInfo is stamped into the binary at release time.
type VersionInfo struct {
	Version string
	Commit  string
	Date    string
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "stuffkit %s\n", a.version.Version)
			fmt.Fprintf(out, "Commit: %s\n", a.version.Commit)
			fmt.Fprintf(out, "Built:  %s\n", a.version.Date)
		},
	}
}
