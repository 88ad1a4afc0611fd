package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/tsl/pkg/core/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Shows the version",
	Args:  cobra.NoArgs,
	// version must work even with a broken config file
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		info := version.Get()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "tsl v%s\n", info.Version)
		fmt.Fprintf(out, "  Git Commit: %s\n", info.GitCommit)
		fmt.Fprintf(out, "  Build Date: %s\n", info.BuildDate)
		fmt.Fprintf(out, "  Go Version: %s\n", info.GoVersion)
		fmt.Fprintf(out, "  OS/Arch:    %s\n", info.Platform)
		fmt.Fprintln(out, "  Commands:")
		for _, name := range version.Commands {
			fmt.Fprintf(out, "    %-8s v%s\n", name, version.CommandVersion(name))
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
