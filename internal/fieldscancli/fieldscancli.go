// Package fieldscancli is the entrypoint for the fieldscan command-line
// tool.
package fieldscancli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fieldscan/fieldscan/internal/build"
)

func Command() *cobra.Command {
	var cmd = &cobra.Command{
		Use:     fmt.Sprintf("%s [global options] <subcommand>", os.Args[0]),
		Short:   "fieldscan locates the first delimiter-bounded field of text",
		Version: build.Print("fieldscan"),

		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Usage()
		},
	}
	cmd.SetVersionTemplate("{{ .Version }}\n")

	cmd.AddCommand(
		scanCommand(),
	)

	return cmd
}

// Run executes the root command, exiting non-zero when it fails.
func Run() {
	if err := Command().Execute(); err != nil {
		os.Exit(1)
	}
}
