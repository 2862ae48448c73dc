// Package cmd provides the command-line interface for regtool.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use: "regtool",
	Short: "Regtool inspects and decodes AArch64 system registers from " +
		"the catalog.",
	Long: `Regtool inspects and decodes AArch64 system registers. It can ` +
		`print register layouts, decode raw values field by field, and ` +
		`serve a simulated register device for interactive inspection.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
