package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Carbrevo/aarch64-cpu/arm64"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the registers in the catalog.",
	Run: func(_ *cobra.Command, _ []string) {
		w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)

		fmt.Fprintln(w, "REGISTER\tWIDTH\tACCESS\tFIELDS")
		for _, r := range arm64.Registers() {
			fmt.Fprintf(w, "%s\t%d\t%s\t%d\n",
				r.Name, r.Width, r.Access, len(r.Fields))
		}

		w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
