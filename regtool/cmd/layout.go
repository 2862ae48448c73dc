package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Carbrevo/aarch64-cpu/arm64"
	"github.com/Carbrevo/aarch64-cpu/reg"
)

var layoutCmd = &cobra.Command{
	Use:   "layout [register]",
	Short: "Print the field layout of a register.",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		r, found := arm64.Lookup(args[0])
		if !found {
			return fmt.Errorf("register %s is not in the catalog", args[0])
		}

		fmt.Printf("%s (%d bits, %s)\n", r.Name, r.Width, r.Access)

		w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)

		fmt.Fprintln(w, "BITS\tFIELD\tENCODINGS")
		for _, f := range r.Fields {
			fmt.Fprintf(w, "%s\t%s\t%s\n",
				bitRange(f), f.Name, encodings(f))
		}

		w.Flush()

		return nil
	},
}

func bitRange(f reg.Field) string {
	if f.Width == 1 {
		return fmt.Sprintf("[%d]", f.Offset)
	}

	return fmt.Sprintf("[%d:%d]", f.Offset+f.Width-1, f.Offset)
}

func encodings(f reg.Field) string {
	if len(f.Values) == 0 {
		return "-"
	}

	parts := make([]string, 0, len(f.Values))
	for _, ev := range f.Values {
		parts = append(parts, fmt.Sprintf("%s=%#x", ev.Name, ev.Value))
	}

	return strings.Join(parts, " ")
}

func init() {
	rootCmd.AddCommand(layoutCmd)
}
