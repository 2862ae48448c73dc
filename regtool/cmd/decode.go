package cmd

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Carbrevo/aarch64-cpu/arm64"
	"github.com/Carbrevo/aarch64-cpu/reg"
)

var decodeCmd = &cobra.Command{
	Use:   "decode [register] [value]",
	Short: "Decode a raw register value field by field.",
	Long: "`decode CTR_EL0 0x8444c004` prints every field of the value, " +
		"naming declared encodings and flagging reserved ones.",
	Args: cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		r, found := arm64.Lookup(args[0])
		if !found {
			return fmt.Errorf("register %s is not in the catalog", args[0])
		}

		raw, err := strconv.ParseUint(args[1], 0, 64)
		if err != nil {
			return fmt.Errorf("value %q is not a number: %w", args[1], err)
		}

		fmt.Printf("%s = %#x\n", r.Name, raw)

		w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)

		fmt.Fprintln(w, "BITS\tFIELD\tRAW\tMEANING")
		for _, fv := range r.DecodeAll(reg.Value(raw)) {
			f, _ := r.FieldByName(fv.Field)

			fmt.Fprintf(w, "%s\t%s\t%#x\t%s\n",
				bitRange(f), fv.Field, fv.Raw, meaning(fv))
		}

		w.Flush()

		return nil
	},
}

func meaning(fv reg.FieldValue) string {
	switch {
	case fv.Name != "":
		return fv.Name
	case fv.Reserved:
		return "reserved"
	default:
		return "-"
	}
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}
