package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/Carbrevo/aarch64-cpu/arm64"
	"github.com/Carbrevo/aarch64-cpu/monitoring"
	"github.com/Carbrevo/aarch64-cpu/recording"
	"github.com/Carbrevo/aarch64-cpu/simdev"
)

// Values as read on a Cortex-A72 (Raspberry Pi 4) running at EL1.
var demoValues = map[string]uint64{
	"CNTFRQ_EL0": 54000000,
	"CTR_EL0":    0x8444C004,
	"CurrentEL":  0x4,
	"DCZID_EL0":  0x4,
	"MIDR_EL1":   0x410FD083,
	"MPIDR_EL1":  0x80000000,
	"SCTLR_EL1":  0x00C50838,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve a simulated register device for interactive inspection.",
	Long: "`serve` installs the whole catalog into a simulated device, " +
		"preloaded with Cortex-A72 values, and starts the monitoring " +
		"server. Configuration comes from flags or a .env file " +
		"(REGTOOL_PORT, REGTOOL_TRACE_DB, REGTOOL_TRACE_CSV).",
	RunE: func(cmd *cobra.Command, _ []string) error {
		// A missing .env file is fine; flags and defaults still apply.
		_ = godotenv.Load()

		device := simdev.New()
		for _, r := range arm64.Registers() {
			device.AddRegister(r, demoValues[r.Name])
		}

		monitor := monitoring.NewMonitor().WithPortNumber(servePort(cmd))
		readers := monitor.RegisterDevice(device)

		if writer := traceWriter(cmd); writer != nil {
			recorder := recording.NewRecorder(writer)
			for _, r := range readers {
				recorder.Attach(r)
			}
		}

		url := monitor.StartServer()

		open, _ := cmd.Flags().GetBool("open")
		if open {
			if err := browser.OpenURL(url); err != nil {
				fmt.Fprintf(os.Stderr, "Cannot open browser: %v\n", err)
			}
		}

		select {}
	},
}

func servePort(cmd *cobra.Command) int {
	port, _ := cmd.Flags().GetInt("port")
	if port != 0 {
		return port
	}

	if env := os.Getenv("REGTOOL_PORT"); env != "" {
		if p, err := strconv.Atoi(env); err == nil {
			return p
		}
	}

	return 0
}

func traceWriter(cmd *cobra.Command) recording.TraceWriter {
	db, _ := cmd.Flags().GetString("trace-db")
	if db == "" {
		db = os.Getenv("REGTOOL_TRACE_DB")
	}

	if db != "" {
		w := recording.NewSQLiteWriter(db)
		w.Init()

		return w
	}

	csv, _ := cmd.Flags().GetString("trace-csv")
	if csv == "" {
		csv = os.Getenv("REGTOOL_TRACE_CSV")
	}

	if csv != "" {
		w := recording.NewCSVWriter(csv)
		w.Init()

		return w
	}

	return nil
}

func init() {
	serveCmd.Flags().Int("port", 0, "port of the monitoring server")
	serveCmd.Flags().Bool("open", false, "open the server in a browser")
	serveCmd.Flags().String("trace-db",
		"", "record register accesses to this SQLite database")
	serveCmd.Flags().String("trace-csv",
		"", "record register accesses to this CSV file")

	rootCmd.AddCommand(serveCmd)
}
