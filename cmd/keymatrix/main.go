package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type rootFlags struct {
	configPath string
	driver     string
	logLevel   string
	simOnly    bool
}

func newRootCmd() *cobra.Command {
	f := &rootFlags{}
	cmd := &cobra.Command{
		Use:           "keymatrix",
		Short:         "Play LED matrix animations from a 4x4 keypad",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	bindRootFlags(cmd.PersistentFlags(), f)

	cmd.AddCommand(newRunCmd(f), newPlayCmd(f), newListCmd())
	return cmd
}

func bindRootFlags(pf *pflag.FlagSet, f *rootFlags) {
	pf.StringVarP(&f.configPath, "config", "c", "config.yaml", "path to config.yaml")
	pf.StringVar(&f.driver, "driver", "", "LED driver: spi | console | sim (overrides config)")
	pf.StringVar(&f.logLevel, "log-level", "", "log level (overrides config)")
	pf.BoolVar(&f.simOnly, "sim-only", false, "force simulation (no hardware output)")
}
