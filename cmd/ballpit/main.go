package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath string
	debugFlag  bool
)

var rootCmd = &cobra.Command{
	Use:   "ballpit",
	Short: "Interactive physics ballpit in the terminal",
	Long: `Runs an instanced sphere simulation with gravity, collisions and
cursor repulsion, rendered with half-block pixels.

Keys:
  q, Esc, Ctrl-C  quit
  space           pause
  r               rebuild with fresh particles
  h               toggle the metrics line`,
	SilenceUsage: true,
	RunE:         runTerminal,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "ballpit.yaml", "Config file (missing file uses defaults)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Write debug logs under the log directory")

	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(contactCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
