package main

import (
	"github.com/spf13/cobra"

	"github.com/lixenwraith/ballpit/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Run the ballpit in a desktop window",
	Long: `Opens an ebiten window drawing the ballpit as filled circles.
The device pixel ratio is capped by render.max_pixel_ratio.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, logger, closeLog, err := bootstrap()
		if err != nil {
			return err
		}
		defer closeLog()
		return window.Run(cmd.Context(), cfg, logger)
	},
}
