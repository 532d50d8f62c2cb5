package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"splat-racer/internal/config"
	"splat-racer/internal/game"
	"splat-racer/internal/graphics"
	"splat-racer/internal/logger"
)

var (
	configPath string
	debugLog   bool
)

var rootCmd = &cobra.Command{
	Use:   "splat-racer [splat.ply]",
	Short: "Drive a car on a ground plane picked inside a Gaussian splat scene",
	Long: `splat-racer loads a Gaussian splat point cloud (.ply), lets you pick a
ground plane with three clicks (P to enter selection mode), and drive a car on
that plane with WASD or the arrow keys. Files can also be dropped onto the
window at runtime.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logger.New(debugLog)
		defer log.Sync()

		cfg := config.Load(configPath)
		g := game.New(cfg, log)
		if len(args) > 0 {
			g.LoadSplat(args[0])
		}

		graphics.Run(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title,
			cfg.Window.TargetFPS, g.Update, g.Draw)
		return nil
	},
}

func main() {
	rootCmd.Flags().StringVar(&configPath, "config", config.DefaultPath, "path to the game config file")
	rootCmd.Flags().BoolVar(&debugLog, "debug", false, "enable debug logging")
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
