package main

import (
	"fmt"
	"image/png"
	"os"

	"github.com/spf13/cobra"

	"github.com/pekman/pricechart/config"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the chart to a PNG file",
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringP("output", "o", "chart.png", "output PNG path")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := newLogger(cmd.ErrOrStderr(), cfg.Logging)

	now, err := renderTime(cmd)
	if err != nil {
		return fmt.Errorf("invalid --now: %w", err)
	}
	img, err := renderFrame(cfg, log, now)
	if err != nil {
		return err
	}

	path, _ := cmd.Flags().GetString("output")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	log.Info("wrote chart", "path", path)
	return nil
}
