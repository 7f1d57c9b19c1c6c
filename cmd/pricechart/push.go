package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"

	"github.com/pekman/pricechart/config"
	"github.com/pekman/pricechart/epd"
)

var pushCmd = &cobra.Command{
	Use:   "push",
	Short: "Render the chart and show it on the e-paper panel",
	Long: `Renders the chart and transfers it over SPI. The panel controller
must already be initialized; only the frame planes and a refresh are sent,
then the panel is put into deep sleep.`,
	RunE: runPush,
}

func init() {
	rootCmd.AddCommand(pushCmd)
}

func runPush(cmd *cobra.Command, args []string) error {
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

	if _, err := host.Init(); err != nil {
		return fmt.Errorf("failed to initialize periph: %w", err)
	}

	port, err := spireg.Open(cfg.Display.SPIPort)
	if err != nil {
		return fmt.Errorf("failed to open SPI port: %w", err)
	}
	defer port.Close()

	dc := gpioreg.ByName(cfg.Display.DCPin)
	if dc == nil {
		return fmt.Errorf("failed to find D/C pin %q", cfg.Display.DCPin)
	}
	busy := gpioreg.ByName(cfg.Display.BusyPin)
	if busy == nil {
		return fmt.Errorf("failed to find BUSY pin %q", cfg.Display.BusyPin)
	}

	dev, err := epd.NewSPI(port, dc, busy, displayOpts(&cfg.Display))
	if err != nil {
		return err
	}
	log.Info("connected to panel", "device", dev.String(), "port", cfg.Display.SPIPort)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := dev.Update(ctx, img); err != nil {
		return err
	}
	log.Info("panel refreshed")
	return dev.Halt()
}

func displayOpts(cfg *config.DisplayConfig) *epd.Opts {
	opts := &epd.Opts{
		W:           cfg.Width,
		H:           cfg.Height,
		InvertBlack: cfg.InvertBlack,
		InvertRed:   cfg.InvertRed,
		BusyLevel:   gpio.Low,
		BusyTimeout: cfg.BusyTimeout(),
	}
	if cfg.BusyActiveHigh {
		opts.BusyLevel = gpio.High
	}
	return opts
}
