package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/pekman/pricechart/config"
	"github.com/pekman/pricechart/imagebwr"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Show the chart in the terminal",
	Long: `Renders the chart and prints it with half-block characters, two
pixel rows per line. Needs a terminal at least as wide as the display.`,
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
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
	_, err = fmt.Fprint(cmd.OutOrStdout(), previewString(img))
	return err
}

var previewColors = [...]lipgloss.Color{
	imagebwr.White: lipgloss.Color("15"),
	imagebwr.Black: lipgloss.Color("0"),
	imagebwr.Red:   lipgloss.Color("9"),
}

// previewString draws img with "▀" cells: the foreground carries the upper
// pixel and the background the lower one.
func previewString(img *imagebwr.Planar) string {
	var styles [len(previewColors)][len(previewColors)]lipgloss.Style
	for top, fg := range previewColors {
		for bottom, bg := range previewColors {
			styles[top][bottom] = lipgloss.NewStyle().Foreground(fg).Background(bg)
		}
	}

	b := img.Bounds()
	var sb strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		for x := b.Min.X; x < b.Max.X; x++ {
			top := img.ColorAt(x, y)
			bottom := imagebwr.White
			if y+1 < b.Max.Y {
				bottom = img.ColorAt(x, y+1)
			}
			sb.WriteString(styles[top][bottom].Render("▀"))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
