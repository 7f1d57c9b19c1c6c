// Command pricechart renders today's hourly electricity prices as a
// black/white/red bar chart and shows it as a PNG, in the terminal, or on an
// e-paper panel.
//
// Usage:
//
//	pricechart render -o chart.png
//	pricechart preview
//	pricechart push --config /etc/pricechart/config.yaml
//
// Configuration is read from $XDG_CONFIG_HOME/pricechart/config.yaml, the
// current directory, or the file given with --config, and can be overridden
// with PRICECHART_* environment variables (e.g. PRICECHART_PRICES_FILE).
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
