// Package config holds the pricechart configuration. Values come from
// defaults, an optional YAML file and PRICECHART_* environment variables, all
// merged by viper.
package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/pekman/pricechart"
)

// Config represents the complete pricechart configuration
type Config struct {
	Chart   ChartConfig   `mapstructure:"chart"`
	Display DisplayConfig `mapstructure:"display"`
	Prices  PricesConfig  `mapstructure:"prices"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ChartConfig controls the chart layout
type ChartConfig struct {
	// BarWidth is the horizontal space per hour in pixels, including a
	// one pixel gap (default: 5)
	BarWidth int `mapstructure:"bar_width"`
	// Slots is the number of hours the x axis spans (default: 48)
	Slots int `mapstructure:"slots"`
	// GridHeight is the height from the zero to the top gridline (default: 100).
	// Divisible by 2, 3, 4 and 5 keeps gridlines on whole pixels.
	GridHeight int `mapstructure:"grid_height"`
	// MarginTop is the space above the top gridline (default: 6)
	MarginTop int `mapstructure:"margin_top"`
	// HourIndicatorHeight is the size of the current hour triangles (default: 4)
	HourIndicatorHeight int `mapstructure:"hour_indicator_height"`
	// GradientHigh is the price at which future bars turn fully red.
	// Unset keeps them black.
	GradientHigh *float64 `mapstructure:"gradient_high"`
	// GradientLow is the price below which future bars are fully black.
	// Unset keeps everything above GradientHigh's row red.
	GradientLow *float64 `mapstructure:"gradient_low"`
	// DitherMask is a grayscale PNG threshold map (default: 8x8 Bayer)
	DitherMask string `mapstructure:"dither_mask"`
	// NoDataIcon is an image shown when there are no prices for today
	NoDataIcon string `mapstructure:"no_data_icon"`
}

// DisplayConfig describes the panel and how it is wired
type DisplayConfig struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
	// SPIPort is the periph SPI port name; empty selects the first one
	SPIPort string `mapstructure:"spi_port"`
	DCPin   string `mapstructure:"dc_pin"`
	BusyPin string `mapstructure:"busy_pin"`
	// BusyActiveHigh is set for controllers that raise BUSY while refreshing
	BusyActiveHigh     bool `mapstructure:"busy_active_high"`
	InvertBlack        bool `mapstructure:"invert_black"`
	InvertRed          bool `mapstructure:"invert_red"`
	BusyTimeoutSeconds int  `mapstructure:"busy_timeout_seconds"`
	// Timezone decides where "today" begins, e.g. "Europe/Helsinki".
	// Empty uses the local zone.
	Timezone string `mapstructure:"timezone"`
}

// PricesConfig locates the price series
type PricesConfig struct {
	// File is a .json or .xlsx price series
	File string `mapstructure:"file"`
	// Sheet selects the spreadsheet sheet; empty uses the first
	Sheet string `mapstructure:"sheet"`
}

// LoggingConfig controls log output
type LoggingConfig struct {
	// Level is one of debug, info, warn, error (default: info)
	Level string `mapstructure:"level"`
	// Format is text or json (default: text)
	Format string `mapstructure:"format"`
}

// EnvPrefix prefixes environment variable overrides, e.g. PRICECHART_PRICES_FILE.
const EnvPrefix = "PRICECHART"

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Chart: ChartConfig{
			BarWidth:            5,
			Slots:               48,
			GridHeight:          100,
			MarginTop:           6,
			HourIndicatorHeight: 4,
		},
		Display: DisplayConfig{
			Width:              250,
			Height:             122,
			DCPin:              "GPIO25",
			BusyPin:            "GPIO24",
			BusyTimeoutSeconds: 30,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	// Chart defaults
	viper.SetDefault("chart.bar_width", defaults.Chart.BarWidth)
	viper.SetDefault("chart.slots", defaults.Chart.Slots)
	viper.SetDefault("chart.grid_height", defaults.Chart.GridHeight)
	viper.SetDefault("chart.margin_top", defaults.Chart.MarginTop)
	viper.SetDefault("chart.hour_indicator_height", defaults.Chart.HourIndicatorHeight)
	viper.SetDefault("chart.dither_mask", defaults.Chart.DitherMask)
	viper.SetDefault("chart.no_data_icon", defaults.Chart.NoDataIcon)
	// The gradient has no default, so AutomaticEnv alone never sees these keys.
	_ = viper.BindEnv("chart.gradient_high", EnvPrefix+"_CHART_GRADIENT_HIGH")
	_ = viper.BindEnv("chart.gradient_low", EnvPrefix+"_CHART_GRADIENT_LOW")

	// Display defaults
	viper.SetDefault("display.width", defaults.Display.Width)
	viper.SetDefault("display.height", defaults.Display.Height)
	viper.SetDefault("display.spi_port", defaults.Display.SPIPort)
	viper.SetDefault("display.dc_pin", defaults.Display.DCPin)
	viper.SetDefault("display.busy_pin", defaults.Display.BusyPin)
	viper.SetDefault("display.busy_active_high", defaults.Display.BusyActiveHigh)
	viper.SetDefault("display.invert_black", defaults.Display.InvertBlack)
	viper.SetDefault("display.invert_red", defaults.Display.InvertRed)
	viper.SetDefault("display.busy_timeout_seconds", defaults.Display.BusyTimeoutSeconds)
	viper.SetDefault("display.timezone", defaults.Display.Timezone)

	// Prices defaults
	viper.SetDefault("prices.file", defaults.Prices.File)
	viper.SetDefault("prices.sheet", defaults.Prices.Sheet)

	// Logging defaults
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.format", defaults.Logging.Format)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "pricechart")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".pricechart"
	}
	return filepath.Join(home, ".config", "pricechart")
}

// ChartOpts converts the chart section to renderer options. Images referenced
// by path are not loaded here.
func (c *ChartConfig) ChartOpts() pricechart.ChartOpts {
	opts := pricechart.DefaultChartOpts()
	opts.BarWidth = c.BarWidth
	opts.Slots = c.Slots
	opts.GridHeight = c.GridHeight
	opts.MarginTop = c.MarginTop
	opts.HourIndicatorHeight = c.HourIndicatorHeight
	opts.GradientHigh = valueOrNaN(c.GradientHigh)
	opts.GradientLow = valueOrNaN(c.GradientLow)
	return opts
}

func valueOrNaN(v *float64) float64 {
	if v == nil {
		return math.NaN()
	}
	return *v
}

// BusyTimeout returns the refresh timeout as a time.Duration
func (c *DisplayConfig) BusyTimeout() time.Duration {
	return time.Duration(c.BusyTimeoutSeconds) * time.Second
}

// Location returns the configured time zone
func (c *DisplayConfig) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}
