package config

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "chart.bar_width")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// ValidLogFormats returns the list of valid log formats
func ValidLogFormats() []string {
	return []string{"text", "json"}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateChart()...)
	errors = append(errors, c.validateDisplay()...)
	errors = append(errors, c.validateLogging()...)

	return errors
}

// validateChart validates the ChartConfig
func (c *Config) validateChart() []ValidationError {
	var errors []ValidationError

	if c.Chart.BarWidth < 2 {
		errors = append(errors, ValidationError{
			Field:   "chart.bar_width",
			Value:   c.Chart.BarWidth,
			Message: "must be at least 2 (one pixel of bar, one of gap)",
		})
	}
	if c.Chart.Slots < 1 {
		errors = append(errors, ValidationError{
			Field:   "chart.slots",
			Value:   c.Chart.Slots,
			Message: "must be positive",
		})
	}
	if c.Chart.GridHeight < 1 {
		errors = append(errors, ValidationError{
			Field:   "chart.grid_height",
			Value:   c.Chart.GridHeight,
			Message: "must be positive",
		})
	}
	if c.Chart.MarginTop < 0 {
		errors = append(errors, ValidationError{
			Field:   "chart.margin_top",
			Value:   c.Chart.MarginTop,
			Message: "must be non-negative",
		})
	}
	if c.Chart.HourIndicatorHeight < 0 {
		errors = append(errors, ValidationError{
			Field:   "chart.hour_indicator_height",
			Value:   c.Chart.HourIndicatorHeight,
			Message: "must be non-negative",
		})
	}
	if hi, lo := c.Chart.GradientHigh, c.Chart.GradientLow; hi != nil && lo != nil && *hi < *lo {
		errors = append(errors, ValidationError{
			Field:   "chart.gradient_high",
			Value:   *hi,
			Message: fmt.Sprintf("must not be below chart.gradient_low (%v)", *lo),
		})
	}

	return errors
}

// validateDisplay validates the DisplayConfig
func (c *Config) validateDisplay() []ValidationError {
	var errors []ValidationError

	if c.Display.Width <= 0 {
		errors = append(errors, ValidationError{
			Field:   "display.width",
			Value:   c.Display.Width,
			Message: "must be positive",
		})
	}
	if c.Display.Height <= 0 {
		errors = append(errors, ValidationError{
			Field:   "display.height",
			Value:   c.Display.Height,
			Message: "must be positive",
		})
	}
	if c.Display.Width > 0 && c.Chart.Slots*c.Chart.BarWidth > c.Display.Width {
		errors = append(errors, ValidationError{
			Field:   "chart.slots",
			Value:   c.Chart.Slots,
			Message: fmt.Sprintf("%d slots of %d pixels do not fit a %d pixel wide display", c.Chart.Slots, c.Chart.BarWidth, c.Display.Width),
		})
	}
	if c.Display.BusyTimeoutSeconds < 0 {
		errors = append(errors, ValidationError{
			Field:   "display.busy_timeout_seconds",
			Value:   c.Display.BusyTimeoutSeconds,
			Message: "must be non-negative",
		})
	}
	if c.Display.Timezone != "" {
		if _, err := time.LoadLocation(c.Display.Timezone); err != nil {
			errors = append(errors, ValidationError{
				Field:   "display.timezone",
				Value:   c.Display.Timezone,
				Message: "unknown time zone",
			})
		}
	}

	return errors
}

// validateLogging validates the LoggingConfig
func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if !slices.Contains(ValidLogLevels(), strings.ToLower(c.Logging.Level)) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}
	if !slices.Contains(ValidLogFormats(), strings.ToLower(c.Logging.Format)) {
		errors = append(errors, ValidationError{
			Field:   "logging.format",
			Value:   c.Logging.Format,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogFormats(), ", ")),
		})
	}

	return errors
}
