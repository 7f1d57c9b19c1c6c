package main

import (
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pekman/pricechart/config"
)

var rootCmd = &cobra.Command{
	Use:   "pricechart",
	Short: "Electricity price chart for black/white/red e-paper panels",
	Long: `pricechart draws today's hourly electricity prices as a dithered
bar chart: past hours are greyed out, the current hour is red and upcoming
hours shade from black to red as prices rise.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/pricechart/config.yaml)")
	rootCmd.PersistentFlags().String("prices", "", "price series file (.json or .xlsx)")
	rootCmd.PersistentFlags().String("now", "", "render as if it were this RFC 3339 time")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("prices.file", rootCmd.PersistentFlags().Lookup("prices"))
	_ = viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix(config.EnvPrefix)
	// e.g., PRICECHART_PRICES_FILE for prices.file
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}

// renderTime returns the --now flag value, or the current time.
func renderTime(cmd *cobra.Command) (time.Time, error) {
	s, _ := cmd.Flags().GetString("now")
	if s == "" {
		return time.Now(), nil
	}
	return time.Parse(time.RFC3339, s)
}
