package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spigell/halatuju/internal/eligibility"
)

const (
	app = "halatuju"
)

type Config struct {
	Profile     *ProfileConfig            `mapstructure:"profile"`
	Signals     map[string]map[string]int `mapstructure:"signals"`
	Catalog     *CatalogConfig            `mapstructure:"catalog"`
	ExcludeFile string                    `mapstructure:"exclude-file"`
	Sources     []string                  `mapstructure:"sources"`
	Workers     int                       `mapstructure:"workers"`
	Output      *OutputConfig             `mapstructure:"output"`
}

// ProfileConfig is the student's grade sheet, demographics and co-curricular score.
type ProfileConfig struct {
	eligibility.ProfileInput `mapstructure:",squash"`

	Coq float64 `mapstructure:"coq"`
}

type CatalogConfig struct {
	Paths []string `mapstructure:"paths"`
}

type OutputConfig struct {
	Format string `mapstructure:"format"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "halatuju checks which post-secondary courses a student qualifies for and ranks them by fit",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("catalog.paths", "HALATUJU_CATALOG"); err != nil {
		log.Fatalf("binding HALATUJU_CATALOG environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is halatuju.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	rootCmd.PersistentFlags().StringP("output", "o", "", "output format: console or json")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	viper.BindPFlag("output.format", rootCmd.PersistentFlags().Lookup("output"))
}

func initConfig() {
	// The version command works without a config.
	if versionCmd.CalledAs() != "" {
		return
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
		viper.SetConfigType("yaml")
	}

	// We can't proceed if the config file parsed with error.
	if err := viper.ReadInConfig(); err != nil {
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}
