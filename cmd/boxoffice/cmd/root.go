// Package cmd implements the boxoffice CLI commands.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/agentstation/boxoffice/internal/cmd/globals"
	"github.com/agentstation/boxoffice/pkg/logging"
)

var (
	configFile  string
	globalFlags *globals.Flags

	// Version information set by main.
	Version = "dev"
	// Commit is the git commit hash.
	Commit = "unknown"
	// Date is the build date.
	Date = "unknown"
)

// defaultCatalogFile is used when neither the --file flag, the environment
// nor the config file names a catalog file.
const defaultCatalogFile = "movies.txt"

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "boxoffice",
	Short: "Movie catalog CLI",
	Long: `Boxoffice is a small movie catalog manager. It keeps records of
movies (title, director, genre, year, box-office earnings) in a flat file
and supports adding, removing, finding and listing them sorted by earnings.

The catalog file format is chosen by extension: .json and .yaml hold one
structured document with a "movies" sequence, anything else holds one
comma-delimited record per line.`,
	PersistentPreRunE: setupCommand,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute(version, commit, date string) {
	Version = version
	Commit = commit
	Date = date
	rootCmd.Version = version

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is $HOME/.boxoffice.yaml)")
	globalFlags = globals.AddFlags(rootCmd)

	// Bind flags to viper
	if err := viper.BindPFlag("file", rootCmd.PersistentFlags().Lookup("file")); err != nil {
		panic(fmt.Sprintf("Failed to bind file flag: %v", err))
	}
	if err := viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output")); err != nil {
		panic(fmt.Sprintf("Failed to bind output flag: %v", err))
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if configFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(configFile)
	} else {
		// Search config in home directory with name ".boxoffice" (without extension)
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".boxoffice")
	}

	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	viper.SetEnvPrefix("boxoffice")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	viper.SetDefault("file", defaultCatalogFile)

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()
}

// loadEnvFiles loads .env files from the working directory using godotenv.
func loadEnvFiles() {
	for _, name := range []string{".env.local", ".env"} {
		if _, err := os.Stat(name); err == nil {
			_ = godotenv.Load(name)
		}
	}
}

// setupCommand configures logging from global flags before any command runs.
func setupCommand(cmd *cobra.Command, _ []string) error {
	flags, err := globals.Parse(cmd)
	if err != nil {
		return err
	}

	switch {
	case flags.Verbose:
		logging.SetLevel("debug")
	case flags.Quiet:
		logging.SetLevel("warn")
	case viper.GetString("log_level") != "":
		logging.SetLevel(viper.GetString("log_level"))
	}

	return nil
}

// catalogFile resolves the catalog file path from flags, environment and
// config, in that order of precedence.
func catalogFile(flags *globals.Flags) string {
	if flags != nil && flags.File != "" {
		return flags.File
	}
	return viper.GetString("file")
}
