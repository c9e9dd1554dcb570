package registry

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/google/renameio/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// DefaultRegistryURL is where the registry is published.
const DefaultRegistryURL = "https://piperubio-shadcn-registry.vercel.app"

var (
	cfgFile     string
	rootDir     string
	registryURL string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "registry",
	Short: "Serve and inspect the piperubio component registry",
	Long: `registry serves a shadcn-compatible component registry over HTTP, together with
documentation pages and a playground for the responsive description grid.
It can also mirror the registry into sqlite, rebuild its index and preview
grids in the terminal.`,
	PersistentPreRun: bindFlags,
	SilenceUsage:     true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.registry.toml)")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "root", "r", ".",
		"Directory holding registry.json and the registry/ folder")
	rootCmd.PersistentFlags().StringVar(&registryURL, "registry-url", DefaultRegistryURL,
		"Public URL of the registry, used in install commands")
}

func initConfig() {
	if cfgFile != "" {
		slog.Debug("Using config file", "path", cfgFile)
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".registry" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("toml")
		viper.SetConfigName(".registry")
	}

	viper.SetEnvPrefix("registry")
	viper.AutomaticEnv()

	// REGISTRY_URL is the documented name, which the prefix would turn into REGISTRY_REGISTRYURL.
	if err := viper.BindEnv("registryurl", "REGISTRY_URL"); err != nil {
		slog.Error("Could not bind REGISTRY_URL", "error", err)
	}

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			createExampleConfig()
		} else {
			slog.Error("Error reading config file", "error", err)
			os.Exit(1)
		}
	}
}

func createExampleConfig() {
	exampleConfig := fmt.Sprintf(`
port = 8080
root = "."
registryurl = %q
`, DefaultRegistryURL)
	configPath := "./.registry.toml"

	err := renameio.WriteFile(configPath, []byte(exampleConfig), 0o644)
	if err != nil {
		slog.Error("Error creating example config file", "error", err)
		os.Exit(1)
	}

	slog.Info("Example config file created", "path", configPath)
}

// set values to the PFlag variables from config, if they are set. Priority is still given to explicitly provided CLI flags.
func bindFlags(cmd *cobra.Command, _ []string) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		// Since viper does case-insensitive comparisons, we don't need to bother fixing the case, and only need to remove the hyphens.
		configName := strings.ReplaceAll(f.Name, "-", "")

		if !f.Changed && viper.IsSet(configName) {
			val := viper.Get(configName)

			err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val))
			if err != nil {
				slog.Error("Error setting flag from config", "flag", f.Name, "error", err)
				panic(err)
			}

			slog.Debug("Flag set to config value", "flag", f.Name, "value", val)
		}
	})
}
