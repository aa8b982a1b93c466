package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	showlocations "github.com/scanlens/scanlens/cmd/show-locations"
	"github.com/scanlens/scanlens/cmd/version"
	"github.com/scanlens/scanlens/pkg/shared/config"
)

var (
	cfgFile   string
	AppConfig *config.Config
	rootCmd   = &cobra.Command{
		Use:                   "scanlens [command]",
		SilenceUsage:          true,
		DisableFlagsInUseLine: true,
		Short:                 "Scanlens reconciles recorded analysis issues against the local working copy.",
		Long: `Scanlens takes issues recorded by code analysis (live results, server
	"show issue" requests, taint vulnerability records, or SARIF reports) and checks
	every referenced location against the files currently on disk, producing the
	"show all locations" payload for an editor to render.
	`,
	}
)

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is config.yml)")
	rootCmd.AddCommand(version.NewVersionCmd())
	rootCmd.AddCommand(showlocations.ShowLocationsCmd)
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		return 1
	}
	return 0
}

func initConfig() {
	var err error

	if cfgFile == "" {
		cfgFile = "config.yml"
	}
	AppConfig, err = config.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := config.ValidateConfig(AppConfig); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	showlocations.Init(AppConfig)
}
