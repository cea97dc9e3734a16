package cmd

import (
	"os"

	"github.com/pkg/errors"
	"github.com/safehaven-world/safehaven/config"
	"github.com/spf13/cobra"
)

var (
	configurationFile string
	verbose           bool

	cfg *config.Config
)

func initConfig(filename string) (*config.Config, error) {
	cfg := config.New()
	if err := config.Load(filename, cfg); err != nil {
		return nil, errors.Wrap(err, "could not load configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}

func loadConfig(cmd *cobra.Command, args []string) (err error) {
	cfg, err = initConfig(configurationFile)
	return err
}

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "safehaven",
		Short:        "",
		Long:         ``,
		SilenceUsage: true,
	}

	cmd.SetOut(os.Stdout)
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "", false, "Verbose logging.")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newMigrationsCmd())
	cmd.AddCommand(newStartCmd())

	return cmd
}

func Execute() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
