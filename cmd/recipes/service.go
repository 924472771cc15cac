package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/tendant/simple-recipes/pkg/simplerecipes"
	"github.com/tendant/simple-recipes/pkg/simplerecipes/config"
	"github.com/tendant/simple-recipes/pkg/simplerecipes/presets"
)

// newServiceFromFlags builds the service from the environment, or from the
// development preset when --dev is set.
func newServiceFromFlags(cmd *cobra.Command) (simplerecipes.Service, *config.ServerConfig, error) {
	dev, _ := cmd.Flags().GetBool("dev")
	verbose, _ := cmd.Flags().GetBool("verbose")

	_ = godotenv.Load()

	opts := []config.Option{config.WithEnv()}
	if dev {
		opts = append(opts, config.WithMemoryBackend())
	}
	if verbose {
		opts = append(opts, config.WithLogLevel("debug"))
	}
	cfg, err := config.Load(opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logOut := io.Discard
	if verbose {
		logOut = cmd.ErrOrStderr()
	}
	slog.SetDefault(cfg.NewLogger(logOut))

	if dev {
		svc, err := presets.NewDevelopment(presets.WithDevCatalogFile(cfg.CatalogFile))
		return svc, cfg, err
	}
	svc, err := cfg.BuildService()
	return svc, cfg, err
}

// NewEnvCommand prints the supported environment variables
func NewEnvCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "List supported environment variables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), config.EnvUsage())
			return err
		},
	}
}
