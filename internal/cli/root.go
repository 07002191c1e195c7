// Package cli is the operator entry point: it runs the bot and administers its Redis state.
package cli

import (
	"context"

	"github.com/KirkDiggler/arcade/internal/config"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// app carries state shared by every subcommand
type app struct {
	configPath string
	cfg        *config.Config
}

// Execute runs the root command
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "arcade",
		Short:         "Discord economy and mini-game bot",
		Long:          "arcade runs the Discord mini-game bot and manages its coin ledger and shop catalog.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load()
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "directory containing config.yaml")

	rootCmd.AddCommand(
		newServeCmd(a),
		newLedgerCmd(a),
		newShopCmd(a),
		newHashKeyCmd(),
	)

	return rootCmd
}

func (a *app) load() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	a.cfg = cfg
	log.Logger = cfg.Logger()
	return nil
}

// withServices wires the service graph without chat collaborators and closes Redis afterwards
func (a *app) withServices(ctx context.Context, fn func(*services) error) error {
	client, err := newRedisClient(ctx, a.cfg)
	if err != nil {
		return err
	}
	defer client.Close()

	svcs, err := wireServices(ctx, a.cfg, client, nil)
	if err != nil {
		return err
	}

	return fn(svcs)
}
