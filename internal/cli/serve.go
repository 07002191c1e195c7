package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/KirkDiggler/arcade/internal/handlers/discord"
	"github.com/KirkDiggler/arcade/internal/jobs"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the Discord bot",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.serve(cmd)
		},
	}
}

func (a *app) serve(cmd *cobra.Command) error {
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := newRedisClient(ctx, a.cfg)
	if err != nil {
		return err
	}
	defer client.Close()

	dg, err := discord.NewSession(a.cfg.Discord.Token)
	if err != nil {
		return err
	}

	svcs, err := wireServices(ctx, a.cfg, client, &platform{
		notifier:    discord.NewNotifier(dg),
		roleGranter: discord.NewRoleGranter(dg, a.cfg.Discord.GuildID),
	})
	if err != nil {
		return err
	}

	bot, err := discord.New(&discord.Config{
		ApplicationID: a.cfg.Discord.ApplicationID,
		GuildID:       a.cfg.Discord.GuildID,
		Session:       dg,
		GameService:   svcs.game,
		LedgerService: svcs.ledger,
		ShopService:   svcs.shop,
		TradeService:  svcs.trade,
		AdminService:  svcs.admin,
		Messaging:     svcs.messaging,
	})
	if err != nil {
		return err
	}

	loc, err := a.cfg.Location()
	if err != nil {
		return err
	}

	scheduler, err := jobs.NewScheduler(&jobs.Config{
		Registry:   svcs.registry,
		Admin:      svcs.admin,
		SweepSpec:  a.cfg.Scheduler.Sweep,
		ReportSpec: a.cfg.Scheduler.Report,
		Location:   loc,
	})
	if err != nil {
		return err
	}

	if err := bot.Start(); err != nil {
		return err
	}
	scheduler.Start()

	log.Info().Str("redis", a.cfg.Redis.Addr).Msg("Arcade is running, press CTRL-C to exit")
	<-ctx.Done()

	scheduler.Stop()

	if err := bot.Stop(); err != nil {
		return err
	}

	log.Info().Msg("Bot has been shut down")
	return nil
}
