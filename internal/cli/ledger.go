package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/KirkDiggler/arcade/internal/services/admin"
	"github.com/KirkDiggler/arcade/internal/services/ledger"
	"github.com/KirkDiggler/arcade/internal/services/messaging"
	"github.com/spf13/cobra"
)

func newLedgerCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Inspect and adjust user balances",
	}

	cmd.AddCommand(
		newLedgerBalanceCmd(a),
		newLedgerAmountCmd(a, "give", "Give coins to a user", func(svcs *services) amountFunc { return svcs.admin.Give }),
		newLedgerAmountCmd(a, "take", "Take coins from a user, never below zero", func(svcs *services) amountFunc { return svcs.admin.Take }),
		newLedgerAmountCmd(a, "set", "Set a user's balance", func(svcs *services) amountFunc { return svcs.admin.SetBalance }),
		newLedgerResetCmd(a),
	)

	return cmd
}

type amountFunc = func(ctx context.Context, input *admin.AmountInput) (*ledger.BalanceOutput, error)

func newLedgerBalanceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "balance <user>",
		Short: "Show a user's balance and stats",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withServices(cmd.Context(), func(svcs *services) error {
				out, err := svcs.ledger.GetUser(cmd.Context(), &ledger.GetUserInput{UserID: args[0]})
				if err != nil {
					return err
				}

				u := out.User
				w := cmd.OutOrStdout()
				_, _ = fmt.Fprintf(w, "user\t%s\n", u.ID)
				_, _ = fmt.Fprintf(w, "balance\t%s\n", messaging.FormatCoins(u.Balance))
				_, _ = fmt.Fprintf(w, "played\t%d\n", u.Stats.GamesPlayed)
				_, _ = fmt.Fprintf(w, "won\t%d\n", u.Stats.GamesWon)
				_, _ = fmt.Fprintf(w, "streak\t%d\n", u.DailyStreak)
				_, _ = fmt.Fprintf(w, "items\t%d\n", len(u.Inventory))
				return nil
			})
		},
	}
}

func newLedgerAmountCmd(a *app, use, short string, pick func(*services) amountFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <user> <amount>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[1], err)
			}

			return a.withServices(cmd.Context(), func(svcs *services) error {
				out, err := pick(svcs)(cmd.Context(), &admin.AmountInput{UserID: args[0], Amount: amount})
				if err != nil {
					return err
				}

				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s (%+d)\n", args[0], messaging.FormatCoins(out.Balance), out.Applied)
				return nil
			})
		},
	}
}

func newLedgerResetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reset <user>",
		Short: "Reset a user's record to a fresh account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withServices(cmd.Context(), func(svcs *services) error {
				if err := svcs.admin.Reset(cmd.Context(), &admin.ResetInput{UserID: args[0]}); err != nil {
					return err
				}

				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\treset\n", args[0])
				return nil
			})
		},
	}
}
