package cli

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/KirkDiggler/arcade/internal/models"
	"github.com/KirkDiggler/arcade/internal/services/shop"
	"github.com/spf13/cobra"
)

func newShopCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shop",
		Short: "Manage the shop catalog",
	}

	cmd.AddCommand(
		newShopListCmd(a),
		newShopAddRoleCmd(a),
		newShopRemoveRoleCmd(a),
	)

	return cmd
}

func newShopListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List catalog roles and items",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withServices(cmd.Context(), func(svcs *services) error {
				out, err := svcs.shop.ListItems(cmd.Context())
				if err != nil {
					return err
				}

				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				_, _ = fmt.Fprintln(tw, "ID\tNAME\tTYPE\tRARITY\tPRICE")
				for _, item := range append(out.Roles, out.Items...) {
					_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\n", item.ID, item.Name, item.Type, item.Rarity, item.Price)
				}
				return tw.Flush()
			})
		},
	}
}

func newShopAddRoleCmd(a *app) *cobra.Command {
	var (
		description string
		rarity      string
	)

	cmd := &cobra.Command{
		Use:   "add-role <role-id> <name> <price>",
		Short: "Add or update a purchasable guild role",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			price, err := strconv.ParseInt(args[2], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid price %q: %w", args[2], err)
			}

			return a.withServices(cmd.Context(), func(svcs *services) error {
				out, err := svcs.shop.SaveRole(cmd.Context(), &shop.SaveRoleInput{
					RoleID:      args[0],
					Name:        args[1],
					Description: description,
					Price:       price,
					Rarity:      models.Rarity(rarity),
				})
				if err != nil {
					return err
				}

				verb := "added"
				if out.Updated {
					verb = "updated"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%d\n", verb, out.Item.ID, out.Item.Price)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "shop description")
	cmd.Flags().StringVar(&rarity, "rarity", string(models.RarityCommon), "rarity tier")

	return cmd
}

func newShopRemoveRoleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove-role <role-id>",
		Short: "Remove a role from the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withServices(cmd.Context(), func(svcs *services) error {
				out, err := svcs.shop.RemoveRole(cmd.Context(), &shop.RemoveRoleInput{RoleID: args[0]})
				if err != nil {
					return err
				}

				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "removed\t%s\n", out.Item.ID)
				return nil
			})
		},
	}
}
