package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/merchantcs/mws-go/pkg/mws"
)

func ordersCmd() *cobra.Command {
	ordersRoot := &cobra.Command{
		Use:   "orders",
		Short: "Query orders",
		Long: "Query and inspect orders placed in the configured marketplace,\n" +
			"including per-order line items.",
	}

	ordersRoot.AddCommand(
		ordersListCmd(),
		ordersGetCmd(),
		ordersItemsCmd(),
		ordersValidateCmd(),
	)

	return ordersRoot
}

func ordersListCmd() *cobra.Command {
	var (
		since           string
		days            int
		statuses        []string
		channels        []string
		allMarketplaces bool
		follow          bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List orders created in a time frame",
		Example: `  # Orders of the last 7 days (default filters: unshipped MFN)
  mws orders list

  # Shipped FBA orders since a date
  mws orders list --since 2026-08-01 --status Shipped --channel AFN

  # Follow continuation tokens until all pages are fetched
  mws orders list --days 30 --all-pages`,
		RunE: func(_ *cobra.Command, _ []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			createdAfter := time.Now().AddDate(0, 0, -days)
			if since != "" {
				createdAfter, err = time.Parse("2006-01-02", since)
				if err != nil {
					return fmt.Errorf("parsing --since: %w", err)
				}
			}

			ctx := context.Background()
			list, err := client.ListOrders(ctx, mws.ListOrdersOptions{
				CreatedAfter:        createdAfter,
				Statuses:            statuses,
				FulfillmentChannels: channels,
				AllMarketplaces:     allMarketplaces,
			})
			if err != nil {
				return err
			}

			orders := list.Orders
			for follow && list.NextToken != "" {
				if list, err = client.ListOrdersByNextToken(ctx, list.NextToken); err != nil {
					return err
				}
				orders = append(orders, list.Orders...)
			}

			if jsonOutput() {
				return outputJSON(orders)
			}

			if len(orders) == 0 {
				fmt.Println("No orders found.")
				return nil
			}
			return printOrdersTable(orders)
		},
	}
	cmd.Flags().StringVar(&since, "since", "", "list orders created after this date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&days, "days", 7, "list orders of the last N days (ignored with --since)")
	cmd.Flags().StringSliceVar(&statuses, "status", nil, "order status filter (default Unshipped, PartiallyShipped)")
	cmd.Flags().StringSliceVar(&channels, "channel", nil, "fulfillment channel filter (default MFN)")
	cmd.Flags().BoolVar(&allMarketplaces, "all-marketplaces", false, "query every known marketplace")
	cmd.Flags().BoolVar(&follow, "all-pages", false, "follow continuation tokens until exhausted")

	return cmd
}

func ordersGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <amazon-order-id>",
		Short:   "Show one order",
		Example: `  mws orders get 026-1234567-1234567`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			order, err := client.GetOrder(context.Background(), args[0])
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(order)
			}
			return printOrdersTable([]mws.Node{order})
		},
	}
}

func ordersItemsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "items <amazon-order-id>",
		Short:   "List the items of an order",
		Example: `  mws orders items 026-1234567-1234567`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			items, err := client.ListOrderItems(context.Background(), args[0])
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(items)
			}
			return printOrderItemsTable(items)
		},
	}
}

func ordersValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the configured credentials",
		Long: "Probe the order API with the configured credentials and report\n" +
			"whether signature, keys, and marketplace are accepted.",
		RunE: func(_ *cobra.Command, _ []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			if !client.ValidateCredentials(context.Background()) {
				return fmt.Errorf("credentials rejected by the marketplace endpoint")
			}
			fmt.Println("Credentials OK.")
			return nil
		},
	}
}
