package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func feedsCmd() *cobra.Command {
	feedsRoot := &cobra.Command{
		Use:   "feeds",
		Short: "Submit and track feeds",
		Long: "Submit inventory, price, and deletion feeds, and track the\n" +
			"processing state of earlier submissions.",
	}

	feedsRoot.AddCommand(
		feedsStockCmd(),
		feedsPriceCmd(),
		feedsDeleteCmd(),
		feedsResultCmd(),
		feedsListCmd(),
	)

	return feedsRoot
}

// parsePairs splits sku=value arguments.
func parsePairs(args []string) (map[string]string, error) {
	pairs := make(map[string]string, len(args))
	for _, arg := range args {
		sku, value, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, fmt.Errorf("expected sku=value, got %q", arg)
		}
		pairs[sku] = value
	}
	return pairs, nil
}

func feedsStockCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:     "stock <sku=quantity> [sku=quantity...]",
		Short:   "Submit an inventory feed",
		Example: `  mws feeds stock sku-1=4 sku-2=0`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			pairs, err := parsePairs(args)
			if err != nil {
				return err
			}
			quantities := make(map[string]int, len(pairs))
			for sku, value := range pairs {
				qty, err := strconv.Atoi(value)
				if err != nil {
					return fmt.Errorf("quantity for %s: %w", sku, err)
				}
				quantities[sku] = qty
			}

			if debug {
				client.DebugNextFeed()
			}
			result, err := client.UpdateStock(context.Background(), quantities)
			if err != nil {
				return err
			}

			if result.DebugBody != nil {
				fmt.Println(string(result.DebugBody))
				return nil
			}
			return outputJSON(result.Info)
		},
	}
	cmd.Flags().BoolVar(&debug, "debug", false, "print the generated feed instead of submitting it")

	return cmd
}

func feedsPriceCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:     "price <sku=price> [sku=price...]",
		Short:   "Submit a price feed",
		Example: `  mws feeds price sku-1=19.99 sku-2=5.00`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			prices, err := parsePairs(args)
			if err != nil {
				return err
			}

			if debug {
				client.DebugNextFeed()
			}
			result, err := client.UpdatePrice(context.Background(), prices, nil)
			if err != nil {
				return err
			}

			if result.DebugBody != nil {
				fmt.Println(string(result.DebugBody))
				return nil
			}
			return outputJSON(result.Info)
		},
	}
	cmd.Flags().BoolVar(&debug, "debug", false, "print the generated feed instead of submitting it")

	return cmd
}

func feedsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <sku> [sku...]",
		Short:   "Submit a feed deleting products by SKU",
		Example: `  mws feeds delete sku-1 sku-2`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			result, err := client.DeleteProductsBySKU(context.Background(), args)
			if err != nil {
				return err
			}
			return outputJSON(result.Info)
		},
	}
}

func feedsResultCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "result <submission-id>",
		Short:   "Show the processing report of a submitted feed",
		Example: `  mws feeds result 2291326430`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			report, err := client.GetFeedSubmissionResult(context.Background(), args[0])
			if err != nil {
				return err
			}
			return outputJSON(report)
		},
	}
}

func feedsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the feed submissions of the previous 90 days",
		RunE: func(_ *cobra.Command, _ []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			response, err := client.GetFeedSubmissionList(context.Background())
			if err != nil {
				return err
			}
			return outputJSON(response)
		},
	}
}
