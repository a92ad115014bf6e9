package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/merchantcs/mws-go/pkg/mws"
)

func financesCmd() *cobra.Command {
	financesRoot := &cobra.Command{
		Use:   "finances",
		Short: "Query financial events",
	}

	financesRoot.AddCommand(financesEventsCmd())

	return financesRoot
}

func financesEventsCmd() *cobra.Command {
	var (
		orderID  string
		days     int
		maxPerPg int
		allPages bool
	)

	cmd := &cobra.Command{
		Use:   "events",
		Short: "List financial events for an order or posting window",
		Example: `  mws finances events --order 123-4567890-1234567
  mws finances events --days 7 --all-pages`,
		RunE: func(_ *cobra.Command, _ []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			opts := mws.ListFinancialEventsOptions{
				AmazonOrderID: orderID,
				MaxResults:    maxPerPg,
			}
			if orderID == "" {
				opts.PostedAfter = time.Now().AddDate(0, 0, -days)
			}

			ctx := context.Background()
			page, err := client.ListFinancialEvents(ctx, opts)
			if err != nil {
				return err
			}

			events := []mws.Node{page.Events}
			for allPages && page.NextToken != "" {
				page, err = client.ListFinancialEventsByNextToken(ctx, page.NextToken)
				if err != nil {
					return err
				}
				events = append(events, page.Events)
			}

			return outputJSON(events)
		},
	}
	cmd.Flags().StringVar(&orderID, "order", "", "Amazon order id")
	cmd.Flags().IntVar(&days, "days", 30, "posting window in days, when no order id is given")
	cmd.Flags().IntVar(&maxPerPg, "max-per-page", 0, "page size (server default when 0)")
	cmd.Flags().BoolVar(&allPages, "all-pages", false, "follow the next token until exhausted")

	return cmd
}
