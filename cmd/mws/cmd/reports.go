package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func reportsCmd() *cobra.Command {
	reportsRoot := &cobra.Command{
		Use:   "reports",
		Short: "Request and fetch reports",
		Long: "Request report generation, poll the processing state, and fetch\n" +
			"finished report content.",
	}

	reportsRoot.AddCommand(
		reportsRequestCmd(),
		reportsStatusCmd(),
		reportsGetCmd(),
		reportsListCmd(),
	)

	return reportsRoot
}

func reportsRequestCmd() *cobra.Command {
	var start, end string

	cmd := &cobra.Command{
		Use:   "request <report-type>",
		Short: "Request generation of a report",
		Example: `  mws reports request _GET_MERCHANT_LISTINGS_DATA_
  mws reports request _GET_FLAT_FILE_ORDERS_DATA_ --start 2026-08-01 --end 2026-08-31`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			var startAt, endAt *time.Time
			if start != "" {
				parsed, err := time.Parse("2006-01-02", start)
				if err != nil {
					return fmt.Errorf("parsing --start: %w", err)
				}
				startAt = &parsed
			}
			if end != "" {
				parsed, err := time.Parse("2006-01-02", end)
				if err != nil {
					return fmt.Errorf("parsing --end: %w", err)
				}
				endAt = &parsed
			}

			id, err := client.RequestReport(context.Background(), args[0], startAt, endAt)
			if err != nil {
				return err
			}
			fmt.Println(id)
			return nil
		},
	}
	cmd.Flags().StringVar(&start, "start", "", "report window start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "report window end (YYYY-MM-DD)")

	return cmd
}

func reportsStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "status <request-id>",
		Short:   "Show the processing state of a report request",
		Example: `  mws reports status 2291326454`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			info, err := client.GetReportRequestStatus(context.Background(), args[0])
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(info)
			}
			fmt.Println(nodeString(info, "ReportProcessingStatus"))
			return nil
		},
	}
}

func reportsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <request-id>",
		Short:   "Fetch the content of a finished report",
		Example: `  mws reports get 2291326454`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			report, err := client.GetReport(context.Background(), args[0])
			if err != nil {
				return err
			}

			if !report.Done {
				fmt.Printf("Report not ready: %s\n", report.Status)
				return nil
			}

			if jsonOutput() || report.Data != nil {
				return outputJSON(report)
			}
			return printReportRows(report.Rows)
		},
	}
}

func reportsListCmd() *cobra.Command {
	var reportTypes []string

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List the reports of the previous 90 days",
		Example: `  mws reports list --type _GET_MERCHANT_LISTINGS_DATA_`,
		RunE: func(_ *cobra.Command, _ []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			response, err := client.GetReportList(context.Background(), reportTypes)
			if err != nil {
				return err
			}
			return outputJSON(response)
		},
	}
	cmd.Flags().StringSliceVar(&reportTypes, "type", nil, "report type filter")

	return cmd
}
