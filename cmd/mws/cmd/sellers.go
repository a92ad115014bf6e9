package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

func sellersCmd() *cobra.Command {
	sellersRoot := &cobra.Command{
		Use:   "sellers",
		Short: "Query seller account data",
	}

	sellersRoot.AddCommand(
		sellersParticipationsCmd(),
		sellersRecommendationsCmd(),
	)

	return sellersRoot
}

func sellersParticipationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "participations",
		Short: "List the marketplaces the seller participates in",
		RunE: func(_ *cobra.Command, _ []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			result, err := client.ListMarketplaceParticipations(context.Background())
			if err != nil {
				return err
			}
			return outputJSON(result)
		},
	}
}

func sellersRecommendationsCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:     "recommendations",
		Short:   "List active selling recommendations",
		Example: `  mws sellers recommendations --category Pricing`,
		RunE: func(_ *cobra.Command, _ []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			result, err := client.ListRecommendations(context.Background(), category)
			if err != nil {
				return err
			}
			return outputJSON(result)
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "recommendation category filter")

	return cmd
}
