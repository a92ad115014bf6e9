package cmd

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/merchantcs/mws-go/pkg/mws"
)

func pricingCmd() *cobra.Command {
	pricingRoot := &cobra.Command{
		Use:   "pricing",
		Short: "Query competitive and own prices",
	}

	pricingRoot.AddCommand(
		pricingCompetitiveCmd(),
		pricingLowestCmd(),
		pricingMineCmd(),
		pricingFeesCmd(),
	)

	return pricingRoot
}

func pricingCompetitiveCmd() *cobra.Command {
	var bySKU bool

	cmd := &cobra.Command{
		Use:   "competitive <id> [id...]",
		Short: "Show the competitive price per identifier",
		Example: `  mws pricing competitive B000X B000Y
  mws pricing competitive --sku my-sku-1`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			ctx := context.Background()
			if bySKU {
				prices, err := client.GetCompetitivePricingForSKU(ctx, args)
				if err != nil {
					return err
				}
				return outputJSON(prices)
			}

			prices, err := client.GetCompetitivePricingForASIN(ctx, args)
			if err != nil {
				return err
			}
			return outputJSON(prices)
		},
	}
	cmd.Flags().BoolVar(&bySKU, "sku", false, "treat arguments as seller SKUs instead of ASINs")

	return cmd
}

func pricingLowestCmd() *cobra.Command {
	var condition string
	var offers bool

	cmd := &cobra.Command{
		Use:   "lowest <asin> [asin...]",
		Short: "Show the lowest priced listings per ASIN",
		Example: `  mws pricing lowest B000X --condition Used

  # Full offer breakdown for one ASIN
  mws pricing lowest B000X --offers`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			ctx := context.Background()
			if offers {
				result, err := client.GetLowestPricedOffersForASIN(ctx, args[0], condition)
				if err != nil {
					return err
				}
				return outputJSON(result)
			}

			listings, err := client.GetLowestOfferListingsForASIN(ctx, args, condition)
			if err != nil {
				return err
			}
			return outputJSON(listings)
		},
	}
	cmd.Flags().StringVar(&condition, "condition", "", "item condition (New, Used, Collectible, Refurbished, Club)")
	cmd.Flags().BoolVar(&offers, "offers", false, "fetch the full offer breakdown for the first ASIN")

	return cmd
}

func pricingMineCmd() *cobra.Command {
	var bySKU bool
	var condition string

	cmd := &cobra.Command{
		Use:     "mine <id> [id...]",
		Short:   "Show the seller's own offers per identifier",
		Example: `  mws pricing mine --sku my-sku-1 my-sku-2`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			ctx := context.Background()
			var prices map[string]mws.MyPriceResult
			if bySKU {
				prices, err = client.GetMyPriceForSKU(ctx, args, condition)
			} else {
				prices, err = client.GetMyPriceForASIN(ctx, args, condition)
			}
			if err != nil {
				return err
			}
			return outputJSON(prices)
		},
	}
	cmd.Flags().BoolVar(&bySKU, "sku", false, "treat arguments as seller SKUs instead of ASINs")
	cmd.Flags().StringVar(&condition, "condition", "", "item condition filter")

	return cmd
}

func pricingFeesCmd() *cobra.Command {
	var (
		idType   string
		currency string
		fba      bool
	)

	cmd := &cobra.Command{
		Use:     "fees <id> <price>",
		Short:   "Estimate the selling fees for one product",
		Example: `  mws pricing fees B000X 24.99 --currency EUR --fba`,
		Args:    cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			price, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return err
			}

			estimate, err := client.GetMyFeesEstimate(context.Background(), mws.FeesEstimateRequest{
				IDType:          idType,
				IDValue:         args[0],
				ListingPrice:    price,
				CurrencyCode:    currency,
				AmazonFulfilled: fba,
			})
			if err != nil {
				return err
			}
			return outputJSON(estimate)
		},
	}
	cmd.Flags().StringVar(&idType, "id-type", "ASIN", "identifier type (ASIN, SellerSKU)")
	cmd.Flags().StringVar(&currency, "currency", "EUR", "listing price currency code")
	cmd.Flags().BoolVar(&fba, "fba", false, "estimate with Amazon fulfillment")

	return cmd
}
