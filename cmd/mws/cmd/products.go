package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func productsCmd() *cobra.Command {
	productsRoot := &cobra.Command{
		Use:   "products",
		Short: "Look up catalog products",
		Long: "Match products by identifier, search the catalog with a text query,\n" +
			"and inspect category placements.",
	}

	productsRoot.AddCommand(
		productsMatchCmd(),
		productsSearchCmd(),
		productsCategoriesCmd(),
	)

	return productsRoot
}

func productsMatchCmd() *cobra.Command {
	var idType string

	cmd := &cobra.Command{
		Use:   "match <id> [id...]",
		Short: "Match catalog entries by product identifier",
		Long: "Look up catalog entries for up to five identifiers of one type\n" +
			"(ASIN, GCID, SellerSKU, UPC, EAN, ISBN, JAN).",
		Example: `  # Match two EANs
  mws products match --id-type EAN 4051234567890 4059876543210

  # Match an ASIN
  mws products match --id-type ASIN B000FOUND1`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			result, err := client.GetMatchingProductForID(context.Background(), args, idType)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(result)
			}
			return printMatchTable(result)
		},
	}
	cmd.Flags().StringVar(&idType, "id-type", "EAN", "identifier type (ASIN, GCID, SellerSKU, UPC, EAN, ISBN, JAN)")

	return cmd
}

func productsSearchCmd() *cobra.Command {
	var queryContext string

	cmd := &cobra.Command{
		Use:     "search <query...>",
		Short:   "Search the catalog with a text query",
		Example: `  mws products search usb c cable --context Electronics`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			result, err := client.ListMatchingProducts(
				context.Background(), strings.Join(args, " "), queryContext)
			if err != nil {
				return err
			}
			return outputJSON(result)
		},
	}
	cmd.Flags().StringVar(&queryContext, "context", "", "query context id to narrow the search")

	return cmd
}

func productsCategoriesCmd() *cobra.Command {
	var bySKU bool

	cmd := &cobra.Command{
		Use:   "categories <asin|sku>",
		Short: "Show the category placements of a product",
		Example: `  mws products categories B000FOUND1
  mws products categories --sku my-sku-1`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			ctx := context.Background()
			lookup := client.GetProductCategoriesForASIN
			if bySKU {
				lookup = client.GetProductCategoriesForSKU
			}
			categories, err := lookup(ctx, args[0])
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(categories)
			}
			for _, category := range categories {
				fmt.Printf("%s\t%s\n",
					nodeString(category, "ProductCategoryId"),
					nodeString(category, "ProductCategoryName"),
				)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&bySKU, "sku", false, "treat the argument as a seller SKU instead of an ASIN")

	return cmd
}
