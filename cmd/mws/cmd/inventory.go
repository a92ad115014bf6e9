package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func inventoryCmd() *cobra.Command {
	inventoryRoot := &cobra.Command{
		Use:   "inventory",
		Short: "Query fulfillment network inventory",
	}

	inventoryRoot.AddCommand(inventorySupplyCmd())

	return inventoryRoot
}

func inventorySupplyCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "supply <sku> [sku...]",
		Short:   "Show the fulfillment network stock for up to 50 SKUs",
		Example: `  mws inventory supply sku-1 sku-2`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			supply, err := client.ListInventorySupply(context.Background(), args)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(supply)
			}

			if len(supply) == 0 {
				fmt.Println("No inventory found.")
				return nil
			}
			return printInventoryTable(supply)
		},
	}
}
