package mws

import (
	"context"
	"fmt"
	"strconv"
)

const maxInventorySKUs = 50

// ListInventorySupply returns the fulfillment network inventory state for
// up to 50 seller SKUs.
func (c *Client) ListInventorySupply(ctx context.Context, skus []string) ([]Node, error) {
	if len(skus) > maxInventorySKUs {
		return nil, &ValidationError{
			Reason: fmt.Sprintf("maximum amount of SKUs for this call is %d", maxInventorySKUs),
		}
	}

	query := map[string]string{
		"MarketplaceId": c.cfg.MarketplaceID,
	}
	for i, sku := range skus {
		query["SellerSkus.member."+strconv.Itoa(i+1)] = sku
	}

	response, err := c.doXML(ctx, "ListInventorySupply", query)
	if err != nil {
		return nil, fmt.Errorf("listing inventory supply: %w", err)
	}
	return asList(dig(response, "ListInventorySupplyResult", "InventorySupplyList", "member")), nil
}
