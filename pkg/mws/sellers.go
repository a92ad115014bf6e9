package mws

import (
	"context"
	"fmt"
)

// ListMarketplaceParticipations returns the marketplaces the seller can
// sell in, with the seller-specific participation details per marketplace.
func (c *Client) ListMarketplaceParticipations(ctx context.Context) (Node, error) {
	response, err := c.doXML(ctx, "ListMarketplaceParticipations", nil)
	if err != nil {
		return nil, fmt.Errorf("listing marketplace participations: %w", err)
	}

	if result := digNode(response, "ListMarketplaceParticipationsResult"); result != nil {
		return result, nil
	}
	return response, nil
}

// ListRecommendations returns the seller's active recommendations,
// optionally narrowed to one category (Inventory, Selection, Pricing,
// Fulfillment, ListingQuality, GlobalSelling, Advertising). ErrNotFound
// means the service returned no recommendation result at all.
func (c *Client) ListRecommendations(ctx context.Context, category string) (Node, error) {
	query := map[string]string{
		"MarketplaceId": c.cfg.MarketplaceID,
	}
	if category != "" {
		query["RecommendationCategory"] = category
	}

	response, err := c.doXML(ctx, "ListRecommendations", query)
	if err != nil {
		return nil, fmt.Errorf("listing recommendations: %w", err)
	}

	result := digNode(response, "ListRecommendationsResult")
	if result == nil {
		return nil, fmt.Errorf("recommendations: %w", ErrNotFound)
	}
	return result, nil
}
