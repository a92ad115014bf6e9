package mws

import (
	"context"
	"fmt"
	"strconv"
)

const maxPricingIdentifiers = 20

// CompetitivePrice is the competitive price point of one SKU, with the sales
// rank the service reports next to it.
type CompetitivePrice struct {
	Price Node
	Rank  Node
}

// MyPriceResult holds the seller's own offers for one identifier. OK is
// false when the service reported a non-success status for that identifier,
// which is distinct from a successful lookup with no offers.
type MyPriceResult struct {
	OK     bool
	Offers []Node
}

// GetCompetitivePricingForASIN returns the current competitive price per
// ASIN. ASINs with no competitive price node are omitted from the result.
func (c *Client) GetCompetitivePricingForASIN(ctx context.Context, asins []string) (map[string]Node, error) {
	response, err := c.pricingCall(ctx, "GetCompetitivePricingForASIN", "ASINList.ASIN.", asins, nil)
	if err != nil {
		return nil, err
	}

	result := map[string]Node{}
	for _, product := range asList(dig(response, "GetCompetitivePricingForASINResult")) {
		price := digNode(product, "Product", "CompetitivePricing", "CompetitivePrices", "CompetitivePrice", "Price")
		if price == nil {
			continue
		}
		asin := digString(product, "Product", "Identifiers", "MarketplaceASIN", "ASIN")
		result[asin] = price
	}
	return result, nil
}

// GetCompetitivePricingForSKU returns the competitive price and sales rank
// per seller SKU. SKUs with no competitive price node are omitted.
func (c *Client) GetCompetitivePricingForSKU(ctx context.Context, skus []string) (map[string]CompetitivePrice, error) {
	response, err := c.pricingCall(ctx, "GetCompetitivePricingForSKU", "SellerSKUList.SellerSKU.", skus, nil)
	if err != nil {
		return nil, err
	}

	result := map[string]CompetitivePrice{}
	for _, product := range asList(dig(response, "GetCompetitivePricingForSKUResult")) {
		price := digNode(product, "Product", "CompetitivePricing", "CompetitivePrices", "CompetitivePrice", "Price")
		if price == nil {
			continue
		}
		sku := digString(product, "Product", "Identifiers", "SKUIdentifier", "SellerSKU")
		entry := CompetitivePrice{Price: price}
		if ranks := asList(dig(product, "Product", "SalesRankings", "SalesRank")); len(ranks) > 1 {
			entry.Rank = ranks[1]
		}
		result[sku] = entry
	}
	return result, nil
}

// GetLowestOfferListingsForASIN returns the lowest-price active offer
// listings per ASIN. itemCondition narrows to one of New, Used, Collectible,
// Refurbished, Club; empty means all. ASINs with no listings are omitted.
func (c *Client) GetLowestOfferListingsForASIN(ctx context.Context, asins []string, itemCondition string) (map[string][]Node, error) {
	response, err := c.pricingCall(ctx, "GetLowestOfferListingsForASIN", "ASINList.ASIN.", asins, conditionParam(itemCondition))
	if err != nil {
		return nil, err
	}

	result := map[string][]Node{}
	for _, product := range asList(dig(response, "GetLowestOfferListingsForASINResult")) {
		listings := dig(product, "Product", "LowestOfferListings", "LowestOfferListing")
		if listings == nil {
			continue
		}
		asin := digString(product, "Product", "Identifiers", "MarketplaceASIN", "ASIN")
		result[asin] = asList(listings)
	}
	return result, nil
}

// GetLowestPricedOffersForASIN returns the lowest priced offers for a single
// ASIN in the given condition.
func (c *Client) GetLowestPricedOffersForASIN(ctx context.Context, asin, itemCondition string) (Node, error) {
	if itemCondition == "" {
		itemCondition = "New"
	}
	response, err := c.doXML(ctx, "GetLowestPricedOffersForASIN", map[string]string{
		"ASIN":          asin,
		"MarketplaceId": c.cfg.MarketplaceID,
		"ItemCondition": itemCondition,
	})
	if err != nil {
		return nil, fmt.Errorf("getting lowest priced offers for %s: %w", asin, err)
	}
	return response, nil
}

// GetMyPriceForSKU returns the seller's own offer listings per SKU.
func (c *Client) GetMyPriceForSKU(ctx context.Context, skus []string, itemCondition string) (map[string]MyPriceResult, error) {
	response, err := c.pricingCall(ctx, "GetMyPriceForSKU", "SellerSKUList.SellerSKU.", skus, conditionParam(itemCondition))
	if err != nil {
		return nil, err
	}
	return myPrices(response, "GetMyPriceForSKUResult", "SellerSKU"), nil
}

// GetMyPriceForASIN returns the seller's own offer listings per ASIN.
func (c *Client) GetMyPriceForASIN(ctx context.Context, asins []string, itemCondition string) (map[string]MyPriceResult, error) {
	response, err := c.pricingCall(ctx, "GetMyPriceForASIN", "ASINList.ASIN.", asins, conditionParam(itemCondition))
	if err != nil {
		return nil, err
	}
	return myPrices(response, "GetMyPriceForASINResult", "ASIN"), nil
}

func myPrices(response Node, resultKey, idAttr string) map[string]MyPriceResult {
	result := map[string]MyPriceResult{}
	for _, product := range asList(dig(response, resultKey)) {
		id := attr(product, idAttr)
		if attr(product, "status") != "Success" {
			result[id] = MyPriceResult{}
			continue
		}
		result[id] = MyPriceResult{
			OK:     true,
			Offers: asList(dig(product, "Product", "Offers", "Offer")),
		}
	}
	return result
}

// FeesEstimateRequest describes one fee estimation.
type FeesEstimateRequest struct {
	IDType          string // ASIN or SellerSKU
	IDValue         string
	ListingPrice    float64
	CurrencyCode    string
	AmazonFulfilled bool
}

// GetMyFeesEstimate returns the estimated fees for selling one product at
// the given price.
func (c *Client) GetMyFeesEstimate(ctx context.Context, req FeesEstimateRequest) (Node, error) {
	const prefix = "FeesEstimateRequestList.FeesEstimateRequest.1."
	query := map[string]string{"MarketplaceId": c.cfg.MarketplaceID}
	query[prefix+"MarketplaceId"] = c.cfg.MarketplaceID
	query[prefix+"IdType"] = req.IDType
	query[prefix+"IdValue"] = req.IDValue
	query[prefix+"PriceToEstimateFees.ListingPrice.Amount"] = strconv.FormatFloat(req.ListingPrice, 'f', -1, 64)
	query[prefix+"PriceToEstimateFees.ListingPrice.CurrencyCode"] = req.CurrencyCode
	query[prefix+"Identifier"] = c.nowFunc().UTC().Format(timestampFormat)
	query[prefix+"IsAmazonFulfilled"] = strconv.FormatBool(req.AmazonFulfilled)

	response, err := c.doXML(ctx, "GetMyFeesEstimate", query)
	if err != nil {
		return nil, fmt.Errorf("getting fees estimate: %w", err)
	}
	return response, nil
}

// pricingCall validates the shared 20-identifier limit, assembles the
// 1-based positional list parameters, and performs the call.
func (c *Client) pricingCall(ctx context.Context, operation, listPrefix string, ids []string, extra map[string]string) (Node, error) {
	if len(ids) > maxPricingIdentifiers {
		return nil, &ValidationError{
			Reason: fmt.Sprintf("maximum amount of identifiers for this call is %d", maxPricingIdentifiers),
		}
	}

	query := map[string]string{
		"MarketplaceId": c.cfg.MarketplaceID,
	}
	for k, v := range extra {
		query[k] = v
	}
	for i, id := range ids {
		query[listPrefix+strconv.Itoa(i+1)] = id
	}

	response, err := c.doXML(ctx, operation, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", operation, err)
	}
	return response, nil
}

func conditionParam(itemCondition string) map[string]string {
	if itemCondition == "" {
		return nil
	}
	return map[string]string{"ItemCondition": itemCondition}
}
