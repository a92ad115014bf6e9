package mws

import (
	"context"
	"fmt"
	"sort"
	"time"
)

// Feed types accepted by SubmitFeed.
const (
	FeedTypeProductData           = "_POST_PRODUCT_DATA_"
	FeedTypeInventoryAvailability = "_POST_INVENTORY_AVAILABILITY_DATA_"
	FeedTypeProductPricing        = "_POST_PRODUCT_PRICING_DATA_"
	FeedTypeFlatFileListings      = "_POST_FLAT_FILE_LISTINGS_DATA_"
)

// SubmitFeedOptions adjusts a feed submission.
type SubmitFeedOptions struct {
	// PurgeAndReplace replaces the seller's entire dataset of this feed's
	// type with the submitted content.
	PurgeAndReplace bool

	// Debug returns the generated feed body without transmitting it.
	Debug bool
}

// FeedResult is the outcome of a feed submission. After a real submission
// Info holds the FeedSubmissionInfo element (id, type, submitted date,
// processing status); in debug mode DebugBody holds the generated feed and
// nothing was sent.
type FeedResult struct {
	Info      Node
	DebugBody []byte
}

// SubmitFeed uploads a feed body for asynchronous processing. The body is
// hashed into the Content-MD5 header over the exact bytes transmitted.
func (c *Client) SubmitFeed(ctx context.Context, feedType string, feed []byte, opts *SubmitFeedOptions) (*FeedResult, error) {
	if opts == nil {
		opts = &SubmitFeedOptions{}
	}

	if opts.Debug || c.debugNextFeed {
		c.debugNextFeed = false
		return &FeedResult{DebugBody: feed}, nil
	}

	query := map[string]string{
		"FeedType":               feedType,
		"PurgeAndReplace":        fmt.Sprintf("%t", opts.PurgeAndReplace),
		"Merchant":               c.cfg.SellerID,
		"MarketplaceIdList.Id.1": c.cfg.MarketplaceID,
	}

	resp, err := c.do(ctx, "SubmitFeed", query, feed)
	if err != nil {
		return nil, fmt.Errorf("submitting %s feed: %w", feedType, err)
	}

	response, err := resp.decode()
	if err != nil {
		return nil, err
	}
	return &FeedResult{
		Info: digNode(response, "SubmitFeedResult", "FeedSubmissionInfo"),
	}, nil
}

// UpdateStock submits an inventory feed setting the available quantity per
// SKU.
func (c *Client) UpdateStock(ctx context.Context, quantities map[string]int) (*FeedResult, error) {
	messages := make([]feedMessage, 0, len(quantities))
	for _, sku := range sortedKeys(quantities) {
		messages = append(messages, feedMessage{
			OperationType: "Update",
			Inventory:     &inventoryMessage{SKU: sku, Quantity: quantities[sku]},
		})
	}
	return c.submitEnvelope(ctx, FeedTypeInventoryAvailability, "Inventory", messages)
}

// StockUpdate is one UpdateStockWithFulfillmentLatency entry.
type StockUpdate struct {
	SKU                string
	Quantity           int
	FulfillmentLatency int
}

// UpdateStockWithFulfillmentLatency submits an inventory feed that also
// sets the per-SKU shipping lead time in days.
func (c *Client) UpdateStockWithFulfillmentLatency(ctx context.Context, updates []StockUpdate) (*FeedResult, error) {
	messages := make([]feedMessage, 0, len(updates))
	for _, u := range updates {
		messages = append(messages, feedMessage{
			OperationType: "Update",
			Inventory: &inventoryMessage{
				SKU:                u.SKU,
				Quantity:           u.Quantity,
				FulfillmentLatency: u.FulfillmentLatency,
			},
		})
	}
	return c.submitEnvelope(ctx, FeedTypeInventoryAvailability, "Inventory", messages)
}

// SalePrice is an optional sale window attached to a price update.
type SalePrice struct {
	SalePrice string
	StartDate time.Time
	EndDate   time.Time
}

// UpdatePrice submits a pricing feed. prices maps SKU to the standard price
// in XSD decimal form; sales optionally attaches a sale window per SKU.
func (c *Client) UpdatePrice(ctx context.Context, prices map[string]string, sales map[string]SalePrice) (*FeedResult, error) {
	messages := make([]feedMessage, 0, len(prices))
	for _, sku := range sortedKeys(prices) {
		msg := feedMessage{
			Price: &priceMessage{
				SKU:           sku,
				StandardPrice: priceAmount{Currency: "DEFAULT", Value: prices[sku]},
			},
		}
		if sale, ok := sales[sku]; ok {
			msg.Price.Sale = &saleWindow{
				StartDate: sale.StartDate.UTC().Format(timestampFormat),
				EndDate:   sale.EndDate.UTC().Format(timestampFormat),
				SalePrice: priceAmount{Currency: "DEFAULT", Value: sale.SalePrice},
			}
		}
		messages = append(messages, msg)
	}
	return c.submitEnvelope(ctx, FeedTypeProductPricing, "Price", messages)
}

// DeleteProductsBySKU submits a product feed deleting the given SKUs.
func (c *Client) DeleteProductsBySKU(ctx context.Context, skus []string) (*FeedResult, error) {
	messages := make([]feedMessage, 0, len(skus))
	for _, sku := range skus {
		messages = append(messages, feedMessage{
			OperationType: "Delete",
			Product:       &productMessage{SKU: sku},
		})
	}
	return c.submitEnvelope(ctx, FeedTypeProductData, "Product", messages)
}

// PostProducts creates or updates offers via the Offer listings flat file.
// Every product must pass validation; the first invalid one aborts the
// submission before any network call.
func (c *Client) PostProducts(ctx context.Context, products []Product) (*FeedResult, error) {
	body, err := offerFlatFile(products)
	if err != nil {
		return nil, err
	}
	return c.SubmitFeed(ctx, FeedTypeFlatFileListings, body, nil)
}

// PostListings creates or updates full marketplace product records via the
// AmazonMarketPlace listings flat file.
func (c *Client) PostListings(ctx context.Context, listings []Listing) (*FeedResult, error) {
	body, err := marketplaceFlatFile(listings)
	if err != nil {
		return nil, err
	}
	return c.SubmitFeed(ctx, FeedTypeFlatFileListings, body, nil)
}

func (c *Client) submitEnvelope(ctx context.Context, feedType, messageType string, messages []feedMessage) (*FeedResult, error) {
	body, err := buildEnvelope(c.cfg.SellerID, messageType, messages)
	if err != nil {
		return nil, err
	}
	return c.SubmitFeed(ctx, feedType, body, nil)
}

// GetFeedSubmissionResult returns the processing report of a submitted
// feed, or the whole response node when the service returned no report.
func (c *Client) GetFeedSubmissionResult(ctx context.Context, feedSubmissionID string) (Node, error) {
	response, err := c.doXML(ctx, "GetFeedSubmissionResult", map[string]string{
		"FeedSubmissionId": feedSubmissionID,
	})
	if err != nil {
		return nil, fmt.Errorf("getting feed submission result: %w", err)
	}

	if report := digNode(response, "Message", "ProcessingReport"); report != nil {
		return report, nil
	}
	return response, nil
}

// GetFeedSubmissionList returns the feed submissions of the previous 90
// days.
func (c *Client) GetFeedSubmissionList(ctx context.Context) (Node, error) {
	response, err := c.doXML(ctx, "GetFeedSubmissionList", nil)
	if err != nil {
		return nil, fmt.Errorf("listing feed submissions: %w", err)
	}
	return response, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
