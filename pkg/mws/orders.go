package mws

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"
)

// ListOrdersOptions filters a ListOrders call. Zero values fall back to the
// API's conventional defaults: unshipped MFN orders across the configured
// marketplace only.
type ListOrdersOptions struct {
	CreatedAfter  time.Time
	CreatedBefore time.Time

	// Statuses filters on order states; defaults to Unshipped and
	// PartiallyShipped.
	Statuses []string

	// FulfillmentChannels defaults to MFN.
	FulfillmentChannels []string

	// AllMarketplaces lists orders from every known marketplace instead of
	// just the configured one.
	AllMarketplaces bool
}

// OrderList is a page of orders plus the continuation token to resubmit for
// the next page, when the service returned one.
type OrderList struct {
	Orders    []Node
	NextToken string
}

// ListOrders returns orders created during the given time frame.
func (c *Client) ListOrders(ctx context.Context, opts ListOrdersOptions) (*OrderList, error) {
	if opts.CreatedAfter.IsZero() {
		return nil, &ValidationError{Reason: "CreatedAfter is required"}
	}

	query := map[string]string{
		"CreatedAfter": opts.CreatedAfter.UTC().Format(timestampFormat),
	}
	if !opts.CreatedBefore.IsZero() {
		query["CreatedBefore"] = opts.CreatedBefore.UTC().Format(timestampFormat)
	}

	statuses := opts.Statuses
	if len(statuses) == 0 {
		statuses = []string{"Unshipped", "PartiallyShipped"}
	}
	for i, status := range statuses {
		query["OrderStatus.Status."+strconv.Itoa(i+1)] = status
	}

	channels := opts.FulfillmentChannels
	if len(channels) == 0 {
		channels = []string{"MFN"}
	}
	for i, channel := range channels {
		query["FulfillmentChannel.Channel."+strconv.Itoa(i+1)] = channel
	}

	if opts.AllMarketplaces {
		for i, id := range MarketplaceIDs() {
			query["MarketplaceId.Id."+strconv.Itoa(i+1)] = id
		}
	}

	response, err := c.doXML(ctx, "ListOrders", query)
	if err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}
	return orderPage(response, "ListOrdersResult"), nil
}

// ListOrdersByNextToken fetches the next page of a ListOrders result.
func (c *Client) ListOrdersByNextToken(ctx context.Context, nextToken string) (*OrderList, error) {
	if nextToken == "" {
		return nil, &ValidationError{Reason: "next token is required"}
	}

	response, err := c.doXML(ctx, "ListOrdersByNextToken", map[string]string{
		"NextToken": nextToken,
	})
	if err != nil {
		return nil, fmt.Errorf("listing orders by next token: %w", err)
	}
	return orderPage(response, "ListOrdersByNextTokenResult"), nil
}

func orderPage(response Node, resultKey string) *OrderList {
	return &OrderList{
		Orders:    asList(dig(response, resultKey, "Orders", "Order")),
		NextToken: digString(response, resultKey, "NextToken"),
	}
}

// GetOrder returns one order by its Amazon order id, or ErrNotFound.
func (c *Client) GetOrder(ctx context.Context, amazonOrderID string) (Node, error) {
	response, err := c.doXML(ctx, "GetOrder", map[string]string{
		"AmazonOrderId.Id.1": amazonOrderID,
	})
	if err != nil {
		return nil, fmt.Errorf("getting order %s: %w", amazonOrderID, err)
	}

	order := digNode(response, "GetOrderResult", "Orders", "Order")
	if order == nil {
		return nil, fmt.Errorf("order %s: %w", amazonOrderID, ErrNotFound)
	}
	return order, nil
}

// ListOrderItems returns the items of an order.
func (c *Client) ListOrderItems(ctx context.Context, amazonOrderID string) ([]Node, error) {
	response, err := c.doXML(ctx, "ListOrderItems", map[string]string{
		"AmazonOrderId": amazonOrderID,
	})
	if err != nil {
		return nil, fmt.Errorf("listing order items for %s: %w", amazonOrderID, err)
	}
	return asList(dig(response, "ListOrderItemsResult", "OrderItems", "OrderItem")), nil
}

// ValidateCredentials probes the configured credentials with an order-items
// lookup for a deliberately invalid order id. Valid credentials reach the
// order service and get the expected rejection for that id; anything else
// means the credentials, signature, or marketplace are wrong.
func (c *Client) ValidateCredentials(ctx context.Context) bool {
	_, err := c.ListOrderItems(ctx, "validate")
	if err == nil {
		return false
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message == "Invalid AmazonOrderId: validate"
	}
	return false
}
