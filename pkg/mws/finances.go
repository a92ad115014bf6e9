package mws

import (
	"context"
	"fmt"
	"strconv"
	"time"
)

// ListFinancialEventsOptions filters a ListFinancialEvents call. Exactly one
// of AmazonOrderID or PostedAfter must be set.
type ListFinancialEventsOptions struct {
	AmazonOrderID string
	PostedAfter   time.Time
	PostedBefore  time.Time
	MaxResults    int
}

// FinancialEventList is a page of financial events plus the continuation
// token for the next page, when the service returned one.
type FinancialEventList struct {
	Events    Node
	NextToken string
}

// ListFinancialEvents returns the financial events for an order or posting
// window: shipment settlements, fees, refunds and adjustments.
func (c *Client) ListFinancialEvents(ctx context.Context, opts ListFinancialEventsOptions) (*FinancialEventList, error) {
	if opts.AmazonOrderID == "" && opts.PostedAfter.IsZero() {
		return nil, &ValidationError{Reason: "either AmazonOrderID or PostedAfter is required"}
	}

	query := map[string]string{}
	if opts.AmazonOrderID != "" {
		query["AmazonOrderId"] = opts.AmazonOrderID
	}
	if !opts.PostedAfter.IsZero() {
		query["PostedAfter"] = opts.PostedAfter.UTC().Format(timestampFormat)
	}
	if !opts.PostedBefore.IsZero() {
		query["PostedBefore"] = opts.PostedBefore.UTC().Format(timestampFormat)
	}
	if opts.MaxResults > 0 {
		query["MaxResultsPerPage"] = strconv.Itoa(opts.MaxResults)
	}

	response, err := c.doXML(ctx, "ListFinancialEvents", query)
	if err != nil {
		return nil, fmt.Errorf("listing financial events: %w", err)
	}
	return financialEventPage(response, "ListFinancialEventsResult"), nil
}

// ListFinancialEventsByNextToken fetches the next page of a
// ListFinancialEvents result.
func (c *Client) ListFinancialEventsByNextToken(ctx context.Context, nextToken string) (*FinancialEventList, error) {
	if nextToken == "" {
		return nil, &ValidationError{Reason: "next token is required"}
	}

	response, err := c.doXML(ctx, "ListFinancialEventsByNextToken", map[string]string{
		"NextToken": nextToken,
	})
	if err != nil {
		return nil, fmt.Errorf("listing financial events by next token: %w", err)
	}
	return financialEventPage(response, "ListFinancialEventsByNextTokenResult"), nil
}

func financialEventPage(response Node, resultKey string) *FinancialEventList {
	return &FinancialEventList{
		Events:    digNode(response, resultKey, "FinancialEvents"),
		NextToken: digString(response, resultKey, "NextToken"),
	}
}
