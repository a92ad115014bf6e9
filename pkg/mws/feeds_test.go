package mws

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const submitFeedResponse = `<SubmitFeedResponse><SubmitFeedResult><FeedSubmissionInfo>
  <FeedSubmissionId>2291326430</FeedSubmissionId>
  <FeedType>_POST_INVENTORY_AVAILABILITY_DATA_</FeedType>
  <FeedProcessingStatus>_SUBMITTED_</FeedProcessingStatus>
</FeedSubmissionInfo></SubmitFeedResult></SubmitFeedResponse>`

func TestSubmitFeed_RequestShape(t *testing.T) {
	t.Parallel()

	client, captured := newTestClient(t, http.StatusOK, submitFeedResponse)

	body := []byte(`<?xml version="1.0" encoding="UTF-8"?><AmazonEnvelope></AmazonEnvelope>`)
	result, err := client.SubmitFeed(context.Background(), FeedTypeInventoryAvailability, body, nil)
	require.NoError(t, err)
	assert.Equal(t, "2291326430", digString(result.Info, "FeedSubmissionId"))

	req := (*captured)[0]
	q := req.Query
	assert.Equal(t, "SubmitFeed", q.Get("Action"))
	assert.Equal(t, FeedTypeInventoryAvailability, q.Get("FeedType"))
	assert.Equal(t, "false", q.Get("PurgeAndReplace"))
	assert.Equal(t, "SELLER1", q.Get("Merchant"))
	assert.Equal(t, "A1PA6795UKMFR9", q.Get("MarketplaceIdList.Id.1"))

	// The signature covers a reduced parameter set on feed submissions.
	assert.Empty(t, q.Get("SellerId"))
	assert.Empty(t, q.Get("MarketplaceId.Id.1"))
	assert.NotEmpty(t, q.Get("Signature"))

	assert.Equal(t, contentMD5(body), req.Header.Get("Content-MD5"))
	assert.Equal(t, "text/xml; charset=iso-8859-1", req.Header.Get("Content-Type"))
	assert.Equal(t, body, req.Body)
}

func TestSubmitFeed_PurgeAndReplace(t *testing.T) {
	t.Parallel()

	client, captured := newTestClient(t, http.StatusOK, submitFeedResponse)

	_, err := client.SubmitFeed(context.Background(), FeedTypeProductData, []byte("<x/>"),
		&SubmitFeedOptions{PurgeAndReplace: true})
	require.NoError(t, err)
	assert.Equal(t, "true", (*captured)[0].Query.Get("PurgeAndReplace"))
}

func TestSubmitFeed_DebugReturnsBodyWithoutSending(t *testing.T) {
	t.Parallel()

	client, captured := newTestClient(t, http.StatusOK, submitFeedResponse)

	body := []byte("<x/>")
	result, err := client.SubmitFeed(context.Background(), FeedTypeProductData, body,
		&SubmitFeedOptions{Debug: true})
	require.NoError(t, err)
	assert.Equal(t, body, result.DebugBody)
	assert.Nil(t, result.Info)
	assert.Empty(t, *captured)
}

func TestDebugNextFeed_ClearsAfterOneUse(t *testing.T) {
	t.Parallel()

	client, captured := newTestClient(t, http.StatusOK, submitFeedResponse)

	client.DebugNextFeed()
	first, err := client.UpdateStock(context.Background(), map[string]int{"sku-1": 4})
	require.NoError(t, err)
	assert.NotEmpty(t, first.DebugBody)
	assert.Empty(t, *captured)

	second, err := client.UpdateStock(context.Background(), map[string]int{"sku-1": 4})
	require.NoError(t, err)
	assert.Empty(t, second.DebugBody)
	assert.Len(t, *captured, 1)
}

func TestUpdateStock_Envelope(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.StatusOK, submitFeedResponse)

	client.DebugNextFeed()
	result, err := client.UpdateStock(context.Background(), map[string]int{
		"sku-b": 0,
		"sku-a": 7,
	})
	require.NoError(t, err)

	doc, err := decodeXML(result.DebugBody)
	require.NoError(t, err)

	assert.Equal(t, "1.01", digString(doc, "Header", "DocumentVersion"))
	assert.Equal(t, "SELLER1", digString(doc, "Header", "MerchantIdentifier"))
	assert.Equal(t, "Inventory", digString(doc, "MessageType"))

	messages := asList(dig(doc, "Message"))
	require.Len(t, messages, 2)

	// SKUs are emitted in sorted order for a stable document.
	assert.Equal(t, "sku-a", digString(messages[0], "Inventory", "SKU"))
	assert.Equal(t, "7", digString(messages[0], "Inventory", "Quantity"))
	assert.Equal(t, "sku-b", digString(messages[1], "Inventory", "SKU"))
	assert.Equal(t, "0", digString(messages[1], "Inventory", "Quantity"))

	for _, msg := range messages {
		assert.Equal(t, "Update", digString(msg, "OperationType"))
		assert.NotEmpty(t, digString(msg, "MessageID"))
	}
	assert.NotEqual(t,
		digString(messages[0], "MessageID"),
		digString(messages[1], "MessageID"),
		"message ids must be unique within one envelope")
}

func TestUpdateStockWithFulfillmentLatency(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.StatusOK, submitFeedResponse)

	client.DebugNextFeed()
	result, err := client.UpdateStockWithFulfillmentLatency(context.Background(), []StockUpdate{
		{SKU: "sku-1", Quantity: 3, FulfillmentLatency: 5},
	})
	require.NoError(t, err)

	doc, err := decodeXML(result.DebugBody)
	require.NoError(t, err)

	msg := digNode(doc, "Message")
	assert.Equal(t, "sku-1", digString(msg, "Inventory", "SKU"))
	assert.Equal(t, "5", digString(msg, "Inventory", "FulfillmentLatency"))
}

func TestUpdatePrice_Envelope(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.StatusOK, submitFeedResponse)

	client.DebugNextFeed()
	result, err := client.UpdatePrice(context.Background(),
		map[string]string{"sku-1": "19.99", "sku-2": "5.00"},
		map[string]SalePrice{"sku-1": {
			SalePrice: "14.99",
			StartDate: time.Date(2017, 6, 12, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2017, 6, 19, 0, 0, 0, 0, time.UTC),
		}})
	require.NoError(t, err)

	doc, err := decodeXML(result.DebugBody)
	require.NoError(t, err)
	assert.Equal(t, "Price", digString(doc, "MessageType"))

	messages := asList(dig(doc, "Message"))
	require.Len(t, messages, 2)

	withSale := messages[0]
	assert.Equal(t, "sku-1", digString(withSale, "Price", "SKU"))
	assert.Equal(t, "19.99", digString(withSale, "Price", "StandardPrice"))
	assert.Equal(t, "DEFAULT", attr(digNode(withSale, "Price", "StandardPrice"), "currency"))
	assert.Equal(t, "14.99", digString(withSale, "Price", "Sale", "SalePrice"))
	assert.Equal(t, "2017-06-12T00:00:00.000Z", digString(withSale, "Price", "Sale", "StartDate"))

	plain := messages[1]
	assert.Equal(t, "sku-2", digString(plain, "Price", "SKU"))
	assert.Nil(t, dig(plain, "Price", "Sale"))
}

func TestDeleteProductsBySKU_Envelope(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.StatusOK, submitFeedResponse)

	client.DebugNextFeed()
	result, err := client.DeleteProductsBySKU(context.Background(), []string{"sku-1", "sku-2"})
	require.NoError(t, err)

	doc, err := decodeXML(result.DebugBody)
	require.NoError(t, err)
	assert.Equal(t, "Product", digString(doc, "MessageType"))

	messages := asList(dig(doc, "Message"))
	require.Len(t, messages, 2)
	for _, msg := range messages {
		assert.Equal(t, "Delete", digString(msg, "OperationType"))
	}
	assert.Equal(t, "sku-1", digString(messages[0], "Product", "SKU"))
}

func TestGetFeedSubmissionResult(t *testing.T) {
	t.Parallel()

	client, captured := newTestClient(t, http.StatusOK,
		`<AmazonEnvelope><Message><ProcessingReport>`+
			`<StatusCode>Complete</StatusCode>`+
			`<ProcessingSummary><MessagesProcessed>2</MessagesProcessed></ProcessingSummary>`+
			`</ProcessingReport></Message></AmazonEnvelope>`)

	report, err := client.GetFeedSubmissionResult(context.Background(), "2291326430")
	require.NoError(t, err)
	assert.Equal(t, "2291326430", (*captured)[0].Query.Get("FeedSubmissionId"))
	assert.Equal(t, "Complete", digString(report, "StatusCode"))
	assert.Equal(t, "2", digString(report, "ProcessingSummary", "MessagesProcessed"))
}

func TestGetFeedSubmissionResult_NoReport(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.StatusOK,
		`<GetFeedSubmissionResultResponse><GetFeedSubmissionResultResult/></GetFeedSubmissionResultResponse>`)

	report, err := client.GetFeedSubmissionResult(context.Background(), "2291326430")
	require.NoError(t, err)
	assert.NotNil(t, report)
	assert.Contains(t, report, "GetFeedSubmissionResultResult")
}
