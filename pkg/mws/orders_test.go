package mws

import (
	"context"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listOrdersSingle = `<ListOrdersResponse xmlns="https://mws.amazonservices.com/Orders/2013-09-01">
  <ListOrdersResult>
    <Orders>
      <Order>
        <AmazonOrderId>026-1234567-1234567</AmazonOrderId>
        <OrderStatus>Unshipped</OrderStatus>
      </Order>
    </Orders>
  </ListOrdersResult>
</ListOrdersResponse>`

const listOrdersMulti = `<ListOrdersResponse>
  <ListOrdersResult>
    <Orders>
      <Order><AmazonOrderId>026-1</AmazonOrderId></Order>
      <Order><AmazonOrderId>026-2</AmazonOrderId></Order>
    </Orders>
    <NextToken>token-abc</NextToken>
  </ListOrdersResult>
</ListOrdersResponse>`

func TestListOrders_RequiresCreatedAfter(t *testing.T) {
	t.Parallel()

	client, captured := newTestClient(t, http.StatusOK, listOrdersSingle)

	_, err := client.ListOrders(context.Background(), ListOrdersOptions{})
	require.Error(t, err)

	var valErr *ValidationError
	assert.ErrorAs(t, err, &valErr)
	assert.Empty(t, *captured, "rejected call must not reach the network")
}

func TestListOrders_SingleOrderBecomesList(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.StatusOK, listOrdersSingle)

	list, err := client.ListOrders(context.Background(), ListOrdersOptions{
		CreatedAfter: time.Date(2017, 6, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.Len(t, list.Orders, 1)
	assert.Equal(t, "026-1234567-1234567", digString(list.Orders[0], "AmazonOrderId"))
	assert.Empty(t, list.NextToken)
}

func TestListOrders_MultipleOrdersAndToken(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.StatusOK, listOrdersMulti)

	list, err := client.ListOrders(context.Background(), ListOrdersOptions{
		CreatedAfter: time.Date(2017, 6, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.Len(t, list.Orders, 2)
	assert.Equal(t, "026-2", digString(list.Orders[1], "AmazonOrderId"))
	assert.Equal(t, "token-abc", list.NextToken)
}

func TestListOrders_DefaultFilters(t *testing.T) {
	t.Parallel()

	client, captured := newTestClient(t, http.StatusOK, listOrdersSingle)

	_, err := client.ListOrders(context.Background(), ListOrdersOptions{
		CreatedAfter: time.Date(2017, 6, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	q := (*captured)[0].Query
	assert.Equal(t, "2017-06-01T00:00:00.000Z", q.Get("CreatedAfter"))
	assert.Equal(t, "Unshipped", q.Get("OrderStatus.Status.1"))
	assert.Equal(t, "PartiallyShipped", q.Get("OrderStatus.Status.2"))
	assert.Equal(t, "MFN", q.Get("FulfillmentChannel.Channel.1"))
	assert.Equal(t, "A1PA6795UKMFR9", q.Get("MarketplaceId.Id.1"))
}

func TestListOrders_AllMarketplaces(t *testing.T) {
	t.Parallel()

	client, captured := newTestClient(t, http.StatusOK, listOrdersSingle)

	_, err := client.ListOrders(context.Background(), ListOrdersOptions{
		CreatedAfter:    time.Date(2017, 6, 1, 0, 0, 0, 0, time.UTC),
		AllMarketplaces: true,
	})
	require.NoError(t, err)

	q := (*captured)[0].Query
	ids := MarketplaceIDs()
	for i := range ids {
		assert.NotEmpty(t, q.Get("MarketplaceId.Id."+strconv.Itoa(i+1)))
	}
	assert.Empty(t, q.Get("MarketplaceId.Id."+strconv.Itoa(len(ids)+1)))
}

func TestListOrdersByNextToken(t *testing.T) {
	t.Parallel()

	client, captured := newTestClient(t, http.StatusOK,
		`<ListOrdersByNextTokenResponse><ListOrdersByNextTokenResult>`+
			`<Orders><Order><AmazonOrderId>026-3</AmazonOrderId></Order></Orders>`+
			`</ListOrdersByNextTokenResult></ListOrdersByNextTokenResponse>`)

	list, err := client.ListOrdersByNextToken(context.Background(), "token-abc")
	require.NoError(t, err)
	require.Len(t, list.Orders, 1)
	assert.Equal(t, "026-3", digString(list.Orders[0], "AmazonOrderId"))
	assert.Equal(t, "token-abc", (*captured)[0].Query.Get("NextToken"))

	_, err = client.ListOrdersByNextToken(context.Background(), "")
	assert.Error(t, err)
}

func TestGetOrder(t *testing.T) {
	t.Parallel()

	client, captured := newTestClient(t, http.StatusOK,
		`<GetOrderResponse><GetOrderResult><Orders>`+
			`<Order><AmazonOrderId>026-1</AmazonOrderId><OrderStatus>Shipped</OrderStatus></Order>`+
			`</Orders></GetOrderResult></GetOrderResponse>`)

	order, err := client.GetOrder(context.Background(), "026-1")
	require.NoError(t, err)
	assert.Equal(t, "Shipped", digString(order, "OrderStatus"))
	assert.Equal(t, "026-1", (*captured)[0].Query.Get("AmazonOrderId.Id.1"))
}

func TestGetOrder_NotFound(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.StatusOK,
		`<GetOrderResponse><GetOrderResult><Orders/></GetOrderResult></GetOrderResponse>`)

	_, err := client.GetOrder(context.Background(), "026-gone")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListOrderItems(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.StatusOK,
		`<ListOrderItemsResponse><ListOrderItemsResult><OrderItems>`+
			`<OrderItem><SellerSKU>sku-1</SellerSKU></OrderItem>`+
			`<OrderItem><SellerSKU>sku-2</SellerSKU></OrderItem>`+
			`</OrderItems></ListOrderItemsResult></ListOrderItemsResponse>`)

	items, err := client.ListOrderItems(context.Background(), "026-1")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "sku-2", digString(items[1], "SellerSKU"))
}
