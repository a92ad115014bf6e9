package mws

import (
	"context"
	"net/http"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPricingCall_IdentifierLimit(t *testing.T) {
	t.Parallel()

	ids := make([]string, maxPricingIdentifiers+1)
	for i := range ids {
		ids[i] = "B000TEST" + strconv.Itoa(i)
	}

	client, captured := newTestClient(t, http.StatusOK, "")

	_, err := client.GetCompetitivePricingForASIN(context.Background(), ids)
	require.Error(t, err)

	var valErr *ValidationError
	assert.ErrorAs(t, err, &valErr)
	assert.Empty(t, *captured, "over-limit call must not reach the network")
}

func TestGetCompetitivePricingForASIN(t *testing.T) {
	t.Parallel()

	client, captured := newTestClient(t, http.StatusOK,
		`<GetCompetitivePricingForASINResponse>`+
			`<GetCompetitivePricingForASINResult ASIN="B000PRICED" status="Success"><Product>`+
			`<Identifiers><MarketplaceASIN><ASIN>B000PRICED</ASIN></MarketplaceASIN></Identifiers>`+
			`<CompetitivePricing><CompetitivePrices><CompetitivePrice>`+
			`<Price><LandedPrice><CurrencyCode>EUR</CurrencyCode><Amount>19.99</Amount></LandedPrice></Price>`+
			`</CompetitivePrice></CompetitivePrices></CompetitivePricing>`+
			`</Product></GetCompetitivePricingForASINResult>`+
			`<GetCompetitivePricingForASINResult ASIN="B000EMPTY" status="Success"><Product>`+
			`<Identifiers><MarketplaceASIN><ASIN>B000EMPTY</ASIN></MarketplaceASIN></Identifiers>`+
			`<CompetitivePricing><CompetitivePrices/></CompetitivePricing>`+
			`</Product></GetCompetitivePricingForASINResult>`+
			`</GetCompetitivePricingForASINResponse>`)

	prices, err := client.GetCompetitivePricingForASIN(
		context.Background(), []string{"B000PRICED", "B000EMPTY"})
	require.NoError(t, err)

	q := (*captured)[0].Query
	assert.Equal(t, "B000PRICED", q.Get("ASINList.ASIN.1"))
	assert.Equal(t, "B000EMPTY", q.Get("ASINList.ASIN.2"))

	require.Contains(t, prices, "B000PRICED")
	assert.Equal(t, "19.99", digString(prices["B000PRICED"], "LandedPrice", "Amount"))
	assert.NotContains(t, prices, "B000EMPTY", "identifiers without a price are omitted")
}

func TestGetCompetitivePricingForSKU_RankFromSecondEntry(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.StatusOK,
		`<GetCompetitivePricingForSKUResponse>`+
			`<GetCompetitivePricingForSKUResult SellerSKU="sku-1" status="Success"><Product>`+
			`<Identifiers><SKUIdentifier><SellerSKU>sku-1</SellerSKU></SKUIdentifier></Identifiers>`+
			`<CompetitivePricing><CompetitivePrices><CompetitivePrice>`+
			`<Price><LandedPrice><Amount>9.99</Amount></LandedPrice></Price>`+
			`</CompetitivePrice></CompetitivePrices></CompetitivePricing>`+
			`<SalesRankings>`+
			`<SalesRank><ProductCategoryId>toys_display_on_website</ProductCategoryId><Rank>10</Rank></SalesRank>`+
			`<SalesRank><ProductCategoryId>toys</ProductCategoryId><Rank>3</Rank></SalesRank>`+
			`</SalesRankings>`+
			`</Product></GetCompetitivePricingForSKUResult>`+
			`</GetCompetitivePricingForSKUResponse>`)

	prices, err := client.GetCompetitivePricingForSKU(context.Background(), []string{"sku-1"})
	require.NoError(t, err)

	require.Contains(t, prices, "sku-1")
	assert.Equal(t, "9.99", digString(prices["sku-1"].Price, "LandedPrice", "Amount"))
	assert.Equal(t, "3", digString(prices["sku-1"].Rank, "Rank"))
}

func TestGetLowestOfferListingsForASIN(t *testing.T) {
	t.Parallel()

	client, captured := newTestClient(t, http.StatusOK,
		`<GetLowestOfferListingsForASINResponse>`+
			`<GetLowestOfferListingsForASINResult ASIN="B000X" status="Success"><Product>`+
			`<Identifiers><MarketplaceASIN><ASIN>B000X</ASIN></MarketplaceASIN></Identifiers>`+
			`<LowestOfferListings>`+
			`<LowestOfferListing><Price><LandedPrice><Amount>5.00</Amount></LandedPrice></Price></LowestOfferListing>`+
			`<LowestOfferListing><Price><LandedPrice><Amount>5.50</Amount></LandedPrice></Price></LowestOfferListing>`+
			`</LowestOfferListings>`+
			`</Product></GetLowestOfferListingsForASINResult>`+
			`</GetLowestOfferListingsForASINResponse>`)

	listings, err := client.GetLowestOfferListingsForASIN(
		context.Background(), []string{"B000X"}, "New")
	require.NoError(t, err)

	assert.Equal(t, "New", (*captured)[0].Query.Get("ItemCondition"))
	require.Contains(t, listings, "B000X")
	require.Len(t, listings["B000X"], 2)
	assert.Equal(t, "5.50", digString(listings["B000X"][1], "Price", "LandedPrice", "Amount"))
}

func TestGetLowestPricedOffersForASIN_DefaultsToNew(t *testing.T) {
	t.Parallel()

	client, captured := newTestClient(t, http.StatusOK,
		`<GetLowestPricedOffersForASINResponse><GetLowestPricedOffersForASINResult>`+
			`<Summary><TotalOfferCount>3</TotalOfferCount></Summary>`+
			`</GetLowestPricedOffersForASINResult></GetLowestPricedOffersForASINResponse>`)

	response, err := client.GetLowestPricedOffersForASIN(context.Background(), "B000X", "")
	require.NoError(t, err)

	assert.Equal(t, "New", (*captured)[0].Query.Get("ItemCondition"))
	assert.Equal(t, "3",
		digString(response, "GetLowestPricedOffersForASINResult", "Summary", "TotalOfferCount"))
}

func TestGetMyPriceForSKU(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.StatusOK,
		`<GetMyPriceForSKUResponse>`+
			`<GetMyPriceForSKUResult SellerSKU="sku-ok" status="Success"><Product>`+
			`<Offers><Offer><BuyingPrice><ListingPrice><Amount>12.00</Amount></ListingPrice></BuyingPrice></Offer></Offers>`+
			`</Product></GetMyPriceForSKUResult>`+
			`<GetMyPriceForSKUResult SellerSKU="sku-bad" status="ClientError">`+
			`<Error><Message>Invalid SKU</Message></Error>`+
			`</GetMyPriceForSKUResult>`+
			`</GetMyPriceForSKUResponse>`)

	prices, err := client.GetMyPriceForSKU(context.Background(), []string{"sku-ok", "sku-bad"}, "")
	require.NoError(t, err)

	require.Contains(t, prices, "sku-ok")
	assert.True(t, prices["sku-ok"].OK)
	require.Len(t, prices["sku-ok"].Offers, 1)
	assert.Equal(t, "12.00",
		digString(prices["sku-ok"].Offers[0], "BuyingPrice", "ListingPrice", "Amount"))

	require.Contains(t, prices, "sku-bad")
	assert.False(t, prices["sku-bad"].OK)
	assert.Empty(t, prices["sku-bad"].Offers)
}

func TestGetMyFeesEstimate(t *testing.T) {
	t.Parallel()

	client, captured := newTestClient(t, http.StatusOK,
		`<GetMyFeesEstimateResponse><GetMyFeesEstimateResult/></GetMyFeesEstimateResponse>`)

	_, err := client.GetMyFeesEstimate(context.Background(), FeesEstimateRequest{
		IDType:          "ASIN",
		IDValue:         "B000X",
		ListingPrice:    24.99,
		CurrencyCode:    "EUR",
		AmazonFulfilled: true,
	})
	require.NoError(t, err)

	q := (*captured)[0].Query
	const prefix = "FeesEstimateRequestList.FeesEstimateRequest.1."
	assert.Equal(t, "ASIN", q.Get(prefix+"IdType"))
	assert.Equal(t, "B000X", q.Get(prefix+"IdValue"))
	assert.Equal(t, "24.99", q.Get(prefix+"PriceToEstimateFees.ListingPrice.Amount"))
	assert.Equal(t, "EUR", q.Get(prefix+"PriceToEstimateFees.ListingPrice.CurrencyCode"))
	assert.Equal(t, "true", q.Get(prefix+"IsAmazonFulfilled"))
	assert.NotEmpty(t, q.Get(prefix+"Identifier"))
}
