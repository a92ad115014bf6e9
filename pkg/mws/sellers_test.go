package mws

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListMarketplaceParticipations(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.StatusOK,
		`<ListMarketplaceParticipationsResponse><ListMarketplaceParticipationsResult>`+
			`<ListParticipations><Participation>`+
			`<MarketplaceId>A1PA6795UKMFR9</MarketplaceId><SellerId>SELLER1</SellerId>`+
			`</Participation></ListParticipations>`+
			`</ListMarketplaceParticipationsResult></ListMarketplaceParticipationsResponse>`)

	result, err := client.ListMarketplaceParticipations(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "A1PA6795UKMFR9",
		digString(result, "ListParticipations", "Participation", "MarketplaceId"))
}

func TestListRecommendations(t *testing.T) {
	t.Parallel()

	client, captured := newTestClient(t, http.StatusOK,
		`<ListRecommendationsResponse><ListRecommendationsResult>`+
			`<PricingRecommendations><member><ItemIdentifier><ASIN>B000X</ASIN></ItemIdentifier></member></PricingRecommendations>`+
			`</ListRecommendationsResult></ListRecommendationsResponse>`)

	result, err := client.ListRecommendations(context.Background(), "Pricing")
	require.NoError(t, err)
	assert.Equal(t, "Pricing", (*captured)[0].Query.Get("RecommendationCategory"))
	assert.Equal(t, "B000X",
		digString(result, "PricingRecommendations", "member", "ItemIdentifier", "ASIN"))
}

func TestListRecommendations_NotFound(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.StatusOK,
		`<ListRecommendationsResponse><ResponseMetadata><RequestId>x</RequestId></ResponseMetadata></ListRecommendationsResponse>`)

	_, err := client.ListRecommendations(context.Background(), "")
	assert.ErrorIs(t, err, ErrNotFound)
}
