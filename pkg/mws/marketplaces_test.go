package mws

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarketplaceHost(t *testing.T) {
	t.Parallel()

	tests := []struct {
		id   string
		host string
	}{
		{id: "ATVPDKIKX0DER", host: "mws.amazonservices.com"},
		{id: "A1PA6795UKMFR9", host: "mws-eu.amazonservices.com"},
		{id: "A1F83G8C2ARO7P", host: "mws-eu.amazonservices.com"},
		{id: "A1VC38T7YXB528", host: "mws.amazonservices.jp"},
		{id: "A39IBJ37TRP1C6", host: "mws.amazonservices.com.au"},
	}

	for _, tt := range tests {
		host, ok := MarketplaceHost(tt.id)
		require.True(t, ok, tt.id)
		assert.Equal(t, tt.host, host)
	}

	_, ok := MarketplaceHost("UNKNOWN")
	assert.False(t, ok)
}

func TestMarketplaceIDs(t *testing.T) {
	t.Parallel()

	ids := MarketplaceIDs()
	assert.Len(t, ids, 13)
	assert.Contains(t, ids, "ATVPDKIKX0DER")

	for _, id := range ids {
		_, ok := MarketplaceHost(id)
		assert.True(t, ok, id)
	}
}
