package mws

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveEndpoint(t *testing.T) {
	t.Parallel()

	ep, err := resolveEndpoint("ListOrders")
	require.NoError(t, err)
	assert.Equal(t, "POST", ep.Method)
	assert.Equal(t, "/Orders/2013-09-01", ep.Path)
	assert.Equal(t, "2013-09-01", ep.Version)
	assert.Equal(t, "ListOrders", ep.Action)
}

func TestResolveEndpoint_Unknown(t *testing.T) {
	t.Parallel()

	_, err := resolveEndpoint("listorders") // names are case-sensitive
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownOperation)
	assert.Contains(t, err.Error(), "listorders")
}

func TestEndpointRegistry_VersionMatchesPath(t *testing.T) {
	t.Parallel()

	// Every versioned path embeds the Version the query must carry.
	for name, ep := range endpoints {
		if ep.Path == "/" || ep.Path == "/FulfillmentInventory" {
			continue
		}
		assert.Contains(t, ep.Path, ep.Version, "operation %s", name)
	}
}
