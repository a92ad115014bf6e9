package mws

// marketplaceHosts maps a marketplace identifier to the regional MWS API
// hostname that serves it. The table is fixed; Amazon publishes one host per
// region and several marketplaces share a host.
var marketplaceHosts = map[string]string{
	"A2EUQ1WTGCTBG2": "mws.amazonservices.ca",
	"ATVPDKIKX0DER":  "mws.amazonservices.com",
	"A1AM78C64UM0Y8": "mws.amazonservices.com.mx",
	"A1PA6795UKMFR9": "mws-eu.amazonservices.com",
	"A1RKKUPIHCS9HS": "mws-eu.amazonservices.com",
	"A13V1IB3VIYZZH": "mws-eu.amazonservices.com",
	"A21TJRUUN4KGV":  "mws.amazonservices.in",
	"APJ6JRA9NG5V4":  "mws-eu.amazonservices.com",
	"A1F83G8C2ARO7P": "mws-eu.amazonservices.com",
	"A1VC38T7YXB528": "mws.amazonservices.jp",
	"AAHKV2X7AFYLW":  "mws.amazonservices.com.cn",
	"A39IBJ37TRP1C6": "mws.amazonservices.com.au",
	"A2Q3Y263D00KWC": "mws.amazonservices.com",
}

// MarketplaceHost returns the regional API host for a marketplace id and
// whether the id is known.
func MarketplaceHost(marketplaceID string) (string, bool) {
	host, ok := marketplaceHosts[marketplaceID]
	return host, ok
}

// MarketplaceIDs returns all known marketplace identifiers.
func MarketplaceIDs() []string {
	ids := make([]string, 0, len(marketplaceHosts))
	for id := range marketplaceHosts {
		ids = append(ids, id)
	}
	return ids
}
