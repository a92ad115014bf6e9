package mws

import "fmt"

// endpoint describes one remote MWS operation: how to reach it and which
// Action/Version pair the signed query must carry.
type endpoint struct {
	Method  string
	Path    string
	Version string
	Action  string
}

const financesPath = "/Finances/2015-05-01"

// endpoints is the static operation registry. Keys are the exact operation
// names defined by the MWS API.
var endpoints = map[string]endpoint{
	"ListRecommendations": {
		Method: "POST", Path: "/Recommendations/2013-04-01",
		Version: "2013-04-01", Action: "ListRecommendations",
	},
	"ListMarketplaceParticipations": {
		Method: "POST", Path: "/Sellers/2011-07-01",
		Version: "2011-07-01", Action: "ListMarketplaceParticipations",
	},
	"GetMyPriceForSKU": {
		Method: "POST", Path: "/Products/2011-10-01",
		Version: "2011-10-01", Action: "GetMyPriceForSKU",
	},
	"GetMyPriceForASIN": {
		Method: "POST", Path: "/Products/2011-10-01",
		Version: "2011-10-01", Action: "GetMyPriceForASIN",
	},
	"GetProductCategoriesForSKU": {
		Method: "POST", Path: "/Products/2011-10-01",
		Version: "2011-10-01", Action: "GetProductCategoriesForSKU",
	},
	"GetProductCategoriesForASIN": {
		Method: "POST", Path: "/Products/2011-10-01",
		Version: "2011-10-01", Action: "GetProductCategoriesForASIN",
	},
	"GetCompetitivePricingForSKU": {
		Method: "POST", Path: "/Products/2011-10-01",
		Version: "2011-10-01", Action: "GetCompetitivePricingForSKU",
	},
	"GetCompetitivePricingForASIN": {
		Method: "POST", Path: "/Products/2011-10-01",
		Version: "2011-10-01", Action: "GetCompetitivePricingForASIN",
	},
	"GetLowestOfferListingsForASIN": {
		Method: "POST", Path: "/Products/2011-10-01",
		Version: "2011-10-01", Action: "GetLowestOfferListingsForASIN",
	},
	"GetLowestPricedOffersForASIN": {
		Method: "POST", Path: "/Products/2011-10-01",
		Version: "2011-10-01", Action: "GetLowestPricedOffersForASIN",
	},
	"GetMatchingProductForId": {
		Method: "POST", Path: "/Products/2011-10-01",
		Version: "2011-10-01", Action: "GetMatchingProductForId",
	},
	"ListMatchingProducts": {
		Method: "POST", Path: "/Products/2011-10-01",
		Version: "2011-10-01", Action: "ListMatchingProducts",
	},
	"GetMyFeesEstimate": {
		Method: "POST", Path: "/Products/2011-10-01",
		Version: "2011-10-01", Action: "GetMyFeesEstimate",
	},
	"GetFeedSubmissionResult": {
		Method: "POST", Path: "/",
		Version: "2009-01-01", Action: "GetFeedSubmissionResult",
	},
	"GetFeedSubmissionList": {
		Method: "POST", Path: "/",
		Version: "2009-01-01", Action: "GetFeedSubmissionList",
	},
	"SubmitFeed": {
		Method: "POST", Path: "/",
		Version: "2009-01-01", Action: "SubmitFeed",
	},
	"GetReportList": {
		Method: "POST", Path: "/",
		Version: "2009-01-01", Action: "GetReportList",
	},
	"GetReportListByNextToken": {
		Method: "POST", Path: "/",
		Version: "2009-01-01", Action: "GetReportListByNextToken",
	},
	"GetReportRequestList": {
		Method: "POST", Path: "/",
		Version: "2009-01-01", Action: "GetReportRequestList",
	},
	"GetReport": {
		Method: "POST", Path: "/",
		Version: "2009-01-01", Action: "GetReport",
	},
	"RequestReport": {
		Method: "POST", Path: "/",
		Version: "2009-01-01", Action: "RequestReport",
	},
	"ListInventorySupply": {
		Method: "POST", Path: "/FulfillmentInventory",
		Version: "2010-10-01", Action: "ListInventorySupply",
	},
	"ListOrders": {
		Method: "POST", Path: "/Orders/2013-09-01",
		Version: "2013-09-01", Action: "ListOrders",
	},
	"ListOrdersByNextToken": {
		Method: "POST", Path: "/Orders/2013-09-01",
		Version: "2013-09-01", Action: "ListOrdersByNextToken",
	},
	"ListOrderItems": {
		Method: "POST", Path: "/Orders/2013-09-01",
		Version: "2013-09-01", Action: "ListOrderItems",
	},
	"GetOrder": {
		Method: "POST", Path: "/Orders/2013-09-01",
		Version: "2013-09-01", Action: "GetOrder",
	},
	"ListFinancialEvents": {
		Method: "POST", Path: financesPath,
		Version: "2015-05-01", Action: "ListFinancialEvents",
	},
	"ListFinancialEventsByNextToken": {
		Method: "POST", Path: financesPath,
		Version: "2015-05-01", Action: "ListFinancialEventsByNextToken",
	},
}

// resolveEndpoint looks up an operation by its exact name.
func resolveEndpoint(operation string) (endpoint, error) {
	ep, ok := endpoints[operation]
	if !ok {
		return endpoint{}, fmt.Errorf("%w: %s", ErrUnknownOperation, operation)
	}
	return ep, nil
}
