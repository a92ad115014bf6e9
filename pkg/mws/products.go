package mws

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

const maxMatchingProductIDs = 5

// attributeLanguages are the response locales the product APIs emit. The
// service tags ItemAttributes with an xml:lang attribute and an ns2 prefix;
// rewriteProductNamespaces folds both into plain elements.
var attributeLanguages = []string{
	"de-DE", "en-EN", "es-ES", "fr-FR", "it-IT", "en-US",
}

// rewriteProductNamespaces strips the ns2 namespace prefix the product APIs
// use inconsistently and injects a synthetic Language element carrying the
// locale from the xml:lang attribute, so the generic decoder sees one stable
// shape.
func rewriteProductNamespaces(raw []byte) []byte {
	pairs := []string{
		"</ns2:ItemAttributes>", "</ItemAttributes>",
	}
	for _, language := range attributeLanguages {
		pairs = append(pairs,
			`<ns2:ItemAttributes xml:lang="`+language+`">`,
			"<ItemAttributes><Language>"+language+"</Language>",
		)
	}
	pairs = append(pairs, "ns2:", "")
	return []byte(strings.NewReplacer(pairs...).Replace(string(raw)))
}

// MatchResult classifies the identifiers of a GetMatchingProductForID call.
// Found maps each matched identifier to the catalog entries it resolved to
// (several, when the id matches multiple listings); NotFound lists the
// identifiers the service reported no match for.
type MatchResult struct {
	Found    map[string][]Node
	NotFound []string
}

// GetMatchingProductForID looks up catalog entries for up to five
// identifiers. idType is one of ASIN, GCID, SellerSKU, UPC, EAN, ISBN, JAN.
// Duplicate identifiers are collapsed before the limit check.
func (c *Client) GetMatchingProductForID(ctx context.Context, ids []string, idType string) (*MatchResult, error) {
	ids = dedupe(ids)
	if len(ids) > maxMatchingProductIDs {
		return nil, &ValidationError{
			Reason: fmt.Sprintf("maximum number of ids for this call is %d", maxMatchingProductIDs),
		}
	}

	query := map[string]string{
		"MarketplaceId": c.cfg.MarketplaceID,
		"IdType":        idType,
	}
	for i, id := range ids {
		query["IdList.Id."+strconv.Itoa(i+1)] = id
	}

	resp, err := c.do(ctx, "GetMatchingProductForId", query, nil)
	if err != nil {
		return nil, fmt.Errorf("matching products: %w", err)
	}

	response, err := decodeXML(rewriteProductNamespaces(resp.body))
	if err != nil {
		return nil, err
	}

	result := &MatchResult{Found: map[string][]Node{}}
	for _, entry := range asList(dig(response, "GetMatchingProductForIdResult")) {
		id := attr(entry, "Id")
		if attr(entry, "status") != "Success" {
			result.NotFound = append(result.NotFound, id)
			continue
		}
		for _, product := range asList(dig(entry, "Products", "Product")) {
			result.Found[id] = append(result.Found[id], flattenProduct(product))
		}
	}
	return result, nil
}

// flattenProduct reduces one catalog Product element to a flat attribute
// map: scalar item attributes by name, plus the derived fields callers
// reach for (images, parentage, sales rank).
func flattenProduct(product Node) Node {
	out := Node{}

	if asin := digString(product, "Identifiers", "MarketplaceASIN", "ASIN"); asin != "" {
		out["ASIN"] = asin
	}

	attrs := digNode(product, "AttributeSets", "ItemAttributes")
	for key, value := range attrs {
		if s, ok := value.(string); ok && !strings.HasPrefix(key, "-") {
			out[key] = s
		}
	}

	if features := asStrings(dig(attrs, "Feature")); features != nil {
		out["Feature"] = features
	}

	if dims := digNode(attrs, "PackageDimensions"); dims != nil {
		parsed := map[string]float64{}
		for key, value := range dims {
			if f, err := strconv.ParseFloat(text(value), 64); err == nil {
				parsed[key] = f
			}
		}
		out["PackageDimensions"] = parsed
	}

	if listPrice := digNode(attrs, "ListPrice"); listPrice != nil {
		out["ListPrice"] = listPrice
	}

	// The catalog only returns the 75px thumbnail; the other sizes are the
	// same object under a different size-suffix token.
	if image := digString(attrs, "SmallImage", "URL"); image != "" {
		out["medium_image"] = image
		out["small_image"] = strings.ReplaceAll(image, "._SL75_", "._SL50_")
		out["large_image"] = strings.ReplaceAll(image, "._SL75_", "")
	}

	if parent := digString(product, "Relationships", "VariationParent", "Identifiers", "MarketplaceASIN", "ASIN"); parent != "" {
		out["Parentage"] = "child"
		out["ParentASIN"] = parent
	}
	if dig(product, "Relationships", "VariationChild") != nil {
		out["Parentage"] = "parent"
	}

	if rank := dig(product, "SalesRankings", "SalesRank"); rank != nil {
		out["SalesRank"] = asList(rank)
	}

	return out
}

// ListMatchingProducts searches the catalog with an open text query and
// returns the raw result node, namespace-normalized. An empty result node is
// returned when the service matched nothing.
func (c *Client) ListMatchingProducts(ctx context.Context, query, queryContextID string) (Node, error) {
	if strings.TrimSpace(query) == "" {
		return nil, &ValidationError{Reason: "missing query"}
	}

	params := map[string]string{
		"MarketplaceId": c.cfg.MarketplaceID,
		"Query":         query,
	}
	if queryContextID != "" {
		params["QueryContextId"] = queryContextID
	}

	resp, err := c.do(ctx, "ListMatchingProducts", params, nil)
	if err != nil {
		return nil, fmt.Errorf("searching products: %w", err)
	}

	response, err := decodeXML(rewriteProductNamespaces(resp.body))
	if err != nil {
		return nil, err
	}

	result := digNode(response, "ListMatchingProductsResult")
	if result == nil {
		return Node{}, nil
	}
	return result, nil
}

// GetProductCategoriesForSKU returns the parent categories of a product by
// seller SKU, or ErrNotFound.
func (c *Client) GetProductCategoriesForSKU(ctx context.Context, sellerSKU string) ([]Node, error) {
	return c.productCategories(ctx, "GetProductCategoriesForSKU", "SellerSKU", sellerSKU)
}

// GetProductCategoriesForASIN returns the parent categories of a product by
// ASIN, or ErrNotFound.
func (c *Client) GetProductCategoriesForASIN(ctx context.Context, asin string) ([]Node, error) {
	return c.productCategories(ctx, "GetProductCategoriesForASIN", "ASIN", asin)
}

func (c *Client) productCategories(ctx context.Context, operation, idParam, id string) ([]Node, error) {
	response, err := c.doXML(ctx, operation, map[string]string{
		"MarketplaceId": c.cfg.MarketplaceID,
		idParam:         id,
	})
	if err != nil {
		return nil, fmt.Errorf("getting product categories for %s: %w", id, err)
	}

	categories := asList(dig(response, operation+"Result", "Self"))
	if len(categories) == 0 {
		return nil, fmt.Errorf("product %s: %w", id, ErrNotFound)
	}
	return categories, nil
}

func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := values[:0:0]
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
