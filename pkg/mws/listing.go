package mws

import (
	"sort"
	"strconv"
)

// Listing slot counts fixed by the marketplace template: nine image columns
// and five bullet points.
const (
	listingImageSlots  = 9
	listingBulletSlots = 5
)

var marketplaceTemplateLine = []string{"TemplateType=AmazonMarketPlace", "Version=2014.0703"}

// Listing is a full marketplace product record for the AmazonMarketPlace
// listings flat file, carrying catalog data (brand, description, variation
// relationships) on top of the offer fields.
type Listing struct {
	FeedProductType string
	SKU             string
	ProductID       string
	ProductIDType   string
	Brand           string
	Title           string
	Description     string
	Manufacturer    string
	Price           string
	SalePrice       string
	Currency        string
	Quantity        int
	ConditionType   string

	// ParentChild is Parent, Child or empty; Child listings reference
	// ParentSKU and a VariationTheme.
	ParentChild    string
	ParentSKU      string
	VariationTheme string

	Keywords           string
	ColorName          string
	SizeName           string
	ShippingGroup      string
	WeightUnit         string
	RecommendedBrowseNodes string
	SaleFromDate       string
	SaleEndDate        string

	// Images fills main_image_url and other_image_url1..8 in order;
	// BulletPoints fills bullet_point1..5. Slots beyond the supplied
	// length are emitted as empty strings to preserve the fixed column
	// schema.
	Images       []string
	BulletPoints []string

	// OtherAttributes carries template columns not modeled above.
	OtherAttributes map[string]string
}

// Flatten renders the listing as parallel header and value slices in
// template column order, with image and bullet lists spread into their
// fixed-position columns.
func (l *Listing) Flatten() (headers, values []string) {
	add := func(header, value string) {
		headers = append(headers, header)
		values = append(values, value)
	}

	extras := make([]string, 0, len(l.OtherAttributes))
	for k := range l.OtherAttributes {
		extras = append(extras, k)
	}
	sort.Strings(extras)
	for _, k := range extras {
		add(k, l.OtherAttributes[k])
	}

	relationship := ""
	if l.ParentChild == "Child" {
		relationship = "Variation"
	}

	add("feed_product_type", l.FeedProductType)
	add("item_sku", l.SKU)
	add("external_product_id", l.ProductID)
	add("external_product_id_type", l.ProductIDType)
	add("brand_name", l.Brand)
	add("item_name", l.Title)
	add("product_description", l.Description)
	add("manufacturer", l.Manufacturer)
	add("standard_price", l.Price)
	add("sale_price", l.SalePrice)
	add("currency", l.Currency)
	add("quantity", strconv.Itoa(l.Quantity))
	add("parent_child", l.ParentChild)
	add("relationship_type", relationship)
	add("parent_sku", l.ParentSKU)
	add("variation_theme", l.VariationTheme)
	add("generic_keywords", l.Keywords)
	add("color_name", l.ColorName)
	add("size_name", l.SizeName)
	add("merchant_shipping_group_name", l.ShippingGroup)
	add("website_shipping_weight_unit_of_measure", l.WeightUnit)
	add("recommended_browse_nodes", l.RecommendedBrowseNodes)
	add("sale_from_date", l.SaleFromDate)
	add("sale_end_date", l.SaleEndDate)

	add("main_image_url", listSlot(l.Images, 0))
	for i := 1; i < listingImageSlots; i++ {
		add("other_image_url"+strconv.Itoa(i), listSlot(l.Images, i))
	}
	for i := range listingBulletSlots {
		add("bullet_point"+strconv.Itoa(i+1), listSlot(l.BulletPoints, i))
	}

	return headers, values
}

func listSlot(values []string, i int) string {
	if i < len(values) {
		return values[i]
	}
	return ""
}

// marketplaceFlatFile renders the complete AmazonMarketPlace feed body. All
// listings must flatten to the same column set; the first listing defines
// the header row.
func marketplaceFlatFile(listings []Listing) ([]byte, error) {
	if len(listings) == 0 {
		return nil, &ValidationError{Reason: "no listings supplied"}
	}

	header, first := listings[0].Flatten()
	rows := [][]string{first}
	for i := 1; i < len(listings); i++ {
		_, values := listings[i].Flatten()
		rows = append(rows, values)
	}
	return buildFlatFile(marketplaceTemplateLine, header, rows)
}
