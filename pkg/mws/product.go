package mws

import (
	"fmt"
	"strconv"
	"strings"
)

// Offer template identification, fixed by the flat file format.
var offerTemplateLine = []string{"TemplateType=Offer", "Version=2014.0703"}

// offerHeader is the fixed 25-column schema of the Offer listings flat
// file. Column order is part of the format.
var offerHeader = []string{
	"sku", "price", "quantity", "product-id",
	"product-id-type", "condition-type", "condition-note",
	"ASIN-hint", "title", "product-tax-code", "operation-type",
	"sale-price", "sale-start-date", "sale-end-date", "leadtime-to-ship",
	"launch-date", "is-giftwrap-available", "is-gift-message-available",
	"fulfillment-center-id", "main-offer-image", "offer-image1",
	"offer-image2", "offer-image3", "offer-image4", "offer-image5",
}

// offerImageSlots is the number of image columns in the Offer template:
// main-offer-image plus offer-image1..5.
const offerImageSlots = 6

var productConditions = []string{
	"New", "Refurbished", "UsedLikeNew",
	"UsedVeryGood", "UsedGood", "UsedAcceptable",
}

// Product is one row of the Offer listings flat file, used to create or
// update a marketplace offer via PostProducts.
type Product struct {
	SKU           string
	Price         string
	Quantity      int
	ProductID     string
	ProductIDType string // ASIN, UPC or EAN
	ConditionType string // defaults to New
	ConditionNote string
	ASINHint      string
	Title         string
	ProductTaxCode string
	OperationType  string
	SalePrice      string
	SaleStartDate  string
	SaleEndDate    string
	LeadtimeToShip string
	LaunchDate     string

	GiftwrapAvailable    bool
	GiftMessageAvailable bool
	FulfillmentCenterID  string

	// Images fills main-offer-image and offer-image1..5 in order; slots
	// beyond the supplied length stay empty.
	Images []string
}

// Validate checks the row against the flat file constraints and returns one
// problem per offending field. An empty map means the row is acceptable.
func (p *Product) Validate() map[string]string {
	problems := map[string]string{}

	if len(p.SKU) < 1 || len(p.SKU) > 40 {
		problems["sku"] = "should be between 1 and 40 characters"
	}

	price := strings.ReplaceAll(p.Price, ",", ".")
	whole, frac, ok := strings.Cut(price, ".")
	switch {
	case !ok:
		problems["price"] = "should be a decimal number"
	case len(whole) > 18:
		problems["price"] = "too high"
	case len(frac) > 2:
		problems["price"] = "too many decimals"
	}

	switch p.ProductIDType {
	case "ASIN":
		if len(p.ProductID) != 10 {
			problems["product-id"] = "ASIN should be 10 characters long"
		}
	case "UPC":
		if len(p.ProductID) != 12 {
			problems["product-id"] = "UPC should be 12 characters long"
		}
	case "EAN":
		if len(p.ProductID) != 13 {
			problems["product-id"] = "EAN should be 13 characters long"
		}
	default:
		problems["product-id-type"] = "not one of: ASIN, UPC, EAN"
	}

	condition := p.condition()
	valid := false
	for _, known := range productConditions {
		if condition == known {
			valid = true
			break
		}
	}
	if !valid {
		problems["condition-type"] = "not one of: " + strings.Join(productConditions, ", ")
	}

	if condition != "New" {
		switch n := len(p.ConditionNote); {
		case n < 1:
			problems["condition-note"] = "required when condition-type is not New"
		case n > 1000:
			problems["condition-note"] = "should not exceed 1000 characters"
		}
	}

	return problems
}

func (p *Product) condition() string {
	if p.ConditionType == "" {
		return "New"
	}
	return p.ConditionType
}

// row renders the product in offerHeader column order, padding unused image
// slots with empty strings to keep the fixed column count.
func (p *Product) row() []string {
	price := strings.ReplaceAll(p.Price, ",", ".")

	row := []string{
		p.SKU, price, strconv.Itoa(p.Quantity), p.ProductID,
		p.ProductIDType, p.condition(), p.ConditionNote,
		p.ASINHint, p.Title, p.ProductTaxCode, p.OperationType,
		p.SalePrice, p.SaleStartDate, p.SaleEndDate, p.LeadtimeToShip,
		p.LaunchDate, flatFileBool(p.GiftwrapAvailable),
		flatFileBool(p.GiftMessageAvailable), p.FulfillmentCenterID,
	}
	for i := range offerImageSlots {
		if i < len(p.Images) {
			row = append(row, p.Images[i])
		} else {
			row = append(row, "")
		}
	}
	return row
}

func flatFileBool(b bool) string {
	if b {
		return "true"
	}
	return ""
}

// offerFlatFile validates every product and renders the complete feed body.
func offerFlatFile(products []Product) ([]byte, error) {
	rows := make([][]string, 0, len(products))
	for i := range products {
		if problems := products[i].Validate(); len(problems) > 0 {
			return nil, &ValidationError{
				Reason: fmt.Sprintf("product %s: %v", products[i].SKU, problems),
			}
		}
		rows = append(rows, products[i].row())
	}
	return buildFlatFile(offerTemplateLine, offerHeader, rows)
}
