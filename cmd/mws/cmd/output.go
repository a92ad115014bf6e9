package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/merchantcs/mws-go/pkg/mws"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printOrdersTable(orders []mws.Node) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ORDER ID\tSTATUS\tPURCHASED\tCHANNEL\tTOTAL\n")
	for _, o := range orders {
		total := nodeString(o, "OrderTotal", "Amount")
		if currency := nodeString(o, "OrderTotal", "CurrencyCode"); currency != "" {
			total += " " + currency
		}
		tw.writef("%s\t%s\t%s\t%s\t%s\n",
			nodeString(o, "AmazonOrderId"),
			nodeString(o, "OrderStatus"),
			nodeString(o, "PurchaseDate"),
			nodeString(o, "FulfillmentChannel"),
			total,
		)
	}
	return tw.finish()
}

func printOrderItemsTable(items []mws.Node) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("SKU\tASIN\tTITLE\tQTY\tPRICE\n")
	for _, item := range items {
		tw.writef("%s\t%s\t%s\t%s\t%s\n",
			nodeString(item, "SellerSKU"),
			nodeString(item, "ASIN"),
			truncate(nodeString(item, "Title"), 40),
			nodeString(item, "QuantityOrdered"),
			nodeString(item, "ItemPrice", "Amount"),
		)
	}
	return tw.finish()
}

func printMatchTable(result *mws.MatchResult) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tASIN\tTITLE\tBRAND\n")
	for id, products := range result.Found {
		for _, p := range products {
			tw.writef("%s\t%s\t%s\t%s\n",
				id,
				stringValue(p["ASIN"]),
				truncate(stringValue(p["Title"]), 40),
				stringValue(p["Brand"]),
			)
		}
	}
	for _, id := range result.NotFound {
		tw.writef("%s\t-\tnot found\t-\n", id)
	}
	return tw.finish()
}

func printInventoryTable(supply []mws.Node) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("SKU\tASIN\tIN STOCK\tCONDITION\n")
	for _, member := range supply {
		tw.writef("%s\t%s\t%s\t%s\n",
			nodeString(member, "SellerSKU"),
			nodeString(member, "ASIN"),
			nodeString(member, "InStockSupplyQuantity"),
			nodeString(member, "Condition"),
		)
	}
	return tw.finish()
}

func printReportRows(rows []map[string]string) error {
	if len(rows) == 0 {
		fmt.Println("Report contains no rows.")
		return nil
	}

	headers := make([]string, 0, len(rows[0]))
	for h := range rows[0] {
		headers = append(headers, h)
	}

	tw := newTabWriter(os.Stdout)
	for i, h := range headers {
		if i > 0 {
			tw.writef("\t")
		}
		tw.writef("%s", h)
	}
	tw.writef("\n")
	for _, row := range rows {
		for i, h := range headers {
			if i > 0 {
				tw.writef("\t")
			}
			tw.writef("%s", row[h])
		}
		tw.writef("\n")
	}
	return tw.finish()
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// nodeString walks a decoded response node and renders the leaf as a string.
func nodeString(n mws.Node, path ...string) string {
	var cur any = n
	for _, key := range path {
		m, ok := cur.(map[string]any)
		if !ok {
			return ""
		}
		cur = m[key]
	}
	return stringValue(cur)
}

func stringValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case map[string]any:
		if s, ok := t["#text"].(string); ok {
			return s
		}
		return ""
	default:
		return fmt.Sprintf("%v", t)
	}
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
