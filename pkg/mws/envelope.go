package mws

import (
	"encoding/xml"
	"fmt"
	"math/rand/v2"
)

// feedDocumentVersion is fixed by the AmazonEnvelope schema.
const feedDocumentVersion = "1.01"

// feedEnvelope is the XML document wrapping every XML feed submission.
type feedEnvelope struct {
	XMLName     xml.Name      `xml:"AmazonEnvelope"`
	Header      feedHeader    `xml:"Header"`
	MessageType string        `xml:"MessageType"`
	Messages    []feedMessage `xml:"Message"`
}

type feedHeader struct {
	DocumentVersion    string `xml:"DocumentVersion"`
	MerchantIdentifier string `xml:"MerchantIdentifier"`
}

// feedMessage is one entry in a feed. Exactly one of the payload fields is
// set, matching the envelope's MessageType.
type feedMessage struct {
	MessageID     uint32            `xml:"MessageID"`
	OperationType string            `xml:"OperationType,omitempty"`
	Inventory     *inventoryMessage `xml:"Inventory,omitempty"`
	Price         *priceMessage     `xml:"Price,omitempty"`
	Product       *productMessage   `xml:"Product,omitempty"`
}

type inventoryMessage struct {
	SKU                string `xml:"SKU"`
	Quantity           int    `xml:"Quantity"`
	FulfillmentLatency int    `xml:"FulfillmentLatency,omitempty"`
}

type priceMessage struct {
	SKU           string      `xml:"SKU"`
	StandardPrice priceAmount `xml:"StandardPrice"`
	Sale          *saleWindow `xml:"Sale,omitempty"`
}

// priceAmount renders as <StandardPrice currency="...">9.99</StandardPrice>.
type priceAmount struct {
	Currency string `xml:"currency,attr"`
	Value    string `xml:",chardata"`
}

type saleWindow struct {
	StartDate string      `xml:"StartDate"`
	EndDate   string      `xml:"EndDate"`
	SalePrice priceAmount `xml:"SalePrice"`
}

type productMessage struct {
	SKU string `xml:"SKU"`
}

// buildEnvelope assembles and marshals a feed document. Message ids are
// random and unique within the envelope.
func buildEnvelope(merchantID, messageType string, messages []feedMessage) ([]byte, error) {
	seen := make(map[uint32]struct{}, len(messages))
	for i := range messages {
		id := randomMessageID(seen)
		seen[id] = struct{}{}
		messages[i].MessageID = id
	}

	doc := feedEnvelope{
		Header: feedHeader{
			DocumentVersion:    feedDocumentVersion,
			MerchantIdentifier: merchantID,
		},
		MessageType: messageType,
		Messages:    messages,
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("building feed envelope: %w", err)
	}
	return append([]byte(xml.Header), out...), nil
}

func randomMessageID(seen map[uint32]struct{}) uint32 {
	for {
		id := rand.Uint32()
		if id == 0 {
			continue
		}
		if _, ok := seen[id]; !ok {
			return id
		}
	}
}
