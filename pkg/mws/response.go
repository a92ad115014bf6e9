package mws

import (
	"net/http"
	"strconv"
	"strings"
	"time"
)

const (
	headerQuotaMax       = "x-mws-quota-max"
	headerQuotaRemaining = "x-mws-quota-remaining"
	headerQuotaResetsOn  = "x-mws-quota-resetsOn"
)

// Quota is the throttling state MWS reports in response headers. It is
// per-operation on the server side and attached to every response envelope
// independent of the body.
type Quota struct {
	Max       int
	Remaining int
	ResetsOn  time.Time
}

// parseQuota extracts quota metadata from response headers. A missing header
// set returns ok=false; partial headers fill what is present.
func parseQuota(h http.Header) (Quota, bool) {
	var q Quota
	var ok bool

	if v := h.Get(headerQuotaMax); v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			q.Max = n
			ok = true
		}
	}
	if v := h.Get(headerQuotaRemaining); v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			q.Remaining = n
			ok = true
		}
	}
	if v := h.Get(headerQuotaResetsOn); v != "" {
		if t, err := time.Parse(timestampFormat, v); err == nil {
			q.ResetsOn = t
			ok = true
		}
	}
	return q, ok
}

// rawResponse is a transport response before normalization.
type rawResponse struct {
	body   []byte
	header http.Header
}

// isXML reports whether the Content-Type marks the body as an XML document.
func (r *rawResponse) isXML() bool {
	return strings.Contains(strings.ToLower(r.header.Get("Content-Type")), "xml")
}

// decode parses the body into a Node with the document root stripped.
func (r *rawResponse) decode() (Node, error) {
	return decodeXML(r.body)
}
