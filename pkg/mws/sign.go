package mws

import (
	"crypto/hmac"
	"crypto/md5" //nolint:gosec // Content-MD5 is required by the MWS feed API
	"crypto/sha256"
	"encoding/base64"
	"net/url"
	"sort"
	"strings"
)

const (
	signatureMethod  = "HmacSHA256"
	signatureVersion = "2"

	// timestampFormat is the ISO-8601 layout MWS expects for Timestamp
	// parameters and quota headers: milliseconds are always ".000".
	timestampFormat = "2006-01-02T15:04:05.000Z"
)

// rfc3986Escape percent-encodes s for use in a signed query string. The
// server recomputes the signature over the RFC 3986 form, so a space must
// become %20 and never +.
func rfc3986Escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// canonicalQuery returns the key-sorted, RFC 3986 encoded query string.
// Sorting is plain byte order; the server sorts the same way before
// verifying.
func canonicalQuery(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(rfc3986Escape(k))
		b.WriteByte('=')
		b.WriteString(rfc3986Escape(params[k]))
	}
	return b.String()
}

// canonicalString builds the exact byte string the server signs:
// method, host (no scheme or port), path and the canonical query, joined by
// newlines. params must not yet contain the Signature key.
func canonicalString(method, host, path string, params map[string]string) string {
	return method + "\n" + host + "\n" + path + "\n" + canonicalQuery(params)
}

// signCanonical computes the base64 HMAC-SHA256 signature of the canonical
// string under the shared secret.
func signCanonical(secret, canonical string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(canonical))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// contentMD5 returns the base64 MD5 digest of a feed body. It must be
// computed over the exact bytes transmitted.
func contentMD5(body []byte) string {
	sum := md5.Sum(body) //nolint:gosec // see above
	return base64.StdEncoding.EncodeToString(sum[:])
}
