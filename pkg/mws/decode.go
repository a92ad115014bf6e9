package mws

import (
	"fmt"

	"github.com/clbanning/mxj/v2"
)

// Node is one decoded XML element: tag name to child Node, list of children,
// or string value. Attributes appear under the parser's "-" prefix and mixed
// content under "#text"; use attr and text instead of reaching for those keys
// directly.
type Node = map[string]any

// decodeXML parses an XML document into a Node with the document root
// element stripped, so callers address "ListOrdersResult" rather than
// "ListOrdersResponse.ListOrdersResult".
func decodeXML(data []byte) (Node, error) {
	m, err := mxj.NewMapXml(data)
	if err != nil {
		return nil, fmt.Errorf("parsing response XML: %w", err)
	}

	root := map[string]any(m)
	if len(root) == 1 {
		for _, v := range root {
			if inner, ok := v.(map[string]any); ok {
				return inner, nil
			}
		}
	}
	return root, nil
}

// asList is the single list-shape normalizer. The XML parser yields a lone
// child element as a map and repeated children as a slice; asList returns a
// slice either way, so "one order" and "three orders" look the same to
// callers. Passing an already-normalized slice back in returns it unchanged.
func asList(v any) []Node {
	switch t := v.(type) {
	case nil:
		return nil
	case []Node:
		return t
	case []any:
		out := make([]Node, 0, len(t))
		for _, e := range t {
			if n, ok := e.(map[string]any); ok {
				out = append(out, n)
			}
		}
		return out
	case map[string]any:
		return []Node{t}
	default:
		return nil
	}
}

// asStrings normalizes a leaf element that may repeat (such as Feature) into
// a string slice.
func asStrings(v any) []string {
	switch t := v.(type) {
	case nil:
		return nil
	case string:
		return []string{t}
	case []any:
		out := make([]string, 0, len(t))
		for _, e := range t {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// dig walks a nested Node along path, returning nil as soon as a segment is
// absent. Absent keys are "no data", never an error.
func dig(n Node, path ...string) any {
	var cur any = n
	for _, key := range path {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		cur, ok = m[key]
		if !ok {
			return nil
		}
	}
	return cur
}

// digNode is dig for callers that expect a single element.
func digNode(n Node, path ...string) Node {
	m, _ := dig(n, path...).(map[string]any)
	return m
}

// digString is dig for callers that expect a leaf value.
func digString(n Node, path ...string) string {
	return text(dig(n, path...))
}

// text extracts the string value of a leaf, unwrapping elements that carry
// both attributes and character data.
func text(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case map[string]any:
		if s, ok := t["#text"].(string); ok {
			return s
		}
	}
	return ""
}

// attr reads an XML attribute from a decoded element.
func attr(n Node, name string) string {
	s, _ := n["-"+name].(string)
	return s
}
