package ocr

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/encoding/charmap"

	"github.com/tsawler/scantab/model"
)

// ParseHOCR extracts word-level text fragments from an hOCR document, the
// HTML-based format Tesseract and most OCR engines can emit. Each ocrx_word
// element becomes one fragment; its bbox and x_wconf properties supply the
// geometry and confidence. Words without a usable bbox are skipped.
//
// This input path needs no OCR engine at runtime, so a reconstruction can
// run against archived engine output in any build.
func ParseHOCR(data []byte) ([]model.TextFragment, error) {
	decoded, err := decodeCharset(data)
	if err != nil {
		return nil, err
	}

	doc, err := html.Parse(strings.NewReader(string(decoded)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse hOCR: %w", err)
	}

	var fragments []model.TextFragment
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && hasClass(n, "ocrx_word") {
			if f, ok := wordFragment(n); ok {
				fragments = append(fragments, f)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return fragments, nil
}

// decodeCharset converts the document to UTF-8 when the declared charset is
// a Latin-1 variant; everything else is assumed UTF-8 already.
func decodeCharset(data []byte) ([]byte, error) {
	content := strings.ToLower(string(data))
	if strings.Contains(content, "charset=iso-8859-1") || strings.Contains(content, "charset=latin1") {
		decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
		if err != nil {
			return nil, fmt.Errorf("failed to decode hOCR charset: %w", err)
		}
		return decoded, nil
	}
	return data, nil
}

// wordFragment builds a fragment from one ocrx_word element.
func wordFragment(n *html.Node) (model.TextFragment, bool) {
	props := parseTitle(attr(n, "title"))

	bbox, ok := props["bbox"]
	if !ok || len(bbox) < 4 {
		return model.TextFragment{}, false
	}
	x1, err1 := strconv.ParseFloat(bbox[0], 64)
	y1, err2 := strconv.ParseFloat(bbox[1], 64)
	x2, err3 := strconv.ParseFloat(bbox[2], 64)
	y2, err4 := strconv.ParseFloat(bbox[3], 64)
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		return model.TextFragment{}, false
	}

	text := strings.TrimSpace(nodeText(n))
	if text == "" {
		return model.TextFragment{}, false
	}

	confidence := 1.0
	if wconf, ok := props["x_wconf"]; ok && len(wconf) > 0 {
		if v, err := strconv.ParseFloat(wconf[0], 64); err == nil {
			confidence = v / 100
		}
	}

	return model.TextFragment{
		Text:       text,
		BBox:       model.NewBBoxFromCorners(x1, y1, x2, y2),
		Confidence: confidence,
	}, true
}

// parseTitle breaks an hOCR title attribute into its properties.
// Example input: "bbox 100 200 300 400; x_wconf 95"
func parseTitle(title string) map[string][]string {
	props := make(map[string][]string)
	for _, part := range strings.Split(title, ";") {
		items := strings.Fields(strings.TrimSpace(part))
		if len(items) > 0 {
			props[items[0]] = items[1:]
		}
	}
	return props
}

// hasClass reports whether an element's class attribute contains the given
// class name.
func hasClass(n *html.Node, class string) bool {
	for _, a := range n.Attr {
		if a.Key == "class" && strings.Contains(a.Val, class) {
			return true
		}
	}
	return false
}

// attr returns the value of the named attribute, or "".
func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// nodeText concatenates all text nodes beneath n.
func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}
