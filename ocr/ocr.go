//go:build ocr

// Package ocr produces positioned text fragments from page images.
//
// This package wraps the Tesseract OCR engine via gosseract. It requires
// Tesseract to be installed on the system. On macOS, install via:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
//
// Pre-produced hOCR output can be parsed without Tesseract; see ParseHOCR.
package ocr

import (
	"fmt"

	"github.com/otiai10/gosseract/v2"

	"github.com/tsawler/scantab/model"
)

// Client wraps Tesseract for OCR operations.
type Client struct {
	client *gosseract.Client
}

// New creates a new OCR client.
// The client should be closed when no longer needed to release resources.
func New() (*Client, error) {
	client := gosseract.NewClient()
	return &Client{client: client}, nil
}

// Close releases OCR resources.
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// SetLanguage sets the language(s) for OCR recognition.
// Multiple languages can be specified as a "+" separated string (e.g., "eng+fra").
// Default is "eng" (English).
func (c *Client) SetLanguage(lang string) error {
	return c.client.SetLanguage(lang)
}

// Fragments performs OCR on image data (PNG, TIFF, JPEG, etc.) and returns
// one text fragment per recognized word, with bounding boxes in image
// coordinates and confidence scaled to 0-1. Empty words are dropped.
func (c *Client) Fragments(imageData []byte) ([]model.TextFragment, error) {
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	boxes, err := c.client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	fragments := make([]model.TextFragment, 0, len(boxes))
	for _, box := range boxes {
		if box.Word == "" {
			continue
		}
		fragments = append(fragments, model.TextFragment{
			Text: box.Word,
			BBox: model.NewBBoxFromCorners(
				float64(box.Box.Min.X), float64(box.Box.Min.Y),
				float64(box.Box.Max.X), float64(box.Box.Max.Y),
			),
			Confidence: box.Confidence / 100,
		})
	}

	return fragments, nil
}

// HOCR performs OCR on image data and returns the raw hOCR document, which
// ParseHOCR can turn into fragments. Useful for archiving the engine output
// alongside the reconstruction.
func (c *Client) HOCR(imageData []byte) ([]byte, error) {
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	hocr, err := c.client.HOCRText()
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}
	return []byte(hocr), nil
}
