//go:build !ocr

// Package ocr produces positioned text fragments from page images.
//
// This is the stub implementation used when the "ocr" build tag is not set.
// All engine-backed functions return ErrOCRNotEnabled; parsing pre-produced
// hOCR output (ParseHOCR) works in both builds.
//
// To enable OCR, rebuild with the "ocr" build tag:
//
//	go build -tags ocr
//
// This requires Tesseract to be installed. On macOS:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
package ocr

import (
	"errors"

	"github.com/tsawler/scantab/model"
)

// ErrOCRNotEnabled is returned when OCR functions are called but OCR support
// was not compiled in. Rebuild with -tags ocr to enable OCR support.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// Client is a stub OCR client.
type Client struct{}

// New returns a stub client. All its engine-backed methods return
// ErrOCRNotEnabled.
func New() (*Client, error) {
	return &Client{}, nil
}

// Close releases OCR resources.
func (c *Client) Close() error {
	return nil
}

// SetLanguage sets the language(s) for OCR recognition.
func (c *Client) SetLanguage(lang string) error {
	return ErrOCRNotEnabled
}

// Fragments performs OCR on image data.
func (c *Client) Fragments(imageData []byte) ([]model.TextFragment, error) {
	return nil, ErrOCRNotEnabled
}

// HOCR performs OCR on image data and returns the raw hOCR document.
func (c *Client) HOCR(imageData []byte) ([]byte, error) {
	return nil, ErrOCRNotEnabled
}
