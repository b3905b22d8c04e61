//go:build !ocr

// Package ocr derives alternative text for pictures by running Tesseract
// over the image data.
//
// Binaries built without the "ocr" tag get this stub: every constructor and
// method reports ErrOCRNotEnabled, and callers fall back to file names as
// picture descriptions. Build with -tags ocr and a local Tesseract install
// to enable recognition.
package ocr

import "errors"

// ErrOCRNotEnabled reports a binary built without the ocr tag.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// Client is the stub client. Only its nil value is ever handed out.
type Client struct{}

func New() (*Client, error) {
	return nil, ErrOCRNotEnabled
}

func NewWithLanguage(lang string) (*Client, error) {
	return nil, ErrOCRNotEnabled
}

// Close does nothing.
func (c *Client) Close() error {
	return nil
}

func (c *Client) RecognizeImage(imageData []byte) (string, error) {
	return "", ErrOCRNotEnabled
}

func (c *Client) AltText(imageData []byte) (string, error) {
	return "", ErrOCRNotEnabled
}
