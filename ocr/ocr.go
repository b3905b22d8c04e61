//go:build ocr

// Package ocr derives alternative text for pictures by running Tesseract
// over the image data.
//
// This package wraps the Tesseract OCR engine via gosseract and is only
// compiled with the "ocr" build tag. It requires Tesseract to be installed
// on the system. On macOS, install via:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
package ocr

import (
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// Client wraps Tesseract for OCR operations.
type Client struct {
	client *gosseract.Client
}

// New creates a new OCR client recognizing English.
// The client should be closed when no longer needed to release resources.
func New() (*Client, error) {
	return NewWithLanguage("")
}

// NewWithLanguage creates a client for the given Tesseract language list,
// such as "eng+fra". Empty means English.
func NewWithLanguage(lang string) (*Client, error) {
	c := &Client{client: gosseract.NewClient()}
	if lang != "" {
		if err := c.client.SetLanguage(strings.Split(lang, "+")...); err != nil {
			c.client.Close()
			return nil, fmt.Errorf("setting OCR language %q: %w", lang, err)
		}
	}
	return c, nil
}

// Close releases OCR resources.
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	err := c.client.Close()
	c.client = nil
	return err
}

// RecognizeImage performs OCR on image data (PNG, TIFF, JPEG, etc.).
// Returns the recognized text with leading/trailing whitespace trimmed.
func (c *Client) RecognizeImage(imageData []byte) (string, error) {
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return "", fmt.Errorf("setting image: %w", err)
	}

	text, err := c.client.Text()
	if err != nil {
		return "", fmt.Errorf("recognizing text: %w", err)
	}

	return strings.TrimSpace(text), nil
}

// AltText recognizes the text in an image and reduces it to a single line
// suitable for a picture description.
func (c *Client) AltText(imageData []byte) (string, error) {
	text, err := c.RecognizeImage(imageData)
	if err != nil {
		return "", err
	}
	return Summarize(text, MaxAltTextRunes), nil
}
