package config

import (
	"github.com/tsawler/paperlayout/media"
)

// Config holds paperlayout configuration.
// Stored at: ./config.yaml or ~/.paperlayout/config.yaml
type Config struct {
	FooterText string       `mapstructure:"footer_text" yaml:"footer_text"` // Used when a request leaves the footer empty
	LogLevel   string       `mapstructure:"log_level" yaml:"log_level"`     // debug, info, warn, error
	Images     ImagesConfig `mapstructure:"images" yaml:"images"`
	OCR        OCRConfig    `mapstructure:"ocr" yaml:"ocr"`
	Server     ServerConfig `mapstructure:"server" yaml:"server"`
}

// ImagesConfig controls image extraction and normalization.
type ImagesConfig struct {
	MaxPixels  int      `mapstructure:"max_pixels" yaml:"max_pixels"` // Long-edge limit; 0 keeps originals
	Extensions []string `mapstructure:"extensions" yaml:"extensions"`
}

// OCRConfig controls alt text recognition. It only takes effect in
// binaries built with -tags ocr.
type OCRConfig struct {
	Enabled  bool   `mapstructure:"enabled" yaml:"enabled"`
	Language string `mapstructure:"language" yaml:"language"` // Tesseract languages, "eng+deu"
}

// ServerConfig configures the upload server.
type ServerConfig struct {
	Host        string `mapstructure:"host" yaml:"host"`
	Port        string `mapstructure:"port" yaml:"port"`
	MaxUploadMB int    `mapstructure:"max_upload_mb" yaml:"max_upload_mb"`
	// WorkDir holds uploads and results while a request runs.
	// Empty means a directory under os.TempDir().
	WorkDir string `mapstructure:"work_dir" yaml:"work_dir"`
}

// DefaultConfig returns configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		FooterText: "",
		LogLevel:   "info",
		Images: ImagesConfig{
			MaxPixels:  2000,
			Extensions: append([]string(nil), media.DefaultExtensions...),
		},
		OCR: OCRConfig{
			Enabled:  false,
			Language: "eng",
		},
		Server: ServerConfig{
			Host:        "127.0.0.1",
			Port:        "8080",
			MaxUploadMB: 16,
		},
	}
}
