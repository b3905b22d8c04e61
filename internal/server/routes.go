package server

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/tsawler/paperlayout"
	"github.com/tsawler/paperlayout/format"
	"github.com/tsawler/paperlayout/internal/config"
	"github.com/tsawler/paperlayout/internal/version"
)

// User-facing messages shown on the form after a redirect.
const (
	msgNoFile      = "No file selected"
	msgInvalidType = "Invalid file type. Please upload a .docx file"
	msgFailed      = "Error processing document"
)

// WarningsHeader carries the number of formatting warnings of a download.
const WarningsHeader = "X-Paperlayout-Warnings"

// HealthResponse is the response for the health check endpoint.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

func (s *Server) registerRoutes(e *echo.Echo) {
	limit := fmt.Sprintf("%dM", s.settings.Server.MaxUploadMB)

	e.GET("/", s.handleIndex)
	e.GET("/favicon.ico", handleFavicon)
	e.GET("/health", handleHealth)
	e.POST("/upload", s.handleUpload, middleware.BodyLimit(limit))
}

func handleFavicon(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

func handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok", Version: version.GitRelease})
}

// handleIndex renders the upload form with the message from a previous
// redirect, if any.
func (s *Server) handleIndex(c echo.Context) error {
	var sb strings.Builder
	if err := renderForm(&sb, c.QueryParam("error"), s.current().FooterText); err != nil {
		return err
	}
	return c.HTML(http.StatusOK, sb.String())
}

// handleUpload reformats the uploaded document and returns it as
// <name>_processed.docx. Input problems and processing failures redirect
// back to the form with a message.
func (s *Server) handleUpload(c echo.Context) error {
	cfg := s.current()
	log := s.logger.With("request_id", c.Response().Header().Get(echo.HeaderXRequestID))

	file, err := c.FormFile("file")
	if err != nil || file.Filename == "" {
		return redirectWithError(c, msgNoFile)
	}
	if !format.IsAllowed(file.Filename) {
		log.Info("rejected upload", "file", file.Filename, "format", format.Detect(file.Filename).String())
		return redirectWithError(c, msgInvalidType)
	}

	name := format.SanitizeFilename(file.Filename)
	base := strings.TrimSuffix(name, filepath.Ext(name))
	if base == "" {
		base = "document"
	}

	footer := c.FormValue("footer_text")
	if strings.TrimSpace(footer) == "" {
		footer = cfg.FooterText
	}

	dir, err := newWorkDir(cfg)
	if err != nil {
		return err
	}
	defer os.RemoveAll(dir)

	input := filepath.Join(dir, base+".docx")
	if err := saveUpload(file, input); err != nil {
		log.Error("saving upload", "file", file.Filename, "error", err)
		return redirectWithError(c, msgFailed)
	}

	outputName := base + "_processed.docx"
	output := filepath.Join(dir, outputName)

	f := paperlayout.Open(input).
		Footer(footer).
		Logger(log).
		MaxImagePixels(cfg.Images.MaxPixels).
		Extensions(cfg.Images.Extensions...).
		TempDir(dir)
	if s.altText != nil {
		f = f.AltText(s.altText)
	}

	warnings, err := f.SaveAs(output)
	os.Remove(input)
	if err != nil {
		log.Error("formatting failed", "file", file.Filename, "error", err)
		return redirectWithError(c, msgFailed)
	}
	for _, w := range warnings {
		log.Debug("formatting warning", "warning", w.String())
	}

	c.Response().Header().Set(WarningsHeader, strconv.Itoa(len(warnings)))
	return c.Attachment(output, outputName)
}

func redirectWithError(c echo.Context, msg string) error {
	return c.Redirect(http.StatusSeeOther, "/?error="+url.QueryEscape(msg))
}

// newWorkDir creates a per-request directory under the configured work
// directory.
func newWorkDir(cfg *config.Config) (string, error) {
	root := cfg.Server.WorkDir
	if root == "" {
		root = filepath.Join(os.TempDir(), "paperlayout-uploads")
	}
	dir := filepath.Join(root, uuid.NewString())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating work directory: %w", err)
	}
	return dir, nil
}

func saveUpload(fh *multipart.FileHeader, dst string) error {
	src, err := fh.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
