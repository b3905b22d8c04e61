package main

import (
	"github.com/spf13/cobra"

	"github.com/tsawler/paperlayout/internal/server"
	"github.com/tsawler/paperlayout/internal/version"
)

var (
	serveHost string
	servePort string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the upload server",
	Long: `Start the paperlayout HTTP server.

The server provides:
  - /        - Upload form
  - /upload  - POST a .docx as "file" with optional "footer_text"
  - /health  - Basic server health check

Changes to the config file are picked up without a restart.

Examples:
  paperlayout serve                    # Start on the configured port
  paperlayout serve --port 3000        # Start on custom port
  paperlayout serve --host 0.0.0.0     # Bind to all interfaces`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := cfgMgr.Get()

		srvCfg := server.Config{
			Host:          serveHost,
			Port:          servePort,
			ConfigManager: cfgMgr,
			Logger:        logger,
		}
		if client := newOCR(cfg); client != nil {
			defer client.Close()
			srvCfg.AltText = client
		}

		srv, err := server.New(srvCfg)
		if err != nil {
			return err
		}

		if cfgMgr.File() != "" {
			cfgMgr.WatchConfig()
			logger.Info("watching config", "file", cfgMgr.File())
		}

		logger.Info("paperlayout server", "version", version.String())

		// Start server (blocks until shutdown)
		return srv.Start(cmd.Context())
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Host to bind to (default from config, 127.0.0.1)")
	serveCmd.Flags().StringVar(&servePort, "port", "", "Port to listen on (default from config, 8080)")

	rootCmd.AddCommand(serveCmd)
}
