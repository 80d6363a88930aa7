package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/wonny/oracle/internal/api"
	"github.com/wonny/oracle/internal/api/handlers"
	"github.com/wonny/oracle/internal/realtime"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Starts the REST API with the websocket progress stream.

Endpoints:
  GET  /health                   - Health check
  GET  /api/v1/analyze/{ticker}  - Rate one ticker
  GET  /api/v1/quickscan         - Fast RSI/returns pass
  POST /api/v1/scan              - Full scan (universe, sector or list)
  GET  /api/v1/scans/latest      - Most recent stored scan
  GET  /api/v1/universe          - Resolvable ticker universe
  GET  /ws/progress              - Scan progress stream (websocket)

Example:
  go run ./cmd/oracle serve
  go run ./cmd/oracle serve --port 8091`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&servePort, "port", "", "override the configured port")
}

func runServe(cmd *cobra.Command, args []string) error {
	app, err := buildApp(false)
	if err != nil {
		return err
	}
	defer app.Close()

	if servePort != "" {
		app.cfg.Port = servePort
	}

	if err := app.initSchema(cmd.Context()); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}

	hub := realtime.NewHub(app.log)
	app.scanner.WithProgress(hub)

	scanHandler := handlers.NewScanHandler(
		app.scanner, app.universe, app.resultRepo(), app.cfg.Scan.PreFilterTop, app.log)
	router := api.NewRouter(scanHandler, hub, app.log)
	server := api.New(app.cfg, app.log, router)

	go func() {
		if err := server.Start(); err != nil {
			app.log.WithError(err).Fatal("failed to start server")
		}
	}()

	fmt.Printf("Server running on http://localhost:%s\n", app.cfg.Port)
	fmt.Println("Press Ctrl+C to stop")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	return nil
}
