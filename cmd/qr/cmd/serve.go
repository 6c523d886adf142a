package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/abdalrahmangwish/qr/internal/config"
	"github.com/abdalrahmangwish/qr/internal/server"
)

var (
	serverAddr   string
	serverDebug  bool
	readTimeout  time.Duration
	writeTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start an HTTP API server for encoding invoice QR payloads.

The API provides endpoints for:
  - POST /api/v1/encode    - Encode fields into a base64 payload
  - POST /api/v1/validate  - Check fields without encoding
  - POST /api/v1/image     - Render the payload as a PNG QR code
  - GET  /health           - Health check

Settings come from QR_ADDRESS, QR_DEBUG, QR_READ_TIMEOUT and
QR_WRITE_TIMEOUT; flags override them when set.

Examples:
  # Start server on default port
  qr serve

  # Start on a custom port in debug mode
  qr serve --address :9090 --debug`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serverAddr, "address", ":8080", "Server listen address")
	serveCmd.Flags().BoolVar(&serverDebug, "debug", false, "Enable debug mode")
	serveCmd.Flags().DurationVar(&readTimeout, "read-timeout", 30*time.Second, "HTTP read timeout")
	serveCmd.Flags().DurationVar(&writeTimeout, "write-timeout", 30*time.Second, "HTTP write timeout")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("address") {
		cfg.Address = serverAddr
	}
	if cmd.Flags().Changed("debug") {
		cfg.Debug = serverDebug
	}
	if cmd.Flags().Changed("read-timeout") {
		cfg.ReadTimeout = readTimeout
	}
	if cmd.Flags().Changed("write-timeout") {
		cfg.WriteTimeout = writeTimeout
	}

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Sync()

	srv := server.NewServer(cfg, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return srv.Run()
	})

	// Graceful shutdown when the context is cancelled by a signal or an
	// error in the other goroutine
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown error: %w", err)
		}
		return nil
	})

	return g.Wait()
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
