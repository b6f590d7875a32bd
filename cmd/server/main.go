package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rxtech-lab/argo-insight/internal/analysis"
	"github.com/rxtech-lab/argo-insight/internal/logger"
	"github.com/rxtech-lab/argo-insight/pkg/marketdata/provider"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

func main() {
	cmd := &cli.Command{
		Name:  "argo-insight-server",
		Usage: "Serve stock analysis reports over HTTP",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "addr",
				Usage: "Listen address",
				Value: ":8080",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to the analysis config file",
			},
			&cli.StringFlag{
				Name:  "provider",
				Usage: "Market data provider (polygon, yahoo, binance)",
				Value: string(provider.ProviderYahoo),
			},
			&cli.StringFlag{
				Name:  "polygon-key",
				Usage: "Polygon.io API key (defaults to POLYGON_API_KEY)",
			},
		},
		Action: runServer,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runServer(ctx context.Context, cmd *cli.Command) error {
	log, err := logger.NewLogger()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer log.Sync()

	config := analysis.DefaultConfig()
	if path := cmd.String("config"); path != "" {
		config, err = analysis.LoadConfig(path)
		if err != nil {
			return err
		}
	}

	providerType := provider.ProviderType(cmd.String("provider"))

	apiKey := cmd.String("polygon-key")
	if apiKey == "" {
		apiKey = os.Getenv("POLYGON_API_KEY")
	}

	history, err := provider.NewHistoryProvider(providerType, apiKey)
	if err != nil {
		return err
	}

	// Only yahoo carries company fundamentals; the service degrades the
	// recommendation to Hold for the rest.
	var fundamentalsProvider provider.FundamentalsProvider
	if providerType == provider.ProviderYahoo {
		fundamentalsProvider = provider.NewYahooProvider()
	}

	service := analysis.NewService(config, history, fundamentalsProvider, nil, nil, log)
	server := NewServer(service, config, log)

	httpServer := &http.Server{
		Addr:              cmd.String("addr"),
		Handler:           server.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)

	go func() {
		log.Info("server listening",
			zap.String("addr", httpServer.Addr),
			zap.String("provider", string(providerType)),
		)
		errCh <- httpServer.ListenAndServe()
	}()

	signalCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		return err
	case <-signalCtx.Done():
	}

	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return httpServer.Shutdown(shutdownCtx)
}
