package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rxtech-lab/argo-insight/internal/analysis"
	"github.com/rxtech-lab/argo-insight/internal/logger"
	"github.com/rxtech-lab/argo-insight/pkg/marketdata/provider"
	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:  "argo-insight",
		Usage: "Interactive stock analysis dashboard",
		Flags: []cli.Flag{
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
		Action: runDashboard,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runDashboard(ctx context.Context, cmd *cli.Command) error {
	config := analysis.DefaultConfig()

	if path := cmd.String("config"); path != "" {
		loaded, err := analysis.LoadConfig(path)
		if err != nil {
			return err
		}

		config = loaded
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

	var fundamentalsProvider provider.FundamentalsProvider
	if providerType == provider.ProviderYahoo {
		fundamentalsProvider = provider.NewYahooProvider()
	}

	// The TUI owns the terminal, so logs stay silent.
	service := analysis.NewService(config, history, fundamentalsProvider, nil, nil, logger.NewNopLogger())

	p := tea.NewProgram(NewModel(service), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("dashboard failed: %w", err)
	}

	return nil
}
