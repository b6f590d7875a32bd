package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/rxtech-lab/argo-insight/pkg/marketdata"
	"github.com/rxtech-lab/argo-insight/pkg/marketdata/provider"
	"github.com/urfave/cli/v3"
)

// downloadAction parses the flags, sets up the market data client and runs
// the download.
func downloadAction(ctx context.Context, cmd *cli.Command) error {
	ticker := cmd.String("ticker")
	startDate := cmd.Timestamp("start")
	endDate := cmd.Timestamp("end")
	providerFlag := cmd.String("provider")
	storePath := cmd.String("store")

	clientConfig := marketdata.ClientConfig{
		ProviderType:  provider.ProviderType(providerFlag),
		StorePath:     storePath,
		PolygonApiKey: os.Getenv("POLYGON_API_KEY"),
	}

	client, err := marketdata.NewClient(clientConfig, nil)
	if err != nil {
		return fmt.Errorf("failed to create market data client: %w", err)
	}
	defer client.Close()

	log.Printf("Starting download for %s from %s to %s using %s provider...",
		ticker, startDate.Format("2006-01-02"), endDate.Format("2006-01-02"), providerFlag)

	count, err := client.Download(ctx, marketdata.DownloadParams{
		Ticker:    ticker,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		return fmt.Errorf("download failed: %w", err)
	}

	log.Printf("Download completed successfully (%d bars).", count)

	return nil
}

func main() {
	cmd := &cli.Command{
		Name:  "download",
		Usage: "Download daily price history into the local store",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "ticker",
				Aliases:  []string{"t"},
				Usage:    "Stock ticker symbol",
				Required: true,
			},
			&cli.TimestampFlag{
				Name:    "start",
				Aliases: []string{"s"},
				Usage:   "Start date in `YYYY-MM-DD` format",
				Config: cli.TimestampConfig{
					Layouts: []string{"2006-01-02"},
				},
				Required: true,
			},
			&cli.TimestampFlag{
				Name:    "end",
				Aliases: []string{"e"},
				Usage:   "End date in `YYYY-MM-DD` format. Defaults to today.",
				Value:   time.Now(),
				Config: cli.TimestampConfig{
					Layouts: []string{"2006-01-02"},
				},
			},
			&cli.StringFlag{
				Name:    "provider",
				Aliases: []string{"p"},
				Usage: fmt.Sprintf("Data provider to use (e.g., %s, %s, %s)",
					provider.ProviderPolygon, provider.ProviderYahoo, provider.ProviderBinance),
				Value: string(provider.ProviderYahoo),
			},
			&cli.StringFlag{
				Name:    "store",
				Aliases: []string{"d"},
				Usage:   "Path to the DuckDB store file",
				Value:   "data/bars.duckdb",
			},
		},
		Action: downloadAction,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
