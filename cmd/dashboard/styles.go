package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-insight/internal/types"
)

// Style definitions.
var (
	// TitleStyle for headers.
	TitleStyle = lipgloss.NewStyle().Bold(true)

	// HelpStyle for help text.
	HelpStyle = lipgloss.NewStyle().Faint(true)

	// ErrorStyle for error messages.
	ErrorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))

	// PanelStyle for the report panels.
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	// BuyStyle, SellStyle and HoldStyle color the recommendation badge.
	BuyStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	SellStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	HoldStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
)

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// lipglossJoin lays the report panels side by side.
func lipglossJoin(panels ...string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, panels...)
}

// RecommendationBadge renders the recommendation with its color.
func RecommendationBadge(rec types.Recommendation) string {
	switch rec {
	case types.RecommendationBuy:
		return BuyStyle.Render(string(rec))
	case types.RecommendationSell:
		return SellStyle.Render(string(rec))
	default:
		return HoldStyle.Render(string(rec))
	}
}

// FormatOptional formats an optional float, rendering missing values as a dash.
func FormatOptional(value optional.Option[float64], format string) string {
	if value.IsNone() {
		return "—"
	}

	return fmt.Sprintf(format, value.Unwrap())
}

// Sparkline renders values as a one-line unicode chart, downsampled to width.
func Sparkline(values []float64, width int) string {
	if len(values) == 0 || width <= 0 {
		return ""
	}

	if len(values) > width {
		sampled := make([]float64, width)
		for i := range sampled {
			sampled[i] = values[i*len(values)/width]
		}

		values = sampled
	}

	low, high := values[0], values[0]
	for _, v := range values {
		if v < low {
			low = v
		}

		if v > high {
			high = v
		}
	}

	span := high - low

	out := make([]rune, len(values))
	for i, v := range values {
		bucket := 0
		if span > 0 {
			bucket = int((v - low) / span * float64(len(sparkRunes)-1))
		}

		out[i] = sparkRunes[bucket]
	}

	return string(out)
}
