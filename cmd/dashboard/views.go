package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/rxtech-lab/argo-insight/internal/analysis"
	"github.com/rxtech-lab/argo-insight/internal/indicator"
)

// listItem implements list.Item for the lookback range list.
type listItem struct {
	name        string
	description string
	months      int
}

func (i listItem) Title() string       { return i.name }
func (i listItem) Description() string { return i.description }
func (i listItem) FilterValue() string { return i.name }

// NewTickerInput creates the ticker entry field.
func NewTickerInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "AAPL"
	ti.Focus()
	ti.CharLimit = 12
	ti.Width = 20
	ti.Prompt = "> "

	return ti
}

// NewRangeList creates the lookback range selection list.
func NewRangeList() list.Model {
	items := []list.Item{
		listItem{name: "6 months", description: "Short-term view", months: 6},
		listItem{name: "1 year", description: "Default dashboard range", months: 12},
		listItem{name: "2 years", description: "Medium-term view", months: 24},
		listItem{name: "5 years", description: "Long-term view", months: 60},
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = true

	l := list.New(items, delegate, 0, 0)
	l.Title = "Select Lookback Range"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	return l
}

// ParseTicker normalizes a ticker entry.
func ParseTicker(input string) string {
	return strings.ToUpper(strings.TrimSpace(input))
}

// NewIndicatorTable creates the table showing the latest indicator values.
func NewIndicatorTable() table.Model {
	columns := []table.Column{
		{Title: "Indicator", Width: 22},
		{Title: "Latest", Width: 14},
		{Title: "Defined", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(9),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)

	t.SetStyles(s)

	return t
}

// UpdateIndicatorRows fills the table from a finished report.
func UpdateIndicatorRows(t table.Model, report *analysis.Report) table.Model {
	if report == nil || report.Indicators == nil {
		t.SetRows(nil)

		return t
	}

	set := report.Indicators
	params := set.Params

	rows := []table.Row{
		indicatorRow(fmt.Sprintf("SMA (%d)", params.ShortWindow), set.ShortMA, "%.2f"),
		indicatorRow(fmt.Sprintf("SMA (%d)", params.LongWindow), set.LongMA, "%.2f"),
		indicatorRow(fmt.Sprintf("RSI (%d)", params.RSIPeriod), set.RSI, "%.2f"),
		indicatorRow("MACD (12,26)", set.MACD, "%.4f"),
		indicatorRow(fmt.Sprintf("BB Upper (%d)", params.BBWindow), set.UpperBand, "%.2f"),
		indicatorRow(fmt.Sprintf("BB Lower (%d)", params.BBWindow), set.LowerBand, "%.2f"),
		indicatorRow("Crossover Flag", set.Crossover, "%.0f"),
		indicatorRow("Crossover Signal", set.CrossoverSignal, "%+.0f"),
	}

	t.SetRows(rows)

	return t
}

func indicatorRow(name string, series indicator.Series, format string) table.Row {
	latest := "—"
	if value, ok := series.LastDefined(); ok {
		latest = fmt.Sprintf(format, value)
	}

	return table.Row{
		name,
		latest,
		fmt.Sprintf("%d/%d", series.DefinedCount(), series.Len()),
	}
}

// RenderFundamentalsPanel renders the company snapshot and recommendation.
func RenderFundamentalsPanel(report *analysis.Report) string {
	var s strings.Builder

	f := report.Fundamentals

	s.WriteString(fmt.Sprintf("Sector:   %s\n", f.Sector.TakeOr("—")))
	s.WriteString(fmt.Sprintf("Country:  %s\n", f.Country.TakeOr("—")))
	s.WriteString(fmt.Sprintf("P/E:      %s\n", FormatOptional(f.PERatio, "%.2f")))
	s.WriteString(fmt.Sprintf("P/B:      %s\n", FormatOptional(f.PBRatio, "%.2f")))
	s.WriteString(fmt.Sprintf("EPS:      %s\n", FormatOptional(f.TrailingEPS, "%.2f")))
	s.WriteString("\n")
	s.WriteString(fmt.Sprintf("Recommendation: %s (%s)",
		RecommendationBadge(report.Recommendation), report.RecommendationNote))

	return PanelStyle.Render(s.String())
}

// RenderModelPanel renders the prediction model summary.
func RenderModelPanel(report *analysis.Report) string {
	var s strings.Builder

	if report.Model.IsSome() {
		model := report.Model.Unwrap()
		s.WriteString("Next-Day Direction Model\n\n")
		s.WriteString(fmt.Sprintf("Accuracy:   %.1f%%\n", model.Accuracy*100))
		s.WriteString(fmt.Sprintf("Train rows: %d\n", model.TrainRows))
		s.WriteString(fmt.Sprintf("Test rows:  %d", model.TestRows))
	} else {
		s.WriteString("Next-Day Direction Model\n\n")
		s.WriteString("Skipped: ")
		s.WriteString(report.ModelSkipReason)
	}

	return PanelStyle.Render(s.String())
}

// RenderPricePanel renders the closing price sparkline.
func RenderPricePanel(report *analysis.Report, width int) string {
	closes := report.Series.Closes()
	if len(closes) == 0 {
		return ""
	}

	chartWidth := width - 8
	if chartWidth < 20 {
		chartWidth = 20
	}

	var s strings.Builder

	s.WriteString(fmt.Sprintf("Close (%d bars, latest %.2f)\n", len(closes), closes[len(closes)-1]))
	s.WriteString(Sparkline(closes, chartWidth))

	return PanelStyle.Render(s.String())
}
