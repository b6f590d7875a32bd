package main

import (
	"bytes"
	"math"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/google/uuid"
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-insight/internal/analysis"
	"github.com/rxtech-lab/argo-insight/internal/indicator"
	"github.com/rxtech-lab/argo-insight/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func syntheticReport(t *testing.T, n int) *analysis.Report {
	t.Helper()

	start := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	series := make(types.PriceSeries, n)

	for i := range series {
		price := 100 + 10*math.Sin(float64(i)/7)
		series[i] = types.MarketData{
			Time:   start.AddDate(0, 0, i),
			Ticker: "AAPL",
			Open:   price - 0.5,
			High:   price + 1,
			Low:    price - 1,
			Close:  price,
			Volume: 1000,
		}
	}

	set, err := indicator.Compute(series, indicator.DefaultParams())
	require.NoError(t, err)

	return &analysis.Report{
		RenderID:   uuid.New(),
		Ticker:     "AAPL",
		Series:     series,
		Indicators: set,
		Fundamentals: types.Fundamentals{
			Ticker:      "AAPL",
			Sector:      optional.Some("Technology"),
			Country:     optional.Some("United States"),
			PERatio:     optional.Some(12.5),
			PBRatio:     optional.Some(4.2),
			TrailingEPS: optional.Some(6.1),
		},
		Recommendation:     types.RecommendationBuy,
		RecommendationNote: types.DescriptionUndervalued,
		Model: optional.Some(analysis.ModelReport{
			Accuracy:  0.58,
			TrainRows: 40,
			TestRows:  10,
		}),
	}
}

func TestNewModel(t *testing.T) {
	m := NewModel(nil)

	assert.Equal(t, StateTickerInput, m.state)
	assert.Empty(t, m.ticker)
	assert.Zero(t, m.lookbackMonths)
	assert.Nil(t, m.report)
}

func TestParseTicker(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "simple ticker",
			input:    "AAPL",
			expected: "AAPL",
		},
		{
			name:     "lowercase",
			input:    "msft",
			expected: "MSFT",
		},
		{
			name:     "with whitespace",
			input:    "  googl  ",
			expected: "GOOGL",
		},
		{
			name:     "empty",
			input:    "   ",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseTicker(tt.input))
		})
	}
}

func TestTickerInput(t *testing.T) {
	m := NewModel(nil)
	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(80, 24))

	// Wait for ticker entry view
	teatest.WaitFor(t, tm.Output(), func(bts []byte) bool {
		return bytes.Contains(bts, []byte("Enter a ticker symbol"))
	}, teatest.WithDuration(2*time.Second))

	// Type a ticker
	tm.Type("AAPL")

	teatest.WaitFor(t, tm.Output(), func(bts []byte) bool {
		return bytes.Contains(bts, []byte("AAPL"))
	}, teatest.WithDuration(2*time.Second))

	// Press Enter to confirm
	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})

	// Verify state changed to range selection
	teatest.WaitFor(t, tm.Output(), func(bts []byte) bool {
		return bytes.Contains(bts, []byte("Select Lookback Range"))
	}, teatest.WithDuration(2*time.Second))

	err := tm.Quit()
	assert.NoError(t, err)
}

func TestEmptyTickerIsRejected(t *testing.T) {
	m := NewModel(nil)

	newModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	updated := newModel.(Model)

	assert.Equal(t, StateTickerInput, updated.state)
	assert.Empty(t, updated.ticker)
}

func TestStateTransitions(t *testing.T) {
	t.Run("Esc from range select goes back to ticker input", func(t *testing.T) {
		m := NewModel(nil)
		m.state = StateRangeSelect
		m.ticker = "AAPL"

		tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(80, 24))

		teatest.WaitFor(t, tm.Output(), func(bts []byte) bool {
			return bytes.Contains(bts, []byte("Select Lookback Range"))
		}, teatest.WithDuration(2*time.Second))

		tm.Send(tea.KeyMsg{Type: tea.KeyEsc})

		teatest.WaitFor(t, tm.Output(), func(bts []byte) bool {
			return bytes.Contains(bts, []byte("Enter a ticker symbol"))
		}, teatest.WithDuration(2*time.Second))

		err := tm.Quit()
		assert.NoError(t, err)
	})

	t.Run("Esc from report clears the render and returns to ticker input", func(t *testing.T) {
		m := NewModel(nil)
		m.state = StateReport
		m.ticker = "AAPL"
		m.lookbackMonths = 12
		m.report = syntheticReport(t, 120)

		newModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
		updated := newModel.(Model)

		assert.Equal(t, StateTickerInput, updated.state)
		assert.Empty(t, updated.ticker)
		assert.Zero(t, updated.lookbackMonths)
		assert.Nil(t, updated.report)
	})
}

func TestReportMessage(t *testing.T) {
	m := NewModel(nil)
	m.state = StateLoading
	m.ticker = "AAPL"

	report := syntheticReport(t, 120)

	newModel, _ := m.Update(ReportMsg{Report: report})
	updated := newModel.(Model)

	assert.Equal(t, StateReport, updated.state)
	assert.Equal(t, report, updated.report)
	assert.NoError(t, updated.err)
	assert.NotEmpty(t, updated.indicatorTable.Rows())
}

func TestAnalysisErrorReturnsToTickerInput(t *testing.T) {
	m := NewModel(nil)
	m.state = StateLoading
	m.ticker = "AAPL"

	newModel, _ := m.Update(AnalysisErrMsg{Err: assert.AnError})
	updated := newModel.(Model)

	assert.Equal(t, StateTickerInput, updated.state)
	assert.Equal(t, assert.AnError, updated.err)
}

func TestReportDisplay(t *testing.T) {
	m := NewModel(nil)
	m.state = StateReport
	m.ticker = "AAPL"
	m.report = syntheticReport(t, 120)
	m.indicatorTable = UpdateIndicatorRows(m.indicatorTable, m.report)

	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(120, 40))

	teatest.WaitFor(t, tm.Output(), func(bts []byte) bool {
		return bytes.Contains(bts, []byte("Analysis - AAPL")) &&
			bytes.Contains(bts, []byte("RSI")) &&
			bytes.Contains(bts, []byte("Buy"))
	}, teatest.WithDuration(2*time.Second))

	err := tm.Quit()
	assert.NoError(t, err)
}

func TestQuitBehavior(t *testing.T) {
	t.Run("ctrl+c quits from any state", func(t *testing.T) {
		m := NewModel(nil)
		tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(80, 24))

		tm.Send(tea.KeyMsg{Type: tea.KeyCtrlC})

		tm.WaitFinished(t, teatest.WithFinalTimeout(2*time.Second))
	})

	t.Run("q quits from range select", func(t *testing.T) {
		m := NewModel(nil)
		m.state = StateRangeSelect
		m.ticker = "AAPL"

		tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(80, 24))

		teatest.WaitFor(t, tm.Output(), func(bts []byte) bool {
			return bytes.Contains(bts, []byte("Select Lookback Range"))
		}, teatest.WithDuration(2*time.Second))

		tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

		tm.WaitFinished(t, teatest.WithFinalTimeout(2*time.Second))
	})
}

func TestUpdateIndicatorRows(t *testing.T) {
	table := NewIndicatorTable()

	report := syntheticReport(t, 120)
	table = UpdateIndicatorRows(table, report)

	rows := table.Rows()
	assert.Len(t, rows, 8)
	assert.Equal(t, "SMA (10)", rows[0][0])
	assert.Equal(t, "SMA (50)", rows[1][0])
	assert.Equal(t, "RSI (20)", rows[2][0])

	// A 120-bar series defines the short MA from index 9 onward.
	assert.Equal(t, "111/120", rows[0][2])
}

func TestSparkline(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, Sparkline(nil, 40))
	})

	t.Run("flat series uses lowest glyph", func(t *testing.T) {
		out := Sparkline([]float64{5, 5, 5}, 40)
		assert.Equal(t, "▁▁▁", out)
	})

	t.Run("downsamples to width", func(t *testing.T) {
		values := make([]float64, 200)
		for i := range values {
			values[i] = float64(i)
		}

		out := Sparkline(values, 40)
		assert.Len(t, []rune(out), 40)
	})
}

func TestWindowResize(t *testing.T) {
	m := NewModel(nil)

	newModel, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	updated := newModel.(Model)

	assert.Equal(t, 120, updated.width)
	assert.Equal(t, 40, updated.height)
}
