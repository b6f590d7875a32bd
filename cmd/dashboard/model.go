package main

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rxtech-lab/argo-insight/internal/analysis"
)

// Application states.
const (
	StateTickerInput = iota
	StateRangeSelect
	StateLoading
	StateReport
)

// Model is the main Bubble Tea model for the analysis dashboard.
type Model struct {
	state          int
	tickerInput    textinput.Model
	rangeList      list.Model
	indicatorTable table.Model
	service        *analysis.Service
	ticker         string
	lookbackMonths int
	report         *analysis.Report
	err            error
	width          int
	height         int
}

// NewModel creates a new Model with initial state.
func NewModel(service *analysis.Service) Model {
	return Model{
		state:          StateTickerInput,
		tickerInput:    NewTickerInput(),
		rangeList:      NewRangeList(),
		indicatorTable: NewIndicatorTable(),
		service:        service,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q":
			// Only quit on 'q' if not in text input mode
			if m.state != StateTickerInput {
				return m, tea.Quit
			}
		case "esc":
			return m.handleEsc()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.rangeList.SetSize(msg.Width, msg.Height-4)
		m.indicatorTable.SetWidth(msg.Width)
		return m, nil

	case ReportMsg:
		m.report = msg.Report
		m.err = nil
		m.indicatorTable = UpdateIndicatorRows(m.indicatorTable, m.report)
		m.state = StateReport
		return m, nil

	case AnalysisErrMsg:
		m.err = msg.Err
		m.state = StateTickerInput
		m.tickerInput.Focus()
		return m, textinput.Blink
	}

	// Delegate to state-specific update
	switch m.state {
	case StateTickerInput:
		return m.updateTickerInput(msg)
	case StateRangeSelect:
		return m.updateRangeSelect(msg)
	case StateReport:
		return m.updateReport(msg)
	}

	return m, nil
}

func (m Model) handleEsc() (tea.Model, tea.Cmd) {
	switch m.state {
	case StateRangeSelect:
		m.state = StateTickerInput
		m.tickerInput.Focus()
		return m, textinput.Blink
	case StateReport:
		m.report = nil
		m.err = nil
		m.ticker = ""
		m.lookbackMonths = 0
		m.tickerInput.Reset()
		m.tickerInput.Focus()
		m.state = StateTickerInput
		return m, textinput.Blink
	}

	return m, nil
}

func (m Model) updateTickerInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			ticker := ParseTicker(m.tickerInput.Value())
			if ticker != "" {
				m.ticker = ticker
				m.state = StateRangeSelect
				m.tickerInput.Blur()
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.tickerInput, cmd = m.tickerInput.Update(msg)
	return m, cmd
}

func (m Model) updateRangeSelect(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if item, ok := m.rangeList.SelectedItem().(listItem); ok {
				m.lookbackMonths = item.months
				m.state = StateLoading
				return m, m.runAnalysis()
			}
		}
	}

	var cmd tea.Cmd
	m.rangeList, cmd = m.rangeList.Update(msg)
	return m, cmd
}

func (m Model) updateReport(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.indicatorTable, cmd = m.indicatorTable.Update(msg)
	return m, cmd
}

// runAnalysis returns a command that runs one render for the selected
// ticker and range.
func (m Model) runAnalysis() tea.Cmd {
	ticker := m.ticker
	months := m.lookbackMonths
	service := m.service

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		end := time.Now().UTC().Truncate(24 * time.Hour)
		start := end.AddDate(0, -months, 0)

		report, err := service.Analyze(ctx, analysis.Request{
			Ticker: ticker,
			Start:  start,
			End:    end,
		})
		if err != nil {
			return AnalysisErrMsg{Err: err}
		}

		return ReportMsg{Report: report}
	}
}

// View implements tea.Model.
func (m Model) View() string {
	var s strings.Builder

	switch m.state {
	case StateTickerInput:
		s.WriteString(TitleStyle.Render("Argo Insight - Stock Analysis"))
		s.WriteString("\n\n")
		s.WriteString("Enter a ticker symbol (e.g., AAPL):\n\n")
		s.WriteString(m.tickerInput.View())
		s.WriteString("\n\n")

		if m.err != nil {
			s.WriteString(ErrorStyle.Render("Error: " + m.err.Error()))
			s.WriteString("\n\n")
		}

		s.WriteString(HelpStyle.Render("Press Enter to confirm, Ctrl+C to quit"))

	case StateRangeSelect:
		s.WriteString(TitleStyle.Render("Analyze " + m.ticker))
		s.WriteString("\n\n")
		s.WriteString(m.rangeList.View())
		s.WriteString("\n")
		s.WriteString(HelpStyle.Render("Press Enter to select, Esc to go back"))

	case StateLoading:
		s.WriteString(TitleStyle.Render("Analyzing " + m.ticker + "..."))
		s.WriteString("\n\n")
		s.WriteString("Fetching history, computing indicators and training the model.\n")

	case StateReport:
		s.WriteString(TitleStyle.Render("Analysis - " + m.ticker))
		s.WriteString("\n\n")

		if m.report != nil {
			s.WriteString(RenderPricePanel(m.report, m.width))
			s.WriteString("\n")
			s.WriteString(m.indicatorTable.View())
			s.WriteString("\n")
			s.WriteString(lipglossJoin(
				RenderFundamentalsPanel(m.report),
				RenderModelPanel(m.report),
			))
			s.WriteString("\n")
		}

		s.WriteString(HelpStyle.Render("q: quit | Esc: new analysis"))
	}

	return s.String()
}
