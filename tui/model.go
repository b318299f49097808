// Package tui is the interactive terminal front end: theme selection, the
// turn-by-turn play screen and the final result screen.
package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/storyvest/storyvest/internal/mentor"
	"github.com/storyvest/storyvest/internal/scenario"
	"github.com/storyvest/storyvest/internal/scenario/llm"
	"github.com/storyvest/storyvest/internal/sim"
	"github.com/storyvest/storyvest/tui/panels"
	"github.com/storyvest/storyvest/tui/styles"
)

// GenerateFunc produces a scenario for a theme. A nil GenerateFunc plays
// the built-in sample scenario regardless of theme.
type GenerateFunc func(ctx context.Context, themeID string) (*scenario.Scenario, error)

// phase is the model's current screen.
type phase int

const (
	phaseThemeSelect phase = iota
	phaseGenerating
	phasePlaying
	phaseResult
)

// PanelFocus represents which panel is currently focused.
type PanelFocus int

const (
	FocusStocks PanelFocus = 0
	FocusNews   PanelFocus = 1
)

type scenarioReadyMsg struct {
	scn *scenario.Scenario
	err error
}

// Model is the main TUI application model.
type Model struct {
	generate GenerateFunc
	cfg      sim.Config

	phase   phase
	themes  []llm.Theme
	themeID string
	themeIx int

	session  *sim.Session
	profile  *mentor.Profile
	summary  *sim.Summary
	recorded int

	stockPanel     *panels.StockPanel
	newsPanel      *panels.NewsPanel
	portfolioPanel *panels.PortfolioPanel

	focusedPanel PanelFocus

	width  int
	height int

	statusMsg string
	ready     bool
}

// NewModel creates the TUI model.
func NewModel(generate GenerateFunc, cfg sim.Config) *Model {
	return &Model{
		generate:       generate,
		cfg:            cfg,
		themes:         llm.Themes(),
		profile:        mentor.NewProfile("player"),
		stockPanel:     panels.NewStockPanel(),
		newsPanel:      panels.NewNewsPanel(),
		portfolioPanel: panels.NewPortfolioPanel(),
		focusedPanel:   FocusStocks,
	}
}

// Summary returns the finished run's summary, nil while still playing.
func (m *Model) Summary() *sim.Summary { return m.summary }

// Profile returns the behavioral profile accumulated this session.
func (m *Model) Profile() *mentor.Profile { return m.profile }

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.stockPanel.Init(),
		m.newsPanel.Init(),
		m.portfolioPanel.Init(),
	)
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case scenarioReadyMsg:
		return m.startGame(msg)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		}
		switch m.phase {
		case phaseThemeSelect:
			return m.updateThemeSelect(msg)
		case phasePlaying:
			return m.updatePlaying(msg)
		case phaseResult:
			if msg.String() == "q" || msg.String() == "enter" {
				return m, tea.Quit
			}
			return m, nil
		}
	}
	return m, nil
}

func (m *Model) updateThemeSelect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.themeIx > 0 {
			m.themeIx--
		}
	case "down", "j":
		if m.themeIx < len(m.themes)-1 {
			m.themeIx++
		}
	case "enter":
		m.themeID = m.themes[m.themeIx].ID
		m.phase = phaseGenerating
		return m, m.generateScenario(m.themeID)
	}
	return m, nil
}

// generateScenario asks the provider for a scenario; failures fall back to
// the built-in sample so a game always starts.
func (m *Model) generateScenario(themeID string) tea.Cmd {
	return func() tea.Msg {
		if m.generate == nil {
			scn := scenario.Sample()
			scn.Theme = themeID
			return scenarioReadyMsg{scn: scn}
		}
		scn, err := m.generate(context.Background(), themeID)
		return scenarioReadyMsg{scn: scn, err: err}
	}
}

func (m *Model) startGame(msg scenarioReadyMsg) (tea.Model, tea.Cmd) {
	scn := msg.scn
	if msg.err != nil || scn == nil {
		scn = scenario.Sample()
		scn.Theme = m.themeID
		m.statusMsg = "Story generation failed, playing the built-in story"
	}

	session, err := sim.NewSession(scn, m.cfg)
	if err != nil {
		m.statusMsg = fmt.Sprintf("could not start game: %v", err)
		m.phase = phaseThemeSelect
		return m, nil
	}
	m.session = session
	m.recorded = 0
	m.phase = phasePlaying
	m.loadCurrentTurn()
	return m, nil
}

func (m *Model) loadCurrentTurn() {
	turn, ok := m.session.CurrentTurn()
	if !ok {
		return
	}
	var prev *scenario.Turn
	if turn.TurnNumber > 1 {
		prev = &m.session.Scenario().Turns[turn.TurnNumber-2]
	}
	m.stockPanel.SetTurn(turn, prev)
	m.stockPanel.SetHoldings(m.session.Holdings())
	m.newsPanel.SetTurn(turn)
	m.refreshPortfolio(turn)
}

func (m *Model) refreshPortfolio(turn scenario.Turn) {
	m.portfolioPanel.SetPosition(m.session.Balance(), m.session.TotalAssets(), turn)
	m.portfolioPanel.SetPlan(m.stockPanel.Deltas())

	analysis := mentor.Analyze(turn, m.session.Holdings(), m.session.Balance())
	m.portfolioPanel.SetTip(mentor.Advice(analysis, m.profile))
}

func (m *Model) updatePlaying(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "tab":
		m.focusedPanel = (m.focusedPanel + 1) % 2
		return m, nil
	case "enter":
		return m.submitTurn()
	}

	var cmd tea.Cmd
	switch m.focusedPanel {
	case FocusStocks:
		m.stockPanel, cmd = m.stockPanel.Update(msg)
		if turn, ok := m.session.CurrentTurn(); ok {
			m.portfolioPanel.SetPlan(m.stockPanel.Deltas())
			m.portfolioPanel.SetPosition(m.session.Balance(), m.session.TotalAssets(), turn)
		}
	case FocusNews:
		m.newsPanel, cmd = m.newsPanel.Update(msg)
	}
	return m, cmd
}

func (m *Model) submitTurn() (tea.Model, tea.Cmd) {
	turn, ok := m.session.CurrentTurn()
	if !ok {
		return m, nil
	}

	deltas := m.stockPanel.Deltas()
	if _, err := m.session.Submit(deltas); err != nil {
		m.portfolioPanel.SetError(err.Error())
		return m, nil
	}
	m.portfolioPanel.SetError("")

	actions := m.session.Actions()
	for _, a := range actions[m.recorded:] {
		m.profile.RecordAction(a)
	}
	m.recorded = len(actions)
	m.statusMsg = fmt.Sprintf("Turn %d locked in", turn.TurnNumber)

	if m.session.Finished() {
		m.summary = m.session.Summary()
		m.profile.RecordGame(m.summary, m.session.Scenario().Len())
		m.phase = phaseResult
		return m, nil
	}
	m.loadCurrentTurn()
	return m, nil
}

// View renders the UI.
func (m *Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	switch m.phase {
	case phaseThemeSelect:
		return m.viewThemeSelect()
	case phaseGenerating:
		return styles.TitleStyle.Render("✨ Writing your story...")
	case phaseResult:
		return m.viewResult()
	default:
		return m.viewPlaying()
	}
}

func (m *Model) viewThemeSelect() string {
	var content strings.Builder
	content.WriteString(styles.TitleStyle.Render("Pick a story world"))
	content.WriteString("\n\n")
	for i, th := range m.themes {
		line := fmt.Sprintf("%s  %s", th.Name, styles.LabelStyle.Render(th.Description))
		style := styles.RowStyle
		if i == m.themeIx {
			style = styles.SelectedRowStyle
		}
		content.WriteString(style.Render(line))
		content.WriteString("\n")
	}
	content.WriteString("\n")
	content.WriteString(m.renderStatusBar([]string{"↑↓ select", "enter start", "q quit"}))
	return styles.PanelStyle.Render(content.String())
}

func (m *Model) viewPlaying() string {
	m.stockPanel.SetFocus(m.focusedPanel == FocusStocks)
	m.newsPanel.SetFocus(m.focusedPanel == FocusNews)

	leftWidth := m.width * 3 / 5
	rightWidth := m.width - leftWidth
	topHeight := (m.height - 3) * 3 / 5
	bottomHeight := m.height - topHeight - 3

	m.stockPanel.SetSize(leftWidth, topHeight)
	m.newsPanel.SetSize(rightWidth, topHeight+bottomHeight)
	m.portfolioPanel.SetSize(leftWidth, bottomHeight)

	left := lipgloss.JoinVertical(lipgloss.Left,
		m.stockPanel.View(),
		m.portfolioPanel.View(),
	)
	main := lipgloss.JoinHorizontal(lipgloss.Top, left, m.newsPanel.View())

	statusBar := m.renderStatusBar([]string{
		"↑↓ stock", "←/→ sell/buy", "enter lock turn", "tab story", "q quit",
	})
	return lipgloss.JoinVertical(lipgloss.Left, main, statusBar)
}

func (m *Model) viewResult() string {
	s := m.summary
	var content strings.Builder

	content.WriteString(styles.ResultTitleStyle.Render("🏁 Story finished!"))
	content.WriteString("\n\n")

	rateStyle := styles.ResultGainStyle
	if s.ProfitRate < 0 {
		rateStyle = styles.ResultLossStyle
	}
	content.WriteString(fmt.Sprintf("%s %s\n",
		styles.LabelStyle.Render("Started with:"), styles.FormatMoney(s.InitialCapital)))
	content.WriteString(fmt.Sprintf("%s %s\n",
		styles.LabelStyle.Render("Finished with:"), styles.FormatMoney(s.FinalCapital)))
	content.WriteString(fmt.Sprintf("%s %s\n\n",
		styles.LabelStyle.Render("Return:"), rateStyle.Render(fmt.Sprintf("%.1f%%", s.ProfitRate))))

	content.WriteString(styles.EventStyle.Render(s.ResultMessage))
	content.WriteString("\n\n")

	if len(s.LedgerHistory) > 0 {
		content.WriteString(styles.HeaderStyle.Render(fmt.Sprintf("%-6s %12s %14s", "Turn", "Coins", "Total assets")))
		content.WriteString("\n")
		for _, e := range s.LedgerHistory {
			content.WriteString(fmt.Sprintf("%-6d %12s %14s\n",
				e.Turn, styles.FormatMoney(e.CashAfter), styles.FormatMoney(e.TotalAssetValue)))
		}
		content.WriteString("\n")
	}

	content.WriteString(styles.TipStyle.Render("You are learning! " + string(m.profile.RiskTolerance) + " investor style observed."))
	content.WriteString("\n\n")
	content.WriteString(m.renderStatusBar([]string{"enter/q quit"}))
	return styles.PanelStyle.Render(content.String())
}

func (m *Model) renderStatusBar(help []string) string {
	parts := make([]string, 0, len(help))
	for _, h := range help {
		k, d, found := strings.Cut(h, " ")
		if !found {
			parts = append(parts, styles.StatusBarDescStyle.Render(h))
			continue
		}
		parts = append(parts, styles.StatusBarKeyStyle.Render(k)+styles.StatusBarDescStyle.Render(" "+d))
	}
	line := strings.Join(parts, " │ ")
	if m.statusMsg != "" {
		line += " │ " + m.statusMsg
	}
	return styles.StatusBarStyle.Width(m.width).Render(line)
}
