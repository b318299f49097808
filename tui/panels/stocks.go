package panels

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/storyvest/storyvest/internal/scenario"
	"github.com/storyvest/storyvest/tui/styles"
)

// StockPanel displays the current turn's stocks and collects the player's
// planned share deltas for the turn. Deltas stay local until the model
// submits them to the session.
type StockPanel struct {
	turn     scenario.Turn
	prev     *scenario.Turn
	holdings map[string]int
	deltas   map[string]int

	selectedIndex int
	focused       bool
	width         int
	height        int
}

// NewStockPanel creates the stock table panel.
func NewStockPanel() *StockPanel {
	return &StockPanel{
		holdings: make(map[string]int),
		deltas:   make(map[string]int),
	}
}

// Init initializes the panel.
func (p *StockPanel) Init() tea.Cmd {
	return nil
}

// SetTurn loads a new turn into the panel and clears the planned deltas.
func (p *StockPanel) SetTurn(turn scenario.Turn, prev *scenario.Turn) {
	p.turn = turn
	p.prev = prev
	p.deltas = make(map[string]int)
	if p.selectedIndex >= len(turn.Stocks) {
		p.selectedIndex = 0
	}
}

// SetHoldings refreshes the displayed share counts.
func (p *StockPanel) SetHoldings(holdings map[string]int) {
	p.holdings = holdings
}

// Deltas returns the planned share deltas for the current turn.
func (p *StockPanel) Deltas() map[string]int {
	out := make(map[string]int, len(p.deltas))
	for name, d := range p.deltas {
		if d != 0 {
			out[name] = d
		}
	}
	return out
}

// ClearDeltas drops the planned deltas without changing the turn.
func (p *StockPanel) ClearDeltas() {
	p.deltas = make(map[string]int)
}

// SetFocus sets whether this panel receives key input.
func (p *StockPanel) SetFocus(focused bool) { p.focused = focused }

// SetSize sets the panel dimensions.
func (p *StockPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SelectedStock returns the highlighted stock.
func (p *StockPanel) SelectedStock() (scenario.Stock, bool) {
	if p.selectedIndex < 0 || p.selectedIndex >= len(p.turn.Stocks) {
		return scenario.Stock{}, false
	}
	return p.turn.Stocks[p.selectedIndex], true
}

// Update handles messages for the panel.
func (p *StockPanel) Update(msg tea.Msg) (*StockPanel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !p.focused {
		return p, nil
	}

	switch {
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("up", "k"))):
		if p.selectedIndex > 0 {
			p.selectedIndex--
		}
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("down", "j"))):
		if p.selectedIndex < len(p.turn.Stocks)-1 {
			p.selectedIndex++
		}
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("right", "b", "+"))):
		if s, ok := p.SelectedStock(); ok {
			p.deltas[s.Name]++
		}
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("left", "s", "-"))):
		if s, ok := p.SelectedStock(); ok {
			p.deltas[s.Name]--
		}
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("backspace", "0"))):
		if s, ok := p.SelectedStock(); ok {
			delete(p.deltas, s.Name)
		}
	}
	return p, nil
}

// View renders the panel.
func (p *StockPanel) View() string {
	var content strings.Builder

	header := fmt.Sprintf("%-14s %8s %8s %6s %6s", "Stock", "Price", "Change", "Held", "Plan")
	content.WriteString(styles.HeaderStyle.Render(header))
	content.WriteString("\n")

	for i, s := range p.turn.Stocks {
		change := 0.0
		if p.prev != nil {
			if prevPrice, ok := p.prev.Price(s.Name); ok {
				change = s.CurrentValue - prevPrice
			}
		}

		plan := "-"
		switch d := p.deltas[s.Name]; {
		case d > 0:
			plan = styles.BuyStyle.Render(fmt.Sprintf("+%d", d))
		case d < 0:
			plan = styles.SellStyle.Render(fmt.Sprintf("%d", d))
		}

		row := fmt.Sprintf("%-14s %8s %8s %6d %6s",
			s.Name,
			styles.FormatMoney(s.CurrentValue),
			styles.FormatChange(change),
			p.holdings[s.Name],
			plan,
		)

		style := styles.RowStyle
		if i == p.selectedIndex && p.focused {
			style = styles.SelectedRowStyle
		}
		content.WriteString(style.Render(row))
		content.WriteString("\n")
	}

	if s, ok := p.SelectedStock(); ok {
		content.WriteString("\n")
		content.WriteString(styles.LabelStyle.Render(s.Description))
		content.WriteString("\n")
		content.WriteString(styles.LabelStyle.Render("Risk: " + s.RiskLevel))
	}

	panelStyle := styles.PanelStyle
	if p.focused {
		panelStyle = styles.FocusedPanelStyle
	}

	title := styles.RenderTitle(fmt.Sprintf("📈 Market — Turn %d", p.turn.TurnNumber), p.focused)
	panel := lipgloss.JoinVertical(lipgloss.Left, title, content.String())
	return panelStyle.Width(p.width - 2).Height(p.height - 2).Render(panel)
}
