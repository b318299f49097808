package panels

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/storyvest/storyvest/internal/scenario"
	"github.com/storyvest/storyvest/tui/styles"
)

// PortfolioPanel shows the player's position and the cost of the planned
// decision batch before it is submitted: cash, holdings value, total assets,
// the batch's net cost, validation errors and the mentor's tip. It is a
// display panel and takes no key input.
type PortfolioPanel struct {
	balance     float64
	totalAssets float64
	turn        scenario.Turn
	deltas      map[string]int
	errText     string
	tip         string

	width  int
	height int
}

// NewPortfolioPanel creates the position panel.
func NewPortfolioPanel() *PortfolioPanel {
	return &PortfolioPanel{deltas: make(map[string]int)}
}

// Init initializes the panel.
func (p *PortfolioPanel) Init() tea.Cmd {
	return nil
}

// SetPosition refreshes the displayed ledger state.
func (p *PortfolioPanel) SetPosition(balance, totalAssets float64, turn scenario.Turn) {
	p.balance = balance
	p.totalAssets = totalAssets
	p.turn = turn
}

// SetPlan refreshes the planned batch preview.
func (p *PortfolioPanel) SetPlan(deltas map[string]int) {
	p.deltas = deltas
}

// SetError shows a validation message for a rejected submission.
func (p *PortfolioPanel) SetError(text string) { p.errText = text }

// SetTip shows the mentor's advice line.
func (p *PortfolioPanel) SetTip(tip string) { p.tip = tip }

// SetSize sets the panel dimensions.
func (p *PortfolioPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// Update handles messages for the panel.
func (p *PortfolioPanel) Update(msg tea.Msg) (*PortfolioPanel, tea.Cmd) {
	return p, nil
}

// planCost is the net cash the planned batch would consume at the current
// turn's prices (negative when sells outweigh buys).
func (p *PortfolioPanel) planCost() float64 {
	var cost float64
	for name, d := range p.deltas {
		if price, ok := p.turn.Price(name); ok {
			cost += float64(d) * price
		}
	}
	return cost
}

// View renders the panel.
func (p *PortfolioPanel) View() string {
	var content strings.Builder
	textWidth := p.width - 6
	if textWidth < 20 {
		textWidth = 20
	}

	content.WriteString(fmt.Sprintf("%s %s\n",
		styles.LabelStyle.Render("Coins:"),
		styles.RowStyle.Render(styles.FormatMoney(p.balance))))
	content.WriteString(fmt.Sprintf("%s %s\n",
		styles.LabelStyle.Render("Total assets:"),
		styles.RowStyle.Render(styles.FormatMoney(p.totalAssets))))

	if len(p.deltas) > 0 {
		cost := p.planCost()
		label := "Plan cost:"
		rendered := styles.BuyStyle.Render(styles.FormatMoney(cost))
		if cost < 0 {
			label = "Plan raises:"
			rendered = styles.SellStyle.Render(styles.FormatMoney(-cost))
		}
		content.WriteString(fmt.Sprintf("%s %s\n", styles.LabelStyle.Render(label), rendered))
		after := p.balance - cost
		content.WriteString(fmt.Sprintf("%s %s\n",
			styles.LabelStyle.Render("Coins after:"),
			styles.RowStyle.Render(styles.FormatMoney(after))))
	} else {
		content.WriteString(styles.LabelStyle.Render("No trades planned (hold)"))
		content.WriteString("\n")
	}

	if p.errText != "" {
		content.WriteString("\n")
		content.WriteString(styles.ErrorStyle.Width(textWidth).Render("✗ " + p.errText))
		content.WriteString("\n")
	}
	if p.tip != "" {
		content.WriteString("\n")
		content.WriteString(styles.TipStyle.Width(textWidth).Render("💡 " + p.tip))
		content.WriteString("\n")
	}

	title := styles.RenderTitle("💰 Portfolio", false)
	panel := lipgloss.JoinVertical(lipgloss.Left, title, content.String())
	return styles.PanelStyle.Width(p.width - 2).Height(p.height - 2).Render(panel)
}
