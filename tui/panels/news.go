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

// NewsPanel shows the story: the current turn's news and event on top, with
// a scrollable log of the turns already played beneath it.
type NewsPanel struct {
	current scenario.Turn
	log     []scenario.Turn

	scrollOffset int
	focused      bool
	width        int
	height       int
}

// NewNewsPanel creates the story panel.
func NewNewsPanel() *NewsPanel {
	return &NewsPanel{}
}

// Init initializes the panel.
func (p *NewsPanel) Init() tea.Cmd {
	return nil
}

// SetTurn moves the story forward: the previous current turn joins the log.
func (p *NewsPanel) SetTurn(turn scenario.Turn) {
	if p.current.TurnNumber != 0 {
		p.log = append(p.log, p.current)
	}
	p.current = turn
	p.scrollOffset = 0
}

// SetFocus sets whether this panel receives key input.
func (p *NewsPanel) SetFocus(focused bool) { p.focused = focused }

// SetSize sets the panel dimensions.
func (p *NewsPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// Update handles messages for the panel.
func (p *NewsPanel) Update(msg tea.Msg) (*NewsPanel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !p.focused {
		return p, nil
	}

	switch {
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("up", "k"))):
		if p.scrollOffset < len(p.log) {
			p.scrollOffset++
		}
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("down", "j"))):
		if p.scrollOffset > 0 {
			p.scrollOffset--
		}
	}
	return p, nil
}

// View renders the panel.
func (p *NewsPanel) View() string {
	var content strings.Builder
	textWidth := p.width - 6
	if textWidth < 20 {
		textWidth = 20
	}

	content.WriteString(styles.NewsStyle.Width(textWidth).Render(p.current.News))
	content.WriteString("\n")
	if p.current.HasEvent() {
		content.WriteString("\n")
		content.WriteString(styles.EventStyle.Width(textWidth).Render("⚡ " + p.current.EventDescription))
		content.WriteString("\n")
	}

	if n := len(p.log) - p.scrollOffset; n > 0 {
		content.WriteString("\n")
		content.WriteString(styles.HeaderStyle.Render("Earlier:"))
		content.WriteString("\n")
		// Newest first, limited by the panel height.
		shown := 0
		maxShown := p.height - 10
		for i := n - 1; i >= 0 && shown < maxShown; i-- {
			line := fmt.Sprintf("T%d: %s", p.log[i].TurnNumber, p.log[i].News)
			content.WriteString(styles.LabelStyle.Width(textWidth).Render(line))
			content.WriteString("\n")
			shown++
		}
	}

	panelStyle := styles.PanelStyle
	if p.focused {
		panelStyle = styles.FocusedPanelStyle
	}

	title := styles.RenderTitle("📰 Story News", p.focused)
	panel := lipgloss.JoinVertical(lipgloss.Left, title, content.String())
	return panelStyle.Width(p.width - 2).Height(p.height - 2).Render(panel)
}
