package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	// Primary colors
	PrimaryColor   = lipgloss.Color("#7C3AED") // Purple
	SecondaryColor = lipgloss.Color("#10B981") // Green
	AccentColor    = lipgloss.Color("#F59E0B") // Amber

	// Price movement colors
	GainColor    = lipgloss.Color("#10B981") // Green
	LossColor    = lipgloss.Color("#EF4444") // Red
	NeutralColor = lipgloss.Color("#6B7280") // Gray

	// Background colors
	BackgroundColor  = lipgloss.Color("#1F2937")
	BorderColor      = lipgloss.Color("#374151")
	FocusBorderColor = lipgloss.Color("#7C3AED")

	// Text colors
	TextColor          = lipgloss.Color("#F9FAFB")
	TextSecondaryColor = lipgloss.Color("#9CA3AF")
	TextMutedColor     = lipgloss.Color("#6B7280")
)

// Panel styles
var (
	// Base panel style
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1)

	// Focused panel style
	FocusedPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(FocusBorderColor).
				Padding(0, 1)

	// Panel title style
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			Padding(0, 1)

	// Header row style
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextSecondaryColor)

	// Row styles
	RowStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	SelectedRowStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Background(lipgloss.Color("#374151"))
)

// Text styles
var (
	// Buy/Sell deltas
	BuyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(GainColor)

	SellStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(LossColor)

	// Price movement
	PriceUpStyle = lipgloss.NewStyle().
			Foreground(GainColor)

	PriceDownStyle = lipgloss.NewStyle().
			Foreground(LossColor)

	PriceFlatStyle = lipgloss.NewStyle().
			Foreground(TextSecondaryColor)

	// News and events
	NewsStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	EventStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(AccentColor)

	// Validation feedback
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(LossColor)

	TipStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(SecondaryColor)

	LabelStyle = lipgloss.NewStyle().
			Foreground(TextSecondaryColor)
)

// Result screen styles
var (
	ResultTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(AccentColor).
				Padding(1, 2)

	ResultGainStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(GainColor)

	ResultLossStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(LossColor)
)

// Status bar styles
var (
	StatusBarStyle = lipgloss.NewStyle().
			Background(BackgroundColor).
			Foreground(TextSecondaryColor).
			Padding(0, 1)

	StatusBarKeyStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true)

	StatusBarDescStyle = lipgloss.NewStyle().
				Foreground(TextSecondaryColor)
)

// RenderTitle renders a title bar for a panel.
func RenderTitle(title string, focused bool) string {
	style := TitleStyle
	if focused {
		style = style.Foreground(FocusBorderColor)
	}
	return style.Render(title)
}

// FormatMoney renders a coin amount.
func FormatMoney(v float64) string {
	return fmt.Sprintf("%.1f", v)
}

// FormatChange renders a price change with its movement style applied.
func FormatChange(change float64) string {
	switch {
	case change > 0:
		return PriceUpStyle.Render(fmt.Sprintf("+%.1f", change))
	case change < 0:
		return PriceDownStyle.Render(fmt.Sprintf("%.1f", change))
	default:
		return PriceFlatStyle.Render("0.0")
	}
}
