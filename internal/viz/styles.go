package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Styles are the lipgloss styles of the control panel for one theme.
type Styles struct {
	Canvas    lipgloss.Style
	Panel     lipgloss.Style
	Header    lipgloss.Style
	Subtle    lipgloss.Style
	Label     lipgloss.Style
	Value     lipgloss.Style
	Active    lipgloss.Style
	Graph     lipgloss.Style
	Formula   lipgloss.Style
	Help      lipgloss.Style
	KeyHint   lipgloss.Style
	Idle      lipgloss.Style
	Animating lipgloss.Style
	Recording lipgloss.Style
}

func NewStyles(t Theme) Styles {
	return Styles{
		Canvas: lipgloss.NewStyle().Padding(1, 2),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(t.Muted).
			Padding(1, 2).
			Width(46),
		Header:  lipgloss.NewStyle().Foreground(t.Secondary).Bold(true).MarginBottom(1),
		Subtle:  lipgloss.NewStyle().Foreground(t.Muted),
		Label:   lipgloss.NewStyle().Foreground(t.Muted).Width(12),
		Value:   lipgloss.NewStyle().Foreground(t.Text),
		Active:  lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		Graph:   lipgloss.NewStyle().Foreground(t.Curve).Padding(1, 0),
		Formula: lipgloss.NewStyle().Foreground(t.Text).Border(lipgloss.RoundedBorder()).BorderForeground(t.Muted).Padding(0, 1),
		Help:    lipgloss.NewStyle().Foreground(t.Muted).MarginTop(1),
		KeyHint: lipgloss.NewStyle().Foreground(t.Secondary).Bold(true),
		Idle:    lipgloss.NewStyle().Foreground(t.Warning).Bold(true),
		Animating: lipgloss.NewStyle().
			Foreground(t.Success).
			Bold(true),
		Recording: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff4444")).
			Blink(true),
	}
}

// GradientText colors each rune of text along a blend from start to end.
// Colors that do not parse as hex leave the text unstyled.
func GradientText(text string, start, end lipgloss.Color) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	c1, err1 := colorful.Hex(string(start))
	c2, err2 := colorful.Hex(string(end))
	if err1 != nil || err2 != nil {
		return text
	}

	var b strings.Builder
	n := len(runes)
	for i, r := range runes {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		c := c1.BlendLab(c2, t).Clamped()
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render(string(r)))
	}
	return b.String()
}

// SliderBar renders a slider track filled to ratio in [0, 1].
func SliderBar(ratio float64, width int) string {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	filled := int(ratio*float64(width) + 0.5)
	return "[" + strings.Repeat("=", filled) + strings.Repeat("-", width-filled) + "]"
}

// Separator is a decorative horizontal rule.
func Separator(width int, style lipgloss.Style) string {
	mid := width / 2
	if mid < 3 {
		return style.Render(strings.Repeat("─", width))
	}
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return style.Render(left + " ◆ " + right)
}

// AnimatedSpinner returns frame of animated spinner
func AnimatedSpinner(frame int) string {
	spinners := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	return spinners[frame%len(spinners)]
}
