package formatter

import (
	"fmt"
	"os"
	"strings"

	"github.com/alexanderramin/solace/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// colorEnabled gates all styling; piped output stays plain text.
var colorEnabled = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

func styled(c lipgloss.Color) lipgloss.Style {
	if !colorEnabled {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(c)
}

func styledBold(c lipgloss.Color) lipgloss.Style {
	if !colorEnabled {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(c).Bold(true)
}

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorOrange = lipgloss.Color("#fe8019")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = styled(ColorGreen)
	StyleYellow = styled(ColorYellow)
	StyleOrange = styled(ColorOrange)
	StyleRed    = styled(ColorRed)
	StyleBlue   = styled(ColorBlue)
	StylePurple = styled(ColorPurple)
	StyleDim    = styled(ColorDim)
	StyleFg     = styled(ColorFg)
	StyleHeader = styledBold(ColorOrange)
	StyleBold   = styledBold(ColorFg)
)

// RiskColor returns the lipgloss style corresponding to the given risk level.
func RiskColor(level domain.RiskLevel) lipgloss.Style {
	switch level {
	case domain.RiskImminent:
		return StyleRed
	case domain.RiskHigh:
		return StyleOrange
	case domain.RiskModerate:
		return StyleYellow
	case domain.RiskLow:
		return StyleGreen
	default:
		return StyleDim
	}
}

// RiskBadge returns a colored risk indicator string such as "● IMMINENT".
func RiskBadge(level domain.RiskLevel) string {
	label := strings.ToUpper(string(level))
	if label == "" {
		label = "UNKNOWN"
	}
	return RiskColor(level).Render("● " + label)
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
