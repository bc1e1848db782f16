package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tracklinehq/trackline/pkg/timeline"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorBlue   = lipgloss.Color("75")  // Light blue - links
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleHighlight for emphasized values.
	StyleHighlight = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleSuccess for success messages.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)

	styleDotFilled = lipgloss.NewStyle().Foreground(colorCyan)
	styleDotEmpty  = lipgloss.NewStyle().Foreground(colorDim)
	styleFill      = lipgloss.NewStyle().Foreground(colorCyan)
	styleRail      = lipgloss.NewStyle().Foreground(colorDim)

	styleCommand = lipgloss.NewStyle().Foreground(colorBlue)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess   = "✓"
	iconError     = "✗"
	iconInfo      = "›"
	iconArrow     = "→"
	iconDotFilled = "●"
	iconDotEmpty  = "○"
	glyphFill     = "━"
	glyphRail     = "─"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + msg)
}

// printError prints an error message.
func printError(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconError.Render(iconError) + " " + msg)
}

// printInfo prints an info/status message.
func printInfo(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconInfo.Render(iconInfo) + " " + msg)
}

// printDetail prints a detail line (indented).
func printDetail(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println("  " + StyleDim.Render(msg))
}

// printKeyValue prints a labeled value.
func printKeyValue(key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(14)
	fmt.Println(keyStyle.Render(key) + " " + StyleValue.Render(value))
}

// printNextStep prints a suggested next command.
func printNextStep(description, cmd string) {
	fmt.Println(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}

// printNewline prints an empty line.
func printNewline() {
	fmt.Println()
}

// =============================================================================
// Frame Rendering
// =============================================================================

// renderDots renders the dot row of a frame as filled and empty markers.
func renderDots(dots []bool) string {
	var b strings.Builder
	for i, filled := range dots {
		if i > 0 {
			b.WriteString(" ")
		}
		if filled {
			b.WriteString(styleDotFilled.Render(iconDotFilled))
		} else {
			b.WriteString(styleDotEmpty.Render(iconDotEmpty))
		}
	}
	return b.String()
}

// renderProgressBar renders a fill bar of the given width for a percentage
// in [0, 100].
func renderProgressBar(fillPercent float64, width int) string {
	if width <= 0 {
		return ""
	}
	filled := int(fillPercent / 100 * float64(width))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return styleFill.Render(strings.Repeat(glyphFill, filled)) +
		styleRail.Render(strings.Repeat(glyphRail, width-filled))
}

// renderFrameSummary renders a multi-line text summary of a frame.
func renderFrameSummary(f timeline.Frame) string {
	var b strings.Builder

	mode := f.Mode.Orientation + "/" + f.Mode.NavigationType
	b.WriteString(fmt.Sprintf("mode          %s\n", StyleValue.Render(mode)))
	b.WriteString(fmt.Sprintf("fraction      %s\n", StyleHighlight.Render(fmt.Sprintf("%.4f", f.Fraction))))
	b.WriteString(fmt.Sprintf("translate     %s\n", StyleValue.Render(fmt.Sprintf("%.1f", f.Translate))))
	b.WriteString(fmt.Sprintf("fill          %s\n", StyleValue.Render(fmt.Sprintf("%.1f%%", f.FillPercent))))

	if f.SpacerAuto {
		b.WriteString(fmt.Sprintf("spacer        %s\n", StyleDim.Render("auto")))
	} else {
		b.WriteString(fmt.Sprintf("spacer        %s\n", StyleValue.Render(fmt.Sprintf("%.0f", f.SpacerHeight))))
	}

	if f.Mode.IsArrows() {
		b.WriteString(fmt.Sprintf("index         %s", StyleHighlight.Render(fmt.Sprintf("%d", f.CurrentIndex))))
		if f.PrevDisabled {
			b.WriteString(StyleDim.Render("  (first)"))
		}
		if f.NextDisabled {
			b.WriteString(StyleDim.Render("  (last)"))
		}
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("dots          %s  %s\n", renderDots(f.Dots),
		StyleDim.Render(fmt.Sprintf("%d/%d", f.FilledCount(), len(f.Dots)))))

	return b.String()
}
