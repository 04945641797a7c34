package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconWarning = "!"
	iconArrow   = "→"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + msg)
}

// printWarning prints a warning message.
func printWarning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconWarning.Render(iconWarning) + " " + StyleWarning.Render(msg))
}

// =============================================================================
// File Output
// =============================================================================

// printFile prints a file output line.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

// =============================================================================
// Stats Display
// =============================================================================

// statPart is one "<n> <label>" entry of a stats line.
type statPart struct {
	n     int
	label string
}

// formatStats joins non-zero counts with dim separators, followed by the
// elapsed time.
func formatStats(parts []statPart, elapsed time.Duration) string {
	line := "  "
	first := true
	for _, p := range parts {
		if p.n == 0 {
			continue
		}
		if !first {
			line += StyleDim.Render(" · ")
		}
		line += StyleNumber.Render(fmt.Sprint(p.n)) + " " + StyleDim.Render(p.label)
		first = false
	}
	if !first {
		line += StyleDim.Render(" · ")
	}
	return line + StyleDim.Render(elapsed.Round(time.Millisecond).String())
}

// printStats prints counts on a single line.
func printStats(parts []statPart, elapsed time.Duration) {
	fmt.Println(formatStats(parts, elapsed))
}

// printSummary prints the end-of-run block: a status line, stats and the
// written files.
func printSummary(title string, warnings int, parts []statPart, elapsed time.Duration, files []string) {
	if warnings > 0 {
		printWarning("%s (%d warnings)", title, warnings)
	} else {
		printSuccess("%s", StyleTitle.Render(title))
	}
	printStats(parts, elapsed)
	for _, f := range files {
		printFile(f)
	}
}
