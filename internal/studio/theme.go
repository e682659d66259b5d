package studio

import "github.com/charmbracelet/lipgloss"

// ────────────────────────────────────────────────────────────
// Color Palette — GitHub Dark aesthetic
// ────────────────────────────────────────────────────────────
//
// All colors are defined here. No ad-hoc color literals anywhere.
// Designed for readability in dark terminals and long editing
// sessions.

var (
	// Base
	colorBg        = lipgloss.Color("#0d1117")
	colorBgSurface = lipgloss.Color("#1c2128")

	// Text
	colorText      = lipgloss.Color("#e6edf3")
	colorTextDim   = lipgloss.Color("#8b949e")
	colorTextMuted = lipgloss.Color("#484f58")

	// Accents
	colorBlue   = lipgloss.Color("#58a6ff")
	colorGreen  = lipgloss.Color("#3fb950")
	colorRed    = lipgloss.Color("#f85149")
	colorYellow = lipgloss.Color("#d29922")
	colorPurple = lipgloss.Color("#bc8cff")

	// Structural
	colorDivider   = lipgloss.Color("#30363d")
	colorHighlight = lipgloss.Color("#1f6feb")
)

// ────────────────────────────────────────────────────────────
// Component Styles
// ────────────────────────────────────────────────────────────

// Header bar
var (
	headerBarStyle = lipgloss.NewStyle().
			Background(colorBgSurface).
			Foreground(colorText).
			Padding(0, 1)

	headerBrandStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorBlue)

	headerSepStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted)

	headerMetaStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)
)

// Panel chrome
var (
	panelStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.Border{
			Top:    "─",
			Bottom: "",
			Left:   "",
			Right:  "",
		}).
		BorderForeground(colorDivider)

	panelActiveStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Border(lipgloss.Border{
			Top:    "─",
			Bottom: "",
			Left:   "",
			Right:  "",
		}).
		BorderForeground(colorBlue)

	panelTitleStyle = lipgloss.NewStyle().
			Foreground(colorBlue).
			Bold(true)

	panelTitleDimStyle = lipgloss.NewStyle().
				Foreground(colorTextMuted).
				Bold(true)
)

// Template list
var (
	templateItemStyle = lipgloss.NewStyle().
				Foreground(colorText)

	templateSelectedStyle = lipgloss.NewStyle().
				Background(colorHighlight).
				Foreground(colorText).
				Bold(true)

	templateBuiltinTag = lipgloss.NewStyle().
				Foreground(colorPurple)

	templateUserTag = lipgloss.NewStyle().
			Foreground(colorGreen)

	templateDimStyle = lipgloss.NewStyle().
				Foreground(colorTextDim)

	emptyStateStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted).
			Padding(1, 2)
)

// Preview pane
var (
	previewCaptionStyle = lipgloss.NewStyle().
				Bold(true).
				Padding(1, 4)

	previewPulseStyle = lipgloss.NewStyle().
				Bold(true).
				Padding(1, 4).
				Reverse(true)

	previewLabelStyle = lipgloss.NewStyle().
				Foreground(colorBlue)

	previewValueStyle = lipgloss.NewStyle().
				Foreground(colorText)

	waveformStyle = lipgloss.NewStyle().
			Foreground(colorPurple)
)

// Timeline
var (
	sceneNormalStyle = lipgloss.NewStyle().
				Foreground(colorText)

	sceneSelectedStyle = lipgloss.NewStyle().
				Background(colorHighlight).
				Foreground(colorText).
				Bold(true)

	sceneBarStyle = lipgloss.NewStyle().
			Foreground(colorBlue)

	sceneDurationStyle = lipgloss.NewStyle().
				Foreground(colorTextDim)
)

// Batch / cloud status
var (
	statusProcessingStyle = lipgloss.NewStyle().
				Foreground(colorYellow)

	statusQueuedStyle = lipgloss.NewStyle().
				Foreground(colorBlue)

	statusReadyStyle = lipgloss.NewStyle().
				Foreground(colorGreen)

	statusIdleStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted)
)

// Message log
var (
	msgInfoStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)

	msgErrorStyle = lipgloss.NewStyle().
			Foreground(colorRed)

	msgMarkerInfo = lipgloss.NewStyle().
			Foreground(colorGreen)

	msgMarkerError = lipgloss.NewStyle().
			Foreground(colorRed).
			Bold(true)
)

// Footer / status bar
var (
	statusStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorBgSurface).
			Padding(0, 1)

	hintKeyStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Bold(true)

	hintDescStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted)
)

// Save-template prompt
var (
	promptBarStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorBgSurface).
			Padding(0, 1)

	promptCursorStyle = lipgloss.NewStyle().
				Background(colorBlue).
				Foreground(colorBg)
)
