package layout

// LayoutConfig holds all layout-related configuration values.
type LayoutConfig struct {
	Pane    PaneConfig
	Overlay OverlayConfig
	Input   InputConfig
	Text    TextConfig
}

// PaneConfig holds pane dimension configuration.
type PaneConfig struct {
	// HeightReduction is subtracted from terminal height for pane content.
	// Accounts for: pane borders (2) + status bar (1) + input line (1) = 4
	HeightReduction int

	// MinHeight is the minimum pane height.
	MinHeight int

	// TwoPaneWidthOffset is subtracted before dividing by 2.
	// Accounts for borders and spacing between list and info panes.
	TwoPaneWidthOffset int

	// ThreePaneWidthOffset is subtracted before dividing by 3.
	// Accounts for borders and spacing when the queue pane is shown.
	ThreePaneWidthOffset int

	// MinTwoPaneWidth is the minimum width for each pane in 2-pane layout.
	MinTwoPaneWidth int

	// MinThreePaneWidth is the minimum width for each pane in 3-pane layout.
	MinThreePaneWidth int

	// ContentPadding is subtracted from pane width for row rendering.
	// Accounts for pane border/padding on each side.
	ContentPadding int

	// MinTerminalWidth and MinTerminalHeight gate rendering entirely.
	// Below these the view shows a resize prompt instead of panes.
	MinTerminalWidth  int
	MinTerminalHeight int
}

// OverlayConfig holds help overlay configuration.
type OverlayConfig struct {
	// WidthPercent is the overlay width as percentage of terminal width.
	WidthPercent int

	// MinWidth is the minimum overlay width in characters.
	MinWidth int

	// MaxWidth is the maximum overlay width in characters.
	MaxWidth int

	// KeyColumnWidth is the width reserved for key names in the help table.
	KeyColumnWidth int
}

// InputConfig holds command line input configuration.
type InputConfig struct {
	// CharLimit caps the length of a typed command argument.
	CharLimit int

	// Width is the display width of the input field.
	Width int
}

// TextConfig holds text truncation configuration.
type TextConfig struct {
	// Ellipsis is the string used to indicate truncation.
	Ellipsis string
}

// DefaultConfig returns the default layout configuration.
func DefaultConfig() LayoutConfig {
	return LayoutConfig{
		Pane: PaneConfig{
			HeightReduction:      4, // pane borders (2) + status bar (1) + input line (1)
			MinHeight:            5,
			TwoPaneWidthOffset:   6,
			ThreePaneWidthOffset: 8,
			MinTwoPaneWidth:      24,
			MinThreePaneWidth:    18,
			ContentPadding:       4,
			MinTerminalWidth:     60,
			MinTerminalHeight:    12,
		},
		Overlay: OverlayConfig{
			WidthPercent:   50,
			MinWidth:       44,
			MaxWidth:       72,
			KeyColumnWidth: 14,
		},
		Input: InputConfig{
			CharLimit: 200,
			Width:     60,
		},
		Text: TextConfig{
			Ellipsis: "...",
		},
	}
}
