package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds all lipgloss styles for the TUI.
type Styles struct {
	App          lipgloss.Style
	Pane         lipgloss.Style
	PaneActive   lipgloss.Style
	Title        lipgloss.Style
	Row          lipgloss.Style
	RowFocused   lipgloss.Style
	AttrLabel    lipgloss.Style
	AttrValue    lipgloss.Style
	StatusBar    lipgloss.Style
	StatusField  lipgloss.Style
	InputTag     lipgloss.Style
	Message      lipgloss.Style
	MessageError lipgloss.Style
	Help         lipgloss.Style
	Empty        lipgloss.Style
	HintKey      lipgloss.Style
	HintDesc     lipgloss.Style

	// Groups colors rows by colorcode group. Group N wears Groups[N % len].
	Groups []lipgloss.Style
}

// DefaultStyles returns the default style configuration.
// Industrial design: grayscale with single desaturated teal accent.
func DefaultStyles() Styles {
	primary := lipgloss.AdaptiveColor{Light: "#505050", Dark: "#A0A0A0"} // main text
	subtle := lipgloss.AdaptiveColor{Light: "#888888", Dark: "#606060"}  // secondary text
	accent := lipgloss.AdaptiveColor{Light: "#4A7070", Dark: "#5F8787"}  // desaturated teal
	border := lipgloss.AdaptiveColor{Light: "#888888", Dark: "#505050"}  // inactive borders
	errCol := lipgloss.AdaptiveColor{Light: "#CC3333", Dark: "#FF6666"}

	groupColors := []lipgloss.AdaptiveColor{
		{Light: "#4A7070", Dark: "#5F8787"}, // teal
		{Light: "#8E6B23", Dark: "#CDA632"}, // ochre
		{Light: "#6B8E23", Dark: "#9ACD32"}, // olive
		{Light: "#70558E", Dark: "#9A7FCD"}, // violet
		{Light: "#8E5555", Dark: "#CD7F7F"}, // dull red
		{Light: "#55708E", Dark: "#7F9ACD"}, // steel blue
	}

	groups := make([]lipgloss.Style, len(groupColors))
	for i, c := range groupColors {
		groups[i] = lipgloss.NewStyle().Foreground(c)
	}

	return Styles{
		App: lipgloss.NewStyle().
			PaddingLeft(1).
			PaddingRight(1),

		Pane: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(border).
			Padding(0, 1),

		PaneActive: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(accent).
			Padding(0, 1),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),

		Row: lipgloss.NewStyle().
			Foreground(primary),

		RowFocused: lipgloss.NewStyle().
			Background(accent).
			Foreground(lipgloss.Color("#1A1A1A")),

		AttrLabel: lipgloss.NewStyle().
			Foreground(subtle),

		AttrValue: lipgloss.NewStyle().
			Foreground(primary),

		StatusBar: lipgloss.NewStyle().
			Foreground(subtle),

		StatusField: lipgloss.NewStyle().
			Foreground(primary),

		InputTag: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),

		Message: lipgloss.NewStyle().
			Foreground(accent),

		MessageError: lipgloss.NewStyle().
			Bold(true).
			Foreground(errCol),

		Help: lipgloss.NewStyle().
			Foreground(subtle).
			Padding(1, 0),

		Empty: lipgloss.NewStyle().
			Foreground(subtle),

		HintKey: lipgloss.NewStyle().
			Foreground(subtle),

		HintDesc: lipgloss.NewStyle().
			Foreground(subtle),

		Groups: groups,
	}
}

// GroupStyle returns the style for a colorcode group index.
func (s Styles) GroupStyle(group int) lipgloss.Style {
	if len(s.Groups) == 0 || group < 0 {
		return s.Row
	}
	return s.Groups[group%len(s.Groups)]
}
