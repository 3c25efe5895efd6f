package tui

import "strings"

// Hint represents a single keybind hint for display.
type Hint struct {
	Key  string // Display key (e.g., "j/k", "Enter")
	Desc string // Short description (e.g., "move", "queue")
}

// renderHint renders a single hint as "key:desc" with styling.
func (a App) renderHint(h Hint) string {
	return a.styles.HintKey.Render(h.Key) + ":" + a.styles.HintDesc.Render(h.Desc)
}

// renderHints renders hints in horizontal format: "j/k:move tab:pane /:filter"
func (a App) renderHints(hints []Hint) string {
	if len(hints) == 0 {
		return ""
	}

	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = a.renderHint(h)
	}
	return strings.Join(parts, " ")
}

// getContextualHints returns the appropriate hints for the current mode.
func (a App) getContextualHints() []Hint {
	switch a.mode {
	case ModeStandard:
		if a.focusedPane == PaneQueue {
			return []Hint{
				{Key: "j/k", Desc: "move"},
				{Key: "left", Desc: "remove"},
				{Key: "tab", Desc: "list"},
				{Key: "C", Desc: "clear"},
				{Key: "h", Desc: "help"},
				{Key: "q", Desc: "quit"},
			}
		}
		return []Hint{
			{Key: "j/k", Desc: "move"},
			{Key: "right", Desc: "queue"},
			{Key: "/", Desc: "filter"},
			{Key: "?", Desc: "search"},
			{Key: "h", Desc: "help"},
			{Key: "q", Desc: "quit"},
		}
	case ModeInput:
		return []Hint{
			{Key: "Enter", Desc: "run"},
			{Key: "up/down", Desc: "history"},
			{Key: "Esc", Desc: "cancel"},
		}
	case ModeHelp:
		return []Hint{
			{Key: "any key", Desc: "close"},
		}
	default:
		return nil
	}
}
