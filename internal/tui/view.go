package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/paqtool/paq/internal/pkg"
	"github.com/paqtool/paq/internal/tui/layout"
)

// renderView creates the complete session view.
func (a App) renderView() string {
	if layout.TerminalTooSmall(a.width, a.height, a.layoutConfig.Pane) {
		prompt := a.styles.Empty.Render(
			fmt.Sprintf("terminal too small (need %dx%d)",
				a.layoutConfig.Pane.MinTerminalWidth,
				a.layoutConfig.Pane.MinTerminalHeight))
		return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, prompt)
	}

	if a.mode == ModeHelp {
		return a.renderHelpOverlay()
	}

	paneHeight := layout.CalculatePaneHeight(a.height, a.layoutConfig.Pane)
	queueVisible := len(a.ws.Queue) > 0
	paneLayout := layout.CalculatePaneWidth(a.width, queueVisible, a.layoutConfig.Pane)
	paneWidth := paneLayout.Width

	listPane := a.renderListPane(paneWidth, paneHeight)
	infoPane := a.renderInfoPane(paneWidth, paneHeight)

	var panes string
	if queueVisible {
		queuePane := a.renderQueuePane(paneWidth, paneHeight)
		panes = lipgloss.JoinHorizontal(lipgloss.Top, listPane, infoPane, queuePane)
	} else {
		panes = lipgloss.JoinHorizontal(lipgloss.Top, listPane, infoPane)
	}

	content := a.styles.App.Render(
		lipgloss.JoinVertical(lipgloss.Left, panes, a.renderStatusBar(), a.renderBottomLine()),
	)

	// Use Place to ensure exact terminal dimensions and prevent overflow
	return lipgloss.Place(a.width, a.height, lipgloss.Left, lipgloss.Top, content)
}

// renderListPane renders the filtered package list.
func (a App) renderListPane(width, height int) string {
	var content strings.Builder

	title := fmt.Sprintf("packages [%d/%d]", len(a.ws.Filtered), len(a.ws.All))
	content.WriteString(a.styles.Title.Render(title) + "\n")

	visibleHeight := layout.CalculateVisibleHeight(height, 1)
	rowWidth := layout.CalculateRowWidth(width, a.layoutConfig.Pane)

	if len(a.ws.Filtered) == 0 {
		content.WriteString(a.styles.Empty.Render("(no packages)"))
	} else {
		offset := layout.CalculateViewportOffset(a.ws.Cursor, len(a.ws.Filtered), visibleHeight)

		for i, rec := range a.ws.Filtered {
			if i < offset {
				continue
			}
			if i >= offset+visibleHeight {
				break
			}
			isFocused := a.focusedPane == PaneList && i == a.ws.Cursor
			content.WriteString(a.renderListRow(rec, isFocused, rowWidth) + "\n")
		}
	}

	if a.focusedPane == PaneList {
		return a.styles.PaneActive.
			Width(width).
			Height(height).
			Render(strings.TrimRight(content.String(), "\n"))
	}
	return a.styles.Pane.
		Width(width).
		Height(height).
		Render(strings.TrimRight(content.String(), "\n"))
}

// renderListRow renders one package row, colored by its colorcode group.
func (a App) renderListRow(rec *pkg.Record, focused bool, maxWidth int) string {
	text := rec.Name
	if rec.Version != "" {
		text += " " + rec.Version
	}

	if focused {
		line, _ := layout.TruncateText(text, maxWidth, a.layoutConfig.Text)
		// Pad to fill width for the highlight
		for layout.VisibleLength(line) < maxWidth {
			line += " "
		}
		return a.styles.RowFocused.Render(line)
	}

	styled := a.styles.GroupStyle(rec.Group).Render(text)
	return layout.TruncateANSIAware(styled, maxWidth, a.layoutConfig.Text)
}

// renderInfoPane renders all non-empty attributes of the focused record.
func (a App) renderInfoPane(width, height int) string {
	var content strings.Builder

	rowWidth := layout.CalculateRowWidth(width, a.layoutConfig.Pane)

	rec := a.ws.FocusedRecord()
	if rec == nil {
		content.WriteString(a.styles.Empty.Render("(nothing selected)"))
	} else {
		content.WriteString(a.styles.Title.Render(rec.Name) + "\n\n")
		for _, attr := range pkg.Attributes() {
			if attr == pkg.AttrName {
				continue
			}
			val := rec.GetAttr(attr)
			if val == "" {
				continue
			}
			label := a.styles.AttrLabel.Render(attr.String() + ": ")
			line, _ := layout.TruncateText(val, rowWidth-len(attr.String())-2, a.layoutConfig.Text)
			content.WriteString(label + a.styles.AttrValue.Render(line) + "\n")
		}
	}

	return a.styles.Pane.
		Width(width).
		Height(height).
		Render(strings.TrimRight(content.String(), "\n"))
}

// renderQueuePane renders the queued packages.
func (a App) renderQueuePane(width, height int) string {
	var content strings.Builder

	title := fmt.Sprintf("queue [%d]", len(a.ws.Queue))
	content.WriteString(a.styles.Title.Render(title) + "\n")

	visibleHeight := layout.CalculateVisibleHeight(height, 1)
	rowWidth := layout.CalculateRowWidth(width, a.layoutConfig.Pane)

	offset := layout.CalculateViewportOffset(a.queueCursor, len(a.ws.Queue), visibleHeight)

	for i, rec := range a.ws.Queue {
		if i < offset {
			continue
		}
		if i >= offset+visibleHeight {
			break
		}
		isFocused := a.focusedPane == PaneQueue && i == a.queueCursor
		if isFocused {
			line, _ := layout.TruncateText(rec.Name, rowWidth, a.layoutConfig.Text)
			for layout.VisibleLength(line) < rowWidth {
				line += " "
			}
			content.WriteString(a.styles.RowFocused.Render(line) + "\n")
		} else {
			line, _ := layout.TruncateText(rec.Name, rowWidth, a.layoutConfig.Text)
			content.WriteString(a.styles.Row.Render(line) + "\n")
		}
	}

	if a.focusedPane == PaneQueue {
		return a.styles.PaneActive.
			Width(width).
			Height(height).
			Render(strings.TrimRight(content.String(), "\n"))
	}
	return a.styles.Pane.
		Width(width).
		Height(height).
		Render(strings.TrimRight(content.String(), "\n"))
}

// renderStatusBar renders the persistent session summary line.
func (a App) renderStatusBar() string {
	var b strings.Builder

	b.WriteString(a.styles.StatusBar.Render("sorted by "))
	b.WriteString(a.styles.StatusField.Render(a.ws.SortedBy.String()))
	b.WriteString(a.styles.StatusBar.Render("  colored by "))
	b.WriteString(a.styles.StatusField.Render(a.ws.ColoredBy.String()))
	b.WriteString(a.styles.StatusBar.Render("  filtered by "))
	b.WriteString(a.styles.StatusField.Render(a.ws.FilterSummary()))
	if len(a.ws.Queue) > 0 {
		b.WriteString(a.styles.StatusBar.Render(fmt.Sprintf("  queued %d", len(a.ws.Queue))))
	}

	if a.messageText != "" {
		style := a.styles.Message
		if a.messageType == MessageError {
			style = a.styles.MessageError
		}
		b.WriteString("  " + style.Render(a.messageText))
	}

	return b.String()
}

// renderBottomLine renders either the active command line or key hints.
func (a App) renderBottomLine() string {
	if a.mode == ModeInput {
		return a.styles.InputTag.Render(a.input.Op.Tag()) + a.input.Field.View()
	}
	return a.renderHints(a.getContextualHints())
}

// renderHelpOverlay renders the key reference overlay.
func (a App) renderHelpOverlay() string {
	accent := lipgloss.AdaptiveColor{Light: "#4A7070", Dark: "#5F8787"}
	overlayWidth := layout.CalculateOverlayWidth(a.width, a.layoutConfig.Overlay)
	overlayStyle := lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(accent).
		Padding(1, 2).
		Width(overlayWidth)

	keyCol := a.layoutConfig.Overlay.KeyColumnWidth
	row := func(keys, desc string) string {
		for len(keys) < keyCol {
			keys += " "
		}
		return a.styles.HintKey.Render(keys) + desc + "\n"
	}

	var content strings.Builder
	content.WriteString(a.styles.Title.Render("keys") + "\n\n")
	content.WriteString(row("j/k, arrows", "move"))
	content.WriteString(row("g/G, home/end", "top / bottom"))
	content.WriteString(row("pgup/pgdn", "page"))
	content.WriteString(row("tab", "switch list/queue"))
	content.WriteString(row("right", "add to queue"))
	content.WriteString(row("left", "remove from queue"))
	content.WriteString(row("C", "clear queue"))
	content.WriteString("\n")
	content.WriteString(row("/", "filter"))
	content.WriteString(row("n, d", "filter by name / description"))
	content.WriteString(row("c", "clear filter"))
	content.WriteString(row(".", "sort"))
	content.WriteString(row("?", "search"))
	content.WriteString(row(";", "colorcode"))
	content.WriteString(row("!", "execute command"))
	content.WriteString(row("@", "run macro"))
	content.WriteString(row("0-9", "run numbered macro"))
	content.WriteString("\n")
	content.WriteString(row("y", "yank name"))
	content.WriteString(row("r", "reload"))
	content.WriteString(row("h", "this help"))
	content.WriteString(row("q", "quit"))
	content.WriteString("\n")
	content.WriteString(a.styles.Help.Render("press any key to close"))

	return lipgloss.Place(
		a.width,
		a.height,
		lipgloss.Center,
		lipgloss.Center,
		overlayStyle.Render(strings.TrimRight(content.String(), "\n")),
	)
}
