package layout

// PaneLayout holds calculated pane dimensions.
type PaneLayout struct {
	Width int
	Count int // 2 or 3 panes
}

// CalculatePaneHeight computes the content height for panes.
// Returns at least MinHeight.
func CalculatePaneHeight(terminalHeight int, cfg PaneConfig) int {
	height := terminalHeight - cfg.HeightReduction
	if height < cfg.MinHeight {
		return cfg.MinHeight
	}
	return height
}

// CalculatePaneWidth computes width for each pane based on layout.
// queueVisible: whether the queue pane is shown alongside list and info.
func CalculatePaneWidth(terminalWidth int, queueVisible bool, cfg PaneConfig) PaneLayout {
	var paneCount int
	var offset int
	var minWidth int

	if queueVisible {
		// 3-pane layout: list | info | queue
		paneCount = 3
		offset = cfg.ThreePaneWidthOffset
		minWidth = cfg.MinThreePaneWidth
	} else {
		// 2-pane layout: list | info
		paneCount = 2
		offset = cfg.TwoPaneWidthOffset
		minWidth = cfg.MinTwoPaneWidth
	}

	width := (terminalWidth - offset) / paneCount
	if width < minWidth {
		width = minWidth
	}

	return PaneLayout{
		Width: width,
		Count: paneCount,
	}
}

// CalculateRowWidth computes the width available for row content.
func CalculateRowWidth(paneWidth int, cfg PaneConfig) int {
	return paneWidth - cfg.ContentPadding
}

// CalculateVisibleHeight computes the visible row count in a pane.
func CalculateVisibleHeight(paneHeight, headerLines int) int {
	height := paneHeight - headerLines
	if height < 1 {
		return 1
	}
	return height
}

// CalculateViewportOffset calculates the scroll offset needed to keep the
// focused row visible within the viewport.
func CalculateViewportOffset(focused, total, viewportHeight int) int {
	if total <= viewportHeight {
		return 0
	}

	// Keep the focus roughly centered, but clamp to valid range
	offset := focused - viewportHeight/2
	if offset < 0 {
		offset = 0
	}

	maxOffset := total - viewportHeight
	if offset > maxOffset {
		offset = maxOffset
	}

	return offset
}

// TerminalTooSmall reports whether the terminal is below the minimum
// usable dimensions.
func TerminalTooSmall(terminalWidth, terminalHeight int, cfg PaneConfig) bool {
	return terminalWidth < cfg.MinTerminalWidth || terminalHeight < cfg.MinTerminalHeight
}
