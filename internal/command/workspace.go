package command

import (
	"strings"

	"github.com/paqtool/paq/internal/match"
	"github.com/paqtool/paq/internal/pkg"
)

// Workspace holds the working record collections the interpreter mutates:
// the full collection, the filtered view over it, the selection queue, the
// list cursor, the remembered sort/color attributes, and the filter trail.
// All slices hold shared record pointers; queue membership is identity.
type Workspace struct {
	All      []*pkg.Record
	Filtered []*pkg.Record
	Queue    []*pkg.Record

	Cursor    int
	SortedBy  pkg.Attribute
	ColoredBy pkg.Attribute
	Trail     []string
}

// NewWorkspace builds a workspace over the loaded records with defaults:
// filtered equals the full collection, sorted by name, colored by install
// state (grouping applied immediately).
func NewWorkspace(all []*pkg.Record) *Workspace {
	ws := &Workspace{
		All:       all,
		Filtered:  append([]*pkg.Record(nil), all...),
		SortedBy:  pkg.AttrName,
		ColoredBy: pkg.AttrInstallState,
	}
	match.ColorCode(ws.All, ws.ColoredBy)
	return ws
}

// ClearFilter restores the filtered collection to the full collection,
// re-sorted by the remembered sort attribute, with the cursor reset and the
// filter trail cleared.
func (ws *Workspace) ClearFilter() {
	ws.Filtered = append([]*pkg.Record(nil), ws.All...)
	match.SortBy(ws.Filtered, ws.SortedBy)
	ws.Trail = nil
	ws.Cursor = 0
}

// FilterSummary renders the accumulated filter trail for the status line,
// "-" when no filter is active.
func (ws *Workspace) FilterSummary() string {
	if len(ws.Trail) == 0 {
		return "-"
	}
	return strings.Join(ws.Trail, ", ")
}

// FocusedRecord returns the record under the list cursor, nil when the
// filtered collection is empty or the cursor is out of range.
func (ws *Workspace) FocusedRecord() *pkg.Record {
	if ws.Cursor < 0 || ws.Cursor >= len(ws.Filtered) {
		return nil
	}
	return ws.Filtered[ws.Cursor]
}

// ClampCursor pulls the cursor back into the filtered collection's bounds.
func (ws *Workspace) ClampCursor() {
	if ws.Cursor >= len(ws.Filtered) {
		ws.Cursor = len(ws.Filtered) - 1
	}
	if ws.Cursor < 0 {
		ws.Cursor = 0
	}
}

// Enqueue appends the record to the queue unless an identical pointer is
// already present. Reports whether the record was added.
func (ws *Workspace) Enqueue(r *pkg.Record) bool {
	if r == nil {
		return false
	}
	for _, q := range ws.Queue {
		if q == r {
			return false
		}
	}
	ws.Queue = append(ws.Queue, r)
	return true
}

// RemoveQueued deletes the queue entry at the given index.
func (ws *Workspace) RemoveQueued(i int) {
	if i < 0 || i >= len(ws.Queue) {
		return
	}
	ws.Queue = append(ws.Queue[:i], ws.Queue[i+1:]...)
}

// ClearQueue empties the queue.
func (ws *Workspace) ClearQueue() {
	ws.Queue = nil
}

// queueNames concatenates the queued record names, each followed by a single
// space, for exec placeholder substitution.
func (ws *Workspace) queueNames() string {
	var b strings.Builder
	for _, r := range ws.Queue {
		b.WriteString(r.Name)
		b.WriteByte(' ')
	}
	return b.String()
}
