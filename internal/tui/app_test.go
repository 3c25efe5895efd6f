package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/paqtool/paq/internal/pkg"
)

func testRecords() []*pkg.Record {
	return []*pkg.Record{
		{Name: "alpha", Version: "1.0", Description: "first tool", InstallState: pkg.StateInstalled},
		{Name: "beta", Version: "2.0", Description: "second tool", InstallState: pkg.StateNotInstalled},
		{Name: "gamma", Version: "3.0", Description: "third tool", InstallState: pkg.StateInstalled},
	}
}

func newTestApp(t *testing.T) App {
	t.Helper()
	return NewApp(AppParams{Records: testRecords()})
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, a App, msg tea.Msg) App {
	t.Helper()
	m, _ := a.Update(msg)
	return m.(App)
}

func TestNewAppInitialState(t *testing.T) {
	a := newTestApp(t)

	if a.Mode() != ModeStandard {
		t.Errorf("mode = %v, want standard", a.Mode())
	}
	if a.FocusedPane() != PaneList {
		t.Errorf("focused pane = %v, want list", a.FocusedPane())
	}
	ws := a.Workspace()
	if len(ws.Filtered) != 3 {
		t.Errorf("filtered = %d records, want 3", len(ws.Filtered))
	}
	if ws.Filtered[0].Name != "alpha" {
		t.Errorf("first record = %q, want alpha (sorted by name)", ws.Filtered[0].Name)
	}
}

func TestNavigationClamps(t *testing.T) {
	a := newTestApp(t)

	a = update(t, a, keyRunes("k"))
	if a.Workspace().Cursor != 0 {
		t.Errorf("cursor after k at top = %d, want 0", a.Workspace().Cursor)
	}

	for i := 0; i < 5; i++ {
		a = update(t, a, keyRunes("j"))
	}
	if a.Workspace().Cursor != 2 {
		t.Errorf("cursor after excess j = %d, want 2", a.Workspace().Cursor)
	}
}

func TestTopAndBottom(t *testing.T) {
	a := newTestApp(t)

	a = update(t, a, keyRunes("G"))
	if a.Workspace().Cursor != 2 {
		t.Errorf("cursor after G = %d, want 2", a.Workspace().Cursor)
	}

	a = update(t, a, keyRunes("g"))
	if a.Workspace().Cursor != 0 {
		t.Errorf("cursor after g = %d, want 0", a.Workspace().Cursor)
	}
}

func TestSwitchPaneRefusedWhenQueueEmpty(t *testing.T) {
	a := newTestApp(t)

	a = update(t, a, tea.KeyMsg{Type: tea.KeyTab})
	if a.FocusedPane() != PaneList {
		t.Error("tab must not focus an empty queue")
	}
}

func TestPromoteAddsToQueueAndAdvances(t *testing.T) {
	a := newTestApp(t)

	a = update(t, a, tea.KeyMsg{Type: tea.KeyRight})

	ws := a.Workspace()
	if len(ws.Queue) != 1 || ws.Queue[0].Name != "alpha" {
		t.Fatalf("queue = %v, want [alpha]", ws.Queue)
	}
	if ws.Cursor != 1 {
		t.Errorf("cursor after promote = %d, want 1", ws.Cursor)
	}
}

func TestPromoteDeduplicates(t *testing.T) {
	a := newTestApp(t)

	a = update(t, a, tea.KeyMsg{Type: tea.KeyRight})
	a = update(t, a, keyRunes("k")) // back onto alpha
	a = update(t, a, tea.KeyMsg{Type: tea.KeyRight})

	if len(a.Workspace().Queue) != 1 {
		t.Errorf("queue = %d entries after duplicate promote, want 1", len(a.Workspace().Queue))
	}
	if got := a.Workspace().Cursor; got != 0 {
		t.Errorf("cursor after duplicate promote = %d, want 0", got)
	}
}

func TestDemoteRemovesAndFocusFallsBack(t *testing.T) {
	a := newTestApp(t)

	a = update(t, a, tea.KeyMsg{Type: tea.KeyRight})
	a = update(t, a, tea.KeyMsg{Type: tea.KeyTab})
	if a.FocusedPane() != PaneQueue {
		t.Fatal("tab should focus non-empty queue")
	}

	a = update(t, a, tea.KeyMsg{Type: tea.KeyLeft})

	if len(a.Workspace().Queue) != 0 {
		t.Errorf("queue = %d entries after demote, want 0", len(a.Workspace().Queue))
	}
	if a.FocusedPane() != PaneList {
		t.Error("focus must fall back to list when queue empties")
	}
}

func TestClearQueue(t *testing.T) {
	a := newTestApp(t)

	a = update(t, a, tea.KeyMsg{Type: tea.KeyRight})
	a = update(t, a, tea.KeyMsg{Type: tea.KeyRight})
	a = update(t, a, keyRunes("C"))

	if len(a.Workspace().Queue) != 0 {
		t.Errorf("queue = %d entries after clear, want 0", len(a.Workspace().Queue))
	}
	if a.FocusedPane() != PaneList {
		t.Error("focus should return to list")
	}
}

func TestOpKeyEntersInputMode(t *testing.T) {
	a := newTestApp(t)

	a = update(t, a, keyRunes("/"))
	if a.Mode() != ModeInput {
		t.Fatalf("mode = %v, want input", a.Mode())
	}
	if a.input.Op.Tag() != "/" {
		t.Errorf("pending op tag = %q, want /", a.input.Op.Tag())
	}
}

func TestInputEscDiscards(t *testing.T) {
	a := newTestApp(t)

	a = update(t, a, keyRunes("/"))
	a = update(t, a, keyRunes("n:alp"))
	a = update(t, a, tea.KeyMsg{Type: tea.KeyEsc})

	if a.Mode() != ModeStandard {
		t.Errorf("mode after esc = %v, want standard", a.Mode())
	}
	if len(a.Workspace().Filtered) != 3 {
		t.Error("esc must not apply the filter")
	}
}

func TestInputEnterAppliesFilter(t *testing.T) {
	a := newTestApp(t)

	a = update(t, a, keyRunes("/"))
	a = update(t, a, keyRunes("n:alp"))
	a = update(t, a, tea.KeyMsg{Type: tea.KeyEnter})

	if a.Mode() != ModeStandard {
		t.Errorf("mode after enter = %v, want standard", a.Mode())
	}
	ws := a.Workspace()
	if len(ws.Filtered) != 1 || ws.Filtered[0].Name != "alpha" {
		t.Errorf("filtered = %v, want [alpha]", ws.Filtered)
	}
}

func TestFilterShortcutPreseedsField(t *testing.T) {
	a := newTestApp(t)

	a = update(t, a, keyRunes("n"))
	if a.Mode() != ModeInput {
		t.Fatalf("mode = %v, want input", a.Mode())
	}
	if got := a.input.Field.Value(); got != "n:" {
		t.Errorf("preseeded value = %q, want n:", got)
	}

	a = update(t, a, tea.KeyMsg{Type: tea.KeyEsc})
	a = update(t, a, keyRunes("d"))
	if got := a.input.Field.Value(); got != "d:" {
		t.Errorf("preseeded value = %q, want d:", got)
	}
}

func TestClearFilterKey(t *testing.T) {
	a := newTestApp(t)

	a = update(t, a, keyRunes("/"))
	a = update(t, a, keyRunes("n:alp"))
	a = update(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	a = update(t, a, keyRunes("c"))

	if len(a.Workspace().Filtered) != 3 {
		t.Errorf("filtered = %d after clear, want 3", len(a.Workspace().Filtered))
	}
}

func TestInputHistoryBrowse(t *testing.T) {
	a := newTestApp(t)

	// Run two filters so the filter history has entries.
	a = update(t, a, keyRunes("/"))
	a = update(t, a, keyRunes("tool"))
	a = update(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	a = update(t, a, keyRunes("c"))
	a = update(t, a, keyRunes("/"))
	a = update(t, a, keyRunes("n:alp"))
	a = update(t, a, tea.KeyMsg{Type: tea.KeyEnter})

	a = update(t, a, keyRunes("/"))
	a = update(t, a, tea.KeyMsg{Type: tea.KeyUp})
	if got := a.input.Field.Value(); got != "n:alp" {
		t.Errorf("history up = %q, want n:alp", got)
	}
	a = update(t, a, tea.KeyMsg{Type: tea.KeyUp})
	if got := a.input.Field.Value(); got != "tool" {
		t.Errorf("second history up = %q, want tool", got)
	}
	a = update(t, a, tea.KeyMsg{Type: tea.KeyDown})
	if got := a.input.Field.Value(); got != "n:alp" {
		t.Errorf("history down = %q, want n:alp", got)
	}
}

func TestDigitRunsMacro(t *testing.T) {
	a := NewApp(AppParams{
		Records: testRecords(),
		Macros:  map[string]string{"1": "/n:beta"},
	})

	a = update(t, a, keyRunes("1"))

	ws := a.Workspace()
	if len(ws.Filtered) != 1 || ws.Filtered[0].Name != "beta" {
		t.Errorf("filtered after macro = %v, want [beta]", ws.Filtered)
	}
}

func TestStartupMacroRunsAtConstruct(t *testing.T) {
	a := NewApp(AppParams{
		Records: testRecords(),
		Macros:  map[string]string{"startup": ".d"},
	})

	if got := a.Workspace().SortedBy; got != pkg.AttrDescription {
		t.Errorf("sorted by = %v after startup macro, want description", got)
	}
}

func TestHelpModeAnyKeyCloses(t *testing.T) {
	a := newTestApp(t)

	a = update(t, a, keyRunes("h"))
	if a.Mode() != ModeHelp {
		t.Fatalf("mode = %v, want help", a.Mode())
	}

	a = update(t, a, keyRunes("x"))
	if a.Mode() != ModeStandard {
		t.Errorf("mode after any key = %v, want standard", a.Mode())
	}
}

func TestWindowSizeAppliesInInputMode(t *testing.T) {
	a := newTestApp(t)

	a = update(t, a, keyRunes("/"))
	a = update(t, a, tea.WindowSizeMsg{Width: 120, Height: 40})

	if a.width != 120 || a.height != 40 {
		t.Errorf("dimensions = %dx%d, want 120x40", a.width, a.height)
	}
	if a.Mode() != ModeInput {
		t.Error("resize must not leave input mode")
	}
}

type stubLoader struct {
	records []*pkg.Record
	err     error
}

func (s stubLoader) LoadAll() ([]*pkg.Record, error) {
	return s.records, s.err
}

func TestReloadResetsSession(t *testing.T) {
	fresh := []*pkg.Record{
		{Name: "delta", Version: "4.0", InstallState: pkg.StateInstalled},
	}
	a := NewApp(AppParams{
		Records: testRecords(),
		Loader:  stubLoader{records: fresh},
	})

	a = update(t, a, tea.KeyMsg{Type: tea.KeyRight}) // queue something first
	a = update(t, a, keyRunes("r"))

	ws := a.Workspace()
	if len(ws.Filtered) != 1 || ws.Filtered[0].Name != "delta" {
		t.Errorf("filtered after reload = %v, want [delta]", ws.Filtered)
	}
	if len(ws.Queue) != 0 {
		t.Error("reload must drop the queue")
	}
	if a.FocusedPane() != PaneList {
		t.Error("reload must focus the list")
	}
}

func TestReloadRereadsMacros(t *testing.T) {
	table := map[string]string{"1": "/n:alpha"}
	a := NewApp(AppParams{
		Records:     testRecords(),
		Loader:      stubLoader{records: testRecords()},
		Macros:      table,
		MacroSource: func() map[string]string { return table },
	})

	table = map[string]string{"1": "/n:beta"}
	a = update(t, a, keyRunes("r"))
	a = update(t, a, keyRunes("1"))

	ws := a.Workspace()
	if len(ws.Filtered) != 1 || ws.Filtered[0].Name != "beta" {
		t.Errorf("filtered after reloaded macro = %v, want [beta]", ws.Filtered)
	}
}

func TestReloadErrorKeepsSession(t *testing.T) {
	a := NewApp(AppParams{
		Records: testRecords(),
		Loader:  stubLoader{err: errors.New("db locked")},
	})

	a = update(t, a, keyRunes("r"))

	if len(a.Workspace().Filtered) != 3 {
		t.Error("failed reload must keep the current collection")
	}
	if a.messageType != MessageError || a.messageText == "" {
		t.Error("failed reload should surface an error message")
	}
}
