package command_test

import (
	"testing"

	"github.com/paqtool/paq/internal/command"
	"github.com/paqtool/paq/internal/pkg"
)

func testRecords() []*pkg.Record {
	return []*pkg.Record{
		{Name: "alpha", Description: "first", InstallState: pkg.StateInstalled},
		{Name: "beta", Description: "second", InstallState: pkg.StateNotInstalled},
		{Name: "gamma", Description: "third", InstallState: pkg.StateInstalled},
	}
}

func filteredNames(ws *command.Workspace) []string {
	out := make([]string, len(ws.Filtered))
	for i, r := range ws.Filtered {
		out[i] = r.Name
	}
	return out
}

func assertFiltered(t *testing.T, ws *command.Workspace, want ...string) {
	t.Helper()
	got := filteredNames(ws)
	if len(got) != len(want) {
		t.Fatalf("filtered = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("filtered = %v, want %v", got, want)
		}
	}
}

func TestFilterByName(t *testing.T) {
	in := command.New(nil)
	ws := command.NewWorkspace(testRecords())

	results := in.Execute(command.OpFilter, "n:a", ws)

	if len(results) != 1 || results[0].Outcome != command.OutcomeApplied {
		t.Fatalf("results = %+v", results)
	}
	assertFiltered(t, ws, "alpha", "gamma")
	if ws.FilterSummary() != "n:a" {
		t.Errorf("trail = %q, want n:a", ws.FilterSummary())
	}
	if ws.Cursor != 0 {
		t.Errorf("cursor = %d, want 0 after filter", ws.Cursor)
	}
}

func TestFilterNegated(t *testing.T) {
	in := command.New(nil)
	ws := command.NewWorkspace(testRecords())

	in.Execute(command.OpFilter, "n!:a", ws)

	assertFiltered(t, ws, "beta")
}

func TestFilterCumulative(t *testing.T) {
	in := command.New(nil)
	ws := command.NewWorkspace(testRecords())

	in.Execute(command.OpFilter, "n:a", ws)
	in.Execute(command.OpFilter, "d:third", ws)

	assertFiltered(t, ws, "gamma")
	if ws.FilterSummary() != "n:a, d:third" {
		t.Errorf("trail = %q", ws.FilterSummary())
	}
}

func TestFilterBadPatternIsSilentNoOp(t *testing.T) {
	in := command.New(nil)
	ws := command.NewWorkspace(testRecords())

	results := in.Execute(command.OpFilter, "n:[", ws)

	if results[0].Outcome != command.OutcomeBadPattern {
		t.Fatalf("outcome = %v, want bad pattern", results[0].Outcome)
	}
	assertFiltered(t, ws, "alpha", "beta", "gamma")
	if len(ws.Trail) != 0 {
		t.Error("bad pattern must not extend the filter trail")
	}
	// The raw string is still recorded in history.
	if in.History(command.OpFilter).Empty() {
		t.Error("filter history should record the attempt")
	}
}

func TestClearFilterRestoresFullCollectionSorted(t *testing.T) {
	in := command.New(nil)
	ws := command.NewWorkspace(testRecords())

	in.Execute(command.OpFilter, "n:a", ws)
	in.Execute(command.OpSort, "d", ws)
	ws.ClearFilter()

	if ws.FilterSummary() != "-" {
		t.Errorf("trail = %q, want -", ws.FilterSummary())
	}
	// Full collection again, re-sorted by the remembered attribute
	// (description: first, second, third).
	assertFiltered(t, ws, "alpha", "beta", "gamma")
	if ws.Cursor != 0 {
		t.Errorf("cursor = %d, want 0", ws.Cursor)
	}
}

func TestSortByDescription(t *testing.T) {
	in := command.New(nil)
	records := []*pkg.Record{
		{Name: "alpha", Description: "zz"},
		{Name: "beta", Description: "aa"},
	}
	ws := command.NewWorkspace(records)

	results := in.Execute(command.OpSort, "d", ws)

	if results[0].Outcome != command.OutcomeApplied {
		t.Fatalf("outcome = %v", results[0].Outcome)
	}
	assertFiltered(t, ws, "beta", "alpha")
	if ws.SortedBy != pkg.AttrDescription {
		t.Errorf("sortedBy = %v, want description", ws.SortedBy)
	}
}

func TestSortUnknownFieldNoOp(t *testing.T) {
	in := command.New(nil)
	ws := command.NewWorkspace(testRecords())

	results := in.Execute(command.OpSort, "xyz", ws)

	if results[0].Outcome != command.OutcomeUnknownField {
		t.Fatalf("outcome = %v, want unknown field", results[0].Outcome)
	}
	if ws.SortedBy != pkg.AttrName {
		t.Error("sortedBy must be unchanged")
	}
}

func TestSortFirstRecognizedCodeWins(t *testing.T) {
	in := command.New(nil)
	ws := command.NewWorkspace(testRecords())

	in.Execute(command.OpSort, "xd", ws)

	if ws.SortedBy != pkg.AttrDescription {
		t.Errorf("sortedBy = %v, want description", ws.SortedBy)
	}
}

func TestSearchMovesCursorOnly(t *testing.T) {
	in := command.New(nil)
	ws := command.NewWorkspace(testRecords())

	results := in.Execute(command.OpSearch, "n:gamma", ws)

	if results[0].Outcome != command.OutcomeApplied {
		t.Fatalf("outcome = %v", results[0].Outcome)
	}
	if ws.Cursor != 2 {
		t.Errorf("cursor = %d, want 2", ws.Cursor)
	}
	assertFiltered(t, ws, "alpha", "beta", "gamma")
}

func TestSearchNoMatchLeavesCursor(t *testing.T) {
	in := command.New(nil)
	ws := command.NewWorkspace(testRecords())
	ws.Cursor = 1

	results := in.Execute(command.OpSearch, "zzz", ws)

	if results[0].Outcome != command.OutcomeNoMatch {
		t.Fatalf("outcome = %v, want no match", results[0].Outcome)
	}
	if ws.Cursor != 1 {
		t.Errorf("cursor = %d, want unchanged 1", ws.Cursor)
	}
}

func TestColorcodeGroupsFullCollection(t *testing.T) {
	in := command.New(nil)
	ws := command.NewWorkspace(testRecords())
	in.Execute(command.OpFilter, "n:alpha", ws)

	results := in.Execute(command.OpColorcode, "s", ws)

	if results[0].Outcome != command.OutcomeApplied {
		t.Fatalf("outcome = %v", results[0].Outcome)
	}
	if ws.ColoredBy != pkg.AttrInstallState {
		t.Errorf("coloredBy = %v", ws.ColoredBy)
	}
	// Grouping covers the full collection, not just the filtered view.
	if ws.All[0].Group != ws.All[2].Group {
		t.Error("records sharing install state must share a group")
	}
	if ws.All[0].Group == ws.All[1].Group {
		t.Error("distinct install states must not share a group")
	}
}

func TestColorcodeUnknownFieldNoOp(t *testing.T) {
	in := command.New(nil)
	ws := command.NewWorkspace(testRecords())

	results := in.Execute(command.OpColorcode, "x", ws)

	if results[0].Outcome != command.OutcomeUnknownField {
		t.Fatalf("outcome = %v, want unknown field", results[0].Outcome)
	}
	if ws.ColoredBy != pkg.AttrInstallState {
		t.Error("coloredBy must be unchanged")
	}
}

func TestExecSubstitutesQueueNames(t *testing.T) {
	in := command.New(nil)
	ws := command.NewWorkspace(testRecords())
	ws.Enqueue(ws.All[0]) // alpha
	ws.Enqueue(ws.All[2]) // gamma

	results := in.Execute(command.OpExec, "foo %p", ws)

	if results[0].Outcome != command.OutcomeApplied {
		t.Fatalf("outcome = %v", results[0].Outcome)
	}
	if got := results[0].ExecCommand; got != "foo alpha gamma " {
		t.Errorf("exec command = %q, want %q", got, "foo alpha gamma ")
	}
}

func TestExecEmptyQueue(t *testing.T) {
	in := command.New(nil)
	ws := command.NewWorkspace(testRecords())

	results := in.Execute(command.OpExec, "foo %p bar", ws)

	if got := results[0].ExecCommand; got != "foo  bar" {
		t.Errorf("exec command = %q", got)
	}
}

func TestExecCustomPlaceholder(t *testing.T) {
	in := command.New(nil, command.WithPlaceholder("{}"))
	ws := command.NewWorkspace(testRecords())
	ws.Enqueue(ws.All[1])

	results := in.Execute(command.OpExec, "rm {}", ws)

	if got := results[0].ExecCommand; got != "rm beta " {
		t.Errorf("exec command = %q", got)
	}
}

func TestMacroExpansion(t *testing.T) {
	// Macro "1" filters by name, "2" sorts by description.
	in := command.New(map[string]string{
		"1": "/n:a",
		"2": ".d",
	})
	records := []*pkg.Record{
		{Name: "alpha", Description: "zz"},
		{Name: "beta", Description: "mm"},
		{Name: "gamma", Description: "aa"},
	}
	ws := command.NewWorkspace(records)

	results := in.Execute(command.OpMacro, "1,2", ws)

	if len(results) != 2 {
		t.Fatalf("got %d results, want 2: %+v", len(results), results)
	}
	if results[0].Op != command.OpFilter || results[1].Op != command.OpSort {
		t.Fatalf("ops = %v, %v", results[0].Op, results[1].Op)
	}
	// Filtered by name containing "a", then sorted by description.
	assertFiltered(t, ws, "gamma", "alpha")
}

func TestMacroNamesTrimmed(t *testing.T) {
	in := command.New(map[string]string{"go": "/n:a"})
	ws := command.NewWorkspace(testRecords())

	in.Execute(command.OpMacro, "  go  ", ws)

	assertFiltered(t, ws, "alpha", "gamma")
}

func TestMacroUnknownNameAbortsRemainder(t *testing.T) {
	in := command.New(map[string]string{"2": ".d"})
	ws := command.NewWorkspace(testRecords())

	results := in.Execute(command.OpMacro, "1,2", ws)

	if len(results) != 1 || results[0].Outcome != command.OutcomeUnknownMacro {
		t.Fatalf("results = %+v", results)
	}
	// "2" never ran.
	if ws.SortedBy != pkg.AttrName {
		t.Error("sort after unknown macro must not run")
	}
	// The raw invocation is in macro history regardless.
	if in.History(command.OpMacro).Empty() {
		t.Error("macro history should record the raw invocation")
	}
}

func TestMacroUnknownTagAbortsRemainder(t *testing.T) {
	in := command.New(map[string]string{
		"1": "#bogus",
		"2": ".d",
	})
	ws := command.NewWorkspace(testRecords())

	results := in.Execute(command.OpMacro, "1,2", ws)

	if len(results) != 1 || results[0].Outcome != command.OutcomeUnknownOp {
		t.Fatalf("results = %+v", results)
	}
	if ws.SortedBy != pkg.AttrName {
		t.Error("later macro entries must not run after an unknown tag")
	}
}

func TestMacroNested(t *testing.T) {
	in := command.New(map[string]string{
		"outer": "@inner",
		"inner": "/n:a",
		"after": ".d",
	})
	ws := command.NewWorkspace(testRecords())

	results := in.Execute(command.OpMacro, "outer,after", ws)

	// Inner filter runs before the outer list's next entry.
	if len(results) != 2 || results[0].Op != command.OpFilter || results[1].Op != command.OpSort {
		t.Fatalf("results = %+v", results)
	}
	assertFiltered(t, ws, "alpha", "gamma")
}

func TestMacroInnerFailureDoesNotAbortOuterList(t *testing.T) {
	in := command.New(map[string]string{
		"outer": "@missing",
		"after": "/n:a",
	})
	ws := command.NewWorkspace(testRecords())

	in.Execute(command.OpMacro, "outer,after", ws)

	// The inner lookup miss abandons only the inner list.
	assertFiltered(t, ws, "alpha", "gamma")
}

func TestMacroCycleHitsStepLimit(t *testing.T) {
	in := command.New(map[string]string{
		"a": "@b",
		"b": "@a",
	}, command.WithStepLimit(10))
	ws := command.NewWorkspace(testRecords())

	results := in.Execute(command.OpMacro, "a", ws)

	if len(results) == 0 {
		t.Fatal("expected a step limit result")
	}
	last := results[len(results)-1]
	if last.Outcome != command.OutcomeStepLimit {
		t.Fatalf("last outcome = %v, want step limit", last.Outcome)
	}
}

func TestEnqueueIdentity(t *testing.T) {
	ws := command.NewWorkspace(testRecords())
	r := ws.All[0]
	twin := &pkg.Record{Name: r.Name, Description: r.Description}

	if !ws.Enqueue(r) {
		t.Fatal("first enqueue should succeed")
	}
	if ws.Enqueue(r) {
		t.Error("promoting the same record twice must not add a copy")
	}
	// Queue membership is pointer identity, not value equality.
	if !ws.Enqueue(twin) {
		t.Error("a distinct record with equal attributes is a different entry")
	}
	if len(ws.Queue) != 2 {
		t.Errorf("queue length = %d, want 2", len(ws.Queue))
	}
}

func TestOpTags(t *testing.T) {
	tags := map[byte]command.Op{
		'/': command.OpFilter,
		'.': command.OpSort,
		'?': command.OpSearch,
		';': command.OpColorcode,
		'!': command.OpExec,
		'@': command.OpMacro,
	}
	for tag, want := range tags {
		got, ok := command.OpForTag(tag)
		if !ok || got != want {
			t.Errorf("OpForTag(%q) = %v, %v", tag, got, ok)
		}
		if want.Tag() != string(tag) {
			t.Errorf("%v.Tag() = %q, want %q", want, want.Tag(), string(tag))
		}
	}
	if _, ok := command.OpForTag('#'); ok {
		t.Error("unknown tag must not resolve")
	}
}
