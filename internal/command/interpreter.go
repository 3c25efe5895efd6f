// Package command interprets the single-character operator commands that
// drive the session: filter, sort, search, colorcode, exec, and macro. The
// interpreter mutates a Workspace and reports what happened through typed
// results; user-input errors stay silent at the UI but carry a reason here
// so tests can assert on why nothing changed.
package command

import (
	"strings"

	"github.com/paqtool/paq/internal/history"
	"github.com/paqtool/paq/internal/match"
	"github.com/paqtool/paq/internal/pkg"
)

// Outcome classifies what a single executed operation did.
type Outcome int

const (
	// OutcomeApplied means the operation mutated the workspace (or, for
	// exec, produced a command to run).
	OutcomeApplied Outcome = iota
	// OutcomeEmptyPhrase means the argument carried no phrase to act on.
	OutcomeEmptyPhrase
	// OutcomeBadPattern means the phrase failed to compile as a pattern;
	// the previous filtered collection is unchanged.
	OutcomeBadPattern
	// OutcomeUnknownField means no recognized attribute code was found.
	OutcomeUnknownField
	// OutcomeNoMatch means a search found no matching record anywhere.
	OutcomeNoMatch
	// OutcomeUnknownMacro means a macro name had no table entry; the rest
	// of that macro list is abandoned.
	OutcomeUnknownMacro
	// OutcomeUnknownOp means a resolved macro command started with an
	// unrecognized operator tag; the rest of that list is abandoned.
	OutcomeUnknownOp
	// OutcomeStepLimit means macro expansion hit the step cap, which
	// bounds cyclic macro tables.
	OutcomeStepLimit
)

func (o Outcome) String() string {
	switch o {
	case OutcomeApplied:
		return "applied"
	case OutcomeEmptyPhrase:
		return "empty phrase"
	case OutcomeBadPattern:
		return "bad pattern"
	case OutcomeUnknownField:
		return "unknown field"
	case OutcomeNoMatch:
		return "no match"
	case OutcomeUnknownMacro:
		return "unknown macro"
	case OutcomeUnknownOp:
		return "unknown operator"
	case OutcomeStepLimit:
		return "step limit"
	default:
		return "unknown"
	}
}

// Result records one performed operation. A single Execute call yields one
// result per operation actually run, so macros yield several.
type Result struct {
	Op      Op
	Arg     string
	Outcome Outcome

	// ExecCommand is the fully substituted command line for OpExec with
	// OutcomeApplied; the session hands it to the process runner.
	ExecCommand string
}

// DefaultStepLimit bounds the total operations one Execute call may perform
// through macro expansion. The macro table is user-written and may contain
// cycles; the limit turns those into a truncated expansion instead of a hang.
const DefaultStepLimit = 64

// Interpreter executes operator commands against a workspace. It owns the
// per-operator histories and the macro table.
type Interpreter struct {
	macros      map[string]string
	histories   map[Op]*history.Log
	placeholder string
	stepLimit   int
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithPlaceholder overrides the exec substitution token (default "%p").
func WithPlaceholder(token string) Option {
	return func(in *Interpreter) {
		if token != "" {
			in.placeholder = token
		}
	}
}

// WithStepLimit overrides the macro expansion step cap.
func WithStepLimit(n int) Option {
	return func(in *Interpreter) {
		if n > 0 {
			in.stepLimit = n
		}
	}
}

// New builds an interpreter over the given macro table.
func New(macros map[string]string, opts ...Option) *Interpreter {
	in := &Interpreter{
		macros:      macros,
		placeholder: "%p",
		stepLimit:   DefaultStepLimit,
		histories: map[Op]*history.Log{
			OpFilter:    history.New(),
			OpSort:      history.New(),
			OpSearch:    history.New(),
			OpColorcode: history.New(),
			OpExec:      history.New(),
			OpMacro:     history.New(),
		},
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// SetMacros replaces the macro table (reload path).
func (in *Interpreter) SetMacros(macros map[string]string) {
	in.macros = macros
}

// History returns the log for the given op. Histories survive reloads.
func (in *Interpreter) History(op Op) *history.Log {
	return in.histories[op]
}

// step is one pending (operator, operand) pair on the expansion work list.
type step struct {
	op  Op
	arg string
}

// Execute runs one committed command. Macro arguments expand into further
// steps processed iteratively, bounded by the step limit. Empty arguments
// are the caller's concern: the session discards an empty input buffer
// before dispatching, and macro-produced empty operands no-op per operation.
func (in *Interpreter) Execute(op Op, arg string, ws *Workspace) []Result {
	var results []Result
	work := []step{{op, arg}}

	for steps := 0; len(work) > 0; steps++ {
		if steps >= in.stepLimit {
			results = append(results, Result{Op: work[0].op, Arg: work[0].arg, Outcome: OutcomeStepLimit})
			break
		}

		s := work[0]
		work = work[1:]

		switch s.op {
		case OpFilter:
			results = append(results, in.filter(s.arg, ws))
		case OpSort:
			results = append(results, in.sort(s.arg, ws))
		case OpSearch:
			results = append(results, in.search(s.arg, ws))
		case OpColorcode:
			results = append(results, in.colorcode(s.arg, ws))
		case OpExec:
			results = append(results, in.exec(s.arg, ws))
		case OpMacro:
			expanded, res := in.expandMacro(s.arg)
			if res != nil {
				results = append(results, *res)
			}
			// Nested steps run before whatever the outer list queued.
			work = append(expanded, work...)
		}
	}

	return results
}

// expandMacro resolves a comma-separated macro name list into pending steps.
// The raw invocation enters macro history regardless of outcome. A lookup
// miss or unrecognized operator tag abandons the remainder of this list;
// steps queued by outer lists are unaffected.
func (in *Interpreter) expandMacro(arg string) ([]step, *Result) {
	in.histories[OpMacro].Add(arg)

	var pending []step
	for _, name := range strings.Split(arg, ",") {
		name = strings.TrimSpace(name)

		cmd, ok := in.macros[name]
		if !ok {
			return pending, &Result{Op: OpMacro, Arg: name, Outcome: OutcomeUnknownMacro}
		}
		if cmd == "" {
			return pending, &Result{Op: OpMacro, Arg: name, Outcome: OutcomeUnknownOp}
		}
		op, ok := OpForTag(cmd[0])
		if !ok {
			return pending, &Result{Op: OpMacro, Arg: name, Outcome: OutcomeUnknownOp}
		}
		pending = append(pending, step{op, cmd[1:]})
	}
	return pending, nil
}

func (in *Interpreter) filter(arg string, ws *Workspace) Result {
	if arg == "" {
		return Result{Op: OpFilter, Arg: arg, Outcome: OutcomeEmptyPhrase}
	}
	in.histories[OpFilter].Add(arg)

	spec, err := match.ParseFilter(arg)
	if err != nil {
		return Result{Op: OpFilter, Arg: arg, Outcome: OutcomeBadPattern}
	}
	if spec.Phrase == "" {
		return Result{Op: OpFilter, Arg: arg, Outcome: OutcomeEmptyPhrase}
	}

	ws.Filtered = match.Apply(ws.Filtered, spec)
	ws.Trail = append(ws.Trail, arg)
	ws.Cursor = 0
	return Result{Op: OpFilter, Arg: arg, Outcome: OutcomeApplied}
}

func (in *Interpreter) sort(arg string, ws *Workspace) Result {
	if arg == "" {
		return Result{Op: OpSort, Arg: arg, Outcome: OutcomeEmptyPhrase}
	}
	in.histories[OpSort].Add(arg)

	attr, ok := firstAttr(arg)
	if !ok {
		return Result{Op: OpSort, Arg: arg, Outcome: OutcomeUnknownField}
	}
	ws.SortedBy = attr
	match.SortBy(ws.Filtered, attr)
	return Result{Op: OpSort, Arg: arg, Outcome: OutcomeApplied}
}

func (in *Interpreter) search(arg string, ws *Workspace) Result {
	if arg == "" {
		return Result{Op: OpSearch, Arg: arg, Outcome: OutcomeEmptyPhrase}
	}
	in.histories[OpSearch].Add(arg)

	spec := match.ParseSearch(arg)
	if spec.Phrase == "" {
		return Result{Op: OpSearch, Arg: arg, Outcome: OutcomeEmptyPhrase}
	}

	idx, ok := match.Search(ws.Filtered, ws.Cursor, spec)
	if !ok {
		return Result{Op: OpSearch, Arg: arg, Outcome: OutcomeNoMatch}
	}
	ws.Cursor = idx
	return Result{Op: OpSearch, Arg: arg, Outcome: OutcomeApplied}
}

func (in *Interpreter) colorcode(arg string, ws *Workspace) Result {
	if arg == "" {
		return Result{Op: OpColorcode, Arg: arg, Outcome: OutcomeEmptyPhrase}
	}
	in.histories[OpColorcode].Add(arg)

	attr, ok := firstAttr(arg)
	if !ok {
		return Result{Op: OpColorcode, Arg: arg, Outcome: OutcomeUnknownField}
	}
	match.ColorCode(ws.All, attr)
	ws.ColoredBy = attr
	return Result{Op: OpColorcode, Arg: arg, Outcome: OutcomeApplied}
}

func (in *Interpreter) exec(arg string, ws *Workspace) Result {
	if arg == "" {
		return Result{Op: OpExec, Arg: arg, Outcome: OutcomeEmptyPhrase}
	}
	in.histories[OpExec].Add(arg)

	expanded := strings.ReplaceAll(arg, in.placeholder, ws.queueNames())
	return Result{Op: OpExec, Arg: arg, Outcome: OutcomeApplied, ExecCommand: expanded}
}

// firstAttr returns the first recognized attribute code in the string.
func firstAttr(s string) (pkg.Attribute, bool) {
	for i := 0; i < len(s); i++ {
		if attr, ok := pkg.AttributeForCode(s[i]); ok {
			return attr, true
		}
	}
	return 0, false
}
