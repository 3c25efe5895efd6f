package tui

import (
	"fmt"
	"os/exec"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/paqtool/paq/internal/command"
	"github.com/paqtool/paq/internal/pkg"
	"github.com/paqtool/paq/internal/tui/layout"
)

// Loader reloads the record collection, typically from the database.
type Loader interface {
	LoadAll() ([]*pkg.Record, error)
}

// StartupMacroName is looked up and run when the session starts and
// after every reload.
const StartupMacroName = "startup"

// App is the main bubbletea model for the package browser.
type App struct {
	loader      Loader
	macroSource func() map[string]string
	ws          *command.Workspace
	interp      *command.Interpreter
	shell       string

	keys         KeyMap
	styles       Styles
	layoutConfig layout.LayoutConfig

	mode        Mode
	focusedPane Pane
	queueCursor int

	input InputState

	messageText string
	messageType MessageType

	// Commands produced by the startup macro, emitted from Init.
	startupCmds []tea.Cmd

	// Window dimensions
	width  int
	height int
}

// AppParams holds parameters for creating a new App.
type AppParams struct {
	Records     []*pkg.Record            // initial collection
	Loader      Loader                   // optional, enables reload
	Macros      map[string]string        // macro table from config
	MacroSource func() map[string]string // optional, re-read on reload
	Shell       string            // shell for command execution
	Placeholder string            // queue placeholder token, e.g. "%p"
	Keys        *KeyMap           // optional, uses default if nil
	Styles      *Styles           // optional, uses default if nil
}

// execFinishedMsg reports the result of a handed-over shell command.
type execFinishedMsg struct {
	err error
}

// NewApp creates a new App with the given parameters.
func NewApp(params AppParams) App {
	keys := DefaultKeyMap()
	if params.Keys != nil {
		keys = *params.Keys
	}

	styles := DefaultStyles()
	if params.Styles != nil {
		styles = *params.Styles
	}

	shell := params.Shell
	if shell == "" {
		shell = "bash"
	}

	var opts []command.Option
	if params.Placeholder != "" {
		opts = append(opts, command.WithPlaceholder(params.Placeholder))
	}

	layoutCfg := layout.DefaultConfig()

	app := App{
		loader:       params.Loader,
		macroSource:  params.MacroSource,
		ws:           command.NewWorkspace(params.Records),
		interp:       command.New(params.Macros, opts...),
		shell:        shell,
		keys:         keys,
		styles:       styles,
		layoutConfig: layoutCfg,
		mode:         ModeStandard,
		focusedPane:  PaneList,
		input:        NewInputState(layoutCfg),
		width:        80,
		height:       24,
	}

	if cmd := app.runCommand(command.OpMacro, StartupMacroName); cmd != nil {
		app.startupCmds = append(app.startupCmds, cmd)
	}
	// A missing startup macro is not worth a message.
	app.messageText = ""
	return app
}

// Workspace exposes the session workspace for rendering and tests.
func (a App) Workspace() *command.Workspace {
	return a.ws
}

// Mode returns the current session mode.
func (a App) Mode() Mode {
	return a.mode
}

// FocusedPane returns the pane that currently has focus.
func (a App) FocusedPane() Pane {
	return a.focusedPane
}

// QueueCursor returns the selected queue index.
func (a App) QueueCursor() int {
	return a.queueCursor
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	if len(a.startupCmds) == 0 {
		return nil
	}
	return tea.Sequence(a.startupCmds...)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Resize applies in every mode.
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case execFinishedMsg:
		if msg.err != nil {
			a.setMessage(MessageError, "command failed: "+msg.err.Error())
		}
		return a, nil

	case tea.KeyMsg:
		switch a.mode {
		case ModeHelp:
			a.mode = ModeStandard
			return a, nil
		case ModeInput:
			return a.updateInput(msg)
		default:
			return a.updateStandard(msg)
		}
	}

	return a, nil
}

// updateStandard handles keys in browse mode.
func (a App) updateStandard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a.messageText = ""

	// Digit keys invoke the macro of the same name.
	if s := msg.String(); len(s) == 1 && s[0] >= '0' && s[0] <= '9' {
		return a, a.runCommand(command.OpMacro, s)
	}

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.Help):
		a.mode = ModeHelp

	case key.Matches(msg, a.keys.Down):
		a.moveCursor(1)

	case key.Matches(msg, a.keys.Up):
		a.moveCursor(-1)

	case key.Matches(msg, a.keys.Top):
		a.moveCursorTo(0)

	case key.Matches(msg, a.keys.Bottom):
		a.moveCursorTo(a.focusedLen() - 1)

	case key.Matches(msg, a.keys.PageDown):
		a.moveCursor(a.pageSize())

	case key.Matches(msg, a.keys.PageUp):
		a.moveCursor(-a.pageSize())

	case key.Matches(msg, a.keys.SwitchPane):
		// The queue pane cannot take focus while empty.
		if a.focusedPane == PaneList {
			if len(a.ws.Queue) > 0 {
				a.focusedPane = PaneQueue
				a.clampQueueCursor()
			}
		} else {
			a.focusedPane = PaneList
		}

	case key.Matches(msg, a.keys.Promote):
		if a.focusedPane == PaneList {
			if rec := a.ws.FocusedRecord(); rec != nil {
				// An already-queued record leaves the selection in place.
				if a.ws.Enqueue(rec) {
					a.queueCursor = len(a.ws.Queue) - 1
					if a.ws.Cursor < len(a.ws.Filtered)-1 {
						a.ws.Cursor++
					}
				}
			}
		}

	case key.Matches(msg, a.keys.Demote):
		if a.focusedPane == PaneQueue && len(a.ws.Queue) > 0 {
			a.ws.RemoveQueued(a.queueCursor)
			a.clampQueueCursor()
			if len(a.ws.Queue) == 0 {
				a.focusedPane = PaneList
			}
		}

	case key.Matches(msg, a.keys.ClearQueue):
		a.ws.ClearQueue()
		a.queueCursor = 0
		a.focusedPane = PaneList

	case key.Matches(msg, a.keys.ClearFilter):
		a.ws.ClearFilter()

	case key.Matches(msg, a.keys.Reload):
		return a.reload()

	case key.Matches(msg, a.keys.Yank):
		if rec := a.ws.FocusedRecord(); rec != nil {
			if err := clipboard.WriteAll(rec.Name); err != nil {
				a.setMessage(MessageError, "yank failed: "+err.Error())
			} else {
				a.setMessage(MessageInfo, "yanked "+rec.Name)
			}
		}

	case key.Matches(msg, a.keys.FilterName):
		a.beginInput(command.OpFilter, "n:")

	case key.Matches(msg, a.keys.FilterDesc):
		a.beginInput(command.OpFilter, "d:")

	case key.Matches(msg, a.keys.Filter):
		a.beginInput(command.OpFilter, "")

	case key.Matches(msg, a.keys.Sort):
		a.beginInput(command.OpSort, "")

	case key.Matches(msg, a.keys.Search):
		a.beginInput(command.OpSearch, "")

	case key.Matches(msg, a.keys.Colorcode):
		a.beginInput(command.OpColorcode, "")

	case key.Matches(msg, a.keys.Exec):
		a.beginInput(command.OpExec, "")

	case key.Matches(msg, a.keys.Macro):
		a.beginInput(command.OpMacro, "")
	}

	return a, nil
}

// updateInput handles keys while the command line is active.
func (a App) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		a.input.End()
		a.mode = ModeStandard
		return a, nil

	case tea.KeyEnter:
		op := a.input.Op
		arg := a.input.Field.Value()
		a.input.End()
		a.mode = ModeStandard
		// An empty commit is a discard, same as escape.
		if arg == "" {
			return a, nil
		}
		return a, a.runCommand(op, arg)

	case tea.KeyUp:
		if hist := a.interp.History(a.input.Op); hist != nil && !hist.Empty() {
			a.input.Field.SetValue(hist.Back())
			a.input.Field.CursorEnd()
		}
		return a, nil

	case tea.KeyDown:
		if hist := a.interp.History(a.input.Op); hist != nil && !hist.Empty() {
			a.input.Field.SetValue(hist.Forward())
			a.input.Field.CursorEnd()
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.input.Field, cmd = a.input.Field.Update(msg)
	return a, cmd
}

// beginInput switches to input mode for the given operation.
func (a *App) beginInput(op command.Op, seed string) {
	if hist := a.interp.History(op); hist != nil {
		hist.ResetBrowse()
	}
	a.input.Begin(op, seed)
	a.mode = ModeInput
}

// runCommand executes an operation against the workspace and turns any
// produced shell commands into terminal handover cmds.
func (a *App) runCommand(op command.Op, arg string) tea.Cmd {
	results := a.interp.Execute(op, arg, a.ws)

	var execCmds []tea.Cmd
	for _, res := range results {
		if res.Outcome != command.OutcomeApplied {
			a.setMessage(MessageError, fmt.Sprintf("%s: %s", res.Op, res.Outcome))
			continue
		}
		if res.Op == command.OpExec && res.ExecCommand != "" {
			execCmds = append(execCmds, a.handoverCmd(res.ExecCommand))
		}
	}

	a.clampQueueCursor()

	if len(execCmds) == 0 {
		return nil
	}
	if len(execCmds) == 1 {
		return execCmds[0]
	}
	return tea.Sequence(execCmds...)
}

// handoverCmd suspends the TUI and runs the command in an interactive shell.
func (a App) handoverCmd(cmdline string) tea.Cmd {
	c := exec.Command(a.shell, "-ic", cmdline)
	return tea.ExecProcess(c, func(err error) tea.Msg {
		return execFinishedMsg{err: err}
	})
}

// reload replaces the collection from the loader and resets session state.
func (a App) reload() (tea.Model, tea.Cmd) {
	if a.loader == nil {
		a.setMessage(MessageError, "reload unavailable")
		return a, nil
	}

	records, err := a.loader.LoadAll()
	if err != nil {
		a.setMessage(MessageError, "reload failed: "+err.Error())
		return a, nil
	}

	a.ws = command.NewWorkspace(records)
	a.queueCursor = 0
	a.focusedPane = PaneList
	a.mode = ModeStandard

	if a.macroSource != nil {
		a.interp.SetMacros(a.macroSource())
	}
	cmd := a.runCommand(command.OpMacro, StartupMacroName)
	a.messageText = ""
	a.setMessage(MessageInfo, fmt.Sprintf("reloaded %d packages", len(records)))
	return a, cmd
}

func (a *App) setMessage(t MessageType, text string) {
	a.messageType = t
	a.messageText = text
}

// focusedLen returns the row count of the focused pane.
func (a App) focusedLen() int {
	if a.focusedPane == PaneQueue {
		return len(a.ws.Queue)
	}
	return len(a.ws.Filtered)
}

// moveCursor moves the focused pane cursor by delta, clamped.
func (a *App) moveCursor(delta int) {
	a.moveCursorTo(a.cursorPos() + delta)
}

func (a *App) moveCursorTo(pos int) {
	max := a.focusedLen() - 1
	if pos > max {
		pos = max
	}
	if pos < 0 {
		pos = 0
	}
	if a.focusedPane == PaneQueue {
		a.queueCursor = pos
	} else {
		a.ws.Cursor = pos
	}
}

func (a App) cursorPos() int {
	if a.focusedPane == PaneQueue {
		return a.queueCursor
	}
	return a.ws.Cursor
}

func (a *App) clampQueueCursor() {
	if a.queueCursor >= len(a.ws.Queue) {
		a.queueCursor = len(a.ws.Queue) - 1
	}
	if a.queueCursor < 0 {
		a.queueCursor = 0
	}
}

// pageSize returns the number of rows a page movement spans.
func (a App) pageSize() int {
	paneHeight := layout.CalculatePaneHeight(a.height, a.layoutConfig.Pane)
	return layout.CalculateVisibleHeight(paneHeight, 1)
}

// View implements tea.Model.
func (a App) View() string {
	return a.renderView()
}
