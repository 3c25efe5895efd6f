package command

// Op identifies one of the interpreter's operations. Each op maps to a
// single-character tag recognized both as a direct hotkey and as the leading
// character of a macro command string.
type Op int

const (
	OpNone Op = iota
	OpFilter
	OpSort
	OpSearch
	OpColorcode
	OpExec
	OpMacro
)

var opTags = map[Op]string{
	OpFilter:    "/",
	OpSort:      ".",
	OpSearch:    "?",
	OpColorcode: ";",
	OpExec:      "!",
	OpMacro:     "@",
}

var tagOps = map[byte]Op{
	'/': OpFilter,
	'.': OpSort,
	'?': OpSearch,
	';': OpColorcode,
	'!': OpExec,
	'@': OpMacro,
}

// Tag returns the op's single-character tag, or "" for OpNone.
func (o Op) Tag() string {
	return opTags[o]
}

// String names the op for logs and tests.
func (o Op) String() string {
	switch o {
	case OpFilter:
		return "filter"
	case OpSort:
		return "sort"
	case OpSearch:
		return "search"
	case OpColorcode:
		return "colorcode"
	case OpExec:
		return "exec"
	case OpMacro:
		return "macro"
	default:
		return "none"
	}
}

// OpForTag resolves a tag character to its op. Returns false for
// unrecognized tags.
func OpForTag(c byte) (Op, bool) {
	op, ok := tagOps[c]
	return op, ok
}
