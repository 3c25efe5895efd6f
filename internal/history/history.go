// Package history keeps per-command-kind logs of submitted argument strings
// with a browsing cursor. Logs are append-only and in-memory only.
package history

// Log is one command kind's history. The browse position sits one past the
// newest entry while not browsing; browsing walks it backward and forward
// without ever leaving the valid range.
type Log struct {
	entries []string
	pos     int
}

// New returns an empty log.
func New() *Log {
	return &Log{}
}

// Add appends an entry. A log that is not being browsed stays that way.
func (l *Log) Add(s string) {
	browsing := l.pos < len(l.entries)
	l.entries = append(l.entries, s)
	if !browsing {
		l.pos = len(l.entries)
	}
}

// Empty reports whether the log has no entries.
func (l *Log) Empty() bool {
	return len(l.entries) == 0
}

// Len returns the number of entries.
func (l *Log) Len() int {
	return len(l.entries)
}

// ResetBrowse clears the browse cursor back to "not browsing". Called every
// time input mode is entered.
func (l *Log) ResetBrowse() {
	l.pos = len(l.entries)
}

// Back moves toward older entries and returns the entry at the cursor.
// The first Back after ResetBrowse yields the newest entry. Callers must
// check Empty first; an empty log returns "".
func (l *Log) Back() string {
	if len(l.entries) == 0 {
		return ""
	}
	if l.pos > 0 {
		l.pos--
	}
	if l.pos >= len(l.entries) {
		l.pos = len(l.entries) - 1
	}
	return l.entries[l.pos]
}

// Forward moves toward newer entries and returns the entry at the cursor,
// clamped to the newest entry.
func (l *Log) Forward() string {
	if len(l.entries) == 0 {
		return ""
	}
	if l.pos < len(l.entries)-1 {
		l.pos++
	}
	if l.pos >= len(l.entries) {
		l.pos = len(l.entries) - 1
	}
	return l.entries[l.pos]
}
