// Package repl evaluates one-line commands against a single string value.
// Query commands report a result; transform commands replace the value and
// can be undone.
package repl

import (
	"strconv"

	"go.trai.ch/zerr"

	"github.com/iw2rmb/jstext/str"
)

const defaultHistoryLimit = 100

// Config configures a Session.
type Config struct {
	// Text is the initial value.
	Text string
	// Options is passed to str.NewWithOptions.
	Options str.Options
	// HistoryLimit caps the undo stack. Zero selects the default; a negative
	// value disables undo.
	HistoryLimit int
}

// Result is the outcome of one Exec call.
type Result struct {
	Command string
	// Output is the rendered query result, or the quoted value after a
	// transform.
	Output string
	// Changed reports whether the value was replaced.
	Changed bool
	Err     error
}

// Entry is one line of session history.
type Entry struct {
	Line   string
	Result Result
}

type Session struct {
	cfg  Config
	val  *str.Value
	undo []string
	redo []string
	log  []Entry
}

func New(cfg Config) *Session {
	if cfg.HistoryLimit == 0 {
		cfg.HistoryLimit = defaultHistoryLimit
	}
	return &Session{
		cfg: cfg,
		val: str.NewWithOptions(cfg.Text, cfg.Options),
	}
}

// Value returns the current value.
func (s *Session) Value() *str.Value { return s.val.Clone() }

func (s *Session) Text() string { return s.val.String() }

// History returns the executed lines, oldest first.
func (s *Session) History() []Entry {
	out := make([]Entry, len(s.log))
	copy(out, s.log)
	return out
}

// Reset replaces the value and clears undo state. History is kept.
func (s *Session) Reset(text string) {
	s.val = str.NewWithOptions(text, s.cfg.Options)
	s.undo = nil
	s.redo = nil
}

func (s *Session) CanUndo() bool { return len(s.undo) > 0 }

func (s *Session) CanRedo() bool { return len(s.redo) > 0 }

func (s *Session) Undo() bool {
	if len(s.undo) == 0 {
		return false
	}
	i := len(s.undo) - 1
	prev := s.undo[i]
	s.undo = s.undo[:i]
	s.redo = append(s.redo, s.val.String())
	s.val = str.NewWithOptions(prev, s.cfg.Options)
	return true
}

func (s *Session) Redo() bool {
	if len(s.redo) == 0 {
		return false
	}
	i := len(s.redo) - 1
	next := s.redo[i]
	s.redo = s.redo[:i]
	s.undo = append(s.undo, s.val.String())
	s.val = str.NewWithOptions(next, s.cfg.Options)
	return true
}

func (s *Session) recordUndo(prev string) {
	limit := s.cfg.HistoryLimit
	if limit <= 0 {
		return
	}
	s.undo = append(s.undo, prev)
	if len(s.undo) > limit {
		s.undo = s.undo[len(s.undo)-limit:]
	}
	s.redo = nil
}

// Exec parses and runs one command line. Blank lines return a zero Result
// and are not recorded.
func (s *Session) Exec(line string) Result {
	fields, err := Fields(line)
	if err != nil {
		return s.record(line, Result{Err: err})
	}
	if len(fields) == 0 {
		return Result{}
	}
	res := s.run(fields[0], fields[1:])
	return s.record(line, res)
}

func (s *Session) record(line string, res Result) Result {
	s.log = append(s.log, Entry{Line: line, Result: res})
	return res
}

func (s *Session) run(name string, args []string) Result {
	res := Result{Command: name}
	switch name {
	case "undo":
		res.Changed = s.Undo()
		res.Output = strconv.Quote(s.val.String())
		return res
	case "redo":
		res.Changed = s.Redo()
		res.Output = strconv.Quote(s.val.String())
		return res
	}

	cmd, ok := commands[name]
	if !ok {
		res.Err = zerr.With(zerr.Wrap(ErrUnknownCommand, name), "command", name)
		return res
	}
	if len(args) < cmd.min || (cmd.max >= 0 && len(args) > cmd.max) {
		res.Err = zerr.With(zerr.Wrap(ErrUsage, "usage: "+usage(name, cmd)), "command", name)
		return res
	}

	if !cmd.transform {
		res.Output, res.Err = cmd.run(s.val, args)
		return res
	}

	// Transforms run on a copy so a failed command leaves the value as it was.
	prev := s.val.String()
	next := s.val.Clone()
	if _, err := cmd.run(next, args); err != nil {
		res.Err = err
		return res
	}
	if next.String() != prev {
		s.recordUndo(prev)
		s.val = next
		res.Changed = true
	}
	res.Output = strconv.Quote(s.val.String())
	return res
}

func usage(name string, cmd command) string {
	if cmd.usage == "" {
		return name
	}
	if cmd.usage[0] == '[' {
		return name + " " + cmd.usage
	}
	return cmd.usage
}
