package repl

import "go.trai.ch/zerr"

var (
	// ErrUnknownCommand is returned for a command name with no entry.
	ErrUnknownCommand = zerr.New("unknown command")
	// ErrUsage is returned when arguments do not fit the command.
	ErrUsage = zerr.New("bad arguments")
)
