package session

import (
	"fmt"

	"github.com/mj1618/pinwin/internal/model"
)

// Action names a window command.
type Action string

const (
	ActionFocus Action = "focus"
	ActionPin   Action = "pin"
	ActionUnpin Action = "unpin"
)

// OSQueryError reports that a whole enumeration pass failed. The Registry
// keeps its previous generation and the next pass retries.
type OSQueryError struct {
	Op  string
	Err error
}

func (e *OSQueryError) Error() string {
	return fmt.Sprintf("query %s: %v", e.Op, e.Err)
}

func (e *OSQueryError) Unwrap() error { return e.Err }

// ProcessResolutionError reports that a window's owning process could not
// be named. It never fails a pass; the record's process becomes "Unknown".
type ProcessResolutionError struct {
	PID int
	Err error
}

func (e *ProcessResolutionError) Error() string {
	return fmt.Sprintf("resolve process %d: %v", e.PID, e.Err)
}

func (e *ProcessResolutionError) Unwrap() error { return e.Err }

// CommandError reports that the OS rejected a focus, pin or unpin request.
type CommandError struct {
	Action Action
	Handle model.Handle
	Err    error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Action, e.Handle, e.Err)
}

func (e *CommandError) Unwrap() error { return e.Err }
