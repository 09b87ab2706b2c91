package editor

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("editor: aborted")
	// ErrNoParts is returned when a content type attaches nothing editable.
	ErrNoParts = errors.New("editor: content type has no parts")
)
