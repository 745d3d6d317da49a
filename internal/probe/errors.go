package probe

import (
	"errors"
	"fmt"
)

// ErrInputUnavailable marks an input file that could not be read before
// ffprobe was even invoked. Checking up front keeps the error message about
// the file rather than about a failed subprocess.
var ErrInputUnavailable = errors.New("input file is not readable")

// ErrProbeFailed marks a non-zero ffprobe exit.
var ErrProbeFailed = errors.New("ffprobe exited with an error")

// ParseError reports a stream record that is missing or has an unparsable
// mandatory field. It is fatal for the whole probe: the planner cannot make
// decisions over an incomplete track.
type ParseError struct {
	Field string // the missing/unparsable key, e.g. "index"
	Line  string // the offending record
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("probe record has no usable %s field: %q", e.Field, e.Line)
}
