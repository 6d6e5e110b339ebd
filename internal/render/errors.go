package render

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrPermission is matched by output errors caused by a denied open or write.
var ErrPermission = errors.New("file is not readable/writeable")

// OutputError wraps a failure to open or write an output destination.
type OutputError struct {
	Dest string
	Op   string
	Err  error
}

func (e *OutputError) Error() string {
	msg := e.Err.Error()
	if errors.Is(e.Err, fs.ErrPermission) {
		msg = ErrPermission.Error()
	}
	return fmt.Sprintf("%s %q: %s", e.Op, e.Dest, msg)
}

func (e *OutputError) Unwrap() error {
	return e.Err
}

func (e *OutputError) Is(target error) bool {
	return target == ErrPermission && errors.Is(e.Err, fs.ErrPermission)
}
