package sha256

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidInput is returned for arguments that cannot describe a
	// message, such as a declared length the buffer does not hold.
	ErrInvalidInput = errors.New("sha256: invalid input")

	// ErrIO matches every *IOError under errors.Is.
	ErrIO = errors.New("sha256: io error")
)

// IOError reports a failure to read the message being hashed.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("sha256: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("sha256: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// Cause lets errors.Cause reach the underlying error.
func (e *IOError) Cause() error { return e.Err }

func (e *IOError) Is(target error) bool { return target == ErrIO }
