package confluxer

import (
	"errors"
	"fmt"
)

var (
	// ErrFileAccess matches every *FileAccessError through errors.Is.
	ErrFileAccess = errors.New("corpus file access failed")
	// ErrEmptyCorpus is returned by generation when training recorded no start prefixes.
	ErrEmptyCorpus = errors.New("confluxer has no start prefixes; corpus is empty")
)

// FileAccessError reports a corpus file that could not be opened or read.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("could not read corpus file '%s': %v", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error { return e.Err }

// Is reports true for ErrFileAccess so callers do not need errors.As for a simple check.
func (e *FileAccessError) Is(target error) bool {
	return target == ErrFileAccess
}
