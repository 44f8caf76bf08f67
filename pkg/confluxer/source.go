package confluxer

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Source supplies corpus lines to the trainer.
type Source interface {
	// Name identifies the source in logs and errors.
	Name() string
	// Lines calls fn for every line in order and stops at the first error.
	Lines(ctx context.Context, fn func(line string) error) error
}

type fileSource struct {
	path string
}

// FileSource reads a UTF-8 text file line by line. Failures to open or read
// the file are reported as *FileAccessError.
func FileSource(path string) Source {
	return &fileSource{path: path}
}

func (s *fileSource) Name() string { return s.path }

func (s *fileSource) Lines(ctx context.Context, fn func(line string) error) error {
	file, err := os.Open(s.path)
	if err != nil {
		return &FileAccessError{Path: s.path, Err: err}
	}
	defer func(file *os.File) {
		_ = file.Close()
	}(file)

	err = scanLines(ctx, file, fn)
	if readErr, ok := err.(*scanError); ok {
		return &FileAccessError{Path: s.path, Err: readErr.err}
	}
	return err
}

type readerSource struct {
	name string
	r    io.Reader
}

// ReaderSource reads lines from an arbitrary reader. The reader is consumed
// by the first training pass.
func ReaderSource(name string, r io.Reader) Source {
	return &readerSource{name: name, r: r}
}

func (s *readerSource) Name() string { return s.name }

func (s *readerSource) Lines(ctx context.Context, fn func(line string) error) error {
	err := scanLines(ctx, s.r, fn)
	if readErr, ok := err.(*scanError); ok {
		return fmt.Errorf("could not read corpus '%s': %w", s.name, readErr.err)
	}
	return err
}

type sqlSource struct {
	db    *sql.DB
	query string
	args  []any
}

// SQLSource streams corpus lines from the first column of every row that
// query returns. NULL values are skipped.
func SQLSource(db *sql.DB, query string, args ...any) Source {
	return &sqlSource{db: db, query: query, args: args}
}

func (s *sqlSource) Name() string { return s.query }

func (s *sqlSource) Lines(ctx context.Context, fn func(line string) error) error {
	rows, err := s.db.QueryContext(ctx, s.query, s.args...)
	if err != nil {
		return fmt.Errorf("could not query corpus '%s': %w", s.query, err)
	}
	defer func(rows *sql.Rows) {
		_ = rows.Close()
	}(rows)

	for rows.Next() {
		var line sql.NullString
		if err = rows.Scan(&line); err != nil {
			return fmt.Errorf("could not scan corpus row: %w", err)
		}
		if !line.Valid {
			continue
		}
		if err = fn(line.String); err != nil {
			return err
		}
	}
	if err = rows.Err(); err != nil {
		return fmt.Errorf("could not read corpus rows: %w", err)
	}
	return nil
}

// scanError marks a failure of the underlying reader, as opposed to an error from fn.
type scanError struct {
	err error
}

func (e *scanError) Error() string { return e.err.Error() }

// scanLines reads r line by line with no limit on line length. The trailing
// "\n" or "\r\n" is removed, and a final line without a terminator is still passed to fn.
func scanLines(ctx context.Context, r io.Reader, fn func(line string) error) error {
	reader := bufio.NewReader(r)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, readErr := reader.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return &scanError{err: readErr}
		}
		if len(line) > 0 {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			if err := fn(line); err != nil {
				return err
			}
		}
		if readErr != nil {
			return nil
		}
	}
}
