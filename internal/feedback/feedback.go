// Package feedback maintains the append-only feedback log.
package feedback

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mkvl/salesdash/internal/model"
)

const (
	header     = "Timestamp,Feedback"
	timeFormat = "2006-01-02 15:04:05"
)

// ErrBlankComment is returned for comments that are empty after
// trimming whitespace.
var ErrBlankComment = errors.New("feedback comment must not be blank")

// Log is an append-only comma-delimited feedback store. Literal commas
// in comments are replaced with semicolons and newlines with spaces
// before writing, so read-back keeps exactly two columns per line.
type Log struct {
	path string
}

// NewLog creates a Log backed by the given file path.
func NewLog(path string) *Log {
	return &Log{path: path}
}

// Append records a comment with the given timestamp. The header row is
// written when the file does not exist yet; each entry is a single
// O_APPEND write.
func (l *Log) Append(at time.Time, comment string) error {
	comment = strings.TrimSpace(comment)
	if comment == "" {
		return ErrBlankComment
	}
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("failed to create feedback dir: %w", err)
	}

	entry := fmt.Sprintf("%s,%s\n", at.Format(timeFormat), Neutralize(comment))
	if _, err := os.Stat(l.path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat feedback log: %w", err)
		}
		entry = header + "\n" + entry
	}

	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open feedback log: %w", err)
	}
	_, werr := f.WriteString(entry)
	if cerr := f.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		return fmt.Errorf("failed to write feedback: %w", werr)
	}
	return nil
}

// List returns all logged entries in file order. A missing file is an
// empty log, not an error.
func (l *Log) List() ([]model.FeedbackEntry, error) {
	f, err := os.Open(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open feedback log: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			// Best-effort close on a read-only file.
			_ = cerr
		}
	}()

	var entries []model.FeedbackEntry
	scanner := bufio.NewScanner(f)
	first := true
	for scanner.Scan() {
		line := scanner.Text()
		if first {
			first = false
			if line == header {
				continue
			}
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		at, comment, ok := splitEntry(line)
		if !ok {
			continue
		}
		entries = append(entries, model.FeedbackEntry{At: at, Comment: comment})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read feedback log: %w", err)
	}
	return entries, nil
}

// Neutralize replaces characters that would break the two-column
// delimited format: commas become semicolons, newlines become spaces.
func Neutralize(comment string) string {
	comment = strings.ReplaceAll(comment, "\r\n", " ")
	comment = strings.ReplaceAll(comment, "\n", " ")
	return strings.ReplaceAll(comment, ",", ";")
}

func splitEntry(line string) (time.Time, string, bool) {
	i := strings.Index(line, ",")
	if i < 0 {
		return time.Time{}, "", false
	}
	at, err := time.ParseInLocation(timeFormat, line[:i], time.Local)
	if err != nil {
		return time.Time{}, "", false
	}
	return at, line[i+1:], true
}
