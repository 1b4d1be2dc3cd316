package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"licmedic/internal/scan"

	"github.com/fatih/color"
)

type ConsoleSink struct {
	writer          io.Writer
	format          string // "text", "json", "ndjson"
	mu              sync.Mutex
	results         []scan.Result // For JSON array output
	allowedStatuses map[string]bool
}

// NewConsoleSink builds the human-facing sink. In text format an empty
// filter hides compliant (OK) files, matching the tool's original console
// behavior; pass an explicit filter including OK to show them.
func NewConsoleSink(w io.Writer, format string, filterStatuses []string) *ConsoleSink {
	if w == nil {
		w = os.Stdout
	}
	if format == "" {
		format = "text"
	}

	s := &ConsoleSink{
		writer: w,
		format: format,
	}

	if len(filterStatuses) == 0 && format == "text" {
		filterStatuses = []string{
			string(scan.StatusMissing),
			string(scan.StatusFixed),
			string(scan.StatusError),
		}
	}

	if len(filterStatuses) > 0 {
		s.allowedStatuses = make(map[string]bool)
		for _, st := range filterStatuses {
			s.allowedStatuses[strings.ToUpper(st)] = true
		}
	}

	return s
}

func statusSprint(status scan.Status) string {
	switch status {
	case scan.StatusMissing:
		return color.New(color.FgRed).Sprintf("[%s]", status)
	case scan.StatusFixed:
		return color.New(color.FgGreen).Sprintf("[%s]", status)
	case scan.StatusError:
		return color.New(color.FgRed, color.Bold).Sprintf("[%s]", status)
	default:
		return fmt.Sprintf("[%s]", status)
	}
}

func (s *ConsoleSink) Write(v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeLocked(v)
}

func (s *ConsoleSink) writeLocked(v any) error {
	// Apply filtering if configured
	if len(s.allowedStatuses) > 0 {
		if r, ok := v.(scan.Result); ok {
			if !s.allowedStatuses[string(r.Status)] {
				return nil
			}
		}
	}

	switch s.format {
	case "json":
		r, ok := v.(scan.Result)
		if !ok {
			// Ignore non-result events in JSON console mode.
			return nil
		}
		s.results = append(s.results, r)
		return nil
	case "ndjson":
		encoder := json.NewEncoder(s.writer)
		switch t := v.(type) {
		case Event:
			if err := encoder.Encode(t); err != nil {
				return err
			}
			return flushIfPossible(s.writer)
		case scan.Result:
			e := eventFromResult(t)
			if err := encoder.Encode(e); err != nil {
				return err
			}
			return flushIfPossible(s.writer)
		default:
			return nil
		}
	case "text":
		r, ok := v.(scan.Result)
		if !ok {
			// Ignore events in text mode.
			return nil
		}
		line := fmt.Sprintf("  %s %s", statusSprint(r.Status), r.File)
		if r.Status == scan.StatusError && r.Message != "" {
			line += fmt.Sprintf(": %s", r.Message)
		}
		if _, err := fmt.Fprintln(s.writer, line); err != nil {
			return err
		}
		return flushIfPossible(s.writer)
	default:
		return fmt.Errorf("unsupported console format: %s", s.format)
	}
}

func (s *ConsoleSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.format == "json" {
		encoder := json.NewEncoder(s.writer)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(s.results); err != nil {
			return err
		}
		return flushIfPossible(s.writer)
	}
	if s.format != "text" && s.format != "ndjson" {
		return fmt.Errorf("unsupported console format: %s", s.format)
	}
	return nil
}
