package output

import (
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"licmedic/internal/scan"
)

// ReportSink accumulates the whole run and writes a Markdown summary on
// Close.
type ReportSink struct {
	path         string
	file         *os.File
	mu           sync.Mutex
	results      []scan.Result
	mode         string
	processed    int
	skipped      int
	missing      int
	errored      int
	exitCode     int
	haveFinished bool
	now          func() time.Time // test seam
}

func NewReportSink(path string) (*ReportSink, error) {
	if path == "" {
		return nil, fmt.Errorf("report path required")
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create report file: %w", err)
	}

	return &ReportSink{
		path: path,
		file: f,
		now:  time.Now,
	}, nil
}

func (s *ReportSink) Write(v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch t := v.(type) {
	case scan.Result:
		s.results = append(s.results, t)
	case Event:
		switch t.Type {
		case "run.started":
			s.mode = t.Mode
		case "run.finished":
			s.processed = t.Processed
			s.skipped = t.Skipped
			s.missing = t.Missing
			s.errored = t.Errored
			s.exitCode = t.ExitCode
			s.haveFinished = true
		}
	}
	return nil
}

func (s *ReportSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	byStatus := func(status scan.Status) []scan.Result {
		var out []scan.Result
		for _, r := range s.results {
			if r.Status == status {
				out = append(out, r)
			}
		}
		sort.Slice(out, func(i, j int) bool { return out[i].File < out[j].File })
		return out
	}

	w := s.file
	fmt.Fprintln(w, "# License Header Report")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Generated: %s\n", s.now().UTC().Format(time.RFC3339))
	if s.mode != "" {
		fmt.Fprintf(w, "Mode: %s\n", s.mode)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "## Summary")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "| Processed | Skipped | Missing | Errors |")
	fmt.Fprintln(w, "|-----------|---------|---------|--------|")
	fmt.Fprintf(w, "| %d | %d | %d | %d |\n", s.processed, s.skipped, s.missing, s.errored)
	fmt.Fprintln(w)
	if s.haveFinished {
		fmt.Fprintf(w, "Exit code: %d\n", s.exitCode)
		fmt.Fprintln(w)
	}

	sections := []struct {
		title  string
		status scan.Status
	}{
		{"Missing headers", scan.StatusMissing},
		{"Fixed files", scan.StatusFixed},
		{"Errors", scan.StatusError},
	}
	for _, sec := range sections {
		results := byStatus(sec.status)
		if len(results) == 0 {
			continue
		}
		fmt.Fprintf(w, "## %s\n", sec.title)
		fmt.Fprintln(w)
		for _, r := range results {
			if sec.status == scan.StatusError && r.Message != "" {
				fmt.Fprintf(w, "- `%s`: %s\n", r.File, r.Message)
			} else {
				fmt.Fprintf(w, "- `%s`\n", r.File)
			}
		}
		fmt.Fprintln(w)
	}

	return s.file.Close()
}
