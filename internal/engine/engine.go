package engine

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"unicode/utf8"

	"licmedic/internal/config"
	"licmedic/internal/header"
	"licmedic/internal/output"
	"licmedic/internal/scan"

	"github.com/fatih/color"
)

func exitCodeForRun(fatal bool, checkMode bool, missing int) int {
	// Exit code contract:
	// 0 = clean run (apply mode always exits 0, even when writes failed)
	// 1 = check mode found at least one file missing the header
	// 2 = fatal error (scan did not run)
	if fatal {
		return 2
	}
	if checkMode && missing > 0 {
		return 1
	}
	return 0
}

// Stats are the run-scoped counters reported in the final summary.
type Stats struct {
	// Processed counts files that matched a target extension and were not
	// excluded, including files that later failed to read or write.
	Processed int

	// Skipped counts files matching an exclusion prefix. Skipped files are
	// never read.
	Skipped int

	// Missing counts files found without the header. In apply mode this
	// includes files whose fix was attempted but whose write failed.
	Missing int

	// Errored counts files that could not be read or written. Read failures
	// are not counted as missing.
	Errored int
}

type Engine struct {
	stdout io.Writer
	stderr io.Writer

	// writeFile is a test seam for simulating write failures.
	writeFile func(path string, data []byte, perm os.FileMode) error
}

func NewEngine() *Engine {
	return &Engine{
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		writeFile: os.WriteFile,
	}
}

func (e *Engine) setupOutputManager(cfg *config.Config) (*output.Manager, error) {
	outMgr := output.NewManager()

	// Console Sink
	if !cfg.Output.NoConsole {
		if err := outMgr.AddSink(output.NewConsoleSink(e.stdout, cfg.Output.ConsoleFormat, cfg.Output.ConsoleFilterStatus)); err != nil {
			outMgr.Close()
			return nil, err
		}
	}

	// Emit Sinks (additional structured streams)
	for _, emit := range cfg.Output.Emit {
		es, err := output.NewEmitSink(e.stdout, emit)
		if err != nil {
			outMgr.Close()
			return nil, err
		}
		if err := outMgr.AddSink(es); err != nil {
			outMgr.Close()
			return nil, err
		}
	}

	// File Sink
	if cfg.Output.Out != "" {
		fs, err := output.NewFileSink(cfg.Output.Out, cfg.Output.OutFormat)
		if err != nil {
			outMgr.Close()
			return nil, err
		}
		if err := outMgr.AddSink(fs); err != nil {
			outMgr.Close()
			return nil, err
		}
	}

	// Report Sink
	if cfg.Output.Report != "" {
		rs, err := output.NewReportSink(cfg.Output.Report)
		if err != nil {
			outMgr.Close()
			return nil, err
		}
		if err := outMgr.AddSink(rs); err != nil {
			outMgr.Close()
			return nil, err
		}
	}

	return outMgr, nil
}

// processFile reads one non-excluded file and checks or applies the header.
// It updates the missing/errored counters and returns the per-file result
// for the output sinks.
func (e *Engine) processFile(path, rel string, bp header.Boilerplate, checkMode bool, stats *Stats) scan.Result {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(e.stderr, "  [ERROR] cannot read %s: %v\n", rel, err)
		stats.Errored++
		return scan.ErrorResult(rel, fmt.Sprintf("cannot read file: %v", err))
	}
	if !utf8.Valid(data) {
		fmt.Fprintf(e.stderr, "  [ERROR] cannot read %s: not valid UTF-8\n", rel)
		stats.Errored++
		return scan.ErrorResult(rel, "cannot read file: not valid UTF-8")
	}
	content := string(data)

	if bp.Has(content) {
		return scan.OKResult(rel)
	}

	stats.Missing++
	if checkMode {
		return scan.MissingResult(rel)
	}

	// Apply mode. A failed write still counts as missing: remediation was
	// attempted, not necessarily achieved.
	if err := e.writeFile(path, []byte(bp.Insert(content)), 0o644); err != nil {
		fmt.Fprintf(e.stderr, "  [ERROR] cannot write %s: %v\n", rel, err)
		stats.Errored++
		return scan.ErrorResult(rel, fmt.Sprintf("cannot write file: %v", err))
	}
	return scan.FixedResult(rel)
}

func (e *Engine) printSummary(checkMode bool, stats Stats) {
	red := color.New(color.FgRed)
	green := color.New(color.FgGreen)

	fmt.Fprintln(e.stdout)
	fmt.Fprintln(e.stdout, "--- Scan complete ---")
	fmt.Fprintf(e.stdout, "Files processed: %d\n", stats.Processed)
	fmt.Fprintf(e.stdout, "Files skipped:   %d\n", stats.Skipped)

	if checkMode {
		if stats.Missing > 0 {
			red.Fprintf(e.stdout, "[!!] FAILED: %d files are missing the license header.\n", stats.Missing)
		} else {
			green.Fprintln(e.stdout, "[OK] All files carry the license header.")
		}
	} else {
		if stats.Missing > 0 {
			green.Fprintf(e.stdout, "[OK] Fixed %d files.\n", stats.Missing)
		} else {
			green.Fprintln(e.stdout, "[OK] All files already carry the license header.")
		}
	}
	if stats.Errored > 0 {
		red.Fprintf(e.stdout, "[!!] %d files could not be processed.\n", stats.Errored)
	}
}

// Run executes one scan: a single sequential pass over the configured
// directories. It returns the process exit code.
func (e *Engine) Run(ctx context.Context, cfg *config.Config) int {
	checkMode := cfg.Runtime.Check
	mode := "apply"
	if checkMode {
		mode = "check"
	}

	root, err := ResolveProjectRoot(cfg.Targeting.Root)
	if err != nil {
		fmt.Fprintf(e.stderr, "Error: %v\n", err)
		return exitCodeForRun(true, checkMode, 0)
	}

	outMgr, err := e.setupOutputManager(cfg)
	if err != nil {
		fmt.Fprintf(e.stderr, "Error creating output sinks: %v\n", err)
		return exitCodeForRun(true, checkMode, 0)
	}
	defer outMgr.Close()

	_ = outMgr.Write(output.Event{Type: "run.started", Mode: mode, Dirs: len(cfg.Targeting.Dirs)})

	textConsole := !cfg.Output.NoConsole && cfg.Output.ConsoleFormat == "text"
	if textConsole {
		fmt.Fprintln(e.stdout, "--- License header scan ---")
		fmt.Fprintf(e.stdout, "Mode: %s\n", mode)
	}

	bp := header.New(cfg.Header.Year, cfg.Header.Owner)
	excluder := NewExcluder(cfg.Targeting.Exclude)
	var stats Stats

	for _, dir := range cfg.Targeting.Dirs {
		if ctx.Err() != nil {
			fmt.Fprintf(e.stderr, "Error: scan canceled: %v\n", ctx.Err())
			return exitCodeForRun(true, checkMode, stats.Missing)
		}

		searchDir := filepath.Join(root, filepath.FromSlash(dir))
		info, statErr := os.Stat(searchDir)
		if statErr != nil || !info.IsDir() {
			fmt.Fprintf(e.stderr, "[WARN] directory %q does not exist, skipping.\n", dir)
			continue
		}

		if textConsole {
			fmt.Fprintf(e.stdout, "\nScanning %s...\n", searchDir)
		}

		files, walkErr := DiscoverFiles(searchDir, cfg.Targeting.Extensions)
		if walkErr != nil {
			fmt.Fprintf(e.stderr, "Error scanning %q: %v\n", dir, walkErr)
			return exitCodeForRun(true, checkMode, stats.Missing)
		}

		found := 0
		for _, path := range files {
			rel := relSlashPath(root, path)
			if excluder.Excluded(rel) {
				stats.Skipped++
				continue
			}
			found++
			stats.Processed++
			if cfg.Runtime.Verbose {
				fmt.Fprintf(e.stderr, "checking %s\n", rel)
			}
			res := e.processFile(path, rel, bp, checkMode, &stats)
			_ = outMgr.Write(res)
		}
		if found == 0 && textConsole {
			fmt.Fprintln(e.stdout, "  (no matching files)")
		}
	}

	code := exitCodeForRun(false, checkMode, stats.Missing)
	if textConsole {
		e.printSummary(checkMode, stats)
	}
	_ = outMgr.Write(output.Event{
		Type:      "run.finished",
		Processed: stats.Processed,
		Skipped:   stats.Skipped,
		Missing:   stats.Missing,
		Errored:   stats.Errored,
		ExitCode:  code,
	})
	return code
}
