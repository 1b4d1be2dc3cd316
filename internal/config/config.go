package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

type Config struct {
	// MAINTAINER NOTE: If you add/change/remove config fields that affect scan
	// behavior, keep these in sync:
	// - CLI flags in internal/cli/scan.go
	// - config file fields in internal/config/file.go
	Header    Header
	Targeting Targeting
	Output    Output
	Runtime   Runtime
}

type Header struct {
	// Year is the copyright year rendered into the boilerplate (see --year).
	Year string

	// Owner is the copyright owner rendered into the boilerplate (see --owner).
	Owner string
}

type Targeting struct {
	// Root is the project root to scan under (see --root).
	// Empty means the root is derived from the executable's own location,
	// two directory levels up (the tool is expected to live in a
	// subdirectory of the project, e.g. scripts/licmedic/).
	Root string

	// Dirs lists the directory names to scan, relative to the project root
	// (see --dirs). Values may be provided as repeated flags and/or
	// comma-separated lists.
	Dirs []string

	// Extensions lists the file suffixes eligible for scanning (see --ext).
	// Entries are normalized to carry a leading dot.
	Extensions []string

	// Exclude lists relative path prefixes to skip entirely (see --exclude).
	// Prefixes use forward slashes regardless of host platform; a file is
	// excluded when its slash-normalized relative path starts with any entry.
	Exclude []string
}

type Output struct {
	// ConsoleFormat controls the human-facing console sink format (see --console-format).
	// Allowed values: text, json, ndjson.
	ConsoleFormat string

	// ConsoleFilterStatus filters console output by result status (see --console-filter-status).
	// Allowed values: OK, MISSING, FIXED, ERROR. In text format an empty
	// filter shows everything except OK; pass OK explicitly to see
	// compliant files too.
	ConsoleFilterStatus []string

	// Report writes a Markdown report to this path (see --report).
	Report string

	// Out writes structured output to this path (see --out).
	Out string

	// OutFormat selects the format for --out (see --out-format).
	// Allowed values: json, ndjson. If empty, it is inferred from the --out file extension.
	OutFormat string

	// Emit writes an additional structured event stream to stdout (see --emit).
	// Allowed values: json, ndjson.
	Emit []string

	// NoConsole suppresses the console sink (see --no-console).
	// Use with --emit/--out/--report for machine-readable output.
	NoConsole bool
}

type Runtime struct {
	// Check selects check-only mode (see --check). When false, missing
	// headers are inserted in place.
	Check bool

	// Verbose enables more detailed diagnostics (prints every scanned file).
	Verbose bool
}

func New() *Config {
	return &Config{
		Header: Header{
			Year:  "2025",
			Owner: "Karesis",
		},
		Targeting: Targeting{
			Dirs:       []string{"src", "include", "tests"},
			Extensions: []string{".c", ".h"},
		},
		Output: Output{
			ConsoleFormat: "text",
		},
	}
}

func (c *Config) Validate() error {
	// Normalize comma-delimited list inputs.
	c.Targeting.Dirs = splitCommaList(c.Targeting.Dirs)
	c.Targeting.Extensions = splitCommaList(c.Targeting.Extensions)
	c.Targeting.Exclude = splitCommaList(c.Targeting.Exclude)
	c.Output.ConsoleFilterStatus = splitCommaList(c.Output.ConsoleFilterStatus)

	// Header validation
	if strings.TrimSpace(c.Header.Year) == "" {
		return errors.New("--year must not be empty")
	}
	if strings.TrimSpace(c.Header.Owner) == "" {
		return errors.New("--owner must not be empty")
	}

	// Targeting validation
	if len(c.Targeting.Dirs) == 0 {
		return errors.New("at least one scan directory must be configured (see --dirs)")
	}
	for i, dir := range c.Targeting.Dirs {
		d := strings.Trim(filepath.ToSlash(dir), "/")
		if d == "" || d == "." {
			return fmt.Errorf("invalid scan directory %q", dir)
		}
		c.Targeting.Dirs[i] = d
	}

	if len(c.Targeting.Extensions) == 0 {
		return errors.New("at least one target extension must be configured (see --ext)")
	}
	for i, ext := range c.Targeting.Extensions {
		e := strings.TrimSpace(ext)
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		if e == "." {
			return fmt.Errorf("invalid target extension %q", ext)
		}
		c.Targeting.Extensions[i] = e
	}

	for i, prefix := range c.Targeting.Exclude {
		p := strings.TrimPrefix(filepath.ToSlash(prefix), "./")
		p = strings.TrimPrefix(p, "/")
		if p == "" {
			return fmt.Errorf("invalid exclusion prefix %q", prefix)
		}
		c.Targeting.Exclude[i] = p
	}

	// Output validation
	c.Output.ConsoleFormat = normalizeEnumValue(c.Output.ConsoleFormat)
	if c.Output.ConsoleFormat == "" {
		c.Output.ConsoleFormat = "text"
	}
	if c.Output.ConsoleFormat != "text" && c.Output.ConsoleFormat != "json" && c.Output.ConsoleFormat != "ndjson" {
		return fmt.Errorf("unsupported --console-format: %s (must be one of: text, json, ndjson)", c.Output.ConsoleFormat)
	}

	for i, st := range c.Output.ConsoleFilterStatus {
		v := strings.ToUpper(strings.TrimSpace(st))
		if v != "OK" && v != "MISSING" && v != "FIXED" && v != "ERROR" {
			return fmt.Errorf("unsupported --console-filter-status value: %s (must be one of: OK, MISSING, FIXED, ERROR)", st)
		}
		c.Output.ConsoleFilterStatus[i] = v
	}

	for _, emit := range c.Output.Emit {
		v := normalizeEnumValue(emit)
		if v == "" {
			return errors.New("--emit must be one of: json, ndjson")
		}
		if v != "json" && v != "ndjson" {
			return fmt.Errorf("unsupported --emit value: %s (must be one of: json, ndjson)", v)
		}
	}

	if c.Output.Out != "" {
		c.Output.OutFormat = normalizeEnumValue(c.Output.OutFormat)
		if c.Output.OutFormat == "" {
			ext := strings.ToLower(filepath.Ext(c.Output.Out))
			switch ext {
			case ".json":
				c.Output.OutFormat = "json"
			case ".ndjson", ".jsonl":
				c.Output.OutFormat = "ndjson"
			default:
				if ext == "" {
					return errors.New("cannot infer output format from file extension (missing extension); use --out-format")
				}
				return fmt.Errorf("cannot infer output format from file extension %q; use --out-format", ext)
			}
		} else {
			if c.Output.OutFormat != "json" && c.Output.OutFormat != "ndjson" {
				return fmt.Errorf("unsupported output format: %s", c.Output.OutFormat)
			}
		}
	}

	return nil
}

func normalizeEnumValue(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

func splitCommaList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			p := strings.TrimSpace(part)
			if p == "" {
				continue
			}
			out = append(out, p)
		}
	}
	return out
}
