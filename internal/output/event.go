package output

import "licmedic/internal/scan"

// Event is a lifecycle record for NDJSON streaming output.
//
// In NDJSON mode, sinks emit Events (one JSON object per line), including:
// - run.started
// - file.result
// - run.finished
//
// JSON mode remains an aggregate of scan.Result values.
type Event struct {
	Type string `json:"type"`
	File string `json:"file,omitempty"`
	*scan.Result
	Mode      string `json:"mode,omitempty"`
	Dirs      int    `json:"dirs,omitempty"`
	Processed int    `json:"processed,omitempty"`
	Skipped   int    `json:"skipped,omitempty"`
	Missing   int    `json:"missing,omitempty"`
	Errored   int    `json:"errored,omitempty"`
	ExitCode  int    `json:"exit_code,omitempty"`
}

func eventFromResult(r scan.Result) Event {
	return Event{Type: "file.result", File: r.File, Result: &r}
}
