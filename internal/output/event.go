package output

import "mdpress/internal/convert"

// Event is a lifecycle record for NDJSON streaming output.
//
// In NDJSON mode, sinks emit Events (one JSON object per line), including:
// - run.started
// - file.started
// - file.result
// - file.finished
// - run.finished
//
// JSON mode remains an aggregate of convert.Result values.
type Event struct {
	Type   string `json:"type"`
	Source string `json:"source,omitempty"`
	*convert.Result
	Files      int `json:"files,omitempty"`
	Converters int `json:"converters,omitempty"`
	ExitCode   int `json:"exit_code,omitempty"`
}

func eventFromResult(r convert.Result) Event {
	return Event{Type: "file.result", Source: r.Source, Result: &r}
}
