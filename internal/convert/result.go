package convert

import "time"

type Status string

const (
	StatusOK      Status = "OK"
	StatusSkipped Status = "SKIPPED"
	StatusError   Status = "ERROR"
)

// Result records the outcome of converting a single source file.
type Result struct {
	Source    string        `json:"source"`
	Output    string        `json:"output,omitempty"`
	Converter string        `json:"converter,omitempty"`
	Status    Status        `json:"status"`
	Message   string        `json:"message,omitempty"`
	Bytes     int           `json:"bytes,omitempty"`
	Duration  time.Duration `json:"duration_ns,omitempty"`
}
