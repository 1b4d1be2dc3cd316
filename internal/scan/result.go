package scan

type Status string

const (
	StatusOK      Status = "OK"
	StatusMissing Status = "MISSING"
	StatusFixed   Status = "FIXED"
	StatusError   Status = "ERROR"
)

// Result is the outcome of checking one file. File is the path relative to
// the project root, forward-slash normalized.
type Result struct {
	File    string `json:"file"`
	Status  Status `json:"status"`
	Message string `json:"message,omitempty"`
}
