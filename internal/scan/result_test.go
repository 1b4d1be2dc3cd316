package scan

import "testing"

func TestResultHelpers(t *testing.T) {
	tests := []struct {
		name        string
		result      Result
		wantStatus  Status
		wantMessage bool
	}{
		{"ok", OKResult("src/a.c"), StatusOK, false},
		{"missing", MissingResult("src/a.c"), StatusMissing, true},
		{"fixed", FixedResult("src/a.c"), StatusFixed, true},
		{"error", ErrorResult("src/a.c", "read failed"), StatusError, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.result.File != "src/a.c" {
				t.Fatalf("File = %q, want %q", tt.result.File, "src/a.c")
			}
			if tt.result.Status != tt.wantStatus {
				t.Fatalf("Status = %q, want %q", tt.result.Status, tt.wantStatus)
			}
			if (tt.result.Message != "") != tt.wantMessage {
				t.Fatalf("Message = %q, wantMessage = %v", tt.result.Message, tt.wantMessage)
			}
		})
	}
}
