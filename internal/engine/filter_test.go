package engine

import "testing"

func TestExcluder(t *testing.T) {
	e := NewExcluder([]string{"src/vendor.c", "src/third_party/", "include/generated"})

	tests := []struct {
		rel  string
		want bool
	}{
		{"src/vendor.c", true},
		{"src/third_party/lib.c", true},
		{"src/third_party/nested/deep.h", true},
		{"include/generated/version.h", true},
		{"include/generated.h", true}, // prefix match, not path-segment match
		{"src/a.c", false},
		{"src/vendor.h", false},
		{"tests/src/vendor.c", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.rel, func(t *testing.T) {
			if got := e.Excluded(tt.rel); got != tt.want {
				t.Fatalf("Excluded(%q) = %v, want %v", tt.rel, got, tt.want)
			}
		})
	}
}

func TestExcluder_Empty(t *testing.T) {
	e := NewExcluder(nil)
	if e.Excluded("src/a.c") {
		t.Fatal("empty excluder should exclude nothing")
	}
}
