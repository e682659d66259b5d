package jsonutil

import "testing"

func TestPrettyJSON(t *testing.T) {
	got := PrettyJSON(`{"a":1}`)
	want := "{\n  \"a\": 1\n}"
	if got != want {
		t.Errorf("PrettyJSON = %q, want %q", got, want)
	}

	// Invalid input comes back unchanged.
	if got := PrettyJSON("not json"); got != "not json" {
		t.Errorf("PrettyJSON on invalid input = %q", got)
	}
}

func TestMustMarshal(t *testing.T) {
	if got := MustMarshal(map[string]int{"n": 2}); got != `{"n":2}` {
		t.Errorf("MustMarshal = %q", got)
	}
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		in     string
		maxLen int
		want   string
	}{
		{"short", 10, "short"},
		{"exactly-ten", 11, "exactly-ten"},
		{"hello world", 8, "hello..."},
		{"abc", 2, "ab"},
	}
	for _, tt := range tests {
		if got := TruncateString(tt.in, tt.maxLen); got != tt.want {
			t.Errorf("TruncateString(%q, %d) = %q, want %q", tt.in, tt.maxLen, got, tt.want)
		}
	}
}
