package tasks

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func date(t *testing.T, s string) *time.Time {
	t.Helper()
	d, err := time.Parse(DateFormat, s)
	if err != nil {
		t.Fatal(err)
	}
	return &d
}

func sameTask(a, b Task) bool {
	if a.ID != b.ID || a.Title != b.Title || a.Priority != b.Priority || a.Done != b.Done {
		return false
	}
	if (a.Due == nil) != (b.Due == nil) {
		return false
	}
	if a.Due != nil && !a.Due.Equal(*b.Due) {
		return false
	}
	if len(a.Tags) != len(b.Tags) {
		return false
	}
	for i := range a.Tags {
		if a.Tags[i] != b.Tags[i] {
			return false
		}
	}
	return true
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		task Task
	}{
		{"plain", Task{ID: 1, Title: "Buy milk", Priority: PriorityMedium}},
		{"all fields", Task{ID: 7, Title: "Ship release", Due: date(t, "2026-09-01"), Priority: PriorityHigh, Done: true, Tags: []string{"work", "release"}}},
		{"tab in title", Task{ID: 2, Title: "before\tafter", Priority: PriorityLow}},
		{"newline in title", Task{ID: 3, Title: "line one\nline two", Priority: PriorityMedium}},
		{"backslash in title", Task{ID: 4, Title: `C:\temp\file`, Priority: PriorityMedium}},
		{"adjacent escapes", Task{ID: 5, Title: "\\\t\n\\", Priority: PriorityHigh}},
		{"comma in title", Task{ID: 6, Title: "eggs, bread, butter", Priority: PriorityMedium}},
		{"special chars in tags", Task{ID: 8, Title: "t", Priority: PriorityMedium, Tags: []string{"a\tb", "c\nd", `e\f`}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := EncodeLine(tt.task)
			if strings.Contains(line, "\n") {
				t.Fatalf("encoded line contains a raw newline: %q", line)
			}
			got, err := DecodeLine(line)
			if err != nil {
				t.Fatalf("DecodeLine(%q): %v", line, err)
			}
			if !sameTask(got, tt.task) {
				t.Errorf("round trip: got %+v, want %+v", got, tt.task)
			}
		})
	}
}

func TestEncodeLineFields(t *testing.T) {
	task := Task{ID: 12, Title: "a\tb", Due: date(t, "2026-01-15"), Priority: PriorityHigh, Done: true, Tags: []string{"x", "y"}}
	got := EncodeLine(task)
	want := "12\t1\tHIGH\t2026-01-15\ta\\tb\tx,y"
	if got != want {
		t.Errorf("EncodeLine = %q, want %q", got, want)
	}
}

func TestDecodeLineShortLinePadded(t *testing.T) {
	// Only id and done present; the rest defaults from empty fields,
	// except priority which must be a known name.
	_, err := DecodeLine("3\t1")
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("expected *FormatError for empty priority, got %v", err)
	}
	if fe.Field != "priority" {
		t.Errorf("Field = %q, want %q", fe.Field, "priority")
	}
}

func TestDecodeLineErrors(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		field string
	}{
		{"non-numeric id", "abc\t0\tLOW\t\ttitle\t", "id"},
		{"empty line", "", "id"},
		{"unknown priority", "1\t0\tURGENT\t\ttitle\t", "priority"},
		{"lowercase priority", "1\t0\tlow\t\ttitle\t", "priority"},
		{"malformed date", "1\t0\tLOW\t2026-13-99\ttitle\t", "due"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeLine(tt.line)
			var fe *FormatError
			if !errors.As(err, &fe) {
				t.Fatalf("expected *FormatError, got %v", err)
			}
			if fe.Field != tt.field {
				t.Errorf("Field = %q, want %q", fe.Field, tt.field)
			}
		})
	}
}

func TestDecodeDoneFlag(t *testing.T) {
	for line, want := range map[string]bool{
		"1\t1\tLOW\t\tt\t":    true,
		"1\t0\tLOW\t\tt\t":    false,
		"1\ttrue\tLOW\t\tt\t": false, // anything but "1" is not done
		"1\t\tLOW\t\tt\t":     false,
	} {
		got, err := DecodeLine(line)
		if err != nil {
			t.Fatalf("DecodeLine(%q): %v", line, err)
		}
		if got.Done != want {
			t.Errorf("DecodeLine(%q).Done = %v, want %v", line, got.Done, want)
		}
	}
}

func TestDecodeTagsTrimmedAndDeduped(t *testing.T) {
	got, err := DecodeLine("1\t0\tLOW\t\tt\t a , b ,, a ,c")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"a", "b", "c"}
	if len(got.Tags) != len(want) {
		t.Fatalf("Tags = %v, want %v", got.Tags, want)
	}
	for i := range want {
		if got.Tags[i] != want[i] {
			t.Fatalf("Tags = %v, want %v", got.Tags, want)
		}
	}
}

func TestUnescapeField(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{`a\tb`, "a\tb"},
		{`a\nb`, "a\nb"},
		{`a\\b`, `a\b`},
		{`\\\t`, "\\\t"},   // adjacent escape sequences
		{`\x`, "x"},        // unknown escape drops the backslash
		{`trailing\`, "trailing"}, // unmatched trailing backslash dropped
		{"", ""},
	}
	for _, tt := range tests {
		if got := unescapeField(tt.in); got != tt.want {
			t.Errorf("unescapeField(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSplitRecordEscapedTab(t *testing.T) {
	// The escaped tab must stay inside the title field.
	parts := splitRecord("1\t0\tLOW\t\ta\\\tb\ttag", recordFields)
	if len(parts) != recordFields {
		t.Fatalf("got %d fields, want %d", len(parts), recordFields)
	}
	if parts[4] != "a\\\tb" {
		t.Errorf("title field = %q, want %q", parts[4], "a\\\tb")
	}
	if parts[5] != "tag" {
		t.Errorf("tags field = %q, want %q", parts[5], "tag")
	}
}
