package tasks

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// One record per line, six tab-separated fields:
//
//	id \t done \t priority \t due \t title \t tags
//
// Free-text fields (title, comma-joined tags) escape backslash, tab and
// newline so any title survives the line-oriented format. Commas inside a
// tag are not escaped and are indistinguishable from the tag separator on
// decode; that is a known limitation of the format, kept as-is.
const recordFields = 6

// EncodeLine serializes one task to a single line of escaped TSV.
func EncodeLine(t Task) string {
	done := "0"
	if t.Done {
		done = "1"
	}
	due := ""
	if t.Due != nil {
		due = t.Due.Format(DateFormat)
	}
	return strings.Join([]string{
		strconv.Itoa(t.ID),
		done,
		string(t.Priority),
		due,
		escapeField(t.Title),
		escapeField(strings.Join(t.Tags, ",")),
	}, "\t")
}

// DecodeLine parses one escaped TSV line back into a task. Malformed id,
// priority or due fields yield a *FormatError.
func DecodeLine(line string) (Task, error) {
	f := splitRecord(line, recordFields)

	id, err := strconv.Atoi(f[0])
	if err != nil {
		return Task{}, &FormatError{Line: line, Field: "id", Err: err}
	}

	prio := Priority(f[2])
	if !prio.Valid() {
		return Task{}, &FormatError{Line: line, Field: "priority", Err: errors.New("unknown priority " + strconv.Quote(f[2]))}
	}

	var due *time.Time
	if f[3] != "" {
		d, err := time.Parse(DateFormat, f[3])
		if err != nil {
			return Task{}, &FormatError{Line: line, Field: "due", Err: err}
		}
		due = &d
	}

	t := Task{
		ID:       id,
		Done:     f[1] == "1",
		Priority: prio,
		Due:      due,
		Title:    unescapeField(f[4]),
	}
	if tags := unescapeField(f[5]); tags != "" {
		t.Tags = NormalizeTags(strings.Split(tags, ","))
	}
	return t, nil
}

// escapeField makes a free-text value safe for one TSV field: backslash
// doubles, literal tab becomes \t, literal newline becomes \n.
func escapeField(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\t':
			b.WriteString(`\t`)
		case '\n':
			b.WriteString(`\n`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// unescapeField reverses escapeField with a two-state scanner. A backslash
// before any character other than t or n yields that character literally,
// and a trailing unmatched backslash is dropped.
func unescapeField(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	esc := false
	for _, r := range s {
		if !esc && r == '\\' {
			esc = true
			continue
		}
		if esc {
			switch r {
			case 't':
				b.WriteRune('\t')
			case 'n':
				b.WriteRune('\n')
			default:
				b.WriteRune(r)
			}
			esc = false
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// splitRecord splits a raw line on unescaped tabs only; a tab preceded by
// a backslash is field content. Escape pairs are kept intact for
// unescapeField. Short lines are padded with empty fields.
func splitRecord(line string, n int) []string {
	parts := make([]string, 0, n)
	var cur strings.Builder
	esc := false
	for _, r := range line {
		if !esc && r == '\\' {
			esc = true
			continue
		}
		if esc {
			cur.WriteRune('\\')
			cur.WriteRune(r)
			esc = false
			continue
		}
		if r == '\t' {
			parts = append(parts, cur.String())
			cur.Reset()
			continue
		}
		cur.WriteRune(r)
	}
	parts = append(parts, cur.String())
	for len(parts) < n {
		parts = append(parts, "")
	}
	return parts
}
