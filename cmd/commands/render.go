package commands

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/dohr-michael/dodo/internal/tasks"
)

// renderTable prints tasks as a tab-aligned table.
func renderTable(list []tasks.Task) error {
	if len(list) == 0 {
		fmt.Println("(no tasks)")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDONE\tDUE\tPRIO\tTITLE\tTAGS")
	for _, t := range list {
		done := ""
		if t.Done {
			done = "x"
		}
		due := ""
		if t.Due != nil {
			due = t.Due.Format(tasks.DateFormat)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			t.ID,
			done,
			due,
			t.Priority,
			truncate(displayText(t.Title), 40),
			truncate(strings.Join(t.Tags, ","), 20),
		)
	}
	return w.Flush()
}

// displayText flattens embedded newlines and tabs for single-line output.
func displayText(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "\t", " ")
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
