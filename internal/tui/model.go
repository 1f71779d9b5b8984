package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dohr-michael/dodo/internal/tasks"
)

// Model is the root bubbletea model: a scrollable task list with
// single-key mutations, each written through to the store immediately.
type Model struct {
	store *tasks.Store

	list   []tasks.Task
	cursor int

	input  textinput.Model
	adding bool

	status string
	width  int
	height int
}

// New creates the root model over an already-loaded store.
func New(store *tasks.Store) Model {
	input := textinput.New()
	input.Placeholder = "New task title"
	input.CharLimit = 200

	m := Model{store: store, input: input, width: 80, height: 24}
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update processes all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - 4
		return m, nil

	case tea.KeyMsg:
		if m.adding {
			return m.handleAddKey(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit

	case "j", "down":
		if m.cursor < len(m.list)-1 {
			m.cursor++
		}

	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}

	case " ", "enter":
		if t, ok := m.current(); ok {
			done := !t.Done
			if _, err := m.store.Update(t.ID, tasks.Patch{Done: &done}); err != nil {
				m.status = err.Error()
				break
			}
			m.persist()
			m.refresh()
		}

	case "d":
		if t, ok := m.current(); ok {
			m.store.Delete(t.ID)
			m.persist()
			m.refresh()
		}

	case "x":
		removed := m.store.RemoveWhere(func(t tasks.Task) bool { return t.Done })
		m.persist()
		m.refresh()
		if m.status == "" {
			m.status = fmt.Sprintf("removed %d completed task(s)", removed)
		}

	case "a":
		m.adding = true
		m.input.SetValue("")
		return m, m.input.Focus()
	}
	return m, nil
}

func (m Model) handleAddKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.adding = false
		m.input.Blur()
		return m, nil

	case "enter":
		title := strings.TrimSpace(m.input.Value())
		m.adding = false
		m.input.Blur()
		if title != "" {
			t := m.store.Add(title, nil, tasks.PriorityMedium, nil)
			m.persist()
			m.refresh()
			m.cursor = len(m.list) - 1
			if m.status == "" {
				m.status = fmt.Sprintf("added #%d", t.ID)
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the task list, the add prompt when active, and a help
// footer.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(HeaderStyle.Render("dodo"))
	b.WriteString(MutedStyle.Render(fmtCount(len(m.list))))
	b.WriteString("\n\n")

	visible := m.visibleRows()
	start, end := m.window(visible)
	if len(m.list) == 0 {
		b.WriteString(MutedStyle.Render("(no tasks; press a to add one)"))
		b.WriteString("\n")
	}
	for i := start; i < end; i++ {
		b.WriteString(m.renderRow(i))
		b.WriteByte('\n')
	}

	b.WriteString("\n")
	if m.adding {
		b.WriteString(m.input.View())
		b.WriteString("\n")
	} else {
		b.WriteString(MutedStyle.Render("j/k move · space toggle · a add · d delete · x clear done · q quit"))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(MutedStyle.Render(m.status))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderRow(i int) string {
	t := m.list[i]

	cursor := "  "
	if i == m.cursor {
		cursor = CursorStyle.Render("> ")
	}

	mark := "[ ]"
	if t.Done {
		mark = "[x]"
	}

	title := strings.NewReplacer("\n", " ", "\t", " ").Replace(t.Title)
	line := fmt.Sprintf("#%-4d %s %s", t.ID, mark, title)
	if t.Due != nil {
		due := t.Due.Format(tasks.DateFormat)
		if !t.Done && t.Due.Before(today()) {
			due = OverdueStyle.Render(due)
		}
		line += "  " + due
	}
	if len(t.Tags) > 0 {
		line += "  " + MutedStyle.Render("#"+strings.Join(t.Tags, " #"))
	}

	switch {
	case t.Done:
		line = DoneStyle.Render(line)
	case t.Priority == tasks.PriorityHigh:
		line = HighStyle.Render(line)
	}
	return cursor + line
}

// current returns the task under the cursor.
func (m Model) current() (tasks.Task, bool) {
	if m.cursor < 0 || m.cursor >= len(m.list) {
		return tasks.Task{}, false
	}
	return m.list[m.cursor], true
}

// refresh re-reads the store snapshot and clamps the cursor.
func (m *Model) refresh() {
	m.list = m.store.All()
	if m.cursor >= len(m.list) {
		m.cursor = len(m.list) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// persist writes through to disk; failures surface in the status line.
func (m *Model) persist() {
	m.status = ""
	if err := m.store.Save(); err != nil {
		m.status = "save failed: " + err.Error()
	}
}

func (m Model) visibleRows() int {
	rows := m.height - 6 // header, blank, footer, status
	if rows < 1 {
		rows = 1
	}
	return rows
}

// window returns the half-open row range kept on screen around the
// cursor.
func (m Model) window(rows int) (int, int) {
	start := 0
	if m.cursor >= rows {
		start = m.cursor - rows + 1
	}
	end := start + rows
	if end > len(m.list) {
		end = len(m.list)
	}
	return start, end
}

func fmtCount(n int) string {
	return fmt.Sprintf("  %d task(s)", n)
}

func today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
