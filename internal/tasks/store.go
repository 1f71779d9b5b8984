package tasks

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	formatMarker = "# dodo tasks v1"
	columnHeader = "# id\tdone\tpriority\tdue\ttitle\ttags"
)

// Store is the authoritative, process-lifetime collection of tasks. It
// owns id allocation and persistence against a single TSV file plus a
// small sidecar holding the next-id counter. Every operation takes the
// store lock, so a Store is safe to share between goroutines; there is no
// cross-process coordination (last writer wins).
type Store struct {
	mu     sync.RWMutex
	path   string
	order  []int
	byID   map[int]*Task
	nextID int
}

// NewStore creates an empty store persisting to path. Call Load before
// any other operation.
func NewStore(path string) *Store {
	return &Store{
		path:   path,
		byID:   make(map[int]*Task),
		nextID: 1,
	}
}

// Path returns the main storage file path.
func (s *Store) Path() string { return s.path }

func (s *Store) metaPath() string { return s.path + ".meta" }

// Add creates a task with a freshly allocated id and appends it to the
// iteration order. Omitted priority defaults to MEDIUM; tags are
// normalized. The returned value is a copy.
func (s *Store) Add(title string, due *time.Time, prio Priority, tags []string) Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !prio.Valid() {
		prio = PriorityMedium
	}
	t := &Task{
		ID:       s.nextID,
		Title:    title,
		Due:      due,
		Priority: prio,
		Tags:     NormalizeTags(tags),
	}
	s.nextID++
	s.byID[t.ID] = t
	s.order = append(s.order, t.ID)
	return t.clone()
}

// Get returns a copy of the task with the given id, or a *NotFoundError.
func (s *Store) Get(id int) (Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.byID[id]
	if !ok {
		return Task{}, &NotFoundError{ID: id}
	}
	return t.clone(), nil
}

// Delete removes the task with the given id and reports whether it was
// present. Deleted ids are never reallocated.
func (s *Store) Delete(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[id]; !ok {
		return false
	}
	delete(s.byID, id)
	s.removeFromOrder(id)
	return true
}

// Patch describes a partial update. Nil pointer fields are left
// untouched. Due and Tags carry an explicit set flag so they can be
// cleared as well as changed.
type Patch struct {
	Title    *string
	Due      *time.Time
	DueSet   bool
	Priority *Priority
	Done     *bool
	Tags     []string
	TagsSet  bool
}

// Update applies a partial patch to the task with the given id, in place,
// and returns a copy of the result. Unspecified fields keep their values.
func (s *Store) Update(id int, p Patch) (Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.byID[id]
	if !ok {
		return Task{}, &NotFoundError{ID: id}
	}
	if p.Title != nil {
		t.Title = strings.TrimSpace(*p.Title)
	}
	if p.DueSet {
		t.Due = p.Due
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.Done != nil {
		t.Done = *p.Done
	}
	if p.TagsSet {
		t.Tags = NormalizeTags(p.Tags)
	}
	return t.clone(), nil
}

// RemoveWhere deletes every task matching pred and returns the count
// removed.
func (s *Store) RemoveWhere(pred func(Task) bool) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	kept := s.order[:0]
	for _, id := range s.order {
		if pred(*s.byID[id]) {
			delete(s.byID, id)
			removed++
			continue
		}
		kept = append(kept, id)
	}
	s.order = kept
	return removed
}

// All returns a snapshot of every task, in insertion order. The snapshot
// holds copies; mutating it never touches store state.
func (s *Store) All() []Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Task, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id].clone())
	}
	return out
}

// Len returns the current task count.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// Load resets the store and reads every record from the storage file,
// keeping persisted ids. A missing file yields an empty store; a present
// but corrupt file fails the whole load and leaves the store empty (no
// partial population). The next-id counter becomes one past the highest
// id seen, or the sidecar value when that is larger.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.order = nil
	s.byID = make(map[int]*Task)
	s.nextID = 1

	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("open %s: %w", s.path, err)
	}
	defer f.Close()

	order := []int{}
	byID := make(map[int]*Task)
	nextID := 1

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineno := 0
	for sc.Scan() {
		lineno++
		line := sc.Text()
		if strings.HasPrefix(line, "#") || strings.TrimSpace(line) == "" {
			continue
		}
		t, err := DecodeLine(line)
		if err != nil {
			return fmt.Errorf("load %s: line %d: %w", s.path, lineno, err)
		}
		if _, dup := byID[t.ID]; !dup {
			order = append(order, t.ID)
		}
		rec := t
		byID[t.ID] = &rec
		if t.ID >= nextID {
			nextID = t.ID + 1
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read %s: %w", s.path, err)
	}

	// Sidecar counter guards against reuse of a retired id when the
	// highest-numbered task was deleted before the last save. Absent or
	// corrupt sidecar is non-fatal; the max id seen wins.
	if data, err := os.ReadFile(s.metaPath()); err == nil {
		if n, err := strconv.Atoi(strings.TrimSpace(string(data))); err == nil && n > nextID {
			nextID = n
		}
	} else if !os.IsNotExist(err) {
		slog.Warn("read counter sidecar", "path", s.metaPath(), "error", err)
	}

	s.order = order
	s.byID = byID
	s.nextID = nextID
	return nil
}

// Save rewrites the whole storage file (format marker, column header,
// then one line per task in iteration order) and persists the next-id
// counter to the sidecar. The write goes through a temp file and rename
// so a failed save leaves the previous file intact. In-memory state is
// unaffected by a failed save.
func (s *Store) Save() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var b strings.Builder
	b.WriteString(formatMarker)
	b.WriteByte('\n')
	b.WriteString(columnHeader)
	b.WriteByte('\n')
	for _, id := range s.order {
		b.WriteString(EncodeLine(*s.byID[id]))
		b.WriteByte('\n')
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create storage dir: %w", err)
		}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("rename %s: %w", tmp, err)
	}

	if err := os.WriteFile(s.metaPath(), []byte(strconv.Itoa(s.nextID)), 0o644); err != nil {
		slog.Warn("write counter sidecar", "path", s.metaPath(), "error", err)
	}
	return nil
}

func (s *Store) removeFromOrder(id int) {
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			return
		}
	}
}
