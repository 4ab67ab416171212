package pubrecord

import (
	"strings"
	"time"
)

// Snapshot is the read-only working set loaded once from a backing store.
// Aggregation code receives a snapshot and must not mutate it; reloading
// produces a new snapshot rather than updating one in place, so a snapshot
// is safe to share across concurrent readers.
type Snapshot struct {
	Publications []Publication `json:"publications"`
	HomeAuthors  []HomeAuthor  `json:"home_authors,omitempty"`
	LoadedAt     time.Time     `json:"loaded_at"`
}

// NewSnapshot normalizes the given publications and wraps them in a snapshot.
func NewSnapshot(pubs []Publication, authors []HomeAuthor) *Snapshot {
	for i := range pubs {
		pubs[i].Normalize()
	}
	return &Snapshot{
		Publications: pubs,
		HomeAuthors:  authors,
		LoadedAt:     time.Now().UTC(),
	}
}

// Empty returns a zero-row snapshot of the expected shape. Downstream
// aggregation must tolerate it and produce placeholder output.
func Empty() *Snapshot {
	return &Snapshot{
		Publications: []Publication{},
		HomeAuthors:  []HomeAuthor{},
		LoadedAt:     time.Now().UTC(),
	}
}

// IsEmpty reports whether the snapshot holds no publications.
func (s *Snapshot) IsEmpty() bool {
	return len(s.Publications) == 0
}

// FilterTypes returns a derived snapshot restricted to the given publication
// types (case-insensitive, surrounding whitespace ignored). An empty filter
// returns the snapshot unchanged.
func (s *Snapshot) FilterTypes(types []string) *Snapshot {
	if len(types) == 0 {
		return s
	}

	want := make(map[string]bool, len(types))
	for _, t := range types {
		want[strings.ToLower(strings.TrimSpace(t))] = true
	}

	filtered := make([]Publication, 0, len(s.Publications))
	kept := make(map[string]bool)
	for _, p := range s.Publications {
		if want[strings.ToLower(strings.TrimSpace(p.Type))] {
			filtered = append(filtered, p)
			kept[p.ID] = true
		}
	}

	authors := make([]HomeAuthor, 0, len(s.HomeAuthors))
	for _, a := range s.HomeAuthors {
		if kept[a.PaperID] {
			authors = append(authors, a)
		}
	}

	return &Snapshot{Publications: filtered, HomeAuthors: authors, LoadedAt: s.LoadedAt}
}

// Types returns the distinct publication types present, lowercased and sorted
// by first appearance. Used to populate the presentation layer's type filter.
func (s *Snapshot) Types() []string {
	seen := make(map[string]bool)
	var types []string
	for _, p := range s.Publications {
		t := strings.ToLower(strings.TrimSpace(p.Type))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		types = append(types, t)
	}
	return types
}
