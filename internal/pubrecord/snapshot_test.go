package pubrecord

import "testing"

func TestNormalizeDefaults(t *testing.T) {
	p := Publication{ID: "W1", Title: "Untitled study"}
	p.Normalize()

	if p.Journal != UnknownJournal {
		t.Errorf("journal = %q, want %q", p.Journal, UnknownJournal)
	}
	if p.Quartile != UnknownQuartile {
		t.Errorf("quartile = %q, want %q", p.Quartile, UnknownQuartile)
	}
	if p.Type != UnknownType {
		t.Errorf("type = %q, want %q", p.Type, UnknownType)
	}
}

func TestNormalizeKeepsValues(t *testing.T) {
	p := Publication{Journal: "The Lancet Oncology", Quartile: "Q1", Type: "article"}
	p.Normalize()
	if p.Journal != "The Lancet Oncology" || p.Quartile != "Q1" || p.Type != "article" {
		t.Errorf("normalize overwrote set fields: %+v", p)
	}
}

func TestEmpty(t *testing.T) {
	snap := Empty()
	if !snap.IsEmpty() {
		t.Error("Empty() snapshot should be empty")
	}
	if snap.Publications == nil || snap.HomeAuthors == nil {
		t.Error("empty snapshot must carry zero-length slices, not nil")
	}
}

func TestFilterTypes(t *testing.T) {
	snap := NewSnapshot([]Publication{
		{ID: "W1", Type: "article"},
		{ID: "W2", Type: "Review"},
		{ID: "W3", Type: "letter"},
	}, []HomeAuthor{
		{PaperID: "W1", AuthorName: "A"},
		{PaperID: "W3", AuthorName: "B"},
	})

	filtered := snap.FilterTypes([]string{"ARTICLE", " review "})
	if len(filtered.Publications) != 2 {
		t.Fatalf("got %d publications, want 2", len(filtered.Publications))
	}
	if filtered.Publications[0].ID != "W1" || filtered.Publications[1].ID != "W2" {
		t.Errorf("kept IDs = %s, %s", filtered.Publications[0].ID, filtered.Publications[1].ID)
	}
	// Home-author rows follow their papers.
	if len(filtered.HomeAuthors) != 1 || filtered.HomeAuthors[0].PaperID != "W1" {
		t.Errorf("home authors = %v", filtered.HomeAuthors)
	}
	// The source snapshot is untouched.
	if len(snap.Publications) != 3 || len(snap.HomeAuthors) != 2 {
		t.Error("filtering mutated the source snapshot")
	}
}

func TestFilterTypesEmptyFilterReturnsSame(t *testing.T) {
	snap := NewSnapshot([]Publication{{ID: "W1", Type: "article"}}, nil)
	if got := snap.FilterTypes(nil); got != snap {
		t.Error("empty filter should return the snapshot unchanged")
	}
}

func TestTypes(t *testing.T) {
	snap := NewSnapshot([]Publication{
		{ID: "W1", Type: "Article"},
		{ID: "W2", Type: "article"},
		{ID: "W3", Type: "review"},
	}, nil)

	types := snap.Types()
	if len(types) != 2 || types[0] != "article" || types[1] != "review" {
		t.Errorf("types = %v", types)
	}
}
