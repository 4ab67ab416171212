package storage

import (
	"path/filepath"
	"testing"

	"github.com/aidi-lab/pubnet/internal/affiliation"
	"github.com/aidi-lab/pubnet/internal/pubrecord"
)

var testHome = affiliation.Home{
	ID:   "https://openalex.org/I2799468983",
	Name: "King Hussein Cancer Center",
}

const testAuthorships = `[
	{
		"author": {"id": "https://openalex.org/A1", "display_name": "Asem Mansour"},
		"author_position": "first",
		"is_corresponding": true,
		"institutions": [{"id": "https://openalex.org/I2799468983", "display_name": "King Hussein Cancer Center", "country_code": "JO"}]
	},
	{
		"author": {"id": "https://openalex.org/A2", "display_name": "Jane Roe"},
		"author_position": "last",
		"institutions": [{"id": "https://openalex.org/I99", "display_name": "Mayo Clinic", "country_code": "US"}]
	}
]`

func setupDB(t *testing.T) (*DB, string) {
	t.Helper()
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "pubs.db")

	db, err := OpenDB(dbPath)
	if err != nil {
		t.Fatalf("OpenDB() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })

	jsonlPath := filepath.Join(dir, "publications.jsonl")
	pubs := []pubrecord.Publication{
		{
			ID:              "https://openalex.org/W1",
			Title:           "Pediatric leukemia outcomes in Jordan",
			Journal:         "Pediatric Blood & Cancer",
			Year:            2023,
			Month:           4,
			Citations:       12,
			ImpactFactor:    3.2,
			Quartile:        "Q1",
			OpenAccess:      true,
			Type:            "article",
			Abstract:        "A cohort study of pediatric leukemia treatment outcomes.",
			AuthorshipsJSON: testAuthorships,
		},
		{
			ID:    "https://openalex.org/W2",
			Title: "Radiotherapy planning: a review",
			Year:  2022,
			Month: 11,
			Type:  "review",
		},
	}
	if err := WriteAll(jsonlPath, pubs); err != nil {
		t.Fatalf("WriteAll() error = %v", err)
	}

	return db, jsonlPath
}

func rebuild(t *testing.T, db *DB, jsonlPath string) {
	t.Helper()
	n, err := db.RebuildFromJSONL(jsonlPath, testHome)
	if err != nil {
		t.Fatalf("RebuildFromJSONL() error = %v", err)
	}
	if n != 2 {
		t.Fatalf("rebuilt %d papers, want 2", n)
	}
}

func TestRebuildAndLoadAll(t *testing.T) {
	db, jsonlPath := setupDB(t)
	rebuild(t, db, jsonlPath)

	pubs, err := db.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() error = %v", err)
	}
	if len(pubs) != 2 {
		t.Fatalf("got %d publications, want 2", len(pubs))
	}
	// Sorted by year descending.
	if pubs[0].Year != 2023 || pubs[1].Year != 2022 {
		t.Errorf("year order = %d, %d", pubs[0].Year, pubs[1].Year)
	}
	if !pubs[0].OpenAccess || pubs[0].Citations != 12 {
		t.Errorf("first publication = %+v", pubs[0])
	}
	// Missing categorical fields come back with defaults.
	if pubs[1].Journal != pubrecord.UnknownJournal {
		t.Errorf("journal default = %q", pubs[1].Journal)
	}
	if pubs[1].Quartile != pubrecord.UnknownQuartile {
		t.Errorf("quartile default = %q", pubs[1].Quartile)
	}
}

func TestRebuildDerivesHomeAuthors(t *testing.T) {
	db, jsonlPath := setupDB(t)
	rebuild(t, db, jsonlPath)

	authors, err := db.LoadHomeAuthors()
	if err != nil {
		t.Fatalf("LoadHomeAuthors() error = %v", err)
	}
	if len(authors) != 1 {
		t.Fatalf("got %d home authors, want 1 (external author excluded)", len(authors))
	}
	a := authors[0]
	if a.AuthorName != "Asem Mansour" || a.Position != "first" || !a.IsCorresponding {
		t.Errorf("home author = %+v", a)
	}
	// Joined against paper metrics.
	if a.Year != 2023 || a.Citations != 12 || a.Quartile != "Q1" {
		t.Errorf("joined metrics = %+v", a)
	}
}

func TestRebuildIsIdempotent(t *testing.T) {
	db, jsonlPath := setupDB(t)
	rebuild(t, db, jsonlPath)
	rebuild(t, db, jsonlPath)

	count, err := db.Count()
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 2 {
		t.Errorf("count after double rebuild = %d, want 2", count)
	}
	haCount, err := db.CountHomeAuthors()
	if err != nil {
		t.Fatalf("CountHomeAuthors() error = %v", err)
	}
	if haCount != 1 {
		t.Errorf("home author count after double rebuild = %d, want 1", haCount)
	}
}

func TestGetByID(t *testing.T) {
	db, jsonlPath := setupDB(t)
	rebuild(t, db, jsonlPath)

	pub, err := db.GetByID("https://openalex.org/W1")
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if pub == nil || pub.Title != "Pediatric leukemia outcomes in Jordan" {
		t.Errorf("publication = %+v", pub)
	}

	missing, err := db.GetByID("https://openalex.org/W9")
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if missing != nil {
		t.Errorf("missing ID returned %+v", missing)
	}
}

func TestSearch(t *testing.T) {
	db, jsonlPath := setupDB(t)
	rebuild(t, db, jsonlPath)

	results, err := db.Search("leukemia", 10)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(results) != 1 || results[0].ID != "https://openalex.org/W1" {
		t.Errorf("search results = %v", results)
	}

	none, err := db.Search("nephrology", 10)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(none) != 0 {
		t.Errorf("unexpected results = %v", none)
	}
}

func TestSearchWithFilters(t *testing.T) {
	db, jsonlPath := setupDB(t)
	rebuild(t, db, jsonlPath)

	tests := []struct {
		name    string
		filters SearchFilters
		wantIDs []string
	}{
		{
			name:    "author prefix",
			filters: SearchFilters{Author: "Mansour"},
			wantIDs: []string{"https://openalex.org/W1"},
		},
		{
			name:    "year range",
			filters: SearchFilters{YearFrom: 2022, YearTo: 2022},
			wantIDs: []string{"https://openalex.org/W2"},
		},
		{
			name:    "type",
			filters: SearchFilters{Type: "review"},
			wantIDs: []string{"https://openalex.org/W2"},
		},
		{
			name:    "quartile",
			filters: SearchFilters{Quartile: "Q1"},
			wantIDs: []string{"https://openalex.org/W1"},
		},
		{
			name:    "keyword and year exclude",
			filters: SearchFilters{Keyword: "leukemia", YearTo: 2022},
			wantIDs: nil,
		},
		{
			name:    "no filters returns all",
			filters: SearchFilters{},
			wantIDs: []string{"https://openalex.org/W1", "https://openalex.org/W2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := db.SearchWithFilters(tt.filters, 10)
			if err != nil {
				t.Fatalf("SearchWithFilters() error = %v", err)
			}
			if len(results) != len(tt.wantIDs) {
				t.Fatalf("got %d results, want %d", len(results), len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if results[i].ID != id {
					t.Errorf("result %d = %q, want %q", i, results[i].ID, id)
				}
			}
		})
	}
}

func TestListAll_Limit(t *testing.T) {
	db, jsonlPath := setupDB(t)
	rebuild(t, db, jsonlPath)

	pubs, err := db.ListAll(1)
	if err != nil {
		t.Fatalf("ListAll() error = %v", err)
	}
	if len(pubs) != 1 {
		t.Errorf("got %d publications, want 1", len(pubs))
	}
}

func TestLoadSnapshot(t *testing.T) {
	db, jsonlPath := setupDB(t)
	rebuild(t, db, jsonlPath)

	snap := LoadSnapshot(db)
	if snap.IsEmpty() {
		t.Fatal("snapshot empty after rebuild")
	}
	if len(snap.Publications) != 2 || len(snap.HomeAuthors) != 1 {
		t.Errorf("snapshot = %d pubs, %d home authors",
			len(snap.Publications), len(snap.HomeAuthors))
	}
}

func TestLoadSnapshot_FailureDegradesToEmpty(t *testing.T) {
	db, _ := setupDB(t)
	db.Close()

	snap := LoadSnapshot(db)
	if !snap.IsEmpty() {
		t.Error("closed database should degrade to empty snapshot")
	}
	if snap.Publications == nil || snap.HomeAuthors == nil {
		t.Error("empty snapshot must carry zero-length slices, not nil")
	}
}
