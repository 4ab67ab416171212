package storage

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"

	"github.com/aidi-lab/pubnet/internal/affiliation"
	"github.com/aidi-lab/pubnet/internal/pubrecord"
)

// DB wraps a SQLite database connection.
type DB struct {
	db *sql.DB
}

// selectPubFields contains the standard field list for SELECT queries.
const selectPubFields = `paper_id, title, journal,
	pub_year, pub_month,
	citations, impact_factor, quartile, open_access, pub_type,
	abstract, pdf_url,
	authorships_json, concepts_json`

// OpenDB opens or creates a SQLite database at the given path.
func OpenDB(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// SQLite doesn't support concurrent writes
	db.SetMaxOpenConns(1)

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

// createSchema creates the database schema if it doesn't exist.
func createSchema(db *sql.DB) error {
	schema := `
		-- Main publications table
		CREATE TABLE IF NOT EXISTS papers (
			paper_id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			journal TEXT,
			pub_year INTEGER,
			pub_month INTEGER,
			citations INTEGER NOT NULL DEFAULT 0,
			impact_factor REAL NOT NULL DEFAULT 0,
			quartile TEXT,
			open_access INTEGER NOT NULL DEFAULT 0,
			pub_type TEXT,
			abstract TEXT,
			pdf_url TEXT,
			authorships_json TEXT,
			concepts_json TEXT
		);

		CREATE INDEX IF NOT EXISTS idx_papers_year ON papers(pub_year);

		-- Home-institution authorship rows, derived at rebuild time
		CREATE TABLE IF NOT EXISTS home_authors (
			paper_id TEXT NOT NULL,
			author_id TEXT,
			author_name TEXT NOT NULL,
			author_position TEXT,
			is_corresponding INTEGER NOT NULL DEFAULT 0
		);

		CREATE INDEX IF NOT EXISTS idx_home_authors_paper ON home_authors(paper_id);

		-- Full-text search virtual table (standalone, not external content)
		CREATE VIRTUAL TABLE IF NOT EXISTS papers_fts USING fts5(
			paper_id,
			title,
			abstract,
			journal,
			authors_text,
			pub_year
		);
	`

	_, err := db.Exec(schema)
	return err
}

// RebuildFromJSONL clears the database and rebuilds it from a JSONL file,
// deriving the home_authors table and the search index along the way.
func (d *DB) RebuildFromJSONL(jsonlPath string, home affiliation.Home) (int, error) {
	pubs, err := ReadAll(jsonlPath)
	if err != nil {
		return 0, fmt.Errorf("reading JSONL: %w", err)
	}

	for _, table := range []string{"papers", "home_authors", "papers_fts"} {
		if _, err := d.db.Exec("DELETE FROM " + table); err != nil {
			return 0, fmt.Errorf("clearing %s table: %w", table, err)
		}
	}

	pubStmt, err := d.db.Prepare(`
		INSERT INTO papers (
			paper_id, title, journal,
			pub_year, pub_month,
			citations, impact_factor, quartile, open_access, pub_type,
			abstract, pdf_url,
			authorships_json, concepts_json
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("preparing papers insert: %w", err)
	}
	defer pubStmt.Close()

	authorStmt, err := d.db.Prepare(`
		INSERT INTO home_authors (paper_id, author_id, author_name, author_position, is_corresponding)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("preparing home_authors insert: %w", err)
	}
	defer authorStmt.Close()

	ftsStmt, err := d.db.Prepare(`
		INSERT INTO papers_fts (paper_id, title, abstract, journal, authors_text, pub_year)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("preparing fts insert: %w", err)
	}
	defer ftsStmt.Close()

	for _, pub := range pubs {
		pub.Normalize()

		_, err = pubStmt.Exec(
			pub.ID, pub.Title, pub.Journal,
			pub.Year, pub.Month,
			pub.Citations, pub.ImpactFactor, pub.Quartile, boolToInt(pub.OpenAccess), pub.Type,
			nullableStringValue(pub.Abstract), nullableStringValue(pub.PDFURL),
			nullableStringValue(pub.AuthorshipsJSON), nullableStringValue(pub.ConceptsJSON),
		)
		if err != nil {
			return 0, fmt.Errorf("inserting paper %s: %w", pub.ID, err)
		}

		auths, err := affiliation.Parse(pub.AuthorshipsJSON)
		if err != nil {
			log.WithField("paper", pub.ID).WithError(err).
				Warn("skipping authorship rows for paper with malformed authorships")
		}
		split := affiliation.SplitAuthorships(auths, home)
		for _, a := range split.Home {
			_, err = authorStmt.Exec(
				pub.ID, nullableStringValue(a.Author.ID), a.Name("Unknown Author"),
				a.Position, boolToInt(a.IsCorresponding),
			)
			if err != nil {
				return 0, fmt.Errorf("inserting home author for %s: %w", pub.ID, err)
			}
		}

		_, err = ftsStmt.Exec(
			pub.ID, pub.Title, pub.Abstract, pub.Journal,
			formatAuthorsText(auths), strconv.Itoa(pub.Year),
		)
		if err != nil {
			return 0, fmt.Errorf("inserting fts for %s: %w", pub.ID, err)
		}
	}

	return len(pubs), nil
}

// formatAuthorsText creates a searchable text representation of authors.
func formatAuthorsText(auths []affiliation.Authorship) string {
	var names []string
	for _, a := range auths {
		if a.Author.DisplayName != "" {
			names = append(names, a.Author.DisplayName)
		}
	}
	return strings.Join(names, ", ")
}

// GetByID retrieves a publication by its ID.
func (d *DB) GetByID(id string) (*pubrecord.Publication, error) {
	row := d.db.QueryRow(`SELECT `+selectPubFields+` FROM papers WHERE paper_id = ?`, id)
	return scanPublication(row)
}

// LoadAll returns every publication, sorted by year and month descending.
func (d *DB) LoadAll() ([]pubrecord.Publication, error) {
	rows, err := d.db.Query(`SELECT ` + selectPubFields + ` FROM papers
		ORDER BY pub_year DESC, pub_month DESC, paper_id`)
	if err != nil {
		return nil, fmt.Errorf("loading papers: %w", err)
	}
	defer rows.Close()

	return scanPublications(rows)
}

// LoadHomeAuthors returns every home authorship row joined against its
// paper's metrics.
func (d *DB) LoadHomeAuthors() ([]pubrecord.HomeAuthor, error) {
	rows, err := d.db.Query(`
		SELECT h.paper_id, h.author_id, h.author_name, h.author_position, h.is_corresponding,
			p.pub_year, p.citations, p.journal, p.quartile, p.open_access, p.impact_factor
		FROM home_authors h
		JOIN papers p ON p.paper_id = h.paper_id
		ORDER BY h.paper_id, h.author_name`)
	if err != nil {
		return nil, fmt.Errorf("loading home authors: %w", err)
	}
	defer rows.Close()

	var out []pubrecord.HomeAuthor
	for rows.Next() {
		var h pubrecord.HomeAuthor
		var authorID, position, journal, quartile sql.NullString
		var corresponding, openAccess int
		err := rows.Scan(
			&h.PaperID, &authorID, &h.AuthorName, &position, &corresponding,
			&h.Year, &h.Citations, &journal, &quartile, &openAccess, &h.ImpactFactor,
		)
		if err != nil {
			return nil, err
		}
		h.AuthorID = authorID.String
		h.Position = position.String
		h.Journal = journal.String
		h.Quartile = quartile.String
		h.IsCorresponding = corresponding != 0
		h.OpenAccess = openAccess != 0
		out = append(out, h)
	}
	return out, rows.Err()
}

// Count returns the total number of publications.
func (d *DB) Count() (int, error) {
	var count int
	err := d.db.QueryRow("SELECT COUNT(*) FROM papers").Scan(&count)
	return count, err
}

// CountHomeAuthors returns the total number of home authorship rows.
func (d *DB) CountHomeAuthors() (int, error) {
	var count int
	err := d.db.QueryRow("SELECT COUNT(*) FROM home_authors").Scan(&count)
	return count, err
}

// Search performs a full-text search across title, abstract, journal and
// author names.
func (d *DB) Search(query string, limit int) ([]pubrecord.Publication, error) {
	ftsQuery := prepareFTSQuery(query)

	rows, err := d.db.Query(`
		SELECT `+selectPubFields+`
		FROM papers
		WHERE paper_id IN (SELECT paper_id FROM papers_fts WHERE papers_fts MATCH ?)
		ORDER BY pub_year DESC, pub_month DESC
		LIMIT ?`, ftsQuery, limit)
	if err != nil {
		return nil, fmt.Errorf("searching: %w", err)
	}
	defer rows.Close()

	return scanPublications(rows)
}

// SearchFilters contains optional filters for SearchWithFilters.
type SearchFilters struct {
	Keyword  string // General keyword search across all indexed fields
	Author   string // Author name search (fuzzy prefix matching)
	Title    string // Search in title only (FTS)
	Journal  string // Filter by journal (SQL LIKE, case-insensitive)
	YearFrom int    // Minimum publication year (0 = no minimum)
	YearTo   int    // Maximum publication year (0 = no maximum)
	Type     string // Exact publication type match
	Quartile string // Exact quartile match
}

// SearchWithFilters performs a search with multiple optional filters.
// Returns publications matching ALL specified criteria (AND logic), sorted
// by year and month descending.
func (d *DB) SearchWithFilters(filters SearchFilters, limit int) ([]pubrecord.Publication, error) {
	var ftsTerms []string
	var args []interface{}

	if filters.Keyword != "" {
		ftsTerms = append(ftsTerms, prepareFTSQuery(filters.Keyword))
	}
	if filters.Title != "" {
		ftsTerms = append(ftsTerms, "title:"+prepareFTSQuery(filters.Title))
	}
	if filters.Author != "" {
		ftsTerms = append(ftsTerms, "authors_text:"+prepareAuthorQuery(filters.Author))
	}

	var query string
	if len(ftsTerms) > 0 {
		ftsQuery := strings.Join(ftsTerms, " AND ")
		query = `SELECT ` + selectPubFields + `
			FROM papers
			WHERE paper_id IN (SELECT paper_id FROM papers_fts WHERE papers_fts MATCH ?)`
		args = append(args, ftsQuery)
	} else {
		query = `SELECT ` + selectPubFields + ` FROM papers WHERE 1=1`
	}

	if filters.YearFrom > 0 {
		query += " AND pub_year >= ?"
		args = append(args, filters.YearFrom)
	}
	if filters.YearTo > 0 {
		query += " AND pub_year <= ?"
		args = append(args, filters.YearTo)
	}
	if filters.Journal != "" {
		query += " AND journal LIKE ?"
		args = append(args, "%"+filters.Journal+"%")
	}
	if filters.Type != "" {
		query += " AND pub_type = ?"
		args = append(args, filters.Type)
	}
	if filters.Quartile != "" {
		query += " AND quartile = ?"
		args = append(args, filters.Quartile)
	}

	query += " ORDER BY pub_year DESC, pub_month DESC LIMIT ?"
	args = append(args, limit)

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("searching with filters: %w", err)
	}
	defer rows.Close()

	return scanPublications(rows)
}

// prepareAuthorQuery prepares an author name for FTS5 search with prefix
// matching, so "Tim" matches "Timothy".
func prepareAuthorQuery(author string) string {
	author = strings.TrimSpace(author)
	if author == "" {
		return author
	}

	parts := strings.Fields(author)
	var terms []string
	for _, part := range parts {
		escaped := strings.ReplaceAll(part, "\"", "\"\"")
		terms = append(terms, "\""+escaped+"\"*")
	}

	// Use OR for multi-word author queries (match any part)
	return "(" + strings.Join(terms, " OR ") + ")"
}

// ListAll returns publications sorted by year and month descending,
// optionally limited.
func (d *DB) ListAll(limit int) ([]pubrecord.Publication, error) {
	query := `SELECT ` + selectPubFields + ` FROM papers
		ORDER BY pub_year DESC, pub_month DESC, paper_id`
	var args []interface{}

	if limit > 0 {
		query += " LIMIT ?"
		args = []interface{}{limit}
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing papers: %w", err)
	}
	defer rows.Close()

	return scanPublications(rows)
}

// scanner interface for sql.Row and sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanPublication(s scanner) (*pubrecord.Publication, error) {
	var pub pubrecord.Publication
	var journal, quartile, pubType sql.NullString
	var abstract, pdfURL, authorships, concepts sql.NullString
	var year, month, openAccess sql.NullInt64

	err := s.Scan(
		&pub.ID, &pub.Title, &journal,
		&year, &month,
		&pub.Citations, &pub.ImpactFactor, &quartile, &openAccess, &pubType,
		&abstract, &pdfURL,
		&authorships, &concepts,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	pub.Journal = journal.String
	pub.Quartile = quartile.String
	pub.Type = pubType.String
	pub.Abstract = abstract.String
	pub.PDFURL = pdfURL.String
	pub.AuthorshipsJSON = authorships.String
	pub.ConceptsJSON = concepts.String
	pub.Year = int(year.Int64)
	pub.Month = int(month.Int64)
	pub.OpenAccess = openAccess.Int64 != 0

	pub.Normalize()
	return &pub, nil
}

func scanPublications(rows *sql.Rows) ([]pubrecord.Publication, error) {
	var pubs []pubrecord.Publication
	for rows.Next() {
		pub, err := scanPublication(rows)
		if err != nil {
			return nil, err
		}
		if pub != nil {
			pubs = append(pubs, *pub)
		}
	}
	return pubs, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// nullableStringValue converts a string to sql.NullString, treating empty as NULL.
func nullableStringValue(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// prepareFTSQuery escapes special characters for FTS5 queries.
func prepareFTSQuery(query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return query
	}

	// If query contains special chars, quote it
	if strings.ContainsAny(query, "\"*+-:(){}[]^~") {
		query = strings.ReplaceAll(query, "\"", "\"\"")
		return "\"" + query + "\""
	}

	return query
}
