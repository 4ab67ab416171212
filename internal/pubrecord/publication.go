// Package pubrecord defines the core domain types for publication records.
package pubrecord

// Publication represents one paper in the institutional publication set.
type Publication struct {
	// Identity
	ID string `json:"paper_id"` // Stable identifier (full OpenAlex URL format)

	// Metadata
	Title   string `json:"title"`
	Journal string `json:"journal"`

	// Publication Date
	Year  int `json:"publication_year"`  // 0 if unknown
	Month int `json:"publication_month"` // 1-12, 0 if unknown

	// Bibliometric Indicators
	Citations    int     `json:"citations"`
	ImpactFactor float64 `json:"impact_factor"`
	Quartile     string  `json:"quartile"` // Q1-Q4, "Unknown" when unavailable
	OpenAccess   bool    `json:"open_access"`
	Type         string  `json:"publication_type"` // article, review, letter, ...

	// Free Text
	Abstract string `json:"abstract,omitempty"`
	PDFURL   string `json:"pdf_url,omitempty"`

	// Nested JSON payloads, decoded on demand by the affiliation
	// and topics packages. Kept raw so a malformed value poisons
	// only the dimension that reads it.
	AuthorshipsJSON string `json:"authorships_json,omitempty"`
	ConceptsJSON    string `json:"concepts_json,omitempty"`
}

// HomeAuthor is one home-institution author's participation on one paper,
// joined against the paper's metrics.
type HomeAuthor struct {
	PaperID         string  `json:"paper_id"`
	AuthorID        string  `json:"author_id"`
	AuthorName      string  `json:"author_name"`
	Position        string  `json:"author_position"` // first, middle, last
	IsCorresponding bool    `json:"is_corresponding"`
	Year            int     `json:"publication_year"`
	Citations       int     `json:"citations"`
	Journal         string  `json:"journal"`
	Quartile        string  `json:"quartile"`
	OpenAccess      bool    `json:"open_access"`
	ImpactFactor    float64 `json:"impact_factor"`
}

// Defaults used when a backing store has no value for a field.
const (
	UnknownJournal  = "Unknown Journal"
	UnknownQuartile = "Unknown"
	UnknownType     = "Unknown"
	UnknownPosition = "unknown"
)

// Normalize fills zero-value categorical fields with their defined defaults.
func (p *Publication) Normalize() {
	if p.Journal == "" {
		p.Journal = UnknownJournal
	}
	if p.Quartile == "" {
		p.Quartile = UnknownQuartile
	}
	if p.Type == "" {
		p.Type = UnknownType
	}
}
