// Package affiliation parses nested author-affiliation records and classifies
// authors as home-institution or external.
package affiliation

import (
	"encoding/json"
	"strings"
)

// Author identifies one author as named on a publication.
type Author struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

// Institution is one institutional affiliation attached to an authorship.
type Institution struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	CountryCode string `json:"country_code"`
}

// Authorship is one author's participation record on one publication.
type Authorship struct {
	Author          Author        `json:"author"`
	Position        string        `json:"author_position"` // first, middle, last
	IsCorresponding bool          `json:"is_corresponding"`
	Institutions    []Institution `json:"institutions"`
	RawAffiliations []string      `json:"raw_affiliation_strings"`
	Countries       []string      `json:"countries"`
}

// Parse decodes an authorships JSON value. It fails closed: any shape
// mismatch yields (nil, error), and callers treat the publication as having
// no authorship data rather than aborting the aggregation pass.
func Parse(raw string) ([]Authorship, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	var auths []Authorship
	if err := json.Unmarshal([]byte(raw), &auths); err != nil {
		return nil, err
	}
	return auths, nil
}

// Home identifies the institution whose output is under analysis.
// The identifier test is authoritative; the display-name test is a fallback
// used only for institution entries that carry no identifier at all.
type Home struct {
	ID   string // stable institution identifier (full OpenAlex URL format)
	Name string // exact display name
}

// matches reports whether one institution entry is the home institution.
func (h Home) matches(inst Institution) bool {
	if inst.ID != "" && h.ID != "" {
		return inst.ID == h.ID
	}
	return h.Name != "" && inst.DisplayName == h.Name
}

// IsHome reports whether the authorship belongs to the home institution.
// Any-match semantics: one home affiliation among several is enough.
// An authorship with zero institutions is external by default.
func (h Home) IsHome(a Authorship) bool {
	for _, inst := range a.Institutions {
		if h.matches(inst) {
			return true
		}
	}
	return false
}

// Split partitions authorships into home and external entries.
type Split struct {
	Home     []Authorship
	External []Authorship
}

// SplitAuthorships classifies every authorship against the home institution.
func SplitAuthorships(auths []Authorship, home Home) Split {
	var s Split
	for _, a := range auths {
		if home.IsHome(a) {
			s.Home = append(s.Home, a)
		} else {
			s.External = append(s.External, a)
		}
	}
	return s
}

// Name returns the author display name, or the given fallback when absent.
func (a Authorship) Name(fallback string) string {
	if a.Author.DisplayName != "" {
		return a.Author.DisplayName
	}
	return fallback
}

// ExternalInstitutions returns the institution display names attached to an
// external authorship, excluding any entry equal to the home institution name.
func ExternalInstitutions(a Authorship, home Home) []string {
	var names []string
	for _, inst := range a.Institutions {
		if inst.DisplayName == "" || inst.DisplayName == home.Name {
			continue
		}
		names = append(names, inst.DisplayName)
	}
	return names
}

// ExternalCountries returns the country codes attached to an external
// authorship, from its institution entries and its countries field.
func ExternalCountries(a Authorship) []string {
	var codes []string
	for _, inst := range a.Institutions {
		if inst.CountryCode != "" {
			codes = append(codes, inst.CountryCode)
		}
	}
	for _, c := range a.Countries {
		if c != "" {
			codes = append(codes, c)
		}
	}
	return codes
}
