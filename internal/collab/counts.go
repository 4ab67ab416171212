// Package collab aggregates collaboration frequencies and co-occurrence
// pairs from parsed author affiliations.
//
// All counts are per-publication de-duplicated: an entity named three times
// on one paper counts once for that paper. Aggregates are recomputed from a
// snapshot on every call and hold no state of their own.
package collab

import (
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
	log "github.com/sirupsen/logrus"

	"github.com/aidi-lab/pubnet/internal/affiliation"
	"github.com/aidi-lab/pubnet/internal/pubrecord"
)

// EntityCount is one entity's publication frequency.
type EntityCount struct {
	Entity string `json:"entity"`
	Count  int    `json:"count"`
}

// PairCount is a co-occurrence count for two entities on the same papers.
type PairCount struct {
	A     string `json:"a"`
	B     string `json:"b"`
	Count int    `json:"count"`
}

// parseAuthorships decodes one publication's authorships, skipping the row
// on malformed input.
func parseAuthorships(p pubrecord.Publication) []affiliation.Authorship {
	auths, err := affiliation.Parse(p.AuthorshipsJSON)
	if err != nil {
		log.WithField("paper", p.ID).WithError(err).Debug("skipping malformed authorships")
		return nil
	}
	return auths
}

// collectPerPublication accumulates frequency counts, incrementing each
// entity once per publication it appears in.
func collectPerPublication(snap *pubrecord.Snapshot, home affiliation.Home,
	entities func(split affiliation.Split) []string) map[string]int {

	counts := make(map[string]int)
	for _, p := range snap.Publications {
		auths := parseAuthorships(p)
		if len(auths) == 0 {
			continue
		}
		split := affiliation.SplitAuthorships(auths, home)

		seen := mapset.NewSet[string]()
		for _, e := range entities(split) {
			seen.Add(e)
		}
		for e := range seen.Iter() {
			counts[e]++
		}
	}
	return counts
}

// ExternalAuthorCounts counts publications per external collaborating author.
func ExternalAuthorCounts(snap *pubrecord.Snapshot, home affiliation.Home) map[string]int {
	return collectPerPublication(snap, home, func(split affiliation.Split) []string {
		var names []string
		for _, a := range split.External {
			names = append(names, a.Name("External Unknown"))
		}
		return names
	})
}

// HomeAuthorCounts counts publications per home-institution author.
func HomeAuthorCounts(snap *pubrecord.Snapshot, home affiliation.Home) map[string]int {
	return collectPerPublication(snap, home, func(split affiliation.Split) []string {
		var names []string
		for _, a := range split.Home {
			names = append(names, a.Name("Home Unknown"))
		}
		return names
	})
}

// ExternalInstitutionCounts counts publications per external institution,
// excluding the home institution itself.
func ExternalInstitutionCounts(snap *pubrecord.Snapshot, home affiliation.Home) map[string]int {
	return collectPerPublication(snap, home, func(split affiliation.Split) []string {
		var names []string
		for _, a := range split.External {
			names = append(names, affiliation.ExternalInstitutions(a, home)...)
		}
		return names
	})
}

// ExternalCountryCounts counts publications per external country code.
func ExternalCountryCounts(snap *pubrecord.Snapshot, home affiliation.Home) map[string]int {
	return collectPerPublication(snap, home, func(split affiliation.Split) []string {
		var codes []string
		for _, a := range split.External {
			codes = append(codes, affiliation.ExternalCountries(a)...)
		}
		return codes
	})
}

// DepartmentCounts counts publications per home department label.
func DepartmentCounts(snap *pubrecord.Snapshot, home affiliation.Home) map[string]int {
	return collectPerPublication(snap, home, func(split affiliation.Split) []string {
		var depts []string
		for _, a := range split.Home {
			depts = append(depts, affiliation.Departments(a, home.Name)...)
		}
		return depts
	})
}

// Rank orders counts by frequency descending, ties broken lexicographically
// by entity so re-running aggregation over the same snapshot is reproducible.
func Rank(counts map[string]int) []EntityCount {
	ranked := make([]EntityCount, 0, len(counts))
	for entity, count := range counts {
		ranked = append(ranked, EntityCount{Entity: entity, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Entity < ranked[j].Entity
	})
	return ranked
}

// TopN returns at most n entities by frequency.
func TopN(counts map[string]int, n int) []EntityCount {
	ranked := Rank(counts)
	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// entitySet builds a membership set from ranked entities.
func entitySet(ranked []EntityCount) map[string]bool {
	set := make(map[string]bool, len(ranked))
	for _, e := range ranked {
		set[e.Entity] = true
	}
	return set
}

// sortPairs orders pair counts by count descending, then by entity names.
func sortPairs(pairs []PairCount) {
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Count != pairs[j].Count {
			return pairs[i].Count > pairs[j].Count
		}
		if pairs[i].A != pairs[j].A {
			return pairs[i].A < pairs[j].A
		}
		return pairs[i].B < pairs[j].B
	})
}
