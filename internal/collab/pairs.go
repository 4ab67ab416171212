package collab

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/aidi-lab/pubnet/internal/affiliation"
	"github.com/aidi-lab/pubnet/internal/pubrecord"
)

// Bipartite holds home-author and external-author frequencies plus the
// co-authorship pairs retained between the two top-N sets.
type Bipartite struct {
	Home     []EntityCount `json:"home"`
	External []EntityCount `json:"external"`
	Pairs    []PairCount   `json:"pairs"`
}

// AuthorPairs builds home-author x external-author collaboration pairs
// across the snapshot. Only pairs whose members are in their respective
// top-N frequency sets are retained; a pair counts once per publication.
// Home authors never appear on the external side, so no pair can join two
// home-classified authors.
func AuthorPairs(snap *pubrecord.Snapshot, home affiliation.Home, topHome, topExternal int) Bipartite {
	homeCounts := make(map[string]int)
	extCounts := make(map[string]int)
	pairCounts := make(map[[2]string]int)

	for _, p := range snap.Publications {
		auths := parseAuthorships(p)
		if len(auths) == 0 {
			continue
		}
		split := affiliation.SplitAuthorships(auths, home)

		homeSet := mapset.NewSet[string]()
		for _, a := range split.Home {
			homeSet.Add(a.Name("Home Unknown"))
		}
		extSet := mapset.NewSet[string]()
		for _, a := range split.External {
			extSet.Add(a.Name("External Unknown"))
		}

		for h := range homeSet.Iter() {
			homeCounts[h]++
			for e := range extSet.Iter() {
				pairCounts[[2]string{h, e}]++
			}
		}
		for e := range extSet.Iter() {
			extCounts[e]++
		}
	}

	topH := TopN(homeCounts, topHome)
	topE := TopN(extCounts, topExternal)
	homeSet := entitySet(topH)
	extSet := entitySet(topE)

	var pairs []PairCount
	for key, count := range pairCounts {
		if homeSet[key[0]] && extSet[key[1]] {
			pairs = append(pairs, PairCount{A: key[0], B: key[1], Count: count})
		}
	}
	sortPairs(pairs)

	return Bipartite{Home: topH, External: topE, Pairs: pairs}
}

// DepartmentNetwork holds department frequencies and unordered
// department-to-department pairs.
type DepartmentNetwork struct {
	Departments []EntityCount `json:"departments"`
	Pairs       []PairCount   `json:"pairs"`
}

// DepartmentPairs builds unordered department co-occurrence pairs across the
// snapshot, restricted to the top-N departments by frequency. A pair is
// sorted before counting, so (A,B) and (B,A) accumulate into one counter,
// and counts once per publication.
func DepartmentPairs(snap *pubrecord.Snapshot, home affiliation.Home, topN int) DepartmentNetwork {
	deptCounts := make(map[string]int)
	pairCounts := make(map[[2]string]int)

	for _, p := range snap.Publications {
		auths := parseAuthorships(p)
		if len(auths) == 0 {
			continue
		}
		split := affiliation.SplitAuthorships(auths, home)

		deptSet := mapset.NewSet[string]()
		for _, a := range split.Home {
			for _, d := range affiliation.Departments(a, home.Name) {
				deptSet.Add(d)
			}
		}

		depts := deptSet.ToSlice()
		for _, d := range depts {
			deptCounts[d]++
		}
		for i := 0; i < len(depts); i++ {
			for j := 0; j < len(depts); j++ {
				if i == j {
					continue
				}
				a, b := depts[i], depts[j]
				if a > b {
					continue // count each unordered pair once
				}
				pairCounts[[2]string{a, b}]++
			}
		}
	}

	top := TopN(deptCounts, topN)
	topSet := entitySet(top)

	var pairs []PairCount
	for key, count := range pairCounts {
		if topSet[key[0]] && topSet[key[1]] {
			pairs = append(pairs, PairCount{A: key[0], B: key[1], Count: count})
		}
	}
	sortPairs(pairs)

	return DepartmentNetwork{Departments: top, Pairs: pairs}
}
