package metrics

import (
	"sort"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/aidi-lab/pubnet/internal/pubrecord"
)

// AuthorMetrics is one home author's aggregate row.
type AuthorMetrics struct {
	AuthorID          string  `json:"author_id"`
	Name              string  `json:"name"`
	Papers            int     `json:"papers"`
	Citations         int     `json:"citations"`
	Corresponding     int     `json:"corresponding"`
	CitationsPerPaper float64 `json:"citations_per_paper"`
}

// TopAuthorsByCitations aggregates per-author totals over home authorship
// rows and returns the top k by citation count. Papers are counted once per
// author even when the author carries multiple affiliation rows.
func TopAuthorsByCitations(rows []pubrecord.HomeAuthor, k int) []AuthorMetrics {
	type state struct {
		name          string
		papers        mapset.Set[string]
		citations     map[string]int
		corresponding int
	}
	byAuthor := make(map[string]*state)

	for _, r := range rows {
		key := r.AuthorID
		if key == "" {
			key = r.AuthorName
		}
		st, ok := byAuthor[key]
		if !ok {
			st = &state{
				name:      r.AuthorName,
				papers:    mapset.NewSet[string](),
				citations: make(map[string]int),
			}
			byAuthor[key] = st
		}
		if st.papers.Add(r.PaperID) {
			st.citations[r.PaperID] = r.Citations
		}
		if r.IsCorresponding {
			st.corresponding++
		}
	}

	out := make([]AuthorMetrics, 0, len(byAuthor))
	for id, st := range byAuthor {
		total := 0
		for _, c := range st.citations {
			total += c
		}
		m := AuthorMetrics{
			AuthorID:      id,
			Name:          st.name,
			Papers:        st.papers.Cardinality(),
			Citations:     total,
			Corresponding: st.corresponding,
		}
		if m.Papers > 0 {
			m.CitationsPerPaper = round2(float64(total) / float64(m.Papers))
		}
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Citations != out[j].Citations {
			return out[i].Citations > out[j].Citations
		}
		return out[i].Name < out[j].Name
	})
	if k > 0 && len(out) > k {
		out = out[:k]
	}
	return out
}

// PositionCount is one author position's share of home authorship rows.
type PositionCount struct {
	Position string `json:"position"`
	Count    int    `json:"count"`
}

// PositionDistribution counts home authorship rows by author position
// (first, middle, last), in manuscript order. Anything outside the known
// positions folds into the unknown bucket so row totals stay conserved.
func PositionDistribution(rows []pubrecord.HomeAuthor) []PositionCount {
	counts := make(map[string]int)
	for _, r := range rows {
		pos := r.Position
		switch pos {
		case "first", "middle", "last":
		default:
			pos = pubrecord.UnknownPosition
		}
		counts[pos]++
	}

	order := []string{"first", "middle", "last", pubrecord.UnknownPosition}
	out := make([]PositionCount, 0, len(counts))
	for _, pos := range order {
		if n, ok := counts[pos]; ok {
			out = append(out, PositionCount{Position: pos, Count: n})
		}
	}
	return out
}

// TopAuthorsByPapers returns the top k home authors by unique paper count.
func TopAuthorsByPapers(rows []pubrecord.HomeAuthor, k int) []AuthorMetrics {
	all := TopAuthorsByCitations(rows, 0)
	sort.Slice(all, func(i, j int) bool {
		if all[i].Papers != all[j].Papers {
			return all[i].Papers > all[j].Papers
		}
		return all[i].Name < all[j].Name
	})
	if k > 0 && len(all) > k {
		all = all[:k]
	}
	return all
}
