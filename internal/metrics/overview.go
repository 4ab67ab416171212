// Package metrics computes publication-level and author-level summary
// statistics over a loaded snapshot. All functions are pure and return
// zero-length structures for empty input.
package metrics

import (
	"math"
	"sort"

	"github.com/aidi-lab/pubnet/internal/pubrecord"
)

// YearMetrics is one publication year's aggregate row.
type YearMetrics struct {
	Year          int     `json:"year"`
	Publications  int     `json:"publications"`
	Citations     int     `json:"citations"`
	MeanCitations float64 `json:"mean_citations"`
}

// Summary holds corpus-wide totals.
type Summary struct {
	Publications    int     `json:"publications"`
	Citations       int     `json:"citations"`
	MeanCitations   float64 `json:"mean_citations"`
	OpenAccess      int     `json:"open_access"`
	OpenAccessShare float64 `json:"open_access_share"`
}

// Summarize computes corpus-wide totals for the snapshot.
func Summarize(snap *pubrecord.Snapshot) Summary {
	var s Summary
	for _, p := range snap.Publications {
		s.Publications++
		s.Citations += p.Citations
		if p.OpenAccess {
			s.OpenAccess++
		}
	}
	if s.Publications > 0 {
		s.MeanCitations = round2(float64(s.Citations) / float64(s.Publications))
		s.OpenAccessShare = round2(float64(s.OpenAccess) / float64(s.Publications))
	}
	return s
}

// ByYear aggregates publication and citation counts per publication year,
// oldest first. Papers with an unknown year are excluded.
func ByYear(snap *pubrecord.Snapshot) []YearMetrics {
	byYear := make(map[int]*YearMetrics)
	for _, p := range snap.Publications {
		if p.Year == 0 {
			continue
		}
		row, ok := byYear[p.Year]
		if !ok {
			row = &YearMetrics{Year: p.Year}
			byYear[p.Year] = row
		}
		row.Publications++
		row.Citations += p.Citations
	}

	rows := make([]YearMetrics, 0, len(byYear))
	for _, row := range byYear {
		row.MeanCitations = round2(float64(row.Citations) / float64(row.Publications))
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Year < rows[j].Year })
	return rows
}

// CategoryCount is one categorical value's frequency.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// QuartileDistribution counts papers per journal quartile, Q1 first and the
// unknown bucket last.
func QuartileDistribution(snap *pubrecord.Snapshot) []CategoryCount {
	counts := make(map[string]int)
	for _, p := range snap.Publications {
		counts[p.Quartile]++
	}
	return orderedCategories(counts, quartileRank)
}

// TypeDistribution counts papers per publication type, most frequent first.
func TypeDistribution(snap *pubrecord.Snapshot) []CategoryCount {
	counts := make(map[string]int)
	for _, p := range snap.Publications {
		counts[p.Type]++
	}

	rows := make([]CategoryCount, 0, len(counts))
	for cat, n := range counts {
		rows = append(rows, CategoryCount{Category: cat, Count: n})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Category < rows[j].Category
	})
	return rows
}

// Crosstab is a year-by-category count table. Categories carries the column
// order; Rows is keyed per year.
type Crosstab struct {
	Categories []string      `json:"categories"`
	Rows       []CrosstabRow `json:"rows"`
}

// CrosstabRow is one year's counts, aligned with Crosstab.Categories.
type CrosstabRow struct {
	Year   int   `json:"year"`
	Counts []int `json:"counts"`
}

// QuartileByYear cross-tabulates quartile counts per publication year.
func QuartileByYear(snap *pubrecord.Snapshot) Crosstab {
	return crosstab(snap, func(p pubrecord.Publication) string { return p.Quartile }, quartileRank)
}

// TypeByYear cross-tabulates publication-type counts per publication year.
func TypeByYear(snap *pubrecord.Snapshot) Crosstab {
	return crosstab(snap, func(p pubrecord.Publication) string { return p.Type }, nil)
}

func crosstab(snap *pubrecord.Snapshot, key func(pubrecord.Publication) string, rank func(string) int) Crosstab {
	cells := make(map[int]map[string]int)
	catSet := make(map[string]bool)
	for _, p := range snap.Publications {
		if p.Year == 0 {
			continue
		}
		if cells[p.Year] == nil {
			cells[p.Year] = make(map[string]int)
		}
		k := key(p)
		cells[p.Year][k]++
		catSet[k] = true
	}

	categories := make([]string, 0, len(catSet))
	for cat := range catSet {
		categories = append(categories, cat)
	}
	if rank != nil {
		sort.Slice(categories, func(i, j int) bool {
			ri, rj := rank(categories[i]), rank(categories[j])
			if ri != rj {
				return ri < rj
			}
			return categories[i] < categories[j]
		})
	} else {
		sort.Strings(categories)
	}

	years := make([]int, 0, len(cells))
	for year := range cells {
		years = append(years, year)
	}
	sort.Ints(years)

	out := Crosstab{Categories: categories}
	for _, year := range years {
		row := CrosstabRow{Year: year, Counts: make([]int, len(categories))}
		for i, cat := range categories {
			row.Counts[i] = cells[year][cat]
		}
		out.Rows = append(out.Rows, row)
	}
	return out
}

// HistogramBucket is one impact-factor range with its paper count.
type HistogramBucket struct {
	Low   float64 `json:"low"`
	High  float64 `json:"high"`
	Count int     `json:"count"`
}

const histogramBuckets = 20

// ImpactFactorHistogram buckets papers by journal impact factor into 20
// equal-width ranges. Papers without an impact factor are excluded.
func ImpactFactorHistogram(snap *pubrecord.Snapshot) []HistogramBucket {
	var values []float64
	for _, p := range snap.Publications {
		if p.ImpactFactor > 0 {
			values = append(values, p.ImpactFactor)
		}
	}
	if len(values) == 0 {
		return nil
	}

	max := values[0]
	for _, v := range values {
		if v > max {
			max = v
		}
	}
	width := max / histogramBuckets
	if width == 0 {
		width = 1
	}

	buckets := make([]HistogramBucket, histogramBuckets)
	for i := range buckets {
		buckets[i].Low = round2(float64(i) * width)
		buckets[i].High = round2(float64(i+1) * width)
	}
	for _, v := range values {
		idx := int(v / width)
		if idx >= histogramBuckets {
			idx = histogramBuckets - 1
		}
		buckets[idx].Count++
	}
	return buckets
}

func orderedCategories(counts map[string]int, rank func(string) int) []CategoryCount {
	rows := make([]CategoryCount, 0, len(counts))
	for cat, n := range counts {
		rows = append(rows, CategoryCount{Category: cat, Count: n})
	}
	sort.Slice(rows, func(i, j int) bool {
		ri, rj := rank(rows[i].Category), rank(rows[j].Category)
		if ri != rj {
			return ri < rj
		}
		return rows[i].Category < rows[j].Category
	})
	return rows
}

func quartileRank(q string) int {
	switch q {
	case "Q1":
		return 0
	case "Q2":
		return 1
	case "Q3":
		return 2
	case "Q4":
		return 3
	default:
		return 4
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
