// Package topics builds research-topic co-occurrence networks from the
// concepts attached to publications.
package topics

import (
	"encoding/json"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/aidi-lab/pubnet/internal/pubrecord"
)

// Concept is one tagged research topic on a publication.
type Concept struct {
	DisplayName string  `json:"display_name"`
	Score       float64 `json:"score,omitempty"`
}

// ParseConcepts decodes a concepts JSON value, failing closed on any shape
// mismatch.
func ParseConcepts(raw string) ([]Concept, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	var concepts []Concept
	if err := json.Unmarshal([]byte(raw), &concepts); err != nil {
		return nil, err
	}
	return concepts, nil
}

// Edge is an unordered topic pair with its co-occurrence count. A is always
// lexicographically before B.
type Edge struct {
	A     string `json:"a"`
	B     string `json:"b"`
	Count int    `json:"count"`
}

// Network holds the topic co-occurrence structure after cutoffs.
type Network struct {
	// Counts maps each retained topic to the number of papers tagged with it.
	Counts map[string]int `json:"counts"`
	// Edges are topic pairs meeting the minimum-connections cutoff, with
	// both ends meeting the minimum-papers cutoff.
	Edges []Edge `json:"edges"`
	// Papers maps each topic to the publications tagged with it, for
	// drill-down from a selected node.
	Papers map[string][]string `json:"papers"`
}

// Build aggregates topic counts and pairwise co-occurrences across the
// snapshot. Topics below minPapers and pairs below minConnections are
// dropped. A malformed concepts value skips that publication only.
func Build(snap *pubrecord.Snapshot, minPapers, minConnections int) *Network {
	counts := make(map[string]int)
	papers := make(map[string][]string)
	pairCounts := make(map[[2]string]int)

	for _, p := range snap.Publications {
		concepts, err := ParseConcepts(p.ConceptsJSON)
		if err != nil {
			log.WithField("paper", p.ID).WithError(err).Debug("skipping malformed concepts")
			continue
		}

		var names []string
		for _, c := range concepts {
			if c.DisplayName == "" {
				continue
			}
			counts[c.DisplayName]++
			papers[c.DisplayName] = append(papers[c.DisplayName], p.ID)
			names = append(names, c.DisplayName)
		}

		for i := 0; i < len(names); i++ {
			for j := i + 1; j < len(names); j++ {
				a, b := names[i], names[j]
				if a > b {
					a, b = b, a
				}
				pairCounts[[2]string{a, b}]++
			}
		}
	}

	significant := make(map[string]bool)
	for topic, count := range counts {
		if count >= minPapers {
			significant[topic] = true
		}
	}

	var edges []Edge
	for key, count := range pairCounts {
		if count < minConnections || !significant[key[0]] || !significant[key[1]] {
			continue
		}
		edges = append(edges, Edge{A: key[0], B: key[1], Count: count})
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].Count != edges[j].Count {
			return edges[i].Count > edges[j].Count
		}
		if edges[i].A != edges[j].A {
			return edges[i].A < edges[j].A
		}
		return edges[i].B < edges[j].B
	})

	retainedCounts := make(map[string]int)
	retainedPapers := make(map[string][]string)
	for _, e := range edges {
		for _, topic := range []string{e.A, e.B} {
			if _, ok := retainedCounts[topic]; ok {
				continue
			}
			retainedCounts[topic] = counts[topic]
			retainedPapers[topic] = papers[topic]
		}
	}

	return &Network{Counts: retainedCounts, Edges: edges, Papers: retainedPapers}
}

// IsEmpty reports whether the network has no retained topics.
func (n *Network) IsEmpty() bool {
	return len(n.Counts) == 0
}

// Topics returns the retained topic names in lexicographic order.
func (n *Network) Topics() []string {
	topics := make([]string, 0, len(n.Counts))
	for topic := range n.Counts {
		topics = append(topics, topic)
	}
	sort.Strings(topics)
	return topics
}
