package viz

import (
	"math"
	"sort"

	"github.com/dominikbraun/graph"

	"github.com/aidi-lab/pubnet/internal/topics"
)

// BuildTopicGraph projects a topic co-occurrence network into a positioned
// force-directed layout. Node size grows with the log of the paper count,
// node color with degree centrality normalized to the busiest node.
func BuildTopicGraph(title string, net *topics.Network) *ForceGraph {
	if net.IsEmpty() {
		return &ForceGraph{Title: title, Placeholder: PlaceholderText}
	}

	g := graph.New(graph.StringHash, graph.Weighted())
	for _, topic := range net.Topics() {
		_ = g.AddVertex(topic)
	}
	for _, e := range net.Edges {
		_ = g.AddEdge(e.A, e.B, graph.EdgeWeight(e.Count))
	}

	adjacency, err := g.AdjacencyMap()
	if err != nil {
		return &ForceGraph{Title: title, Placeholder: PlaceholderText}
	}

	maxDegree := 1
	degrees := make(map[string]int, len(adjacency))
	for topic, neighbors := range adjacency {
		degrees[topic] = len(neighbors)
		if len(neighbors) > maxDegree {
			maxDegree = len(neighbors)
		}
	}

	weighted := make(map[[2]string]float64, len(net.Edges))
	for _, e := range net.Edges {
		weighted[[2]string{e.A, e.B}] = float64(e.Count)
	}
	positions := springLayout(net.Topics(), weighted)

	out := &ForceGraph{Title: title}
	for _, topic := range net.Topics() {
		p := positions[topic]
		count := net.Counts[topic]
		out.Nodes = append(out.Nodes, ForceNode{
			ID:     topic,
			X:      p[0],
			Y:      p[1],
			Papers: count,
			Degree: degrees[topic],
			Size:   math.Log1p(float64(count)) * 20,
			Color:  float64(degrees[topic]) / float64(maxDegree),
		})
	}
	for _, e := range net.Edges {
		out.Edges = append(out.Edges, ForceEdge{Source: e.A, Target: e.B, Weight: e.Count})
	}
	sort.Slice(out.Nodes, func(i, j int) bool { return out.Nodes[i].ID < out.Nodes[j].ID })

	return out
}
