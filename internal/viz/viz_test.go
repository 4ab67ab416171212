package viz

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/aidi-lab/pubnet/internal/collab"
	"github.com/aidi-lab/pubnet/internal/pubrecord"
	"github.com/aidi-lab/pubnet/internal/topics"
)

func TestBuildAuthorFlow(t *testing.T) {
	bp := collab.Bipartite{
		Home:     []collab.EntityCount{{Entity: "Asem Mansour", Count: 5}},
		External: []collab.EntityCount{{Entity: "Jane Roe", Count: 3}},
		Pairs:    []collab.PairCount{{A: "Asem Mansour", B: "Jane Roe", Count: 3}},
	}

	flow := BuildAuthorFlow("Author collaboration", bp)
	if flow.IsEmpty() {
		t.Fatal("populated bipartite produced empty flow")
	}
	if len(flow.Nodes) != 2 {
		t.Fatalf("got %d nodes, want 2", len(flow.Nodes))
	}
	if flow.Nodes[0].Class != ClassHome || flow.Nodes[1].Class != ClassExternal {
		t.Errorf("node classes = %q, %q", flow.Nodes[0].Class, flow.Nodes[1].Class)
	}
	if len(flow.Links) != 1 {
		t.Fatalf("got %d links, want 1", len(flow.Links))
	}
	link := flow.Links[0]
	if flow.Nodes[link.Source].Label != "Asem Mansour" || flow.Nodes[link.Target].Label != "Jane Roe" {
		t.Errorf("link endpoints = %q -> %q",
			flow.Nodes[link.Source].Label, flow.Nodes[link.Target].Label)
	}
	if link.Value != 3 {
		t.Errorf("link value = %d, want 3", link.Value)
	}
}

func TestBuildAuthorFlowSameNameInBothClasses(t *testing.T) {
	// An author can rank home and external at once (home on some papers,
	// external on others). The home-side link must keep pointing at the
	// home node, not the external node of the same name.
	bp := collab.Bipartite{
		Home: []collab.EntityCount{{Entity: "Asem Mansour", Count: 4}},
		External: []collab.EntityCount{
			{Entity: "Asem Mansour", Count: 2},
			{Entity: "Jane Roe", Count: 3},
		},
		Pairs: []collab.PairCount{{A: "Asem Mansour", B: "Jane Roe", Count: 3}},
	}

	flow := BuildAuthorFlow("Author collaboration", bp)
	if len(flow.Nodes) != 3 {
		t.Fatalf("got %d nodes, want 3 (duplicate name keeps both nodes)", len(flow.Nodes))
	}
	if len(flow.Links) != 1 {
		t.Fatalf("got %d links, want 1", len(flow.Links))
	}
	src := flow.Nodes[flow.Links[0].Source]
	if src.Label != "Asem Mansour" || src.Class != ClassHome {
		t.Errorf("link source = %+v, want the home-class node", src)
	}
	dst := flow.Nodes[flow.Links[0].Target]
	if dst.Label != "Jane Roe" || dst.Class != ClassExternal {
		t.Errorf("link target = %+v, want the external Jane Roe node", dst)
	}
}

func TestBuildAuthorFlowPlaceholder(t *testing.T) {
	flow := BuildAuthorFlow("Author collaboration", collab.Bipartite{})
	if !flow.IsEmpty() {
		t.Error("empty bipartite should produce empty flow")
	}
	if flow.Placeholder != PlaceholderText {
		t.Errorf("placeholder = %q, want %q", flow.Placeholder, PlaceholderText)
	}
	if flow.Title != "Author collaboration" {
		t.Errorf("title = %q", flow.Title)
	}
}

func TestBuildFanoutFlow(t *testing.T) {
	entities := []collab.EntityCount{
		{Entity: "Mayo Clinic", Count: 12},
		{Entity: "MD Anderson Cancer Center", Count: 7},
	}
	flow := BuildFanoutFlow("Institutions", "King Hussein Cancer Center", entities)

	if len(flow.Nodes) != 3 {
		t.Fatalf("got %d nodes, want 3", len(flow.Nodes))
	}
	if flow.Nodes[0].Label != "King Hussein Cancer Center" || flow.Nodes[0].Class != ClassHome {
		t.Errorf("home node = %+v", flow.Nodes[0])
	}
	for _, link := range flow.Links {
		if link.Source != 0 {
			t.Errorf("fan-out link source = %d, want 0", link.Source)
		}
	}
	if flow.Links[0].Value != 12 || flow.Links[1].Value != 7 {
		t.Errorf("link values = %d, %d", flow.Links[0].Value, flow.Links[1].Value)
	}
}

func TestBuildCountryFlowResolvesNames(t *testing.T) {
	flow := BuildCountryFlow("Countries", "KHCC", []collab.EntityCount{
		{Entity: "US", Count: 4},
		{Entity: "ZZ", Count: 1},
	})
	if flow.Nodes[1].Label != "United States" {
		t.Errorf("mapped code label = %q", flow.Nodes[1].Label)
	}
	if flow.Nodes[2].Label != "ZZ" {
		t.Errorf("unmapped code should pass through, got %q", flow.Nodes[2].Label)
	}
}

func TestBuildDepartmentFlow(t *testing.T) {
	net := collab.DepartmentNetwork{
		Departments: []collab.EntityCount{
			{Entity: "Department of Internal Medicine", Count: 4},
			{Entity: "Department of Pediatrics", Count: 2},
		},
		Pairs: []collab.PairCount{
			{A: "Department of Internal Medicine", B: "Department of Pediatrics", Count: 2},
		},
	}
	flow := BuildDepartmentFlow("Departments", net)
	if len(flow.Nodes) != 2 || len(flow.Links) != 1 {
		t.Fatalf("nodes = %d, links = %d", len(flow.Nodes), len(flow.Links))
	}
	for _, n := range flow.Nodes {
		if n.Class != ClassHome {
			t.Errorf("department node class = %q, want %q", n.Class, ClassHome)
		}
	}
}

func TestBuildMapDropsUnmappedCodes(t *testing.T) {
	rows := BuildMap([]collab.EntityCount{
		{Entity: "JO", Count: 9},
		{Entity: "XX", Count: 5},
	})
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if rows[0].Alpha3 != "JOR" || rows[0].Count != 9 {
		t.Errorf("row = %+v", rows[0])
	}
}

func topicSnapshot() *pubrecord.Snapshot {
	concepts := `[{"display_name":"Cancer"},{"display_name":"Immunotherapy"},{"display_name":"Oncology"}]`
	pubs := []pubrecord.Publication{
		{ID: "W1", ConceptsJSON: concepts},
		{ID: "W2", ConceptsJSON: concepts},
		{ID: "W3", ConceptsJSON: concepts},
	}
	return pubrecord.NewSnapshot(pubs, nil)
}

func TestBuildTopicGraph(t *testing.T) {
	net := topics.Build(topicSnapshot(), 3, 2)
	g := BuildTopicGraph("Topic network", net)

	if g.IsEmpty() {
		t.Fatal("populated network produced empty graph")
	}
	if len(g.Nodes) != 3 {
		t.Fatalf("got %d nodes, want 3", len(g.Nodes))
	}
	for _, n := range g.Nodes {
		if n.Papers != 3 {
			t.Errorf("node %s papers = %d, want 3", n.ID, n.Papers)
		}
		if n.Degree != 2 {
			t.Errorf("node %s degree = %d, want 2", n.ID, n.Degree)
		}
		if n.Color != 1.0 {
			t.Errorf("node %s color = %v, want 1.0 on uniform degrees", n.ID, n.Color)
		}
		if n.Size <= 0 {
			t.Errorf("node %s size = %v", n.ID, n.Size)
		}
		if n.X < 0 || n.X > 1 || n.Y < 0 || n.Y > 1 {
			t.Errorf("node %s position (%v, %v) outside unit square", n.ID, n.X, n.Y)
		}
	}
	if len(g.Edges) != 3 {
		t.Errorf("got %d edges, want 3", len(g.Edges))
	}
}

func TestBuildTopicGraphDeterministic(t *testing.T) {
	net := topics.Build(topicSnapshot(), 3, 2)
	first := BuildTopicGraph("Topic network", net)
	second := BuildTopicGraph("Topic network", net)

	if len(first.Nodes) != len(second.Nodes) {
		t.Fatalf("node counts differ: %d vs %d", len(first.Nodes), len(second.Nodes))
	}
	for i := range first.Nodes {
		if first.Nodes[i] != second.Nodes[i] {
			t.Errorf("node %d differs across runs: %+v vs %+v",
				i, first.Nodes[i], second.Nodes[i])
		}
	}
}

func TestBuildTopicGraphPlaceholder(t *testing.T) {
	g := BuildTopicGraph("Topic network", topics.Build(pubrecord.Empty(), 3, 2))
	if !g.IsEmpty() {
		t.Error("empty network should produce empty graph")
	}
	if g.Placeholder != PlaceholderText {
		t.Errorf("placeholder = %q", g.Placeholder)
	}
}

func TestToCytoscapeJSON(t *testing.T) {
	g := &ForceGraph{
		Title: "Topic network",
		Nodes: []ForceNode{{ID: "Cancer"}, {ID: "Oncology"}},
		Edges: []ForceEdge{{Source: "Cancer", Target: "Oncology", Weight: 2}},
	}

	raw, err := g.ToCytoscapeJSON()
	if err != nil {
		t.Fatalf("ToCytoscapeJSON: %v", err)
	}
	var elements CytoscapeElements
	if err := json.Unmarshal([]byte(raw), &elements); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(elements.Nodes) != 2 || len(elements.Edges) != 1 {
		t.Errorf("nodes = %d, edges = %d", len(elements.Nodes), len(elements.Edges))
	}
	edge := elements.Edges[0].Data
	if edge.Weight != 2 {
		t.Errorf("edge weight = %d", edge.Weight)
	}
	if !strings.HasPrefix(edge.ID, "Cancer-Oncology-") {
		t.Errorf("edge id = %q", edge.ID)
	}
}
