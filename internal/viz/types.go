// Package viz projects collaboration aggregates into renderable graph
// structures. Builders are pure: they never mutate their aggregate input,
// and an empty aggregate yields a placeholder instead of an invalid chart.
package viz

// Node color classes for flow layouts.
const (
	ClassHome     = "home"
	ClassExternal = "external"
)

// PlaceholderText is the annotation carried by empty projections.
const PlaceholderText = "data unavailable"

// FlowNode is one endpoint in a weighted bipartite flow layout.
type FlowNode struct {
	Label string `json:"label"`
	Class string `json:"class"` // home or external
}

// FlowLink is one directed weighted edge between flow nodes, addressed by
// node index.
type FlowLink struct {
	Source int `json:"source"`
	Target int `json:"target"`
	Value  int `json:"value"`
}

// FlowData is a weighted bipartite flow layout (one node per entity, one
// link per retained pair).
type FlowData struct {
	Title       string     `json:"title"`
	Nodes       []FlowNode `json:"nodes"`
	Links       []FlowLink `json:"links"`
	Placeholder string     `json:"placeholder,omitempty"`
}

// IsEmpty reports whether the layout carries no nodes.
func (f *FlowData) IsEmpty() bool {
	return len(f.Nodes) == 0
}

// ForceNode is one node in a force-directed layout. Size grows
// logarithmically with paper count; Color is normalized degree centrality.
type ForceNode struct {
	ID     string  `json:"id"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Papers int     `json:"papers"`
	Degree int     `json:"degree"`
	Size   float64 `json:"size"`
	Color  float64 `json:"color"`
}

// ForceEdge is one weighted edge in a force-directed layout.
type ForceEdge struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Weight int    `json:"weight"`
}

// ForceGraph is a force-directed node-link layout.
type ForceGraph struct {
	Title       string      `json:"title"`
	Nodes       []ForceNode `json:"nodes"`
	Edges       []ForceEdge `json:"edges"`
	Placeholder string      `json:"placeholder,omitempty"`
}

// IsEmpty reports whether the graph carries no nodes.
func (g *ForceGraph) IsEmpty() bool {
	return len(g.Nodes) == 0
}

// MapRow is one country's weight in a choropleth projection.
type MapRow struct {
	Alpha2 string `json:"alpha2"`
	Alpha3 string `json:"alpha3"`
	Name   string `json:"name"`
	Count  int    `json:"count"`
}
