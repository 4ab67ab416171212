package viz

import (
	"github.com/aidi-lab/pubnet/internal/collab"
	"github.com/aidi-lab/pubnet/internal/country"
)

// placeholderFlow returns the no-data projection for a titled flow layout.
func placeholderFlow(title string) *FlowData {
	return &FlowData{Title: title, Placeholder: PlaceholderText}
}

// BuildAuthorFlow lays out home authors against external collaborators.
// Home authors form the left color class, externals the right; one link per
// retained pair, weighted by shared publication count.
func BuildAuthorFlow(title string, bp collab.Bipartite) *FlowData {
	if len(bp.Pairs) == 0 {
		return placeholderFlow(title)
	}

	flow := &FlowData{Title: title}
	// An author can rank in both top lists (home on some papers, external
	// on others), so the same label may name two distinct nodes. Index by
	// label and class to keep them separate.
	index := make(map[[2]string]int)
	for _, e := range bp.Home {
		index[[2]string{e.Entity, ClassHome}] = len(flow.Nodes)
		flow.Nodes = append(flow.Nodes, FlowNode{Label: e.Entity, Class: ClassHome})
	}
	for _, e := range bp.External {
		index[[2]string{e.Entity, ClassExternal}] = len(flow.Nodes)
		flow.Nodes = append(flow.Nodes, FlowNode{Label: e.Entity, Class: ClassExternal})
	}

	for _, p := range bp.Pairs {
		flow.Links = append(flow.Links, FlowLink{
			Source: index[[2]string{p.A, ClassHome}],
			Target: index[[2]string{p.B, ClassExternal}],
			Value:  p.Count,
		})
	}
	return flow
}

// BuildFanoutFlow lays out a single home node fanning out to top-N
// collaborating entities (institutions or countries), weighted by
// collaboration count.
func BuildFanoutFlow(title, homeLabel string, entities []collab.EntityCount) *FlowData {
	if len(entities) == 0 {
		return placeholderFlow(title)
	}

	flow := &FlowData{Title: title}
	flow.Nodes = append(flow.Nodes, FlowNode{Label: homeLabel, Class: ClassHome})
	for i, e := range entities {
		flow.Nodes = append(flow.Nodes, FlowNode{Label: e.Entity, Class: ClassExternal})
		flow.Links = append(flow.Links, FlowLink{Source: 0, Target: i + 1, Value: e.Count})
	}
	return flow
}

// BuildCountryFlow is BuildFanoutFlow with country codes resolved to names.
func BuildCountryFlow(title, homeLabel string, entities []collab.EntityCount) *FlowData {
	named := make([]collab.EntityCount, len(entities))
	for i, e := range entities {
		named[i] = collab.EntityCount{Entity: country.Name(e.Entity), Count: e.Count}
	}
	return BuildFanoutFlow(title, homeLabel, named)
}

// BuildDepartmentFlow lays out the department co-occurrence network. All
// nodes share the home color class; links carry unordered pair counts.
func BuildDepartmentFlow(title string, net collab.DepartmentNetwork) *FlowData {
	if len(net.Pairs) == 0 {
		return placeholderFlow(title)
	}

	flow := &FlowData{Title: title}
	index := make(map[string]int)
	for _, e := range net.Departments {
		index[e.Entity] = len(flow.Nodes)
		flow.Nodes = append(flow.Nodes, FlowNode{Label: e.Entity, Class: ClassHome})
	}
	for _, p := range net.Pairs {
		flow.Links = append(flow.Links, FlowLink{
			Source: index[p.A],
			Target: index[p.B],
			Value:  p.Count,
		})
	}
	return flow
}

// BuildMap converts country frequency counts to choropleth rows. Codes
// without an ISO mapping are dropped here but remain in bar-chart output.
func BuildMap(entities []collab.EntityCount) []MapRow {
	rows := make([]MapRow, 0, len(entities))
	for _, e := range entities {
		c, ok := country.Lookup(e.Entity)
		if !ok {
			continue
		}
		rows = append(rows, MapRow{
			Alpha2: c.Alpha2,
			Alpha3: c.Alpha3,
			Name:   c.Name,
			Count:  e.Count,
		})
	}
	return rows
}
