package viz

import (
	"math"
	"math/rand"
	"sort"
)

const layoutIterations = 50

// springLayout positions nodes with a Fruchterman-Reingold force simulation
// inside the unit square. The ideal edge length is 2/sqrt(n). Positions are
// seeded from a fixed source so repeated runs over the same graph produce
// identical coordinates.
func springLayout(nodes []string, edges map[[2]string]float64) map[string][2]float64 {
	n := len(nodes)
	pos := make(map[string][2]float64, n)
	if n == 0 {
		return pos
	}
	if n == 1 {
		pos[nodes[0]] = [2]float64{0.5, 0.5}
		return pos
	}

	ordered := append([]string(nil), nodes...)
	sort.Strings(ordered)

	rng := rand.New(rand.NewSource(42))
	for _, node := range ordered {
		pos[node] = [2]float64{rng.Float64(), rng.Float64()}
	}

	k := 2.0 / math.Sqrt(float64(n))
	temp := 0.1
	cooling := temp / float64(layoutIterations+1)

	maxWeight := 1.0
	for _, w := range edges {
		if w > maxWeight {
			maxWeight = w
		}
	}

	disp := make(map[string][2]float64, n)
	for iter := 0; iter < layoutIterations; iter++ {
		for _, node := range ordered {
			disp[node] = [2]float64{}
		}

		// Repulsion between every node pair.
		for i := 0; i < len(ordered); i++ {
			for j := i + 1; j < len(ordered); j++ {
				a, b := ordered[i], ordered[j]
				dx := pos[a][0] - pos[b][0]
				dy := pos[a][1] - pos[b][1]
				dist := math.Hypot(dx, dy)
				if dist < 1e-9 {
					dist = 1e-9
				}
				force := k * k / dist
				fx, fy := dx/dist*force, dy/dist*force
				disp[a] = [2]float64{disp[a][0] + fx, disp[a][1] + fy}
				disp[b] = [2]float64{disp[b][0] - fx, disp[b][1] - fy}
			}
		}

		// Attraction along edges, scaled by normalized weight.
		for pair, w := range edges {
			a, b := pair[0], pair[1]
			dx := pos[a][0] - pos[b][0]
			dy := pos[a][1] - pos[b][1]
			dist := math.Hypot(dx, dy)
			if dist < 1e-9 {
				dist = 1e-9
			}
			force := dist * dist / k * (w / maxWeight)
			fx, fy := dx/dist*force, dy/dist*force
			disp[a] = [2]float64{disp[a][0] - fx, disp[a][1] - fy}
			disp[b] = [2]float64{disp[b][0] + fx, disp[b][1] + fy}
		}

		for _, node := range ordered {
			dx, dy := disp[node][0], disp[node][1]
			dist := math.Hypot(dx, dy)
			if dist > 1e-9 {
				step := math.Min(dist, temp)
				pos[node] = [2]float64{
					clamp01(pos[node][0] + dx/dist*step),
					clamp01(pos[node][1] + dy/dist*step),
				}
			}
		}
		temp -= cooling
	}

	return pos
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
