package generate

import "github.com/vovakirdan/pipeforge/internal/core"

// CompressionProfile names the side(s) a gameplay hazard advances from and
// the fractional bounding box goal nodes are placed in. The zone is biased
// toward the threatened side(s) so goals sit nearer the danger.
type CompressionProfile struct {
	Name   string
	X0, X1 float64 // Fractional x bounds, 0 = left edge, 1 = right edge
	Y0, Y1 float64 // Fractional y bounds, 0 = top edge, 1 = bottom edge
}

// Profiles lists every known compression profile.
var Profiles = []CompressionProfile{
	{Name: "top", X0: 0.15, X1: 0.85, Y0: 0.10, Y1: 0.45},
	{Name: "bottom", X0: 0.15, X1: 0.85, Y0: 0.55, Y1: 0.90},
	{Name: "left", X0: 0.10, X1: 0.45, Y0: 0.15, Y1: 0.85},
	{Name: "right", X0: 0.55, X1: 0.90, Y0: 0.15, Y1: 0.85},
	{Name: "sides", X0: 0.10, X1: 0.90, Y0: 0.30, Y1: 0.70},
	{Name: "vise", X0: 0.30, X1: 0.70, Y0: 0.10, Y1: 0.90},
	{Name: "all", X0: 0.15, X1: 0.85, Y0: 0.15, Y1: 0.85},
}

// ProfileByName looks up a profile.
func ProfileByName(name string) (CompressionProfile, bool) {
	for _, p := range Profiles {
		if p.Name == name {
			return p, true
		}
	}
	return CompressionProfile{}, false
}

// RandomProfile picks a profile uniformly.
func RandomProfile(rng *SimpleRNG) CompressionProfile {
	return Profiles[rng.Intn(len(Profiles))]
}

// GoalSeparation returns the minimum pairwise Manhattan distance between
// goals for a w x h grid: one third of the smaller dimension, at least 3.
func GoalSeparation(w, h int) int {
	min := w
	if h < min {
		min = h
	}
	sep := min / 3
	if sep < 3 {
		sep = 3
	}
	return sep
}

// PlaceGoals samples count goal positions inside the profile's zone,
// greedily accepting candidates in randomized order while enforcing the
// minimum pairwise separation. Returns ok=false when the zone cannot fit
// the requested count, which aborts the whole generation attempt upstream.
func PlaceGoals(w, h, count int, p CompressionProfile, rng *SimpleRNG) ([]core.Coord, bool) {
	if count <= 0 {
		return nil, false
	}

	x0 := clampCell(int(p.X0*float64(w-1)+0.5), 1, w-2)
	x1 := clampCell(int(p.X1*float64(w-1)+0.5), 1, w-2)
	y0 := clampCell(int(p.Y0*float64(h-1)+0.5), 1, h-2)
	y1 := clampCell(int(p.Y1*float64(h-1)+0.5), 1, h-2)
	if x1 < x0 || y1 < y0 {
		return nil, false
	}

	candidates := make([]core.Coord, 0, (x1-x0+1)*(y1-y0+1))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			candidates = append(candidates, core.C(x, y))
		}
	}
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	sep := GoalSeparation(w, h)
	goals := make([]core.Coord, 0, count)
	for _, c := range candidates {
		ok := true
		for _, g := range goals {
			if c.Manhattan(g) < sep {
				ok = false
				break
			}
		}
		if ok {
			goals = append(goals, c)
			if len(goals) == count {
				return goals, true
			}
		}
	}
	return nil, false
}

func clampCell(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
