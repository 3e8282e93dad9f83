package filter

import (
	"sort"

	"github.com/paperfeed/paperlens/internal/paper"
)

// DisabledSet marks filter categories whose controls are inert. A disabled
// category keeps its stored selection; the evaluator just skips it and the
// renderer greys it out.
type DisabledSet map[Category]bool

// Disabled computes the inert categories from the applied state. The
// dependency map is fixed: recommendation/novelty/impact only mean something
// for papers with completed LLM scores, and the two numeric h-index ranges
// only mean something when the h-index toggle asks for papers with analytics.
func Disabled(current State) DisabledSet {
	d := make(DisabledSet)
	if !current.ScoreStatus[paper.ScoreCompleted] {
		d[CategoryRecommendation] = true
		d[CategoryNovelty] = true
		d[CategoryImpact] = true
	}
	if !current.HIndexFound {
		d[CategoryHighestHIndex] = true
		d[CategoryAverageHIndex] = true
	}
	return d
}

// Keys returns the disabled category keys in stable order for the renderer.
func (d DisabledSet) Keys() []Category {
	keys := make([]Category, 0, len(d))
	for c, disabled := range d {
		if disabled {
			keys = append(keys, c)
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
