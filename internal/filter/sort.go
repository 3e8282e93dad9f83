package filter

import (
	"sort"
	"strings"

	"github.com/paperfeed/paperlens/internal/paper"
)

// SortKey selects the comparator for the visible sequence. Sort-key changes
// apply immediately, without the pending/commit step.
type SortKey string

const (
	SortRecommendationBest  SortKey = "recommendationBest"
	SortRecommendationWorst SortKey = "recommendationWorst"
	SortRelevanceDesc       SortKey = "relevanceDesc"
	SortRelevanceAsc        SortKey = "relevanceAsc"
	SortHighestHIndexDesc   SortKey = "highestHIndexDesc"
	SortHighestHIndexAsc    SortKey = "highestHIndexAsc"
	SortAverageHIndexDesc   SortKey = "averageHIndexDesc"
	SortAverageHIndexAsc    SortKey = "averageHIndexAsc"
	SortIDDesc              SortKey = "idDesc"
	SortIDAsc               SortKey = "idAsc"
	SortTitleAZ             SortKey = "titleAZ"
	SortTitleZA             SortKey = "titleZA"
)

// SortKeys returns every sort key in cycling order, default first.
func SortKeys() []SortKey {
	return []SortKey{
		SortRecommendationBest,
		SortRecommendationWorst,
		SortRelevanceDesc,
		SortRelevanceAsc,
		SortHighestHIndexDesc,
		SortHighestHIndexAsc,
		SortAverageHIndexDesc,
		SortAverageHIndexAsc,
		SortIDDesc,
		SortIDAsc,
		SortTitleAZ,
		SortTitleZA,
	}
}

// ParseSortKey validates a sort token, reporting ok=false for unknown ones.
func ParseSortKey(s string) (SortKey, bool) {
	for _, k := range SortKeys() {
		if string(k) == s {
			return k, true
		}
	}
	return "", false
}

// Label returns the sort key's display name.
func (k SortKey) Label() string {
	switch k {
	case SortRecommendationBest:
		return "Recommendation (best first)"
	case SortRecommendationWorst:
		return "Recommendation (worst first)"
	case SortRelevanceDesc:
		return "Relevance (high to low)"
	case SortRelevanceAsc:
		return "Relevance (low to high)"
	case SortHighestHIndexDesc:
		return "Highest h-index (high to low)"
	case SortHighestHIndexAsc:
		return "Highest h-index (low to high)"
	case SortAverageHIndexDesc:
		return "Average h-index (high to low)"
	case SortAverageHIndexAsc:
		return "Average h-index (low to high)"
	case SortIDDesc:
		return "Paper ID (newest first)"
	case SortIDAsc:
		return "Paper ID (oldest first)"
	case SortTitleAZ:
		return "Title (A-Z)"
	case SortTitleZA:
		return "Title (Z-A)"
	default:
		return string(k)
	}
}

// Compare orders two papers under the given sort key. It is a total order:
// every tie breaks by paper id ascending, so the result is deterministic no
// matter how degenerate the underlying data is.
func Compare(a, b paper.Paper, key SortKey, current State) int {
	switch key {
	case SortRecommendationBest:
		if c := compareRank(a.RecommendationScore.Rank(), b.RecommendationScore.Rank(), true); c != 0 {
			return c
		}
	case SortRecommendationWorst:
		if c := compareRank(a.RecommendationScore.Rank(), b.RecommendationScore.Rank(), false); c != 0 {
			return c
		}
	case SortRelevanceDesc:
		if c := compareFloat(relevanceWeight(b, current), relevanceWeight(a, current)); c != 0 {
			return c
		}
	case SortRelevanceAsc:
		if c := compareFloat(relevanceWeight(a, current), relevanceWeight(b, current)); c != 0 {
			return c
		}
	case SortHighestHIndexDesc:
		if c := compareNumericAbsent(a, b, a.HighestHIndex, b.HighestHIndex, true); c != 0 {
			return c
		}
	case SortHighestHIndexAsc:
		if c := compareNumericAbsent(a, b, a.HighestHIndex, b.HighestHIndex, false); c != 0 {
			return c
		}
	case SortAverageHIndexDesc:
		if c := compareNumericAbsent(a, b, a.AverageHIndex, b.AverageHIndex, true); c != 0 {
			return c
		}
	case SortAverageHIndexAsc:
		if c := compareNumericAbsent(a, b, a.AverageHIndex, b.AverageHIndex, false); c != 0 {
			return c
		}
	case SortIDDesc:
		if c := compareInt64(b.NumericID(), a.NumericID()); c != 0 {
			return c
		}
	case SortIDAsc:
		if c := compareInt64(a.NumericID(), b.NumericID()); c != 0 {
			return c
		}
	case SortTitleAZ:
		if c := strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title)); c != 0 {
			return c
		}
	case SortTitleZA:
		if c := strings.Compare(strings.ToLower(b.Title), strings.ToLower(a.Title)); c != 0 {
			return c
		}
	}
	return compareID(a, b)
}

// Sort orders the already-filtered slice in place. It never re-runs the
// visibility evaluator.
func Sort(papers []paper.Paper, key SortKey, current State) {
	sort.SliceStable(papers, func(i, j int) bool {
		return Compare(papers[i], papers[j], key, current) < 0
	})
}

// compareRank orders by recommendation rank. Rank zero means the paper has no
// recommendation; it sorts last regardless of direction.
func compareRank(ra, rb int, bestFirst bool) int {
	if ra == 0 || rb == 0 {
		if ra == rb {
			return 0
		}
		if ra == 0 {
			return 1
		}
		return -1
	}
	if ra == rb {
		return 0
	}
	if bestFirst == (ra > rb) {
		return -1
	}
	return 1
}

// compareNumericAbsent orders by a numeric field where papers without
// analytics always sort last, in both directions.
func compareNumericAbsent(a, b paper.Paper, va, vb float64, desc bool) int {
	aHas, bHas := a.HasHIndex(), b.HasHIndex()
	if !aHas || !bHas {
		if aHas == bHas {
			return 0
		}
		if !aHas {
			return 1
		}
		return -1
	}
	if desc {
		return compareFloat(vb, va)
	}
	return compareFloat(va, vb)
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// compareID is the universal tie-break: numeric id ascending, then the raw
// identifier string for ids without a numeric component.
func compareID(a, b paper.Paper) int {
	if c := compareInt64(a.NumericID(), b.NumericID()); c != 0 {
		return c
	}
	return strings.Compare(a.ID, b.ID)
}

// relevanceWeight sums the relevance weights over the currently selected
// topics; unselected topics contribute nothing.
func relevanceWeight(p paper.Paper, current State) float64 {
	total := 0
	for _, t := range paper.Topics() {
		if current.Topics[t] {
			total += p.TopicRelevance(t).Weight()
		}
	}
	return float64(total)
}
