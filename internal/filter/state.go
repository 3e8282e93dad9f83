package filter

import (
	"github.com/paperfeed/paperlens/internal/paper"
)

// Category identifies one filter control. The names double as URL query keys.
type Category string

const (
	CategoryScoreStatus    Category = "score_status"
	CategoryRecommendation Category = "recommendation"
	CategoryNovelty        Category = "novelty"
	CategoryImpact         Category = "impact"
	CategoryTopics         Category = "topics"
	CategoryRelevance      Category = "relevance"
	CategoryHIndexFound    Category = "h_index_found"
	CategoryHighestHIndex  Category = "highest_h_index"
	CategoryAverageHIndex  Category = "average_h_index"
	CategorySort           Category = "sort"
)

// Range is an inclusive numeric filter bound.
type Range struct {
	Min float64
	Max float64
}

// Contains reports whether v falls inside the range.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Default numeric bounds for the h-index range filters.
const (
	DefaultHighestHIndexMax = 200
	DefaultAverageHIndexMax = 100
)

// State holds one selection per filter category. Two structurally identical
// instances exist at a time: the applied one driving visibility and the
// pending one the user is editing.
type State struct {
	ScoreStatus    map[paper.ScoreStatus]bool
	Recommendation map[paper.Recommendation]bool
	Novelty        map[paper.Novelty]bool
	Impact         map[paper.Impact]bool
	Topics         map[paper.Topic]bool
	Relevance      map[paper.Relevance]bool
	HIndexFound    bool
	HighestHIndex  Range
	AverageHIndex  Range
	Sort           SortKey
}

// NewState returns the documented default selections: completed papers only,
// every recommendation/novelty/impact value, all topics, all relevance
// levels, h-index found with wide-open ranges, sorted best recommendation
// first.
func NewState() State {
	s := State{
		ScoreStatus:    map[paper.ScoreStatus]bool{paper.ScoreCompleted: true},
		Recommendation: make(map[paper.Recommendation]bool),
		Novelty:        make(map[paper.Novelty]bool),
		Impact:         make(map[paper.Impact]bool),
		Topics:         make(map[paper.Topic]bool),
		Relevance:      make(map[paper.Relevance]bool),
		HIndexFound:    true,
		HighestHIndex:  Range{Min: 0, Max: DefaultHighestHIndexMax},
		AverageHIndex:  Range{Min: 0, Max: DefaultAverageHIndexMax},
		Sort:           SortRecommendationBest,
	}
	for _, r := range paper.Recommendations() {
		s.Recommendation[r] = true
	}
	for _, n := range paper.Novelties() {
		s.Novelty[n] = true
	}
	for _, i := range paper.Impacts() {
		s.Impact[i] = true
	}
	for _, t := range paper.Topics() {
		s.Topics[t] = true
	}
	for _, r := range paper.Relevances() {
		s.Relevance[r] = true
	}
	return s
}

// Clone deep-copies the state so edits to one instance never leak into the
// other.
func (s State) Clone() State {
	c := s
	c.ScoreStatus = cloneSet(s.ScoreStatus)
	c.Recommendation = cloneSet(s.Recommendation)
	c.Novelty = cloneSet(s.Novelty)
	c.Impact = cloneSet(s.Impact)
	c.Topics = cloneSet(s.Topics)
	c.Relevance = cloneSet(s.Relevance)
	return c
}

func cloneSet[T comparable](src map[T]bool) map[T]bool {
	dst := make(map[T]bool, len(src))
	for k, v := range src {
		if v {
			dst[k] = true
		}
	}
	return dst
}

// SetEquals reports whether two selection sets enable the same values.
func SetEquals[T comparable](a, b map[T]bool) bool {
	if countEnabled(a) != countEnabled(b) {
		return false
	}
	for k, v := range a {
		if v && !b[k] {
			return false
		}
	}
	return true
}

func countEnabled[T comparable](set map[T]bool) int {
	n := 0
	for _, v := range set {
		if v {
			n++
		}
	}
	return n
}

// SelectedCount returns how many values a selection set enables.
func SelectedCount[T comparable](set map[T]bool) int {
	return countEnabled(set)
}
