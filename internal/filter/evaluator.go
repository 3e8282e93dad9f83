package filter

import (
	"github.com/paperfeed/paperlens/internal/paper"
)

// Visible runs the four-gate visibility chain for one paper. Gate order is
// fixed: score status, LLM sub-gates, topic/relevance, h-index. Each gate
// short-circuits; a paper is visible only if it passes all four.
func Visible(p paper.Paper, current State, disabled DisabledSet) bool {
	// Gate 1: score-status master gate. An empty selection hides everything.
	if !current.ScoreStatus[p.LLMScoreStatus] {
		return false
	}

	// Gate 2: recommendation/novelty/impact, only meaningful for papers with
	// completed LLM scores; each sub-gate is skipped while disabled so stored
	// selections are suppressed, not cleared.
	if p.LLMScoreStatus == paper.ScoreCompleted {
		if !disabled[CategoryRecommendation] && !current.Recommendation[p.RecommendationScore] {
			return false
		}
		if !disabled[CategoryNovelty] && !current.Novelty[p.NoveltyScore] {
			return false
		}
		if !disabled[CategoryImpact] && !current.Impact[p.ImpactScore] {
			return false
		}
	}

	// Gate 3: at least one selected topic whose relevance level is selected.
	// Empty topic or relevance selections fail the gate outright.
	topicHit := false
	for _, t := range paper.Topics() {
		if current.Topics[t] && current.Relevance[p.TopicRelevance(t)] {
			topicHit = true
			break
		}
	}
	if !topicHit {
		return false
	}

	// Gate 4: the h-index toggle partitions papers by whether analytics were
	// fetched; the range checks only run when live.
	if current.HIndexFound != p.HasHIndex() {
		return false
	}
	if !disabled[CategoryHighestHIndex] {
		if !p.HasHIndex() || !current.HighestHIndex.Contains(p.HighestHIndex) {
			return false
		}
	}
	if !disabled[CategoryAverageHIndex] {
		if !p.HasHIndex() || !current.AverageHIndex.Contains(p.AverageHIndex) {
			return false
		}
	}

	return true
}

// VisiblePapers returns the filtered and sorted sequence for the renderer.
// The whole pass re-runs on every commit or sort change; papers are read-only
// shared data so no locking is needed.
func VisiblePapers(papers []paper.Paper, current State) []paper.Paper {
	disabled := Disabled(current)

	visible := make([]paper.Paper, 0, len(papers))
	for _, p := range papers {
		if Visible(p, current, disabled) {
			visible = append(visible, p)
		}
	}

	Sort(visible, current.Sort, current)
	return visible
}
