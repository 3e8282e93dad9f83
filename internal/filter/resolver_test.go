package filter

import (
	"testing"

	"github.com/paperfeed/paperlens/internal/paper"
)

func TestDisabledDefaults(t *testing.T) {
	d := Disabled(NewState())
	if len(d.Keys()) != 0 {
		t.Errorf("default state should disable nothing, got %v", d.Keys())
	}
}

func TestDisabledWithoutCompletedScores(t *testing.T) {
	s := NewState()
	s.ScoreStatus = map[paper.ScoreStatus]bool{paper.ScoreFailed: true}

	d := Disabled(s)
	for _, c := range []Category{CategoryRecommendation, CategoryNovelty, CategoryImpact} {
		if !d[c] {
			t.Errorf("%s should be disabled while completed is excluded", c)
		}
	}
	if d[CategoryHighestHIndex] {
		t.Error("h-index ranges should be unaffected by the score-status selection")
	}
}

func TestDisabledEmptyScoreSelection(t *testing.T) {
	s := NewState()
	s.ScoreStatus = map[paper.ScoreStatus]bool{}

	d := Disabled(s)
	if !d[CategoryRecommendation] || !d[CategoryNovelty] || !d[CategoryImpact] {
		t.Error("empty score-status selection excludes completed, so LLM categories disable")
	}
}

func TestDisabledWithoutHIndex(t *testing.T) {
	s := NewState()
	s.HIndexFound = false

	d := Disabled(s)
	if !d[CategoryHighestHIndex] || !d[CategoryAverageHIndex] {
		t.Error("range categories should be disabled when the toggle is off")
	}
	if d[CategoryRecommendation] {
		t.Error("LLM categories should be unaffected by the h-index toggle")
	}
}

func TestDisabledKeysSorted(t *testing.T) {
	s := NewState()
	s.ScoreStatus = map[paper.ScoreStatus]bool{}
	s.HIndexFound = false

	keys := Disabled(s).Keys()
	if len(keys) != 5 {
		t.Fatalf("expected 5 disabled categories, got %d", len(keys))
	}
	for i := 1; i < len(keys); i++ {
		if keys[i-1] >= keys[i] {
			t.Errorf("keys not sorted: %v", keys)
		}
	}
}
