package paper

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSnapshot(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "papers.json")

	data := `{
		"date": "2025-07-22",
		"total_papers": 99,
		"papers": [
			{
				"id": "2507.00001",
				"title": "First",
				"llm_score_status": "completed",
				"recommendation_score": "must_read",
				"novelty_score": "high",
				"impact_score": "moderate",
				"rlhf_relevance": "highly_relevant",
				"h_index_status": "completed",
				"highest_h_index": 45,
				"average_h_index": 12.5
			},
			{
				"id": "2507.00002",
				"title": "Second",
				"llm_score_status": "bogus-token"
			}
		]
	}`

	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write snapshot: %v", err)
	}

	snap, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if snap.Date != "2025-07-22" {
		t.Errorf("date = %q, want 2025-07-22", snap.Date)
	}
	if snap.TotalPapers != 2 {
		t.Errorf("total_papers should match actual count, got %d", snap.TotalPapers)
	}

	first := snap.Papers[0]
	if first.LLMScoreStatus != ScoreCompleted {
		t.Errorf("first paper score status = %q", first.LLMScoreStatus)
	}
	if first.RecommendationScore != MustRead {
		t.Errorf("first paper recommendation = %q", first.RecommendationScore)
	}
	if first.HighestHIndex != 45 {
		t.Errorf("first paper highest h-index = %v", first.HighestHIndex)
	}

	second := snap.Papers[1]
	if second.LLMScoreStatus != ScoreNotScored {
		t.Errorf("malformed score status should normalize to not_scored, got %q", second.LLMScoreStatus)
	}
	if second.RecommendationScore != Unrated {
		t.Errorf("second paper recommendation = %q, want unrated", second.RecommendationScore)
	}
	if second.RLHFJustification != NoJustification {
		t.Errorf("second paper justification = %q", second.RLHFJustification)
	}
}

func TestLoadSnapshotMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadSnapshotBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed JSON")
	}
}
