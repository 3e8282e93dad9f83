package ui

import (
	"strings"
	"testing"

	"github.com/paperfeed/paperlens/internal/paper"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		input  string
		maxLen int
		want   string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"this is too long", 10, "this is t…"},
		{"", 5, ""},
	}

	for _, tt := range tests {
		if got := Truncate(tt.input, tt.maxLen); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
		}
	}
}

func TestListViewCursorBounds(t *testing.T) {
	lv := NewListView(120, 40)
	lv.SetPapers([]paper.Paper{
		scoredPaper("2507.00001", "First", paper.MustRead),
		scoredPaper("2507.00002", "Second", paper.ShouldRead),
	})

	lv.MoveCursor(1)
	if lv.Cursor() != 1 {
		t.Errorf("expected cursor 1, got %d", lv.Cursor())
	}
	lv.MoveCursor(1)
	if lv.Cursor() != 1 {
		t.Errorf("expected cursor clamped at 1, got %d", lv.Cursor())
	}
	lv.MoveCursor(-5)
	if lv.Cursor() != 1 {
		t.Errorf("expected out-of-range move ignored, got %d", lv.Cursor())
	}
}

func TestListViewCursorClampedOnShrink(t *testing.T) {
	lv := NewListView(120, 40)
	lv.SetPapers([]paper.Paper{
		scoredPaper("2507.00001", "First", paper.MustRead),
		scoredPaper("2507.00002", "Second", paper.ShouldRead),
		scoredPaper("2507.00003", "Third", paper.CanSkip),
	})
	lv.SetCursor(2)

	lv.SetPapers([]paper.Paper{scoredPaper("2507.00001", "First", paper.MustRead)})
	if lv.Cursor() != 0 {
		t.Errorf("expected cursor clamped to 0 after shrink, got %d", lv.Cursor())
	}
}

func TestListViewRendersRows(t *testing.T) {
	lv := NewListView(120, 40)
	lv.UpdateTableStyles(Themes["default"])
	lv.SetPapers([]paper.Paper{
		scoredPaper("2507.00001", "Scaling Reward Models", paper.MustRead),
	})

	view := lv.View()
	if !strings.Contains(view, "Scaling Reward Models") {
		t.Errorf("expected title in view, got:\n%s", view)
	}
	if !strings.Contains(view, "Must") {
		t.Errorf("expected recommendation text in view, got:\n%s", view)
	}
}

func TestListViewUnscoredDisplay(t *testing.T) {
	p := paper.Paper{
		ID:             "2507.00001",
		Title:          "Pending Paper",
		LLMScoreStatus: paper.ScoreNotScored,
	}
	p.Normalize()

	lv := NewListView(120, 40)
	lv.SetPapers([]paper.Paper{p})

	view := lv.View()
	if !strings.Contains(view, "—") {
		t.Errorf("expected placeholder marks for missing scores, got:\n%s", view)
	}
}

func TestDetailViewShowsJustifications(t *testing.T) {
	p := scoredPaper("2507.00001", "Deep Paper", paper.MustRead)
	p.RecommendationJustification = "Strong empirical results"
	p.Authors = []string{"Ada Lovelace"}

	lv := NewListView(120, 40)
	lv.SetPapers([]paper.Paper{p})

	detail := lv.DetailView(120, DefaultStyles())
	if !strings.Contains(detail, "Deep Paper") {
		t.Error("expected title in detail view")
	}
	if !strings.Contains(detail, "Strong empirical results") {
		t.Error("expected justification in detail view")
	}
	if !strings.Contains(detail, "Ada Lovelace") {
		t.Error("expected authors in detail view")
	}
}

func TestDetailViewFixedHeight(t *testing.T) {
	lv := NewListView(120, 40)
	lv.SetPapers([]paper.Paper{scoredPaper("2507.00001", "First", paper.MustRead)})

	detail := lv.DetailView(120, DefaultStyles())
	if got := len(strings.Split(detail, "\n")); got != detailPaneHeight {
		t.Errorf("expected %d detail lines, got %d", detailPaneHeight, got)
	}
}

func TestHIndexText(t *testing.T) {
	p := scoredPaper("2507.00001", "First", paper.MustRead)
	if got := hIndexText(&p); got != "50/20" {
		t.Errorf("expected 50/20, got %q", got)
	}

	missing := paper.Paper{ID: "2507.00002", HIndexStatus: paper.HIndexFailed}
	missing.Normalize()
	if got := hIndexText(&missing); got != "—" {
		t.Errorf("expected placeholder for missing h-index, got %q", got)
	}
}
