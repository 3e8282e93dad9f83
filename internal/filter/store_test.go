package filter

import (
	"testing"

	"github.com/paperfeed/paperlens/internal/paper"
)

func TestPendingEditsAreDeferred(t *testing.T) {
	st := NewStore()
	papers := []paper.Paper{completedPaper("1"), completedPaper("2")}

	before := VisiblePapers(papers, st.Current())
	if len(before) != 2 {
		t.Fatalf("expected 2 visible papers, got %d", len(before))
	}

	// Editing pending must not change the applied output.
	st.Pending().Topics = map[paper.Topic]bool{}
	after := VisiblePapers(papers, st.Current())
	if len(after) != 2 {
		t.Errorf("pending edit changed visible output: %d papers", len(after))
	}

	st.Commit()
	committed := VisiblePapers(papers, st.Current())
	if len(committed) != 0 {
		t.Errorf("commit should have applied the empty topic selection, got %d papers", len(committed))
	}
}

func TestDiscardResetsPending(t *testing.T) {
	st := NewStore()

	st.Pending().HIndexFound = false
	st.Pending().ScoreStatus[paper.ScoreFailed] = true
	st.Discard()

	if !st.Pending().HIndexFound {
		t.Error("discard should reset the h-index toggle")
	}
	if st.Pending().ScoreStatus[paper.ScoreFailed] {
		t.Error("discard should drop the score-status edit")
	}
}

func TestCommitCopiesNotAliases(t *testing.T) {
	st := NewStore()
	st.Commit()

	// Mutating pending after a commit must not leak into current.
	st.Pending().Topics[paper.TopicRLHF] = false
	if !st.Current().Topics[paper.TopicRLHF] {
		t.Error("current state aliases pending after commit")
	}
}

func TestSetSortIsImmediate(t *testing.T) {
	st := NewStore()
	st.SetSort(SortTitleAZ)

	if st.Current().Sort != SortTitleAZ {
		t.Error("sort key should apply without a commit")
	}
	if st.Pending().Sort != SortTitleAZ {
		t.Error("pending should track the immediate sort key")
	}

	// A later commit must not revert it.
	st.Commit()
	if st.Current().Sort != SortTitleAZ {
		t.Error("commit reverted the sort key")
	}
}

func TestDisableSuppressesWithoutClearing(t *testing.T) {
	st := NewStore()

	// Narrow the recommendation selection, then exclude completed from the
	// score statuses, which disables the recommendation sub-gate.
	st.Pending().Recommendation = map[paper.Recommendation]bool{paper.MustRead: true}
	st.Commit()
	st.Pending().ScoreStatus = map[paper.ScoreStatus]bool{paper.ScoreFailed: true}
	st.Commit()

	d := Disabled(st.Current())
	if !d[CategoryRecommendation] {
		t.Fatal("recommendation should be disabled while completed is excluded")
	}

	// Re-include completed: the stored selection must be intact.
	st.Pending().ScoreStatus[paper.ScoreCompleted] = true
	st.Commit()

	d = Disabled(st.Current())
	if d[CategoryRecommendation] {
		t.Fatal("recommendation should be enabled again")
	}
	cur := st.Current()
	if !cur.Recommendation[paper.MustRead] || SelectedCount(cur.Recommendation) != 1 {
		t.Error("recommendation selection was not preserved across disable/enable")
	}
}

func TestReplaceInstallsBothStates(t *testing.T) {
	st := NewStore()

	s := NewState()
	s.HIndexFound = false
	s.Sort = SortIDAsc
	st.Replace(s)

	if st.Current().HIndexFound || st.Pending().HIndexFound {
		t.Error("replace should install the state as both current and pending")
	}
	if st.Current().Sort != SortIDAsc {
		t.Errorf("sort = %q, want idAsc", st.Current().Sort)
	}

	// And it must not alias its argument.
	s.Topics[paper.TopicRLHF] = false
	if !st.Current().Topics[paper.TopicRLHF] {
		t.Error("replace aliased the caller's state")
	}
}
