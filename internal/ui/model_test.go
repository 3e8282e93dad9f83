package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/paperfeed/paperlens/internal/filter"
	"github.com/paperfeed/paperlens/internal/paper"
)

func TestMain(m *testing.M) {
	tmpDir, err := os.MkdirTemp("", "paperlens-test")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create temp dir: %v\n", err)
		os.Exit(1)
	}
	defer os.RemoveAll(tmpDir)

	os.Setenv("PAPERLENS_CONFIG", filepath.Join(tmpDir, "config.yaml"))

	os.Exit(m.Run())
}

func scoredPaper(id, title string, rec paper.Recommendation) paper.Paper {
	p := paper.Paper{
		ID:                  id,
		Title:               title,
		LLMScoreStatus:      paper.ScoreCompleted,
		RecommendationScore: rec,
		NoveltyScore:        paper.NoveltyHigh,
		ImpactScore:         paper.ImpactHigh,
		RLHFScore:           0.9,
		RLHFRelevance:       paper.HighlyRelevant,
		HIndexStatus:        paper.HIndexCompleted,
		HighestHIndex:       50,
		AverageHIndex:       20,
	}
	p.Normalize()
	return p
}

func loadedModel(papers ...paper.Paper) *Model {
	m := NewModel()
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m.Update(PapersLoadedMsg{Snapshot: &paper.Snapshot{
		Date:        "2025-07-15",
		TotalPapers: len(papers),
		Papers:      papers,
	}})
	return m
}

func keyRune(r string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(r)}
}

func TestNewModel(t *testing.T) {
	m := NewModel()
	if m.state != StateLoading {
		t.Errorf("expected initial state StateLoading, got %v", m.state)
	}
	if m.page != 1 {
		t.Errorf("expected initial page 1, got %d", m.page)
	}
	if m.store.Current().Sort != filter.SortRecommendationBest {
		t.Errorf("expected default sort, got %s", m.store.Current().Sort)
	}
}

func TestPapersLoadedTransition(t *testing.T) {
	m := loadedModel(
		scoredPaper("2507.00001", "First", paper.MustRead),
		scoredPaper("2507.00002", "Second", paper.CanSkip),
	)

	if m.state != StateBrowsing {
		t.Errorf("expected StateBrowsing, got %v", m.state)
	}
	if len(m.visible) != 2 {
		t.Errorf("expected 2 visible papers, got %d", len(m.visible))
	}
	// Default sort puts the best recommendation first
	if m.visible[0].ID != "2507.00001" {
		t.Errorf("expected must_read paper first, got %s", m.visible[0].ID)
	}
}

func TestErrorShowsMessageState(t *testing.T) {
	m := NewModel()
	m.Update(ErrorMsg{Error: fmt.Errorf("connection refused")})

	if m.state != StateMessage {
		t.Errorf("expected StateMessage after error, got %v", m.state)
	}
	if m.messageType != "error" {
		t.Errorf("expected error message type, got %s", m.messageType)
	}

	m.Update(keyRune("a"))
	if m.state != StateBrowsing {
		t.Errorf("expected StateBrowsing after dismissing message, got %v", m.state)
	}
}

func TestNavigation(t *testing.T) {
	m := loadedModel(
		scoredPaper("2507.00001", "First", paper.MustRead),
		scoredPaper("2507.00002", "Second", paper.ShouldRead),
		scoredPaper("2507.00003", "Third", paper.CanSkip),
	)

	if m.listView.Cursor() != 0 {
		t.Errorf("expected cursor 0, got %d", m.listView.Cursor())
	}

	m.Update(keyRune("j"))
	m.Update(keyRune("j"))
	if m.listView.Cursor() != 2 {
		t.Errorf("expected cursor 2, got %d", m.listView.Cursor())
	}

	m.Update(keyRune("j"))
	if m.listView.Cursor() != 2 {
		t.Errorf("expected cursor clamped at 2, got %d", m.listView.Cursor())
	}

	m.Update(keyRune("k"))
	if m.listView.Cursor() != 1 {
		t.Errorf("expected cursor 1 after 'k', got %d", m.listView.Cursor())
	}
}

func TestPagination(t *testing.T) {
	var papers []paper.Paper
	for i := 0; i < 30; i++ {
		papers = append(papers, scoredPaper(fmt.Sprintf("2507.%05d", i+1), fmt.Sprintf("Paper %d", i+1), paper.MustRead))
	}

	m := loadedModel(papers...)
	m.pageSize = 25
	m.refresh()

	if m.listView.Len() != 25 {
		t.Errorf("expected 25 papers on page 1, got %d", m.listView.Len())
	}

	m.Update(keyRune("l"))
	if m.page != 2 {
		t.Errorf("expected page 2, got %d", m.page)
	}
	if m.listView.Len() != 5 {
		t.Errorf("expected 5 papers on page 2, got %d", m.listView.Len())
	}

	m.Update(keyRune("l"))
	if m.page != 2 {
		t.Errorf("expected page clamped at 2, got %d", m.page)
	}

	m.Update(keyRune("h"))
	if m.page != 1 {
		t.Errorf("expected page 1, got %d", m.page)
	}
}

func TestPageClampsWhenFiltersShrinkResults(t *testing.T) {
	var papers []paper.Paper
	for i := 0; i < 30; i++ {
		papers = append(papers, scoredPaper(fmt.Sprintf("2507.%05d", i+1), fmt.Sprintf("Paper %d", i+1), paper.MustRead))
	}

	m := loadedModel(papers...)
	m.pageSize = 25
	m.refresh()
	m.Update(keyRune("l"))
	if m.page != 2 {
		t.Fatalf("expected page 2, got %d", m.page)
	}

	// Shrink the result set below one page
	pending := m.store.Pending()
	pending.Recommendation = map[paper.Recommendation]bool{paper.Ignore: true}
	m.store.Commit()
	m.refresh()

	if m.page != 1 {
		t.Errorf("expected page clamped back to 1, got %d", m.page)
	}
}

func TestSortCyclingIsImmediate(t *testing.T) {
	m := loadedModel(
		scoredPaper("2507.00001", "Banana", paper.CanSkip),
		scoredPaper("2507.00002", "Apple", paper.MustRead),
	)

	first := m.store.Current().Sort
	m.Update(keyRune("s"))
	second := m.store.Current().Sort
	if first == second {
		t.Error("expected sort key to change on 's'")
	}

	m.Update(keyRune("S"))
	if m.store.Current().Sort != first {
		t.Errorf("expected 'S' to cycle back to %s, got %s", first, m.store.Current().Sort)
	}
}

func TestFilterFormOpensAndEscDiscards(t *testing.T) {
	m := loadedModel(scoredPaper("2507.00001", "First", paper.MustRead))

	m.Update(keyRune("f"))
	if m.state != StateFiltering {
		t.Fatalf("expected StateFiltering, got %v", m.state)
	}
	if m.filterForm == nil {
		t.Fatal("expected filter form to exist")
	}

	// Dirty the pending state, then abandon the form
	pending := m.store.Pending()
	pending.HIndexFound = false

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.state != StateBrowsing {
		t.Errorf("expected StateBrowsing after esc, got %v", m.state)
	}
	if !m.store.Pending().HIndexFound {
		t.Error("expected pending edits discarded on esc")
	}
	if !m.store.Current().HIndexFound {
		t.Error("expected applied filters untouched by abandoned form")
	}
}

func TestEmptyMatchIsNotAnError(t *testing.T) {
	m := loadedModel(scoredPaper("2507.00001", "First", paper.MustRead))

	pending := m.store.Pending()
	pending.Topics = make(map[paper.Topic]bool)
	m.store.Commit()
	m.refresh()

	if m.state == StateMessage {
		t.Error("empty match must not enter the error message state")
	}
	if len(m.visible) != 0 {
		t.Fatalf("expected no visible papers, got %d", len(m.visible))
	}
	if got := m.matchSummary(); got != "0 of 1 papers match" {
		t.Errorf("unexpected match summary: %q", got)
	}

	view := m.View()
	if view == "" {
		t.Error("browsing view with no matches is empty")
	}
}

func TestThemeCycling(t *testing.T) {
	m := NewModel()
	initialTheme := m.cfg.Theme
	if initialTheme == "" {
		initialTheme = "default"
	}

	m.state = StateBrowsing
	m.Update(keyRune("t"))
	if m.cfg.Theme == initialTheme {
		t.Errorf("expected theme to change, but it's still %s", initialTheme)
	}
}

func TestPresetSaveAndCycle(t *testing.T) {
	m := loadedModel(scoredPaper("2507.00001", "First", paper.MustRead))
	if m.presets == nil {
		t.Skip("preset store unavailable")
	}

	pending := m.store.Pending()
	pending.HIndexFound = false
	m.store.Commit()
	m.refresh()

	m.Update(keyRune("p"))
	if !m.editingPreset {
		t.Fatal("expected preset input mode")
	}
	for _, r := range "mine" {
		m.Update(keyRune(string(r)))
	}
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.editingPreset {
		t.Fatal("expected preset input mode to end")
	}

	// Change filters away, then cycle back to the preset
	other := m.store.Pending()
	other.HIndexFound = true
	m.store.Commit()

	m.Update(keyRune("P"))
	if m.store.Current().HIndexFound {
		t.Error("expected preset to restore h_index_found=false")
	}
}

func TestViewRendering(t *testing.T) {
	m := NewModel()

	view := m.View()
	if view == "" {
		t.Error("Loading view is empty")
	}

	m = loadedModel(scoredPaper("2507.00001", "Test", paper.MustRead))
	view = m.View()
	if view == "" {
		t.Error("Browsing view is empty")
	}

	m.Update(keyRune("f"))
	view = m.View()
	if view == "" {
		t.Error("Filtering view is empty")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m.Update(ErrorMsg{Error: fmt.Errorf("boom")})
	view = m.View()
	if view == "" {
		t.Error("Message view is empty")
	}
}
