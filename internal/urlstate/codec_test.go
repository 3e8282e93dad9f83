package urlstate

import (
	"net/url"
	"testing"

	"github.com/paperfeed/paperlens/internal/filter"
	"github.com/paperfeed/paperlens/internal/paper"
)

func TestEncodeDefaultsToEmpty(t *testing.T) {
	v := Encode(filter.NewState())
	if len(v) != 0 {
		t.Errorf("default state should encode to no parameters, got %v", v)
	}
}

func TestEncodeNonDefaults(t *testing.T) {
	s := filter.NewState()
	s.ScoreStatus = map[paper.ScoreStatus]bool{
		paper.ScoreFailed:    true,
		paper.ScoreCompleted: true,
	}
	s.Topics = map[paper.Topic]bool{paper.TopicRLHF: true, paper.TopicDatasets: true}
	s.HIndexFound = false
	s.HighestHIndex = filter.Range{Min: 50, Max: 100}
	s.Sort = filter.SortTitleAZ

	v := Encode(s)

	if got := v.Get("score_status"); got != "completed,failed" {
		t.Errorf("score_status = %q", got)
	}
	if got := v.Get("topics"); got != "rlhf,datasets" {
		t.Errorf("topics = %q (canonical order expected)", got)
	}
	if got := v.Get("h_index_found"); got != "false" {
		t.Errorf("h_index_found = %q", got)
	}
	if got := v.Get("highest_h_index"); got != "50-100" {
		t.Errorf("highest_h_index = %q", got)
	}
	if got := v.Get("sort"); got != "titleAZ" {
		t.Errorf("sort = %q", got)
	}
	if v.Has("recommendation") {
		t.Error("default recommendation selection should be omitted")
	}
}

func TestRoundTrip(t *testing.T) {
	s := filter.NewState()
	s.ScoreStatus = map[paper.ScoreStatus]bool{paper.ScoreNotRelevantEnough: true}
	s.Recommendation = map[paper.Recommendation]bool{paper.MustRead: true, paper.ShouldRead: true}
	s.Relevance = map[paper.Relevance]bool{paper.HighlyRelevant: true}
	s.AverageHIndex = filter.Range{Min: 2.5, Max: 30}
	s.Sort = filter.SortRelevanceDesc

	got, err := ParseQuery(EncodeQuery(s))
	if err != nil {
		t.Fatalf("ParseQuery failed: %v", err)
	}

	if !filter.SetEquals(got.ScoreStatus, s.ScoreStatus) {
		t.Error("score status did not round-trip")
	}
	if !filter.SetEquals(got.Recommendation, s.Recommendation) {
		t.Error("recommendation did not round-trip")
	}
	if !filter.SetEquals(got.Relevance, s.Relevance) {
		t.Error("relevance did not round-trip")
	}
	if got.AverageHIndex != s.AverageHIndex {
		t.Errorf("average range = %v, want %v", got.AverageHIndex, s.AverageHIndex)
	}
	if got.Sort != filter.SortRelevanceDesc {
		t.Errorf("sort = %q", got.Sort)
	}
}

func TestEmptySelectionRoundTrips(t *testing.T) {
	// An empty selection hides everything, so it must survive a share link.
	// It is encoded as a present-but-empty key, distinct from absence.
	s := filter.NewState()
	s.Topics = map[paper.Topic]bool{}

	v := Encode(s)
	if !v.Has("topics") {
		t.Fatal("empty topic selection must be encoded")
	}

	got := Decode(v)
	if filter.SelectedCount(got.Topics) != 0 {
		t.Errorf("empty topic selection should decode as empty, got %d selected", filter.SelectedCount(got.Topics))
	}
}

func TestAbsentKeyMeansDefault(t *testing.T) {
	got := Decode(url.Values{})

	def := filter.NewState()
	if !filter.SetEquals(got.ScoreStatus, def.ScoreStatus) {
		t.Error("absent score_status should mean the default selection")
	}
	if !got.HIndexFound {
		t.Error("absent h_index_found should mean the default toggle")
	}
	if got.Sort != filter.SortRecommendationBest {
		t.Errorf("absent sort should mean the default key, got %q", got.Sort)
	}
}

func TestMalformedValuesFallBackPerCategory(t *testing.T) {
	v := url.Values{}
	v.Set("score_status", "completed,banana")
	v.Set("highest_h_index", "fifty-100")
	v.Set("average_h_index", "90-10") // inverted bounds
	v.Set("h_index_found", "maybe")
	v.Set("sort", "bogusKey")
	v.Set("topics", "rlhf") // well-formed, must still apply

	got := Decode(v)
	def := filter.NewState()

	if !filter.SetEquals(got.ScoreStatus, def.ScoreStatus) {
		t.Error("unrecognized enum token should reset that category to default")
	}
	if got.HighestHIndex != def.HighestHIndex {
		t.Errorf("non-numeric range should fall back, got %v", got.HighestHIndex)
	}
	if got.AverageHIndex != def.AverageHIndex {
		t.Errorf("inverted range should fall back, got %v", got.AverageHIndex)
	}
	if got.HIndexFound != def.HIndexFound {
		t.Error("malformed bool should fall back")
	}
	if got.Sort != def.Sort {
		t.Errorf("unknown sort token should fall back, got %q", got.Sort)
	}

	// One bad category must not poison the others.
	if filter.SelectedCount(got.Topics) != 1 || !got.Topics[paper.TopicRLHF] {
		t.Error("well-formed topics key should still be applied")
	}
}

func TestParseQueryLeadingQuestionMark(t *testing.T) {
	got, err := ParseQuery("?sort=idAsc")
	if err != nil {
		t.Fatalf("ParseQuery failed: %v", err)
	}
	if got.Sort != filter.SortIDAsc {
		t.Errorf("sort = %q, want idAsc", got.Sort)
	}
}

func TestParseQueryGarbage(t *testing.T) {
	if _, err := ParseQuery("%zz=;;%"); err == nil {
		t.Error("expected an error for an unparseable query string")
	}
}
