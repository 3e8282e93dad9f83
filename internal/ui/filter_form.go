package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/paperfeed/paperlens/internal/filter"
	"github.com/paperfeed/paperlens/internal/paper"
)

// FilterForm edits the pending filter selections. Nothing touches the applied
// state until the form is submitted; abandoning it throws the edits away.
type FilterForm struct {
	form  *huh.Form
	store *filter.Store

	scoreStatuses []paper.ScoreStatus
	recs          []paper.Recommendation
	novelties     []paper.Novelty
	impacts       []paper.Impact
	topics        []paper.Topic
	relevances    []paper.Relevance
	hIndexFound   bool
	highestRange  string
	averageRange  string
}

func NewFilterForm(store *filter.Store) *FilterForm {
	pending := store.Pending()
	disabled := filter.Disabled(store.Current())

	f := &FilterForm{
		store:        store,
		hIndexFound:  pending.HIndexFound,
		highestRange: rangeInput(pending.HighestHIndex),
		averageRange: rangeInput(pending.AverageHIndex),
	}

	scoreField := huh.NewMultiSelect[paper.ScoreStatus]().
		Title("Score status").
		Description("Which scoring outcomes to show").
		Options(selectOptions(paper.ScoreStatuses(), scoreStatusLabel, pending.ScoreStatus)...).
		Value(&f.scoreStatuses)

	llmFields := []huh.Field{scoreField}
	if disabled[filter.CategoryRecommendation] {
		llmFields = append(llmFields, huh.NewNote().
			Title("LLM scores").
			Description("Recommendation, novelty and impact filters need\nthe Completed score status selected."))
	} else {
		llmFields = append(llmFields,
			huh.NewMultiSelect[paper.Recommendation]().
				Title("Recommendation").
				Options(selectOptions(paper.Recommendations(), paper.Recommendation.Label, pending.Recommendation)...).
				Value(&f.recs),
			huh.NewMultiSelect[paper.Novelty]().
				Title("Novelty").
				Options(selectOptions(paper.Novelties(), noveltyLabel, pending.Novelty)...).
				Value(&f.novelties),
			huh.NewMultiSelect[paper.Impact]().
				Title("Impact").
				Options(selectOptions(paper.Impacts(), impactLabel, pending.Impact)...).
				Value(&f.impacts),
		)
	}

	topicFields := []huh.Field{
		huh.NewMultiSelect[paper.Topic]().
			Title("Topics").
			Description("A paper stays visible when any selected topic\nmatches a selected relevance level").
			Options(selectOptions(paper.Topics(), paper.Topic.Label, pending.Topics)...).
			Value(&f.topics),
		huh.NewMultiSelect[paper.Relevance]().
			Title("Relevance").
			Options(selectOptions(paper.Relevances(), paper.Relevance.Label, pending.Relevance)...).
			Value(&f.relevances),
	}

	hIndexFields := []huh.Field{
		huh.NewSelect[bool]().
			Title("Author h-index").
			Options(
				huh.NewOption("Found", true).Selected(pending.HIndexFound),
				huh.NewOption("Not found", false).Selected(!pending.HIndexFound),
			).
			Value(&f.hIndexFound),
	}
	if disabled[filter.CategoryHighestHIndex] {
		hIndexFields = append(hIndexFields, huh.NewNote().
			Title("H-index ranges").
			Description("Range filters only apply to papers whose\nauthor h-index was found."))
	} else {
		hIndexFields = append(hIndexFields,
			huh.NewInput().
				Title("Highest h-index range").
				Description("min-max, e.g. 10-200").
				Validate(validateRange).
				Value(&f.highestRange),
			huh.NewInput().
				Title("Average h-index range").
				Description("min-max, e.g. 0-100").
				Validate(validateRange).
				Value(&f.averageRange),
		)
	}

	f.form = huh.NewForm(
		huh.NewGroup(llmFields...).Title("Scoring"),
		huh.NewGroup(topicFields...).Title("Topics"),
		huh.NewGroup(hIndexFields...).Title("Authors"),
	)

	return f
}

// Apply writes the submitted selections into the pending state and commits it.
func (f *FilterForm) Apply() {
	pending := f.store.Pending()

	pending.ScoreStatus = buildSet(f.scoreStatuses)
	disabled := filter.Disabled(f.store.Current())
	if !disabled[filter.CategoryRecommendation] {
		pending.Recommendation = buildSet(f.recs)
		pending.Novelty = buildSet(f.novelties)
		pending.Impact = buildSet(f.impacts)
	}
	pending.Topics = buildSet(f.topics)
	pending.Relevance = buildSet(f.relevances)
	pending.HIndexFound = f.hIndexFound
	if !disabled[filter.CategoryHighestHIndex] {
		if r, err := parseRangeInput(f.highestRange); err == nil {
			pending.HighestHIndex = r
		}
		if r, err := parseRangeInput(f.averageRange); err == nil {
			pending.AverageHIndex = r
		}
	}

	f.store.Commit()
}

// Discard throws the pending edits away.
func (f *FilterForm) Discard() {
	f.store.Discard()
}

func selectOptions[T comparable](values []T, label func(T) string, selected map[T]bool) []huh.Option[T] {
	opts := make([]huh.Option[T], 0, len(values))
	for _, v := range values {
		opts = append(opts, huh.NewOption(label(v), v).Selected(selected[v]))
	}
	return opts
}

func buildSet[T comparable](values []T) map[T]bool {
	set := make(map[T]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

func scoreStatusLabel(s paper.ScoreStatus) string {
	switch s {
	case paper.ScoreCompleted:
		return "Completed"
	case paper.ScoreFailed:
		return "Failed"
	case paper.ScoreNotRelevantEnough:
		return "Not relevant enough"
	default:
		return string(s)
	}
}

func noveltyLabel(n paper.Novelty) string {
	switch n {
	case paper.NoveltyHigh:
		return "High"
	case paper.NoveltyModerate:
		return "Moderate"
	case paper.NoveltyLow:
		return "Low"
	case paper.NoveltyNone:
		return "None"
	default:
		return string(n)
	}
}

func impactLabel(im paper.Impact) string {
	switch im {
	case paper.ImpactHigh:
		return "High"
	case paper.ImpactModerate:
		return "Moderate"
	case paper.ImpactLow:
		return "Low"
	case paper.ImpactNegligible:
		return "Negligible"
	default:
		return string(im)
	}
}

func rangeInput(r filter.Range) string {
	return fmt.Sprintf("%s-%s", formatBound(r.Min), formatBound(r.Max))
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func parseRangeInput(s string) (filter.Range, error) {
	minStr, maxStr, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok {
		return filter.Range{}, fmt.Errorf("expected min-max")
	}
	min, err := strconv.ParseFloat(strings.TrimSpace(minStr), 64)
	if err != nil {
		return filter.Range{}, fmt.Errorf("bad minimum %q", minStr)
	}
	max, err := strconv.ParseFloat(strings.TrimSpace(maxStr), 64)
	if err != nil {
		return filter.Range{}, fmt.Errorf("bad maximum %q", maxStr)
	}
	if min > max {
		return filter.Range{}, fmt.Errorf("minimum exceeds maximum")
	}
	return filter.Range{Min: min, Max: max}, nil
}

func validateRange(s string) error {
	_, err := parseRangeInput(s)
	return err
}
