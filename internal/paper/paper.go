package paper

import (
	"strconv"
	"strings"
)

// NoJustification is the sentinel justification text used when the pipeline
// produced no explanation for a score or relevance level.
const NoJustification = "No justification provided"

// StageStatus reports the outcome of one upstream pipeline stage
// (scraper, intro extraction, embedding, LLM validation).
type StageStatus string

const (
	StageCompleted StageStatus = "completed"
	StageFailed    StageStatus = "failed"
	StagePending   StageStatus = "pending"
)

// ParseStageStatus maps a raw status token to a StageStatus, falling back to
// the StagePending sentinel for anything unrecognized.
func ParseStageStatus(s string) StageStatus {
	switch normalizeToken(s) {
	case "completed", "success":
		return StageCompleted
	case "failed", "error":
		return StageFailed
	default:
		return StagePending
	}
}

// ScoreStatus reports whether the LLM scoring stage produced full scores for
// a paper. ScoreCompleted is the authoritative "has full LLM scores" signal;
// older data marks the same outcome as "scored".
type ScoreStatus string

const (
	ScoreCompleted         ScoreStatus = "completed"
	ScoreFailed            ScoreStatus = "failed"
	ScoreNotRelevantEnough ScoreStatus = "not_relevant_enough"
	ScoreNotScored         ScoreStatus = "not_scored"
)

// ScoreStatuses returns the selectable score statuses in fixed order.
func ScoreStatuses() []ScoreStatus {
	return []ScoreStatus{ScoreCompleted, ScoreFailed, ScoreNotRelevantEnough}
}

func ParseScoreStatus(s string) ScoreStatus {
	switch normalizeToken(s) {
	case "completed", "scored":
		return ScoreCompleted
	case "failed":
		return ScoreFailed
	case "not_relevant_enough":
		return ScoreNotRelevantEnough
	default:
		return ScoreNotScored
	}
}

// HIndexStatus reports whether author h-index analytics were fetched.
type HIndexStatus string

const (
	HIndexCompleted  HIndexStatus = "completed"
	HIndexFailed     HIndexStatus = "failed"
	HIndexNotFetched HIndexStatus = "not_fetched"
)

func ParseHIndexStatus(s string) HIndexStatus {
	switch normalizeToken(s) {
	case "completed":
		return HIndexCompleted
	case "failed":
		return HIndexFailed
	default:
		return HIndexNotFetched
	}
}

// Topic is one of the five fixed research-area classifiers every paper is
// scored against.
type Topic string

const (
	TopicRLHF                Topic = "rlhf"
	TopicWeakSupervision     Topic = "weak_supervision"
	TopicDiffusionReasoning  Topic = "diffusion_reasoning"
	TopicDistributedTraining Topic = "distributed_training"
	TopicDatasets            Topic = "datasets"
)

// Topics returns the five topics in their fixed order.
func Topics() []Topic {
	return []Topic{
		TopicRLHF,
		TopicWeakSupervision,
		TopicDiffusionReasoning,
		TopicDistributedTraining,
		TopicDatasets,
	}
}

// Label returns the human-readable topic name.
func (t Topic) Label() string {
	switch t {
	case TopicRLHF:
		return "RLHF"
	case TopicWeakSupervision:
		return "Weak Supervision"
	case TopicDiffusionReasoning:
		return "Diffusion Reasoning"
	case TopicDistributedTraining:
		return "Distributed Training"
	case TopicDatasets:
		return "Datasets"
	default:
		return string(t)
	}
}

func ParseTopic(s string) (Topic, bool) {
	switch normalizeToken(s) {
	case "rlhf":
		return TopicRLHF, true
	case "weak_supervision":
		return TopicWeakSupervision, true
	case "diffusion_reasoning":
		return TopicDiffusionReasoning, true
	case "distributed_training":
		return TopicDistributedTraining, true
	case "datasets":
		return TopicDatasets, true
	default:
		return "", false
	}
}

// Relevance is the validated relevance level of a paper for one topic.
// NotValidated is the sentinel for papers the validator never reached.
type Relevance string

const (
	HighlyRelevant       Relevance = "highly_relevant"
	ModeratelyRelevant   Relevance = "moderately_relevant"
	TangentiallyRelevant Relevance = "tangentially_relevant"
	NotRelevant          Relevance = "not_relevant"
	NotValidated         Relevance = "not_validated"
)

// Relevances returns the four selectable relevance levels in fixed order.
// The NotValidated sentinel is not selectable.
func Relevances() []Relevance {
	return []Relevance{HighlyRelevant, ModeratelyRelevant, TangentiallyRelevant, NotRelevant}
}

func ParseRelevance(s string) Relevance {
	switch normalizeToken(s) {
	case "highly_relevant":
		return HighlyRelevant
	case "moderately_relevant":
		return ModeratelyRelevant
	case "tangentially_relevant":
		return TangentiallyRelevant
	case "not_relevant":
		return NotRelevant
	default:
		return NotValidated
	}
}

// Weight returns the sort weight of a relevance level. The sentinel weighs
// nothing, same as NotRelevant.
func (r Relevance) Weight() int {
	switch r {
	case HighlyRelevant:
		return 3
	case ModeratelyRelevant:
		return 2
	case TangentiallyRelevant:
		return 1
	default:
		return 0
	}
}

// Label returns the human-readable relevance name.
func (r Relevance) Label() string {
	switch r {
	case HighlyRelevant:
		return "Highly Relevant"
	case ModeratelyRelevant:
		return "Moderately Relevant"
	case TangentiallyRelevant:
		return "Tangentially Relevant"
	case NotRelevant:
		return "Not Relevant"
	default:
		return "Not Validated"
	}
}

// Recommendation is the LLM reading recommendation; Unrated is the sentinel
// for papers without completed LLM scores.
type Recommendation string

const (
	MustRead   Recommendation = "must_read"
	ShouldRead Recommendation = "should_read"
	CanSkip    Recommendation = "can_skip"
	Ignore     Recommendation = "ignore"
	Unrated    Recommendation = "unrated"
)

func Recommendations() []Recommendation {
	return []Recommendation{MustRead, ShouldRead, CanSkip, Ignore}
}

func ParseRecommendation(s string) Recommendation {
	switch normalizeToken(s) {
	case "must_read":
		return MustRead
	case "should_read":
		return ShouldRead
	case "can_skip":
		return CanSkip
	case "ignore":
		return Ignore
	default:
		return Unrated
	}
}

// Rank orders recommendations best-first; the sentinel ranks zero so it
// always sorts last.
func (r Recommendation) Rank() int {
	switch r {
	case MustRead:
		return 4
	case ShouldRead:
		return 3
	case CanSkip:
		return 2
	case Ignore:
		return 1
	default:
		return 0
	}
}

func (r Recommendation) Label() string {
	switch r {
	case MustRead:
		return "Must Read"
	case ShouldRead:
		return "Should Read"
	case CanSkip:
		return "Can Skip"
	case Ignore:
		return "Ignore"
	default:
		return "Unrated"
	}
}

// Novelty grades how novel the paper's contribution is.
type Novelty string

const (
	NoveltyHigh     Novelty = "high"
	NoveltyModerate Novelty = "moderate"
	NoveltyLow      Novelty = "low"
	NoveltyNone     Novelty = "none"
	NoveltyUnrated  Novelty = "unrated"
)

func Novelties() []Novelty {
	return []Novelty{NoveltyHigh, NoveltyModerate, NoveltyLow, NoveltyNone}
}

func ParseNovelty(s string) Novelty {
	switch normalizeToken(s) {
	case "high":
		return NoveltyHigh
	case "moderate", "medium":
		return NoveltyModerate
	case "low":
		return NoveltyLow
	case "none":
		return NoveltyNone
	default:
		return NoveltyUnrated
	}
}

// Impact grades the expected impact of the paper.
type Impact string

const (
	ImpactHigh       Impact = "high"
	ImpactModerate   Impact = "moderate"
	ImpactLow        Impact = "low"
	ImpactNegligible Impact = "negligible"
	ImpactUnrated    Impact = "unrated"
)

func Impacts() []Impact {
	return []Impact{ImpactHigh, ImpactModerate, ImpactLow, ImpactNegligible}
}

func ParseImpact(s string) Impact {
	switch normalizeToken(s) {
	case "high":
		return ImpactHigh
	case "moderate", "medium":
		return ImpactModerate
	case "low":
		return ImpactLow
	case "negligible":
		return ImpactNegligible
	default:
		return ImpactUnrated
	}
}

// normalizeToken lowercases and snake_cases a raw enum token so the parsers
// accept both "Must Read" and "must_read" style input.
func normalizeToken(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// AuthorHIndex is one author's Semantic Scholar h-index entry.
type AuthorHIndex struct {
	Name       string `json:"name"`
	HIndex     int    `json:"h_index"`
	ProfileURL string `json:"profile_url"`
}

// Paper is one research paper with its pipeline-derived metadata. Papers are
// loaded once per view and treated as read-only afterwards; missing upstream
// data is represented by sentinel values, never by omitted fields.
type Paper struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Authors       []string `json:"authors"`
	Categories    []string `json:"categories"`
	Abstract      string   `json:"abstract"`
	PublishedDate string   `json:"published_date"`
	ArxivURL      string   `json:"arxiv_url"`
	PDFURL        string   `json:"pdf_url"`
	Summary       string   `json:"summary"`

	ScraperStatus       StageStatus `json:"scraper_status"`
	IntroStatus         StageStatus `json:"intro_status"`
	EmbeddingStatus     StageStatus `json:"embedding_status"`
	LLMValidationStatus StageStatus `json:"llm_validation_status"`

	RLHFScore                float64 `json:"rlhf_score"`
	WeakSupervisionScore     float64 `json:"weak_supervision_score"`
	DiffusionReasoningScore  float64 `json:"diffusion_reasoning_score"`
	DistributedTrainingScore float64 `json:"distributed_training_score"`
	DatasetsScore            float64 `json:"datasets_score"`

	RLHFRelevance                Relevance `json:"rlhf_relevance"`
	WeakSupervisionRelevance     Relevance `json:"weak_supervision_relevance"`
	DiffusionReasoningRelevance  Relevance `json:"diffusion_reasoning_relevance"`
	DistributedTrainingRelevance Relevance `json:"distributed_training_relevance"`
	DatasetsRelevance            Relevance `json:"datasets_relevance"`

	RLHFJustification                string `json:"rlhf_justification"`
	WeakSupervisionJustification     string `json:"weak_supervision_justification"`
	DiffusionReasoningJustification  string `json:"diffusion_reasoning_justification"`
	DistributedTrainingJustification string `json:"distributed_training_justification"`
	DatasetsJustification            string `json:"datasets_justification"`

	LLMScoreStatus              ScoreStatus    `json:"llm_score_status"`
	RecommendationScore         Recommendation `json:"recommendation_score"`
	RecommendationJustification string         `json:"recommendation_justification"`
	NoveltyScore                Novelty        `json:"novelty_score"`
	NoveltyJustification        string         `json:"novelty_justification"`
	ImpactScore                 Impact         `json:"impact_score"`
	ImpactJustification         string         `json:"impact_justification"`

	HIndexStatus        HIndexStatus   `json:"h_index_status"`
	SemanticScholarURL  string         `json:"semantic_scholar_url"`
	TotalAuthors        int            `json:"total_authors"`
	AuthorsFound        int            `json:"authors_found"`
	HighestHIndex       float64        `json:"highest_h_index"`
	AverageHIndex       float64        `json:"average_h_index"`
	NotableAuthorsCount int            `json:"notable_authors_count"`
	AuthorHIndexes      []AuthorHIndex `json:"author_h_indexes"`
}

// Normalize re-parses every enum field through its tolerant parser and fills
// sentinel defaults, so downstream predicates never see unknown tokens or
// empty justifications.
func (p *Paper) Normalize() {
	p.ScraperStatus = ParseStageStatus(string(p.ScraperStatus))
	p.IntroStatus = ParseStageStatus(string(p.IntroStatus))
	p.EmbeddingStatus = ParseStageStatus(string(p.EmbeddingStatus))
	p.LLMValidationStatus = ParseStageStatus(string(p.LLMValidationStatus))
	p.LLMScoreStatus = ParseScoreStatus(string(p.LLMScoreStatus))
	p.HIndexStatus = ParseHIndexStatus(string(p.HIndexStatus))

	p.RLHFRelevance = ParseRelevance(string(p.RLHFRelevance))
	p.WeakSupervisionRelevance = ParseRelevance(string(p.WeakSupervisionRelevance))
	p.DiffusionReasoningRelevance = ParseRelevance(string(p.DiffusionReasoningRelevance))
	p.DistributedTrainingRelevance = ParseRelevance(string(p.DistributedTrainingRelevance))
	p.DatasetsRelevance = ParseRelevance(string(p.DatasetsRelevance))

	p.RecommendationScore = ParseRecommendation(string(p.RecommendationScore))
	p.NoveltyScore = ParseNovelty(string(p.NoveltyScore))
	p.ImpactScore = ParseImpact(string(p.ImpactScore))

	// Recommendation, novelty and impact are meaningful only behind a
	// completed score status.
	if p.LLMScoreStatus != ScoreCompleted {
		p.RecommendationScore = Unrated
		p.NoveltyScore = NoveltyUnrated
		p.ImpactScore = ImpactUnrated
	}

	for _, j := range []*string{
		&p.RLHFJustification,
		&p.WeakSupervisionJustification,
		&p.DiffusionReasoningJustification,
		&p.DistributedTrainingJustification,
		&p.DatasetsJustification,
		&p.RecommendationJustification,
		&p.NoveltyJustification,
		&p.ImpactJustification,
	} {
		if strings.TrimSpace(*j) == "" {
			*j = NoJustification
		}
	}
}

// HasLLMScores reports whether recommendation/novelty/impact carry real values.
func (p Paper) HasLLMScores() bool {
	return p.LLMScoreStatus == ScoreCompleted
}

// HasHIndex reports whether the author h-index numbers carry real values.
func (p Paper) HasHIndex() bool {
	return p.HIndexStatus == HIndexCompleted
}

// TopicScore returns the similarity score for one topic.
func (p Paper) TopicScore(t Topic) float64 {
	switch t {
	case TopicRLHF:
		return p.RLHFScore
	case TopicWeakSupervision:
		return p.WeakSupervisionScore
	case TopicDiffusionReasoning:
		return p.DiffusionReasoningScore
	case TopicDistributedTraining:
		return p.DistributedTrainingScore
	case TopicDatasets:
		return p.DatasetsScore
	default:
		return 0
	}
}

// TopicRelevance returns the validated relevance level for one topic.
func (p Paper) TopicRelevance(t Topic) Relevance {
	switch t {
	case TopicRLHF:
		return p.RLHFRelevance
	case TopicWeakSupervision:
		return p.WeakSupervisionRelevance
	case TopicDiffusionReasoning:
		return p.DiffusionReasoningRelevance
	case TopicDistributedTraining:
		return p.DistributedTrainingRelevance
	case TopicDatasets:
		return p.DatasetsRelevance
	default:
		return NotValidated
	}
}

// TopicJustification returns the validator's justification for one topic.
func (p Paper) TopicJustification(t Topic) string {
	switch t {
	case TopicRLHF:
		return p.RLHFJustification
	case TopicWeakSupervision:
		return p.WeakSupervisionJustification
	case TopicDiffusionReasoning:
		return p.DiffusionReasoningJustification
	case TopicDistributedTraining:
		return p.DistributedTrainingJustification
	case TopicDatasets:
		return p.DatasetsJustification
	default:
		return NoJustification
	}
}

// BestTopic returns the topic with the highest similarity score. Ties keep
// the earlier topic in fixed order.
func (p Paper) BestTopic() Topic {
	best := TopicRLHF
	bestScore := p.TopicScore(best)
	for _, t := range Topics()[1:] {
		if s := p.TopicScore(t); s > bestScore {
			best, bestScore = t, s
		}
	}
	return best
}

// NumericID extracts the numeric component of an arXiv-style identifier
// ("2507.12345" -> 250712345). Identifiers without digits yield 0.
func (p Paper) NumericID() int64 {
	var b strings.Builder
	for _, r := range p.ID {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0
	}
	n, err := strconv.ParseInt(b.String(), 10, 64)
	if err != nil {
		return 0
	}
	return n
}
