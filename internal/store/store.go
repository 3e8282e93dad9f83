// Package store reads paper snapshots from the pipeline's SQLite database.
// It is the offline alternative to the feed API client: the same papers, read
// straight from the cache the scraping pipeline maintains.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	_ "modernc.org/sqlite"

	"github.com/paperfeed/paperlens/internal/paper"
)

var paperColumns = []string{
	"id", "title", "authors", "categories", "abstract", "published_date",
	"arxiv_url", "pdf_url", "scraper_status", "intro_status", "embedding_status",
	"rlhf_score", "weak_supervision_score", "diffusion_reasoning_score",
	"distributed_training_score", "datasets_score", "llm_validation_status",
	"rlhf_relevance", "weak_supervision_relevance", "diffusion_reasoning_relevance",
	"distributed_training_relevance", "datasets_relevance",
	"rlhf_justification", "weak_supervision_justification",
	"diffusion_reasoning_justification", "distributed_training_justification",
	"datasets_justification", "llm_score_status", "summary",
	"novelty_score", "novelty_justification", "impact_score", "impact_justification",
	"recommendation_score", "recommendation_justification",
	"h_index_status", "semantic_scholar_url", "total_authors", "authors_found",
	"highest_h_index", "average_h_index", "notable_authors_count", "author_h_indexes",
}

// Store reads papers from the pipeline database.
type Store struct {
	db *sql.DB
}

// Open opens the SQLite database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return &Store{db: db}, nil
}

// NewStore wires an existing sql.DB.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Dates returns the distinct publication dates present in the database,
// newest first.
func (s *Store) Dates(ctx context.Context) ([]string, error) {
	query, args, err := sq.Select("DISTINCT DATE(published_date) AS date").
		From("papers").
		Where("published_date IS NOT NULL").
		OrderBy("date DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build dates query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query dates: %w", err)
	}
	defer rows.Close()

	var dates []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("scan date: %w", err)
		}
		dates = append(dates, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}

	return dates, nil
}

// CountForDate returns how many papers exist for a publication date.
func (s *Store) CountForDate(ctx context.Context, date string) (int, error) {
	query, args, err := sq.Select("COUNT(*)").
		From("papers").
		Where(sq.Expr("DATE(published_date) = ?", date)).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}

	var count int
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count papers: %w", err)
	}
	return count, nil
}

// SnapshotForDate loads every paper published on a date, ordered by id.
// Papers come back normalized.
func (s *Store) SnapshotForDate(ctx context.Context, date string) (*paper.Snapshot, error) {
	query, args, err := sq.Select(paperColumns...).
		From("papers").
		Where(sq.Expr("DATE(published_date) = ?", date)).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build papers query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query papers: %w", err)
	}
	defer rows.Close()

	var papers []paper.Paper
	for rows.Next() {
		p, err := scanPaper(rows)
		if err != nil {
			return nil, err
		}
		papers = append(papers, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}

	return &paper.Snapshot{
		Date:        date,
		TotalPapers: len(papers),
		Papers:      papers,
	}, nil
}

func scanPaper(rows *sql.Rows) (paper.Paper, error) {
	var (
		p paper.Paper

		authors, categories, authorHIndexes sql.NullString

		abstract, publishedDate, arxivURL, pdfURL, summary sql.NullString
		scraperStatus, introStatus, embeddingStatus        sql.NullString
		llmValidationStatus, llmScoreStatus                sql.NullString

		rlhfScore, weakSupScore, diffScore, distScore, datasetsScore sql.NullFloat64

		rlhfRel, weakSupRel, diffRel, distRel, datasetsRel sql.NullString
		rlhfJust, weakSupJust, diffJust, distJust, dsJust  sql.NullString

		noveltyScore, noveltyJust, impactScore, impactJust sql.NullString
		recScore, recJust                                  sql.NullString

		hIndexStatus, semanticScholarURL           sql.NullString
		totalAuthors, authorsFound, notableAuthors sql.NullInt64
		highestHIndex, averageHIndex               sql.NullFloat64
	)

	err := rows.Scan(
		&p.ID, &p.Title, &authors, &categories, &abstract, &publishedDate,
		&arxivURL, &pdfURL, &scraperStatus, &introStatus, &embeddingStatus,
		&rlhfScore, &weakSupScore, &diffScore, &distScore, &datasetsScore,
		&llmValidationStatus,
		&rlhfRel, &weakSupRel, &diffRel, &distRel, &datasetsRel,
		&rlhfJust, &weakSupJust, &diffJust, &distJust, &dsJust,
		&llmScoreStatus, &summary,
		&noveltyScore, &noveltyJust, &impactScore, &impactJust,
		&recScore, &recJust,
		&hIndexStatus, &semanticScholarURL, &totalAuthors, &authorsFound,
		&highestHIndex, &averageHIndex, &notableAuthors, &authorHIndexes,
	)
	if err != nil {
		return paper.Paper{}, fmt.Errorf("scan paper: %w", err)
	}

	p.Authors = parseStringList(authors.String)
	p.Categories = parseStringList(categories.String)
	p.Abstract = abstract.String
	p.PublishedDate = dateOnly(publishedDate.String)
	p.ArxivURL = arxivURL.String
	p.PDFURL = pdfURL.String
	p.Summary = summary.String

	p.ScraperStatus = paper.StageStatus(scraperStatus.String)
	p.IntroStatus = paper.StageStatus(introStatus.String)
	p.EmbeddingStatus = paper.StageStatus(embeddingStatus.String)
	p.LLMValidationStatus = paper.StageStatus(llmValidationStatus.String)

	p.RLHFScore = rlhfScore.Float64
	p.WeakSupervisionScore = weakSupScore.Float64
	p.DiffusionReasoningScore = diffScore.Float64
	p.DistributedTrainingScore = distScore.Float64
	p.DatasetsScore = datasetsScore.Float64

	p.RLHFRelevance = paper.Relevance(rlhfRel.String)
	p.WeakSupervisionRelevance = paper.Relevance(weakSupRel.String)
	p.DiffusionReasoningRelevance = paper.Relevance(diffRel.String)
	p.DistributedTrainingRelevance = paper.Relevance(distRel.String)
	p.DatasetsRelevance = paper.Relevance(datasetsRel.String)

	p.RLHFJustification = rlhfJust.String
	p.WeakSupervisionJustification = weakSupJust.String
	p.DiffusionReasoningJustification = diffJust.String
	p.DistributedTrainingJustification = distJust.String
	p.DatasetsJustification = dsJust.String

	p.LLMScoreStatus = paper.ScoreStatus(llmScoreStatus.String)
	p.RecommendationScore = paper.Recommendation(recScore.String)
	p.RecommendationJustification = recJust.String
	p.NoveltyScore = paper.Novelty(noveltyScore.String)
	p.NoveltyJustification = noveltyJust.String
	p.ImpactScore = paper.Impact(impactScore.String)
	p.ImpactJustification = impactJust.String

	p.HIndexStatus = paper.HIndexStatus(hIndexStatus.String)
	p.SemanticScholarURL = semanticScholarURL.String
	p.TotalAuthors = int(totalAuthors.Int64)
	p.AuthorsFound = int(authorsFound.Int64)
	p.HighestHIndex = highestHIndex.Float64
	p.AverageHIndex = averageHIndex.Float64
	p.NotableAuthorsCount = int(notableAuthors.Int64)
	p.AuthorHIndexes = parseAuthorHIndexes(authorHIndexes.String)

	p.Normalize()
	return p, nil
}

// parseStringList decodes a JSON array column. Malformed data yields an
// empty list rather than failing the whole snapshot.
func parseStringList(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil
	}
	return out
}

func parseAuthorHIndexes(raw string) []paper.AuthorHIndex {
	if raw == "" {
		return nil
	}
	var out []paper.AuthorHIndex
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil
	}
	return out
}

// dateOnly trims an ISO datetime down to YYYY-MM-DD.
func dateOnly(s string) string {
	if len(s) > 10 {
		return s[:10]
	}
	return s
}
