// Package feedback implements the append-only feedback event repository using PostgreSQL.
package feedback

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/dingla0/TranslationTracker/internal/adapter/postgres"
	"github.com/dingla0/TranslationTracker/internal/domain"
)

// Repo provides feedback persistence backed by PostgreSQL.
// Rows are inserted and read, never updated or deleted.
type Repo struct {
	db postgres.Querier
}

// New creates a new feedback repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const createSQL = `
INSERT INTO tm_feedback (id, segment_id, user_id, action, rating, comment, project_id)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, segment_id, user_id, action, rating, comment, project_id, created_at`

const listBySegmentSQL = `
SELECT id, segment_id, user_id, action, rating, comment, project_id, created_at
FROM tm_feedback
WHERE segment_id = $1
ORDER BY seq DESC
LIMIT $2 OFFSET $3`

const countByActionSQL = `
SELECT action, count(*) AS n, avg(rating)::float8 AS avg_rating
FROM tm_feedback
WHERE segment_id = $1
GROUP BY action`

const recentRatingMeanSQL = `
SELECT avg(rating)::float8
FROM (
    SELECT rating
    FROM tm_feedback
    WHERE segment_id = $1 AND action = 'rated'
    ORDER BY seq DESC
    LIMIT $2
) recent`

// Create appends a feedback event.
func (r *Repo) Create(ctx context.Context, ev *domain.FeedbackEvent) (*domain.FeedbackEvent, error) {
	id := ev.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	var row feedbackRow
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, createSQL,
		id, ev.SegmentID, ev.UserID, string(ev.Action), ev.Rating, ev.Comment, ev.ProjectID,
	).Scan(&row.ID, &row.SegmentID, &row.UserID, &row.Action, &row.Rating, &row.Comment, &row.ProjectID, &row.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "feedback", ev.SegmentID)
	}

	created := row.toDomain()
	return &created, nil
}

// ListBySegment returns a segment's feedback, newest first.
func (r *Repo) ListBySegment(ctx context.Context, segmentID uuid.UUID, limit, offset int) ([]domain.FeedbackEvent, error) {
	var rows []feedbackRow
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, listBySegmentSQL, segmentID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}

	events := make([]domain.FeedbackEvent, len(rows))
	for i, row := range rows {
		events[i] = row.toDomain()
	}
	return events, nil
}

// Summary aggregates event counts per action and the lifetime rating mean.
func (r *Repo) Summary(ctx context.Context, segmentID uuid.UUID) (*domain.FeedbackSummary, error) {
	var rows []struct {
		Action    string   `db:"action"`
		N         int      `db:"n"`
		AvgRating *float64 `db:"avg_rating"`
	}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, countByActionSQL, segmentID); err != nil {
		return nil, fmt.Errorf("summarize feedback: %w", err)
	}

	summary := &domain.FeedbackSummary{
		SegmentID: segmentID,
		Counts:    make(map[domain.FeedbackAction]int, len(rows)),
	}
	for _, row := range rows {
		action := domain.FeedbackAction(row.Action)
		summary.Counts[action] = row.N
		if action == domain.FeedbackActionRated {
			summary.RatingCount = row.N
			summary.AvgRating = row.AvgRating
		}
	}
	return summary, nil
}

// RecentRatingMean returns the mean of the window most recent ratings for a
// segment, or nil if it has none.
func (r *Repo) RecentRatingMean(ctx context.Context, segmentID uuid.UUID, window int) (*float64, error) {
	var mean *float64
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, recentRatingMeanSQL, segmentID, window).Scan(&mean)
	if err != nil {
		return nil, fmt.Errorf("recent rating mean: %w", err)
	}
	return mean, nil
}

type feedbackRow struct {
	ID        uuid.UUID  `db:"id"`
	SegmentID uuid.UUID  `db:"segment_id"`
	UserID    uuid.UUID  `db:"user_id"`
	Action    string     `db:"action"`
	Rating    *int16     `db:"rating"`
	Comment   *string    `db:"comment"`
	ProjectID *uuid.UUID `db:"project_id"`
	CreatedAt time.Time  `db:"created_at"`
}

func (r feedbackRow) toDomain() domain.FeedbackEvent {
	ev := domain.FeedbackEvent{
		ID:        r.ID,
		SegmentID: r.SegmentID,
		UserID:    r.UserID,
		Action:    domain.FeedbackAction(r.Action),
		Comment:   r.Comment,
		ProjectID: r.ProjectID,
		CreatedAt: r.CreatedAt.UTC(),
	}
	if r.Rating != nil {
		v := int(*r.Rating)
		ev.Rating = &v
	}
	return ev
}
