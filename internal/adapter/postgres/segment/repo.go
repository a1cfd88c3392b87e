// Package segment implements the translation memory segment repository using PostgreSQL.
// Fixed-shape statements are raw SQL; filtered reads and partial updates are
// built with squirrel.
package segment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dingla0/TranslationTracker/internal/adapter/postgres"
	"github.com/dingla0/TranslationTracker/internal/domain"
)

const table = "tm_segments"

var columns = []string{
	"id", "source_text", "target_text", "source_language", "target_language",
	"context", "event", "topic", "translated_by", "content_id", "project_id", "metadata",
	"usage_count", "rating_count", "avg_rating", "created_at", "updated_at", "deleted_at",
}

var (
	psql          = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	columnList    = strings.Join(columns, ", ")
	returningList = "RETURNING " + columnList
)

// Repo provides segment persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new segment repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

var (
	getByIDSQL = `SELECT ` + columnList + `
FROM tm_segments
WHERE id = $1 AND deleted_at IS NULL`

	lockByIDSQL = getByIDSQL + `
FOR UPDATE`

	incrementUsageSQL = `UPDATE tm_segments
SET usage_count = usage_count + 1,
    updated_at  = clock_timestamp()
WHERE id = $1 AND deleted_at IS NULL
` + returningList

	// $3 is the windowed mean when a rating window is configured; NULL folds
	// the rating into the lifetime mean.
	addRatingSQL = `UPDATE tm_segments
SET rating_count = rating_count + 1,
    rating_sum   = rating_sum + $2,
    avg_rating   = COALESCE($3::float8, (rating_sum + $2)::float8 / (rating_count + 1)),
    updated_at   = clock_timestamp()
WHERE id = $1 AND deleted_at IS NULL
` + returningList

	softDeleteSQL = `UPDATE tm_segments
SET deleted_at = clock_timestamp(),
    updated_at = clock_timestamp()
WHERE id = $1 AND deleted_at IS NULL`
)

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an active segment by primary key.
// Returns domain.ErrNotFound if the segment does not exist or is soft-deleted.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Segment, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	seg, err := scanSegment(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "segment", id)
	}
	return seg, nil
}

// LockByID reads an active segment and holds a row lock until the surrounding
// transaction ends. Must be called inside TxManager.RunInTx.
func (r *Repo) LockByID(ctx context.Context, id uuid.UUID) (*domain.Segment, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	seg, err := scanSegment(q.QueryRow(ctx, lockByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "segment", id)
	}
	return seg, nil
}

// FindCandidates returns active segments matching the hard filter, most used
// and newest first. A zero Limit returns every match.
func (r *Repo) FindCandidates(ctx context.Context, filter domain.SegmentFilter) ([]domain.Segment, error) {
	query := applyFilter(psql.Select(columns...).From(table), filter).
		OrderBy("usage_count DESC", "created_at DESC", "id")
	query = applyPage(query, filter)

	segments, err := r.selectSegments(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("find candidates: %w", err)
	}
	return segments, nil
}

// List returns active segments matching the filter, newest first.
func (r *Repo) List(ctx context.Context, filter domain.SegmentFilter) ([]domain.Segment, error) {
	query := applyFilter(psql.Select(columns...).From(table), filter).
		OrderBy("created_at DESC", "id")
	query = applyPage(query, filter)

	segments, err := r.selectSegments(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list segments: %w", err)
	}
	return segments, nil
}

// Count returns the number of active segments matching the filter, ignoring pagination.
func (r *Repo) Count(ctx context.Context, filter domain.SegmentFilter) (int, error) {
	sql, args, err := applyFilter(psql.Select("count(*)").From(table), filter).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count segments: %w", err)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new segment and returns the persisted row. The ID is
// generated when unset; usage and rating statistics always start at zero.
func (r *Repo) Create(ctx context.Context, seg *domain.Segment) (*domain.Segment, error) {
	id := seg.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	sql, args, err := psql.Insert(table).
		Columns("id", "source_text", "target_text", "source_language", "target_language",
			"context", "event", "topic", "translated_by", "content_id", "project_id", "metadata").
		Values(id, seg.SourceText, seg.TargetText, seg.SourceLanguage, seg.TargetLanguage,
			seg.Context, seg.Event, seg.Topic, seg.TranslatedBy, seg.ContentID, seg.ProjectID, metadataArg(seg.Metadata)).
		Suffix(returningList).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}

	created, err := scanSegment(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "segment", id)
	}
	return created, nil
}

// Update applies a partial update to an active segment and refreshes updated_at.
// Returns domain.ErrNotFound if the segment does not exist or is soft-deleted.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.SegmentUpdateParams) (*domain.Segment, error) {
	set := updateSet(params)
	set["updated_at"] = squirrel.Expr("clock_timestamp()")

	sql, args, err := psql.Update(table).
		SetMap(set).
		Where(squirrel.Eq{"id": id, "deleted_at": nil}).
		Suffix(returningList).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update: %w", err)
	}

	updated, err := scanSegment(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "segment", id)
	}
	return updated, nil
}

// SoftDelete marks a segment deleted. Its feedback and version rows are kept.
func (r *Repo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, softDeleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "segment", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("segment %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// IncrementUsage atomically adds one to usage_count and returns the updated segment.
func (r *Repo) IncrementUsage(ctx context.Context, id uuid.UUID) (*domain.Segment, error) {
	seg, err := scanSegment(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, incrementUsageSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "segment", id)
	}
	return seg, nil
}

// AddRating atomically folds a 1-5 rating into the segment's aggregate.
// When windowMean is nil avg_rating becomes the lifetime mean; otherwise it is
// set to windowMean, which the caller computed over the recent ratings.
func (r *Repo) AddRating(ctx context.Context, id uuid.UUID, rating int, windowMean *float64) (*domain.Segment, error) {
	seg, err := scanSegment(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, addRatingSQL, id, rating, windowMean))
	if err != nil {
		return nil, postgres.MapError(err, "segment", id)
	}
	return seg, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func applyFilter(q squirrel.SelectBuilder, f domain.SegmentFilter) squirrel.SelectBuilder {
	q = q.Where(squirrel.Eq{"deleted_at": nil})
	if f.SourceLanguage != "" {
		q = q.Where(squirrel.Eq{"source_language": f.SourceLanguage})
	}
	if f.TargetLanguage != "" {
		q = q.Where(squirrel.Eq{"target_language": f.TargetLanguage})
	}
	if f.Event != nil {
		q = q.Where(squirrel.Eq{"event": *f.Event})
	}
	if f.Topic != nil {
		q = q.Where(squirrel.Eq{"topic": *f.Topic})
	}
	if f.TranslatorID != nil {
		q = q.Where(squirrel.Eq{"translated_by": *f.TranslatorID})
	}
	return q
}

func applyPage(q squirrel.SelectBuilder, f domain.SegmentFilter) squirrel.SelectBuilder {
	if f.Limit > 0 {
		q = q.Limit(uint64(f.Limit))
	}
	if f.Offset > 0 {
		q = q.Offset(uint64(f.Offset))
	}
	return q
}

func (r *Repo) selectSegments(ctx context.Context, query squirrel.SelectBuilder) ([]domain.Segment, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []segmentRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, err
	}

	segments := make([]domain.Segment, len(rows))
	for i, row := range rows {
		segments[i] = row.toDomain()
	}
	return segments, nil
}

// updateSet maps non-nil update params onto column assignments. Empty strings
// and uuid.Nil clear the optional tags.
func updateSet(p domain.SegmentUpdateParams) map[string]any {
	set := make(map[string]any)
	if p.SourceText != nil {
		set["source_text"] = *p.SourceText
	}
	if p.TargetText != nil {
		set["target_text"] = *p.TargetText
	}
	if p.SourceLanguage != nil {
		set["source_language"] = *p.SourceLanguage
	}
	if p.TargetLanguage != nil {
		set["target_language"] = *p.TargetLanguage
	}
	if p.Context != nil {
		set["context"] = nilIfEmpty(*p.Context)
	}
	if p.Event != nil {
		set["event"] = nilIfEmpty(*p.Event)
	}
	if p.Topic != nil {
		set["topic"] = nilIfEmpty(*p.Topic)
	}
	if p.TranslatedBy != nil {
		set["translated_by"] = nilIfZero(*p.TranslatedBy)
	}
	if p.ContentID != nil {
		set["content_id"] = nilIfZero(*p.ContentID)
	}
	if p.ProjectID != nil {
		set["project_id"] = nilIfZero(*p.ProjectID)
	}
	if p.Metadata != nil {
		set["metadata"] = metadataArg(p.Metadata)
	}
	return set
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func nilIfZero(id uuid.UUID) *uuid.UUID {
	if id == uuid.Nil {
		return nil
	}
	return &id
}

// metadataArg stores an empty object as NULL.
func metadataArg(m map[string]any) any {
	if len(m) == 0 {
		return nil
	}
	return m
}

// segmentRow mirrors a tm_segments row for pgxscan.
type segmentRow struct {
	ID             uuid.UUID      `db:"id"`
	SourceText     string         `db:"source_text"`
	TargetText     string         `db:"target_text"`
	SourceLanguage string         `db:"source_language"`
	TargetLanguage string         `db:"target_language"`
	Context        *string        `db:"context"`
	Event          *string        `db:"event"`
	Topic          *string        `db:"topic"`
	TranslatedBy   *uuid.UUID     `db:"translated_by"`
	ContentID      *uuid.UUID     `db:"content_id"`
	ProjectID      *uuid.UUID     `db:"project_id"`
	Metadata       map[string]any `db:"metadata"`
	UsageCount     int            `db:"usage_count"`
	RatingCount    int            `db:"rating_count"`
	AvgRating      *float64       `db:"avg_rating"`
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"`
	DeletedAt      *time.Time     `db:"deleted_at"`
}

func (r segmentRow) toDomain() domain.Segment {
	s := domain.Segment{
		ID:             r.ID,
		SourceText:     r.SourceText,
		TargetText:     r.TargetText,
		SourceLanguage: r.SourceLanguage,
		TargetLanguage: r.TargetLanguage,
		Context:        r.Context,
		Event:          r.Event,
		Topic:          r.Topic,
		TranslatedBy:   r.TranslatedBy,
		ContentID:      r.ContentID,
		ProjectID:      r.ProjectID,
		Metadata:       r.Metadata,
		UsageCount:     r.UsageCount,
		RatingCount:    r.RatingCount,
		AvgRating:      r.AvgRating,
		CreatedAt:      r.CreatedAt.UTC(),
		UpdatedAt:      r.UpdatedAt.UTC(),
	}
	if r.DeletedAt != nil {
		t := r.DeletedAt.UTC()
		s.DeletedAt = &t
	}
	return s
}

func scanSegment(row pgx.Row) (*domain.Segment, error) {
	var r segmentRow
	err := row.Scan(
		&r.ID, &r.SourceText, &r.TargetText, &r.SourceLanguage, &r.TargetLanguage,
		&r.Context, &r.Event, &r.Topic, &r.TranslatedBy, &r.ContentID, &r.ProjectID, &r.Metadata,
		&r.UsageCount, &r.RatingCount, &r.AvgRating, &r.CreatedAt, &r.UpdatedAt, &r.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	s := r.toDomain()
	return &s, nil
}
