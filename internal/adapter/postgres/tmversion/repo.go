// Package tmversion implements the segment version ledger repository using PostgreSQL.
package tmversion

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/dingla0/TranslationTracker/internal/adapter/postgres"
	"github.com/dingla0/TranslationTracker/internal/domain"
)

const uniqueVersionConstraint = "uq_tm_versions_segment_version"

// Repo provides version ledger persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new version repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// The next version number is computed in the same statement as the insert.
// Callers hold the segment row lock, so MAX(version) is stable; the unique
// constraint still rejects a duplicate if they do not.
const appendSQL = `
INSERT INTO tm_versions (id, segment_id, source_text, target_text, changed_by, change_reason, version)
SELECT $1::uuid, $2::uuid, $3::text, $4::text, $5::uuid, $6::text, COALESCE(MAX(version), 0) + 1
FROM tm_versions
WHERE segment_id = $2::uuid
RETURNING id, segment_id, source_text, target_text, changed_by, change_reason, version, created_at`

const listSQL = `
SELECT id, segment_id, source_text, target_text, changed_by, change_reason, version, created_at
FROM tm_versions
WHERE segment_id = $1
ORDER BY version `

// Append stores the next version for rec.SegmentID and returns it with the
// assigned version number. Returns domain.ErrConflict when another writer
// claimed the same number.
func (r *Repo) Append(ctx context.Context, rec *domain.VersionRecord) (*domain.VersionRecord, error) {
	id := rec.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	var row versionRow
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, appendSQL,
		id, rec.SegmentID, rec.SourceText, rec.TargetText, rec.ChangedBy, rec.ChangeReason,
	).Scan(&row.ID, &row.SegmentID, &row.SourceText, &row.TargetText, &row.ChangedBy, &row.ChangeReason, &row.Version, &row.CreatedAt)
	if err != nil {
		if postgres.IsUniqueViolation(err, uniqueVersionConstraint) {
			return nil, fmt.Errorf("version for segment %s: %w", rec.SegmentID, domain.ErrConflict)
		}
		return nil, postgres.MapError(err, "version for segment", rec.SegmentID)
	}

	appended := row.toDomain()
	return &appended, nil
}

// ListBySegment returns every version of a segment ordered by version number.
func (r *Repo) ListBySegment(ctx context.Context, segmentID uuid.UUID, order domain.SortOrder) ([]domain.VersionRecord, error) {
	query := listSQL + "ASC"
	if order == domain.SortOrderDesc {
		query = listSQL + "DESC"
	}

	var rows []versionRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, segmentID); err != nil {
		return nil, fmt.Errorf("list versions: %w", err)
	}

	records := make([]domain.VersionRecord, len(rows))
	for i, row := range rows {
		records[i] = row.toDomain()
	}
	return records, nil
}

type versionRow struct {
	ID           uuid.UUID `db:"id"`
	SegmentID    uuid.UUID `db:"segment_id"`
	SourceText   string    `db:"source_text"`
	TargetText   string    `db:"target_text"`
	ChangedBy    uuid.UUID `db:"changed_by"`
	ChangeReason *string   `db:"change_reason"`
	Version      int       `db:"version"`
	CreatedAt    time.Time `db:"created_at"`
}

func (r versionRow) toDomain() domain.VersionRecord {
	return domain.VersionRecord{
		ID:           r.ID,
		SegmentID:    r.SegmentID,
		SourceText:   r.SourceText,
		TargetText:   r.TargetText,
		ChangedBy:    r.ChangedBy,
		ChangeReason: r.ChangeReason,
		Version:      r.Version,
		CreatedAt:    r.CreatedAt.UTC(),
	}
}
