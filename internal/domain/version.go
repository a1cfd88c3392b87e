package domain

import (
	"time"

	"github.com/google/uuid"
)

// VersionRecord is an append-only snapshot of a segment's text at one point in
// its edit history. Versions for a segment run 1, 2, 3, ... without gaps.
type VersionRecord struct {
	ID           uuid.UUID
	SegmentID    uuid.UUID
	SourceText   string
	TargetText   string
	ChangedBy    uuid.UUID
	ChangeReason *string
	Version      int
	CreatedAt    time.Time
}
