package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dingla0/TranslationTracker/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// UniqueLanguage returns a language code no other test uses, so candidate
// queries in parallel tests only see their own segments.
func UniqueLanguage() string {
	return "t-" + uniqueSuffix()
}

// SegmentOption customises a seeded segment before insert.
type SegmentOption func(*domain.Segment)

// WithLanguages sets the language pair.
func WithLanguages(source, target string) SegmentOption {
	return func(s *domain.Segment) {
		s.SourceLanguage = source
		s.TargetLanguage = target
	}
}

// WithEvent sets the event tag.
func WithEvent(event string) SegmentOption {
	return func(s *domain.Segment) { s.Event = &event }
}

// WithTopic sets the topic tag.
func WithTopic(topic string) SegmentOption {
	return func(s *domain.Segment) { s.Topic = &topic }
}

// WithTranslator sets the translator.
func WithTranslator(id uuid.UUID) SegmentOption {
	return func(s *domain.Segment) { s.TranslatedBy = &id }
}

// WithUsage sets the initial usage counter.
func WithUsage(n int) SegmentOption {
	return func(s *domain.Segment) { s.UsageCount = n }
}

// WithCreatedAt overrides the creation timestamp.
func WithCreatedAt(ts time.Time) SegmentOption {
	return func(s *domain.Segment) {
		s.CreatedAt = ts
		s.UpdatedAt = ts
	}
}

// SeedSegment inserts a segment with the given texts. Defaults to the ko→en pair.
func SeedSegment(t *testing.T, pool *pgxpool.Pool, source, target string, opts ...SegmentOption) domain.Segment {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	seg := domain.Segment{
		ID:             uuid.New(),
		SourceText:     source,
		TargetText:     target,
		SourceLanguage: "ko",
		TargetLanguage: "en",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	for _, opt := range opts {
		opt(&seg)
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO tm_segments (id, source_text, target_text, source_language, target_language,
		                          event, topic, translated_by, usage_count, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		seg.ID, seg.SourceText, seg.TargetText, seg.SourceLanguage, seg.TargetLanguage,
		seg.Event, seg.Topic, seg.TranslatedBy, seg.UsageCount, seg.CreatedAt, seg.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSegment insert: %v", err)
	}

	return seg
}
