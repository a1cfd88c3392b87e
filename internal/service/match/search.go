package match

import (
	"bytes"
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/dingla0/TranslationTracker/internal/domain"
	"github.com/dingla0/TranslationTracker/internal/similarity"
)

// minChunk is the smallest batch of candidates handed to one scoring worker.
const minChunk = 64

// query is a validated, defaulted search.
type query struct {
	text       similarity.Text
	threshold  int
	limit      int
	event      *string
	topic      *string
	translator *uuid.UUID
}

// Search returns segments whose match score reaches the threshold, best first.
// Scores are the character-level similarity plus context boosts, capped at 100.
// Results are ordered by score, then usage count, then recency. An empty
// result is not an error.
func (s *Service) Search(ctx context.Context, input SearchInput) ([]domain.Match, error) {
	if err := input.Validate(s.cfg.MaxSourceLength); err != nil {
		return nil, err
	}

	q := s.buildQuery(input)

	filter := domain.SegmentFilter{
		SourceLanguage: languageOr(input.SourceLanguage, s.cfg.SourceLanguage),
		TargetLanguage: languageOr(input.TargetLanguage, s.cfg.TargetLanguage),
		Limit:          s.cfg.MaxCandidates,
	}
	if s.cfg.StrictContext {
		filter.Event = q.event
		filter.Topic = q.topic
		filter.TranslatorID = input.TranslatorID
	}

	candidates, err := s.store.FindCandidates(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find candidates: %w", err)
	}

	scored, err := s.scoreAll(ctx, q, candidates)
	if err != nil {
		return nil, err
	}

	slices.SortFunc(scored, compareMatches)
	if len(scored) > q.limit {
		scored = scored[:q.limit]
	}

	s.log.DebugContext(ctx, "tm search",
		slog.String("source_language", filter.SourceLanguage),
		slog.String("target_language", filter.TargetLanguage),
		slog.Int("threshold", q.threshold),
		slog.Int("candidates", len(candidates)),
		slog.Int("results", len(scored)),
	)

	return scored, nil
}

func (s *Service) buildQuery(input SearchInput) query {
	q := query{
		text:      similarity.Prepare(strings.TrimSpace(input.SourceText)),
		threshold: s.cfg.DefaultThreshold,
		limit:     input.Limit,
		event:     domain.TrimOrNil(input.Event),
		topic:     domain.TrimOrNil(input.Topic),
	}
	if input.Threshold != nil {
		q.threshold = *input.Threshold
	}
	if q.limit == 0 {
		q.limit = s.cfg.DefaultLimit
	}
	if s.cfg.MaxLimit > 0 && q.limit > s.cfg.MaxLimit {
		q.limit = s.cfg.MaxLimit
	}
	q.translator = input.TranslatorID
	return q
}

// scoreAll scores candidates on up to WorkerCount goroutines. Each worker owns
// a contiguous slot range, so no synchronisation is needed beyond Wait.
func (s *Service) scoreAll(ctx context.Context, q query, candidates []domain.Segment) ([]domain.Match, error) {
	slots := make([]domain.Match, len(candidates))
	kept := make([]bool, len(candidates))

	workers := s.cfg.WorkerCount()
	chunk := max(minChunk, (len(candidates)+workers-1)/max(workers, 1))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for start := 0; start < len(candidates); start += chunk {
		end := min(start+chunk, len(candidates))
		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				slots[i], kept[i] = s.score(q, &candidates[i])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("score candidates: %w", err)
	}

	out := make([]domain.Match, 0, len(candidates))
	for i, ok := range kept {
		if ok {
			out = append(out, slots[i])
		}
	}
	return out, nil
}

// score computes one candidate's match. Candidates whose best possible score
// cannot reach the threshold are skipped before the distance computation.
func (s *Service) score(q query, cand *domain.Segment) (domain.Match, bool) {
	boost := s.boost(q, cand)
	target := similarity.Prepare(cand.SourceText)

	if similarity.UpperBound(q.text, target)+boost < q.threshold {
		return domain.Match{}, false
	}

	base := similarity.ScoreText(q.text, target)
	total := min(100, base+boost)
	if total < q.threshold {
		return domain.Match{}, false
	}

	return domain.Match{
		Segment:   *cand,
		BaseScore: base,
		Score:     total,
		Tier:      domain.TierForScore(total),
	}, true
}

// boost sums the context bonuses for tags the query and candidate share.
func (s *Service) boost(q query, cand *domain.Segment) int {
	b := 0
	if q.event != nil && cand.Event != nil && *cand.Event == *q.event {
		b += s.cfg.EventBoost
	}
	if q.topic != nil && cand.Topic != nil && *cand.Topic == *q.topic {
		b += s.cfg.TopicBoost
	}
	if q.translator != nil && cand.TranslatedBy != nil && *cand.TranslatedBy == *q.translator {
		b += s.cfg.TranslatorBoost
	}
	return b
}

// compareMatches orders by score desc, usage desc, created_at desc, then id
// so the order is total.
func compareMatches(a, b domain.Match) int {
	if c := cmp.Compare(b.Score, a.Score); c != 0 {
		return c
	}
	if c := cmp.Compare(b.Segment.UsageCount, a.Segment.UsageCount); c != 0 {
		return c
	}
	if c := b.Segment.CreatedAt.Compare(a.Segment.CreatedAt); c != 0 {
		return c
	}
	return bytes.Compare(a.Segment.ID[:], b.Segment.ID[:])
}

func languageOr(code, def string) string {
	if c := domain.NormalizeLanguage(code); c != "" {
		return c
	}
	return def
}
