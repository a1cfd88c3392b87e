package importer

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/dingla0/TranslationTracker/internal/domain"
	"github.com/dingla0/TranslationTracker/internal/service/segment"
)

//go:generate moq -out segment_creator_mock_test.go -pkg importer . segmentCreator

type segmentCreator interface {
	CreateSegment(ctx context.Context, input segment.CreateSegmentInput) (*domain.Segment, error)
}

// RowError records a data line that was rejected by validation.
type RowError struct {
	Line int
	Err  error
}

func (e RowError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

// Result summarises an import run.
type Result struct {
	Imported int
	Rejected []RowError
}

// Importer creates segments from parsed rows using a bounded worker pool.
type Importer struct {
	segments segmentCreator
	workers  int
	log      *slog.Logger
}

// New creates an Importer. workers <= 0 means one worker.
func New(log *slog.Logger, segments segmentCreator, workers int) *Importer {
	if workers <= 0 {
		workers = 1
	}
	return &Importer{
		segments: segments,
		workers:  workers,
		log:      log.With("service", "importer"),
	}
}

// Import creates one segment per row. Rows failing validation are collected
// in Result.Rejected and do not stop the run; any other error cancels the
// remaining rows and is returned alongside the partial result.
func (im *Importer) Import(ctx context.Context, rows []Row) (Result, error) {
	var (
		mu  sync.Mutex
		res Result
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(im.workers)

	for _, row := range rows {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			_, err := im.segments.CreateSegment(gctx, row.Input)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				res.Imported++
				return nil
			case errors.Is(err, domain.ErrValidation):
				res.Rejected = append(res.Rejected, RowError{Line: row.Line, Err: err})
				return nil
			default:
				return fmt.Errorf("line %d: %w", row.Line, err)
			}
		})
	}

	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	slices.SortFunc(res.Rejected, func(a, b RowError) int { return cmp.Compare(a.Line, b.Line) })

	im.log.InfoContext(ctx, "import finished",
		slog.Int("rows", len(rows)),
		slog.Int("imported", res.Imported),
		slog.Int("rejected", len(res.Rejected)),
	)

	return res, err
}
