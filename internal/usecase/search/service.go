package search

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kailas-cloud/healthdir/internal/domain"
	"github.com/kailas-cloud/healthdir/internal/domain/entity"
	"github.com/kailas-cloud/healthdir/internal/domain/search/request"
	"github.com/kailas-cloud/healthdir/internal/domain/search/result"
	"github.com/kailas-cloud/healthdir/internal/logger"
)

// Service runs full-scan multi-term relevance search over the directory corpus.
type Service struct {
	repo     Repository
	recorder Recorder
}

// New creates a search service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// WithRecorder attaches a metrics recorder. nil disables recording.
func (s *Service) WithRecorder(r Recorder) *Service {
	s.recorder = r
	return s
}

// Search loads the corpus, keeps records containing every query term, ranks
// them and returns the requested page with the pre-pagination total.
func (s *Service) Search(ctx context.Context, req *request.Request) ([]result.Result, int, error) {
	start := time.Now()

	corpus, err := s.load(ctx, req.Kinds())
	if err != nil {
		return nil, 0, err
	}

	terms := req.Query().Terms()
	matched := make([]result.Result, 0)
	for i := range corpus {
		c := newCandidate(&corpus[i])
		if !c.matchesAll(terms) {
			continue
		}
		matched = append(matched, result.New(c.rec, extractSnippets(&c, terms), c.matchCount(terms)))
	}

	rank(matched, req.Query())

	total := len(matched)
	page := paginate(matched, req.Offset(), req.Limit())

	if s.recorder != nil {
		s.recorder.ObserveSearch(time.Since(start), len(corpus), total)
	}
	logger.FromContext(ctx).Debug("search completed",
		zap.Int("terms", len(terms)),
		zap.Int("corpus", len(corpus)),
		zap.Int("matched", total),
		zap.Int("returned", len(page)),
		zap.Duration("elapsed", time.Since(start)),
	)

	return page, total, nil
}

// load fetches every requested kind concurrently and concatenates them in
// corpus order. The first failure cancels the remaining fetches.
func (s *Service) load(ctx context.Context, kinds []entity.Kind) ([]entity.Record, error) {
	sets := make([][]entity.Record, len(kinds))

	g, gctx := errgroup.WithContext(ctx)
	for i, kind := range kinds {
		g.Go(func() error {
			records, err := s.fetch(gctx, kind)
			if err != nil {
				return fmt.Errorf("%w: load %s: %w", domain.ErrUpstreamFetch, kind, err)
			}
			sets[i] = records
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	n := 0
	for _, set := range sets {
		n += len(set)
	}
	corpus := make([]entity.Record, 0, n)
	for _, set := range sets {
		corpus = append(corpus, set...)
	}
	return corpus, nil
}

func (s *Service) fetch(ctx context.Context, kind entity.Kind) ([]entity.Record, error) {
	if kind == entity.Treatment {
		return s.repo.ListTreatments(ctx)
	}
	return s.repo.ListByKind(ctx, kind)
}

// paginate slices results to [offset, offset+limit). limit 0 returns the rest.
func paginate(results []result.Result, offset, limit int) []result.Result {
	if offset >= len(results) {
		return []result.Result{}
	}
	results = results[offset:]
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}
