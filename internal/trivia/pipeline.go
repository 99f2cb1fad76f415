package trivia

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"trivia-quiz/internal/opentdb"
)

// FetchFunc is the ingestion source: it returns raw questions or fails.
type FetchFunc func(ctx context.Context, amount, category int) ([]opentdb.RawQuestion, error)

// Pipeline runs one fetch-normalize-insert cycle against the store. A
// failed fetch aborts the cycle with nothing written; invalid records are
// skipped and the rest of the batch still commits.
type Pipeline struct {
	fetch FetchFunc
	store Store
	log   *zap.SugaredLogger
}

func NewPipeline(fetch FetchFunc, store Store, log *zap.SugaredLogger) *Pipeline {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Pipeline{fetch: fetch, store: store, log: log}
}

// Run ingests amount questions for the given category and returns how many
// records were written.
func (p *Pipeline) Run(ctx context.Context, amount, category int) (int, error) {
	log := p.log.With("run_id", uuid.NewString(), "amount", amount, "category", category)

	raw, err := p.fetch(ctx, amount, category)
	if err != nil {
		log.Errorw("fetch failed", "error", err)
		return 0, fmt.Errorf("fetch questions: %w", err)
	}

	records, skipped := Normalize(raw)
	if skipped > 0 {
		log.Warnw("skipped invalid records", "skipped", skipped)
	}
	if len(records) == 0 {
		log.Warnw("nothing to insert")
		return 0, nil
	}

	if err := p.store.InsertAll(ctx, records); err != nil {
		log.Errorw("insert failed", "error", err)
		return 0, fmt.Errorf("insert records: %w", err)
	}

	log.Infow("ingestion complete", "inserted", len(records))
	return len(records), nil
}
