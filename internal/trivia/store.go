package trivia

import "context"

// Sampler is the read side a quiz session needs: a uniformly random draw of
// up to n distinct records. Fewer rows than n means all of them come back.
type Sampler interface {
	SampleRandom(ctx context.Context, n int) ([]Record, error)
}

// Store persists trivia records. InsertAll is append-only: repeated
// ingestion runs may accumulate duplicate question text, which is accepted
// behavior rather than something to deduplicate away.
type Store interface {
	Sampler
	InsertAll(ctx context.Context, records []Record) error
	CountByDifficulty(ctx context.Context) (map[string]int, error)
}
