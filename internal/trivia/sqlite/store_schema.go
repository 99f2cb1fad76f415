package sqlite

import (
	"context"
)

func (s *Store) initSchema(ctx context.Context) error {
	// No primary key on purpose: the table is append-only and repeated
	// ingestion runs are allowed to accumulate duplicate question text.
	_, err := s.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS trivia (
		question TEXT,
		correct_answer TEXT,
		incorrect_answers TEXT,
		difficulty TEXT,
		category TEXT,
		type TEXT
	);`)
	return err
}
