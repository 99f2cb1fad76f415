package sqlite

import (
	"context"
	"fmt"

	"trivia-quiz/internal/trivia"
)

// InsertAll writes the batch inside one transaction so a failed ingestion
// cycle leaves nothing behind.
func (s *Store) InsertAll(ctx context.Context, records []trivia.Record) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlite: begin insert: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO trivia
		(question, correct_answer, incorrect_answers, difficulty, category, type)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("sqlite: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, record := range records {
		if _, err := stmt.ExecContext(ctx,
			record.Question,
			record.CorrectAnswer,
			record.IncorrectAnswers,
			record.Difficulty,
			record.Category,
			record.Type,
		); err != nil {
			return fmt.Errorf("sqlite: insert record: %w", err)
		}
	}

	return tx.Commit()
}

// SampleRandom draws up to n distinct rows in random order. SQLite
// evaluates RANDOM() per row before sorting, which gives every row equal
// selection probability; fewer than n rows means all of them come back.
func (s *Store) SampleRandom(ctx context.Context, n int) ([]trivia.Record, error) {
	if n <= 0 {
		return nil, nil
	}

	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT question, correct_answer,
		incorrect_answers, difficulty, category, type
		FROM trivia ORDER BY RANDOM() LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("sqlite: sample: %w", err)
	}
	defer rows.Close()

	records := make([]trivia.Record, 0, n)
	for rows.Next() {
		var record trivia.Record
		if err := rows.Scan(
			&record.Question,
			&record.CorrectAnswer,
			&record.IncorrectAnswers,
			&record.Difficulty,
			&record.Category,
			&record.Type,
		); err != nil {
			return nil, fmt.Errorf("sqlite: scan sample: %w", err)
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

// CountByDifficulty groups the whole table for the report view.
func (s *Store) CountByDifficulty(ctx context.Context) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT difficulty, COUNT(*)
		FROM trivia GROUP BY difficulty`)
	if err != nil {
		return nil, fmt.Errorf("sqlite: count by difficulty: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var difficulty string
		var count int
		if err := rows.Scan(&difficulty, &count); err != nil {
			return nil, fmt.Errorf("sqlite: scan count: %w", err)
		}
		counts[difficulty] = count
	}

	return counts, rows.Err()
}
