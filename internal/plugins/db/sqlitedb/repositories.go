package sqlitedb

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type RunRepository struct {
	db *sql.DB
}

// Start records a new run. ID and CreatedAt of run are filled in.
func (r *RunRepository) Start(ctx context.Context, run *Run) error {
	run.ID = uuid.New()
	run.CreatedAt = time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO runs (id, created_at, abst_slots, examples, da_hash, text_hash) VALUES (?, ?, ?, ?, ?, ?)`,
		run.ID.String(), run.CreatedAt, run.AbstSlots, run.Examples, run.DAHash, run.TextHash)
	return err
}

// Get returns the run with the given id, or nil if there is none.
func (r *RunRepository) Get(ctx context.Context, id uuid.UUID) (*Run, error) {
	var run Run
	var rawID string
	err := r.db.QueryRowContext(ctx,
		`SELECT id, created_at, abst_slots, examples, da_hash, text_hash FROM runs WHERE id = ?`, id.String()).
		Scan(&rawID, &run.CreatedAt, &run.AbstSlots, &run.Examples, &run.DAHash, &run.TextHash)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if run.ID, err = uuid.Parse(rawID); err != nil {
		return nil, err
	}
	return &run, nil
}

type ExampleRepository struct {
	db *sql.DB
}

// InsertAll stores examples in a single transaction.
func (r *ExampleRepository) InsertAll(ctx context.Context, examples []Example) (err error) {
	var tx *sql.Tx
	if tx, err = r.db.BeginTx(ctx, nil); err != nil {
		return
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	var stmt *sql.Stmt
	if stmt, err = tx.PrepareContext(ctx,
		`INSERT INTO examples (run_id, part, idx, da, delex_da, text, delex_text, absts)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`); err != nil {
		return
	}
	defer stmt.Close()

	for _, ex := range examples {
		if _, err = stmt.ExecContext(ctx, ex.RunID.String(), ex.Part, ex.Index,
			ex.DA, ex.DelexDA, ex.Text, ex.DelexText, ex.Absts); err != nil {
			return
		}
	}
	return tx.Commit()
}

// ListByPart returns the examples of one part of a run in index order.
func (r *ExampleRepository) ListByPart(ctx context.Context, runID uuid.UUID, part string) ([]Example, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT part, idx, da, delex_da, text, delex_text, absts FROM examples
		 WHERE run_id = ? AND part = ? ORDER BY idx`, runID.String(), part)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []Example
	for rows.Next() {
		ex := Example{RunID: runID}
		if err := rows.Scan(&ex.Part, &ex.Index, &ex.DA, &ex.DelexDA, &ex.Text, &ex.DelexText, &ex.Absts); err != nil {
			return nil, err
		}
		result = append(result, ex)
	}
	return result, rows.Err()
}
