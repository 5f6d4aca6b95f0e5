package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/abhisek/triviaz/ent"
)

// sequenceCounter manages the global monotonic sequence number shared across
// all event tables. Per-table auto-increment IDs can't order a round event
// against the LLM call that produced its question; this shared counter
// assigns a single increasing sequence to every event regardless of type.
//
// The table is not an ent entity: it holds one counter row and is bumped
// with UPDATE ... RETURNING, which the generated builders do not express.
// The mutex serializes within the process; the RETURNING clause makes the
// increment atomic at the database level.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

// newSequenceCounter creates a counter and ensures the tracking table exists.
func newSequenceCounter(ctx context.Context, db *sql.DB) (*sequenceCounter, error) {
	_, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`)
	if err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}

	_, err = db.ExecContext(ctx, `INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`)
	if err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}

	return &sequenceCounter{db: db}, nil
}

// Next atomically returns the next sequence number and increments the counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	err := sc.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}

// eventRepo implements EventRepo. Appends and row lookups use the typed ent
// client; the per-group reports run entsql aggregates against db.
type eventRepo struct {
	db     *sql.DB
	client *ent.Client
	seq    *sequenceCounter
}

// stamp returns the sequence number and timestamp for the next event.
func (r *eventRepo) stamp(ctx context.Context) (int64, int64, error) {
	seq, err := r.seq.Next(ctx)
	if err != nil {
		return 0, 0, err
	}
	return seq, nowMillis(), nil
}
