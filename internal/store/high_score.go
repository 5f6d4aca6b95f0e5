package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/abhisek/triviaz/ent"
	"github.com/abhisek/triviaz/ent/highscore"
)

// highScoreKey is the single row holding the best score.
const highScoreKey = "high_score"

// highScoreRepo stores the high score as one keyed row. The mutex makes the
// compare-and-write in Record atomic within the process.
type highScoreRepo struct {
	mu     sync.Mutex
	scores *ent.HighScoreClient
}

func newHighScoreRepo(client *ent.Client) *highScoreRepo {
	return &highScoreRepo{scores: client.HighScore}
}

func (r *highScoreRepo) Best(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	row, err := r.row(ctx)
	if err != nil || row == nil {
		return 0, err
	}
	return row.Score, nil
}

// row loads the high score row, or nil when none was recorded yet.
func (r *highScoreRepo) row(ctx context.Context) (*ent.HighScore, error) {
	row, err := r.scores.Query().
		Where(highscore.Key(highScoreKey)).
		Only(ctx)
	switch {
	case ent.IsNotFound(err):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("read high score: %w", err)
	}
	return row, nil
}

func (r *highScoreRepo) Record(ctx context.Context, score int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	row, err := r.row(ctx)
	if err != nil {
		return false, err
	}

	current := 0
	if row != nil {
		current = row.Score
	}
	if score <= current {
		return false, nil
	}

	if row == nil {
		err = r.scores.Create().
			SetKey(highScoreKey).
			SetScore(score).
			SetUpdatedAt(nowMillis()).
			Exec(ctx)
	} else {
		err = r.scores.Update().
			Where(highscore.Key(highScoreKey)).
			SetScore(score).
			SetUpdatedAt(nowMillis()).
			Exec(ctx)
	}
	if err != nil {
		return false, fmt.Errorf("write high score: %w", err)
	}
	return true, nil
}

func (r *highScoreRepo) Reset(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := r.scores.Delete().Where(highscore.Key(highScoreKey)).Exec(ctx); err != nil {
		return fmt.Errorf("reset high score: %w", err)
	}
	return nil
}
