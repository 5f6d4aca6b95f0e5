package store

import (
	"context"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/triviaz/ent"
	"github.com/abhisek/triviaz/ent/gameevent"
	"github.com/abhisek/triviaz/ent/predicate"
	"github.com/abhisek/triviaz/ent/roundevent"
)

func (r *eventRepo) AppendGameEvent(ctx context.Context, data GameEventData) error {
	action := gameevent.Action(data.Action)
	if err := gameevent.ActionValidator(action); err != nil {
		return fmt.Errorf("unknown game action %q", data.Action)
	}

	seq, ts, err := r.stamp(ctx)
	if err != nil {
		return err
	}

	err = r.client.GameEvent.Create().
		SetSequence(seq).
		SetTimestamp(ts).
		SetSessionID(data.SessionID).
		SetAction(action).
		SetScore(data.Score).
		SetRounds(data.Rounds).
		SetCorrect(data.Correct).
		SetHighScore(data.HighScore).
		SetNewHighScore(data.NewHighScore).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("insert game event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryGames(ctx context.Context, opts QueryOpts) ([]GameEvent, error) {
	q := r.client.GameEvent.Query().
		Where(gameevent.ActionEQ(gameevent.ActionEnd)).
		Where(eventFilters[predicate.GameEvent](opts)...).
		Order(gameevent.BySequence(entsql.OrderDesc()))
	if opts.Limit > 0 {
		q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query games: %w", err)
	}

	games := make([]GameEvent, 0, len(rows))
	for _, row := range rows {
		games = append(games, gameFromEnt(row))
	}
	return games, nil
}

func gameFromEnt(row *ent.GameEvent) GameEvent {
	return GameEvent{
		ID:        row.ID,
		Sequence:  row.Sequence,
		Timestamp: fromMillis(row.Timestamp),
		GameEventData: GameEventData{
			SessionID:    row.SessionID,
			Action:       string(row.Action),
			Score:        row.Score,
			Rounds:       row.Rounds,
			Correct:      row.Correct,
			HighScore:    row.HighScore,
			NewHighScore: row.NewHighScore,
		},
	}
}

func (r *eventRepo) AppendRoundEvent(ctx context.Context, data RoundEventData) error {
	seq, ts, err := r.stamp(ctx)
	if err != nil {
		return err
	}

	err = r.client.RoundEvent.Create().
		SetSequence(seq).
		SetTimestamp(ts).
		SetSessionID(data.SessionID).
		SetRound(data.Round).
		SetSubject(data.Subject).
		SetQuestionText(data.QuestionText).
		SetSelectedIndex(data.SelectedIndex).
		SetCorrectIndex(data.CorrectIndex).
		SetCorrect(data.Correct).
		SetFallback(data.Fallback).
		SetSource(data.Source).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("insert round event: %w", err)
	}
	return nil
}

// SubjectAccuracy groups answered rounds by subject. The SUM over a boolean
// column has no typed builder, so it stays on an entsql aggregate.
func (r *eventRepo) SubjectAccuracy(ctx context.Context) ([]SubjectAccuracy, error) {
	t := sqlite().Table(roundevent.Table)
	query, args := sqlite().Select(
		t.C(roundevent.FieldSubject),
		entsql.Count("*"),
		entsql.Sum(t.C(roundevent.FieldCorrect)),
	).
		From(t).
		GroupBy(t.C(roundevent.FieldSubject)).
		OrderBy(t.C(roundevent.FieldSubject)).
		Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query subject accuracy: %w", err)
	}
	defer rows.Close()

	var stats []SubjectAccuracy
	for rows.Next() {
		var s SubjectAccuracy
		if err := rows.Scan(&s.Subject, &s.Answered, &s.Correct); err != nil {
			return nil, fmt.Errorf("scan subject accuracy: %w", err)
		}
		stats = append(stats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate subject accuracy: %w", err)
	}
	return stats, nil
}
