package store

import (
	"context"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/triviaz/ent"
	"github.com/abhisek/triviaz/ent/llmrequestevent"
	"github.com/abhisek/triviaz/ent/predicate"
)

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seq, ts, err := r.stamp(ctx)
	if err != nil {
		return err
	}

	err = r.client.LLMRequestEvent.Create().
		SetSequence(seq).
		SetTimestamp(ts).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		SetRequestBody(data.RequestBody).
		SetResponseBody(data.ResponseBody).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("insert LLM event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error) {
	q := r.client.LLMRequestEvent.Query().
		Where(eventFilters[predicate.LLMRequestEvent](opts)...).
		Order(llmrequestevent.BySequence(entsql.OrderDesc()))
	if opts.Limit > 0 {
		q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}

	events := make([]LLMRequestEvent, 0, len(rows))
	for _, row := range rows {
		events = append(events, llmEventFromEnt(row))
	}
	return events, nil
}

func (r *eventRepo) GetLLMEvent(ctx context.Context, id int) (*LLMRequestEvent, error) {
	row, err := r.client.LLMRequestEvent.Get(ctx, id)
	switch {
	case ent.IsNotFound(err):
		return nil, fmt.Errorf("LLM event %d: %w", id, ErrNotFound)
	case err != nil:
		return nil, fmt.Errorf("get LLM event %d: %w", id, err)
	}
	e := llmEventFromEnt(row)
	return &e, nil
}

func llmEventFromEnt(row *ent.LLMRequestEvent) LLMRequestEvent {
	return LLMRequestEvent{
		ID:        row.ID,
		Sequence:  row.Sequence,
		Timestamp: fromMillis(row.Timestamp),
		LLMRequestEventData: LLMRequestEventData{
			Provider:     row.Provider,
			Model:        row.Model,
			Purpose:      row.Purpose,
			InputTokens:  row.InputTokens,
			OutputTokens: row.OutputTokens,
			LatencyMs:    row.LatencyMs,
			Success:      row.Success,
			ErrorMessage: row.ErrorMessage,
			RequestBody:  row.RequestBody,
			ResponseBody: row.ResponseBody,
		},
	}
}

func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error) {
	return r.llmUsage(ctx, llmrequestevent.FieldPurpose)
}

func (r *eventRepo) LLMUsageByModel(ctx context.Context) ([]LLMUsage, error) {
	return r.llmUsage(ctx, llmrequestevent.FieldModel)
}

// llmUsage aggregates LLM events grouped by column. The failure count and
// integer average have no typed builder, so this stays on entsql.
func (r *eventRepo) llmUsage(ctx context.Context, column string) ([]LLMUsage, error) {
	t := sqlite().Table(llmrequestevent.Table)
	query, args := sqlite().Select(
		t.C(column),
		entsql.Count("*"),
		"SUM(CASE WHEN "+t.C(llmrequestevent.FieldSuccess)+" = 0 THEN 1 ELSE 0 END)",
		entsql.Sum(t.C(llmrequestevent.FieldInputTokens)),
		entsql.Sum(t.C(llmrequestevent.FieldOutputTokens)),
		"CAST(AVG("+t.C(llmrequestevent.FieldLatencyMs)+") AS INTEGER)",
	).
		From(t).
		GroupBy(t.C(column)).
		OrderBy(t.C(column)).
		Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query LLM usage by %s: %w", column, err)
	}
	defer rows.Close()

	var usage []LLMUsage
	for rows.Next() {
		var u LLMUsage
		if err := rows.Scan(&u.Key, &u.Calls, &u.Failures, &u.InputTokens, &u.OutputTokens, &u.AvgLatencyMs); err != nil {
			return nil, fmt.Errorf("scan LLM usage: %w", err)
		}
		usage = append(usage, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate LLM usage: %w", err)
	}
	return usage, nil
}
