package store

import (
	"context"
	"fmt"

	"github.com/abhisek/triviaz/ent"
)

// migrate creates missing tables, columns and indexes from the generated
// ent schema. Nothing is ever dropped.
func migrate(ctx context.Context, client *ent.Client) error {
	if err := client.Schema.Create(ctx); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}
