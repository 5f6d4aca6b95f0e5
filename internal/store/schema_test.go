package store

import (
	"context"
	"database/sql"
	"testing"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	triviaent "github.com/abhisek/triviaz/ent"
	"github.com/abhisek/triviaz/ent/enttest"
	"github.com/abhisek/triviaz/ent/gameevent"
	"github.com/abhisek/triviaz/ent/highscore"
	"github.com/abhisek/triviaz/ent/llmrequestevent"
	entmigrate "github.com/abhisek/triviaz/ent/migrate"
	"github.com/abhisek/triviaz/ent/roundevent"
	entschema "github.com/abhisek/triviaz/ent/schema"
)

// entFieldNames returns the declared fields of s, mixins first.
func entFieldNames(s ent.Interface) []string {
	var names []string
	for _, m := range s.Mixin() {
		for _, f := range m.Fields() {
			names = append(names, f.Descriptor().Name)
		}
	}
	for _, f := range s.Fields() {
		names = append(names, f.Descriptor().Name)
	}
	return names
}

func TestTablesMatchEntSchema(t *testing.T) {
	s := openTestStore(t)

	tests := []struct {
		table  string
		schema ent.Interface
	}{
		{highscore.Table, entschema.HighScore{}},
		{llmrequestevent.Table, entschema.LLMRequestEvent{}},
		{gameevent.Table, entschema.GameEvent{}},
		{roundevent.Table, entschema.RoundEvent{}},
	}

	for _, tt := range tests {
		t.Run(tt.table, func(t *testing.T) {
			rows, err := s.DB().Query("SELECT name FROM pragma_table_info(?)", tt.table)
			require.NoError(t, err)
			defer rows.Close()

			columns := map[string]bool{}
			for rows.Next() {
				var name string
				require.NoError(t, rows.Scan(&name))
				columns[name] = true
			}
			require.NoError(t, rows.Err())

			for _, field := range entFieldNames(tt.schema) {
				assert.True(t, columns[field], "column %s missing from %s", field, tt.table)
			}
		})
	}
}

func TestMigrate_CreatesEveryGeneratedTable(t *testing.T) {
	s := openTestStore(t)

	require.Len(t, entmigrate.Tables, 4)
	for _, table := range entmigrate.Tables {
		var name string
		err := s.DB().QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table.Name,
		).Scan(&name)
		assert.NoError(t, err, "table %s", table.Name)
	}
}

func TestMigrate_RerunIsNoop(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.HighScores().Record(ctx, 30)
	require.NoError(t, err)

	require.NoError(t, migrate(ctx, s.Client()))

	best, err := s.HighScores().Best(ctx)
	require.NoError(t, err)
	assert.Equal(t, 30, best)
}

func TestHighScoreRepo_OnEntTestClient(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	require.NoError(t, applyPragmas(db))

	client := enttest.NewClient(t, enttest.WithOptions(
		triviaent.Driver(entsql.OpenDB(dialect.SQLite, db)),
	))
	t.Cleanup(func() { client.Close() })

	repo := newHighScoreRepo(client)
	ctx := context.Background()

	improved, err := repo.Record(ctx, 15)
	require.NoError(t, err)
	assert.True(t, improved)

	n, err := client.HighScore.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
