package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupCost(t *testing.T) {
	c := LookupCost("gemini-2.5-flash")
	require.NotNil(t, c)
	assert.InDelta(t, 0.3+2.5, c.Cost(1_000_000, 1_000_000), 1e-9)

	routed := LookupCost("openai/gpt-4o-mini")
	require.NotNil(t, routed)
	assert.Equal(t, 0.15, routed.InputPerMTok)

	assert.Nil(t, LookupCost("llama3.2"))
	assert.Nil(t, LookupCost("vendor/unknown-model"))
}
