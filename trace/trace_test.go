package trace

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"HistoricDates/history"
	"HistoricDates/orchestrator"
)

func TestRender(t *testing.T) {
	d, err := history.NewDataset([]history.HistoricCategory{
		{Title: "Science", Events: []history.HistoricEvent{{Date: "1905"}, {Date: "1961"}}},
		{Title: "Cinema", Events: []history.HistoricEvent{{Date: "1895"}, {Date: "1977"}}},
	})
	require.NoError(t, err)
	timings := orchestrator.DefaultTimings()
	from := orchestrator.Initial(d, timings)
	to, plan := orchestrator.Select(from, 1, d, timings)

	out := Render(d, from, to, plan)

	assert.Contains(t, out, "select 0 (Science) -> 1 (Cinema)")
	assert.Contains(t, out, "1905-1961 -> 1895-1977")
	order := []string{"tween-range", "highlight", "carousel-hide", "carousel-swap", "commit", "carousel-restore", "rotate"}
	last := -1
	for _, name := range order {
		i := strings.Index(out, name)
		require.GreaterOrEqual(t, i, 0, name)
		assert.Greater(t, i, last, name)
		last = i
	}
	assert.Contains(t, out, "+300ms")
}
