package charts

import (
	"testing"

	"github.com/Shalini630/serbian-land-trust/internal/modules/aggregation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromCounts_StatusesGetStableFills(t *testing.T) {
	points := FromCounts([]aggregation.CategoryCount{
		{Category: "open", Count: 3},
		{Category: "resolved", Count: 5},
	})

	require.Len(t, points, 2)
	assert.Equal(t, Point{Name: "open", Value: 3, Fill: "status-warning"}, points[0])
	assert.Equal(t, Point{Name: "resolved", Value: 5, Fill: "status-success"}, points[1])
}

func TestFromCounts_UnknownCategoriesCycleThroughPalette(t *testing.T) {
	counts := make([]aggregation.CategoryCount, len(DefaultPalette)+1)
	for i := range counts {
		counts[i] = aggregation.CategoryCount{Category: string(rune('a' + i)), Count: i}
	}

	points := FromCounts(counts)

	assert.Equal(t, DefaultPalette[0], points[0].Fill)
	assert.Equal(t, DefaultPalette[0], points[len(DefaultPalette)].Fill)
}

func TestFromValues(t *testing.T) {
	points := FromValues([]aggregation.CategoryValue{
		{Category: "Banca Intesa", Value: 505000},
	})

	require.Len(t, points, 1)
	assert.Equal(t, "Banca Intesa", points[0].Name)
	assert.Equal(t, 505000.0, points[0].Value)
	assert.Equal(t, DefaultPalette[0], points[0].Fill)
}
