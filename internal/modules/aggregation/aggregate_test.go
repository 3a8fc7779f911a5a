package aggregation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	Category string
	Value    float64
}

func cat(i item) string  { return i.Category }
func val(i item) float64 { return i.Value }

func items(cs ...item) []item { return cs }

func TestCountBy_FirstSeenOrder(t *testing.T) {
	records := items(
		item{Category: "court"},
		item{Category: "open"},
		item{Category: "court"},
		item{Category: "resolved"},
	)

	out := CountBy(records, cat)

	require.Len(t, out, 3)
	assert.Equal(t, CategoryCount{Category: "court", Count: 2}, out[0])
	assert.Equal(t, CategoryCount{Category: "open", Count: 1}, out[1])
	assert.Equal(t, CategoryCount{Category: "resolved", Count: 1}, out[2])
}

func TestCountBy_Conservation(t *testing.T) {
	records := items(
		item{Category: "a"}, item{Category: "b"}, item{Category: "a"},
		item{Category: "c"}, item{Category: "b"}, item{Category: "a"},
	)

	out := CountBy(records, cat)

	total := 0
	for _, c := range out {
		total += c.Count
	}
	assert.Equal(t, len(records), total)
}

func TestCountByWithCategories_ZeroFillsEnumeration(t *testing.T) {
	statuses := []string{"open", "investigation", "court", "resolved"}
	records := make([]item, 0, 10)
	for i := 0; i < 3; i++ {
		records = append(records, item{Category: "open"})
	}
	for i := 0; i < 2; i++ {
		records = append(records, item{Category: "court"})
	}
	for i := 0; i < 5; i++ {
		records = append(records, item{Category: "resolved"})
	}

	out := CountByWithCategories(records, cat, statuses)

	require.Len(t, out, 4)
	assert.Equal(t, CategoryCount{Category: "open", Count: 3}, out[0])
	assert.Equal(t, CategoryCount{Category: "investigation", Count: 0}, out[1])
	assert.Equal(t, CategoryCount{Category: "court", Count: 2}, out[2])
	assert.Equal(t, CategoryCount{Category: "resolved", Count: 5}, out[3])
}

func TestCountByWithCategories_UnknownObservedAppended(t *testing.T) {
	out := CountByWithCategories(
		items(item{Category: "open"}, item{Category: "appealed"}),
		cat,
		[]string{"open", "resolved"},
	)

	require.Len(t, out, 3)
	assert.Equal(t, "open", out[0].Category)
	assert.Equal(t, "resolved", out[1].Category)
	assert.Equal(t, CategoryCount{Category: "appealed", Count: 1}, out[2])
}

func TestSum(t *testing.T) {
	records := items(item{Value: 10}, item{Value: 2.5}, item{Value: -1})
	assert.InDelta(t, 11.5, Sum(records, val), 1e-9)
}

func TestAverage_EmptyIsZero(t *testing.T) {
	assert.Equal(t, 0.0, Average(nil, val, AverageOptions{}))
	assert.Equal(t, 0.0, Average([]item{}, val, AverageOptions{}))
}

func TestAverage_ExcludeZero(t *testing.T) {
	records := items(item{Value: 85000}, item{Value: 0}, item{Value: 65000})

	withZeros := Average(records, val, AverageOptions{})
	withoutZeros := Average(records, val, AverageOptions{ExcludeZero: true})

	assert.InDelta(t, 50000, withZeros, 1e-9)
	assert.InDelta(t, 75000, withoutZeros, 1e-9)
}

func TestAverage_AllZerosExcludedIsZero(t *testing.T) {
	records := items(item{Value: 0}, item{Value: 0})
	assert.Equal(t, 0.0, Average(records, val, AverageOptions{ExcludeZero: true}))
}

func TestSumBy(t *testing.T) {
	records := items(
		item{Category: "intesa", Value: 100},
		item{Category: "erste", Value: 50},
		item{Category: "intesa", Value: 25},
	)

	out := SumBy(records, cat, val)

	require.Len(t, out, 2)
	assert.Equal(t, CategoryValue{Category: "intesa", Value: 125}, out[0])
	assert.Equal(t, CategoryValue{Category: "erste", Value: 50}, out[1])
}

func TestTopN_SortsDescending(t *testing.T) {
	records := items(
		item{Category: "small", Value: 10},
		item{Category: "large", Value: 100},
		item{Category: "mid", Value: 50},
	)

	out := TopN(records, cat, val, 2)

	require.Len(t, out, 2)
	assert.Equal(t, "large", out[0].Category)
	assert.Equal(t, "mid", out[1].Category)
}

func TestTopN_TiesKeepFirstSeenOrder(t *testing.T) {
	records := items(
		item{Category: "first", Value: 50},
		item{Category: "second", Value: 50},
		item{Category: "third", Value: 50},
	)

	out := TopN(records, cat, val, 3)

	require.Len(t, out, 3)
	assert.Equal(t, "first", out[0].Category)
	assert.Equal(t, "second", out[1].Category)
	assert.Equal(t, "third", out[2].Category)
}

func TestTopN_NonPositiveNReturnsAll(t *testing.T) {
	records := items(
		item{Category: "a", Value: 1},
		item{Category: "b", Value: 2},
	)

	assert.Len(t, TopN(records, cat, val, 0), 2)
	assert.Len(t, TopN(records, cat, val, -1), 2)
	assert.Len(t, TopN(records, cat, val, 10), 2)
}

func TestCountWhere(t *testing.T) {
	records := items(item{Value: 1}, item{Value: 0}, item{Value: 3})
	n := CountWhere(records, func(i item) bool { return i.Value > 0 })
	assert.Equal(t, 2, n)
}
