// Package aggregation implements grouped counts, sums and averages over
// record collections. All operations are pure transforms: inputs are never
// mutated and category ordering is deterministic (first-seen order, never
// alphabetical) so chart segments keep a stable layout across renders.
package aggregation

import "sort"

// CategoryCount is one category with its occurrence count.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// CategoryValue is one category with an accumulated numeric value.
type CategoryValue struct {
	Category string  `json:"category"`
	Value    float64 `json:"value"`
}

// AverageOptions controls Average behavior.
// ExcludeZero drops records whose value is exactly 0 from both the numerator
// and the denominator. This mirrors the "days_open > 0 means still open" and
// "donations carry value 0" conventions of the dataset.
type AverageOptions struct {
	ExcludeZero bool
}

// CountBy counts records per category, categories ordered by first occurrence.
func CountBy[T any](records []T, key func(T) string) []CategoryCount {
	return CountByWithCategories(records, key, nil)
}

// CountByWithCategories counts records per category against an explicit
// category enumeration. Enumerated categories are always emitted, in
// enumeration order, with count 0 when absent from the data; observed values
// outside the enumeration are still counted under their literal value and
// appended in first-seen order. With a nil enumeration only observed
// categories appear.
func CountByWithCategories[T any](records []T, key func(T) string, categories []string) []CategoryCount {
	index := make(map[string]int, len(categories))
	out := make([]CategoryCount, 0, len(categories))

	for _, cat := range categories {
		if _, seen := index[cat]; seen {
			continue
		}
		index[cat] = len(out)
		out = append(out, CategoryCount{Category: cat})
	}

	for _, rec := range records {
		cat := key(rec)
		i, seen := index[cat]
		if !seen {
			i = len(out)
			index[cat] = i
			out = append(out, CategoryCount{Category: cat})
		}
		out[i].Count++
	}

	return out
}

// Sum totals a numeric field across all records.
func Sum[T any](records []T, value func(T) float64) float64 {
	var total float64
	for _, rec := range records {
		total += value(rec)
	}
	return total
}

// Average computes the mean of a numeric field. An empty eligible set yields
// 0, never NaN, so dashboard rendering stays total-failure-free.
func Average[T any](records []T, value func(T) float64, opts AverageOptions) float64 {
	var total float64
	var n int
	for _, rec := range records {
		v := value(rec)
		if opts.ExcludeZero && v == 0 {
			continue
		}
		total += v
		n++
	}
	if n == 0 {
		return 0
	}
	return total / float64(n)
}

// SumBy accumulates a numeric field per category, categories ordered by first
// occurrence.
func SumBy[T any](records []T, key func(T) string, value func(T) float64) []CategoryValue {
	index := make(map[string]int)
	out := make([]CategoryValue, 0)

	for _, rec := range records {
		cat := key(rec)
		i, seen := index[cat]
		if !seen {
			i = len(out)
			index[cat] = i
			out = append(out, CategoryValue{Category: cat})
		}
		out[i].Value += value(rec)
	}

	return out
}

// TopN returns the n largest categories by accumulated value, descending.
// Ties are broken by first-seen order of the category, which a stable sort
// over the first-seen accumulation preserves. n <= 0 or n beyond the category
// count returns all categories.
func TopN[T any](records []T, key func(T) string, value func(T) float64, n int) []CategoryValue {
	grouped := SumBy(records, key, value)

	sort.SliceStable(grouped, func(i, j int) bool {
		return grouped[i].Value > grouped[j].Value
	})

	if n > 0 && n < len(grouped) {
		grouped = grouped[:n]
	}
	return grouped
}

// CountWhere counts records satisfying a predicate.
func CountWhere[T any](records []T, pred func(T) bool) int {
	var n int
	for _, rec := range records {
		if pred(rec) {
			n++
		}
	}
	return n
}
