// Package filtering implements predicate filtering over record collections.
// All filters are pure: they never mutate the input slice and always preserve
// the original relative ordering of records.
package filtering

import (
	"strings"
	"time"
)

// Sentinel values that make a criterion a no-op.
const (
	All = "all"
)

// Range buckets accepted by Criteria.Range.
const (
	Range7Days  = "7d"
	Range30Days = "30d"
	Range90Days = "90d"
	Range1Year  = "1y"
	RangeAll    = "all"
	dateLayout  = "2006-01-02"
)

// Criteria holds the filter selections for one table or chart.
// Any field set to its "all"/empty sentinel matches everything.
type Criteria struct {
	Region string    // exact match on the record's region field
	Status string    // exact match on the record's status field
	Search string    // case-insensitive substring match on id / parcel id
	Range  string    // date-range bucket; only effective when a date field is bound
	Now    time.Time // reference time for range buckets; zero means time.Now()
}

// IsZero reports whether the criteria match everything.
func (c Criteria) IsZero() bool {
	return isNoop(c.Region) && isNoop(c.Status) && c.Search == "" && isNoop(c.Range)
}

// Fields binds record fields to filter criteria. Only the accessors a record
// type actually has are set; a nil accessor for an active criterion means no
// record can match that criterion. The Date accessor is the explicit date-field
// binding required for the range bucket to have any effect: with Date nil the
// bucket is ignored.
type Fields[T any] struct {
	ID       func(T) string
	ParcelID func(T) string
	Region   func(T) string
	Status   func(T) string
	Date     func(T) string // YYYY-MM-DD
}

// Apply returns the records matching the criteria, in their original order.
// It never fails: an empty result is returned when nothing matches.
func Apply[T any](records []T, c Criteria, f Fields[T]) []T {
	if c.IsZero() {
		out := make([]T, len(records))
		copy(out, records)
		return out
	}

	cutoff := rangeCutoff(c)
	search := strings.ToLower(c.Search)

	out := make([]T, 0, len(records))
	for _, rec := range records {
		if !matchExact(c.Region, f.Region, rec) {
			continue
		}
		if !matchExact(c.Status, f.Status, rec) {
			continue
		}
		if search != "" && !matchSearch(search, rec, f) {
			continue
		}
		if cutoff != "" && f.Date != nil && f.Date(rec) < cutoff {
			continue
		}
		out = append(out, rec)
	}
	return out
}

func isNoop(v string) bool {
	return v == "" || v == All
}

// matchExact checks a single exact-equality criterion. An active criterion
// with no bound accessor matches nothing rather than raising.
func matchExact[T any](want string, get func(T) string, rec T) bool {
	if isNoop(want) {
		return true
	}
	if get == nil {
		return false
	}
	return get(rec) == want
}

// matchSearch checks the case-insensitive substring criterion against the
// record's id and, where bound, its parcel id (logical OR).
func matchSearch[T any](search string, rec T, f Fields[T]) bool {
	if f.ID != nil && strings.Contains(strings.ToLower(f.ID(rec)), search) {
		return true
	}
	if f.ParcelID != nil && strings.Contains(strings.ToLower(f.ParcelID(rec)), search) {
		return true
	}
	return false
}

// rangeCutoff converts the range bucket to an inclusive start date string.
// Unknown buckets and the "all" sentinel yield no cutoff.
func rangeCutoff(c Criteria) string {
	if isNoop(c.Range) {
		return ""
	}

	now := c.Now
	if now.IsZero() {
		now = time.Now()
	}

	var start time.Time
	switch c.Range {
	case Range7Days:
		start = now.AddDate(0, 0, -7)
	case Range30Days:
		start = now.AddDate(0, 0, -30)
	case Range90Days:
		start = now.AddDate(0, 0, -90)
	case Range1Year:
		start = now.AddDate(-1, 0, 0)
	default:
		return ""
	}

	return start.Format(dateLayout)
}
