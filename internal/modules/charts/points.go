// Package charts shapes aggregated record data into chart-ready payloads:
// named points with fill tokens for pie and bar charts, and time series for
// trend lines.
package charts

import "github.com/Shalini630/serbian-land-trust/internal/modules/aggregation"

// Point is a single chart segment or bar. Fill carries a palette token the
// renderer resolves to an actual color; the server never deals in hex values.
type Point struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Fill  string  `json:"fill"`
}

// Palette tokens, in assignment order.
var DefaultPalette = []string{
	"chart-1", "chart-2", "chart-3", "chart-4", "chart-5",
	"chart-6", "chart-7", "chart-8",
}

// StatusPalette maps well-known status categories to stable tokens so a
// status keeps its color regardless of its position in the data.
var StatusPalette = map[string]string{
	"open":          "status-warning",
	"investigation": "status-info",
	"court":         "status-danger",
	"resolved":      "status-success",
	"pending":       "status-info",
	"approved":      "status-success",
	"rejected":      "status-danger",
	"completed":     "status-success",
	"active":        "status-info",
	"paid":          "status-success",
	"defaulted":     "status-danger",
	"foreclosure":   "status-danger",
	"verified":      "status-success",
	"disputed":      "status-warning",
	"litigation":    "status-danger",
}

// FromCounts converts category counts to chart points. Categories with a
// status palette entry use it; the rest cycle through the default palette.
func FromCounts(counts []aggregation.CategoryCount) []Point {
	out := make([]Point, 0, len(counts))
	for i, c := range counts {
		out = append(out, Point{
			Name:  c.Category,
			Value: float64(c.Count),
			Fill:  fillFor(c.Category, i),
		})
	}
	return out
}

// FromValues converts category values to chart points.
func FromValues(values []aggregation.CategoryValue) []Point {
	out := make([]Point, 0, len(values))
	for i, v := range values {
		out = append(out, Point{
			Name:  v.Category,
			Value: v.Value,
			Fill:  fillFor(v.Category, i),
		})
	}
	return out
}

func fillFor(category string, i int) string {
	if fill, ok := StatusPalette[category]; ok {
		return fill
	}
	return DefaultPalette[i%len(DefaultPalette)]
}
