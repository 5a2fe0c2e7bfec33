package analytics

import (
	"sort"
	"strings"

	"github.com/mkvl/salesdash/internal/model"
)

// Dimension is a grouping field of an order.
type Dimension int

const (
	ByRegion Dimension = iota
	ByCategory
	ByProduct
	BySegment
)

// Label returns the display name of the dimension.
func (d Dimension) Label() string {
	switch d {
	case ByRegion:
		return "Region"
	case ByCategory:
		return "Category"
	case ByProduct:
		return "Product"
	case BySegment:
		return "Segment"
	default:
		return ""
	}
}

func (d Dimension) value(order model.Order) string {
	switch d {
	case ByRegion:
		return order.Region
	case ByCategory:
		return order.Category
	case ByProduct:
		return order.ProductName
	case BySegment:
		return order.Segment
	default:
		return ""
	}
}

// Metric is a summable measure of an order.
type Metric int

const (
	Sales Metric = iota
	Profit
)

// Label returns the display name of the metric.
func (m Metric) Label() string {
	if m == Profit {
		return "Profit"
	}
	return "Sales"
}

func (m Metric) value(order model.Order) float64 {
	if m == Profit {
		return order.Profit
	}
	return order.Sales
}

// GroupBy groups orders by one or two dimensions (exact, case-sensitive
// value match) and sums the requested metrics per group. Rows are
// sorted descending by the first metric; ties keep first-appearance
// order of the group key.
func GroupBy(orders []model.Order, dims []Dimension, metrics []Metric) []model.GroupRow {
	if len(dims) == 0 || len(metrics) == 0 {
		return nil
	}
	index := make(map[string]int)
	var rows []model.GroupRow
	for _, order := range orders {
		key := make([]string, len(dims))
		for i, dim := range dims {
			key[i] = dim.value(order)
		}
		joined := strings.Join(key, "\x00")
		i, ok := index[joined]
		if !ok {
			i = len(rows)
			index[joined] = i
			rows = append(rows, model.GroupRow{Key: key, Values: make([]float64, len(metrics))})
		}
		for j, metric := range metrics {
			rows[i].Values[j] += metric.value(order)
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Values[0] > rows[j].Values[0]
	})
	return rows
}

// Top returns the first n rows of a sorted grouped summary, or all
// rows when fewer than n groups exist.
func Top(rows []model.GroupRow, n int) []model.GroupRow {
	if n < 0 {
		n = 0
	}
	if n > len(rows) {
		n = len(rows)
	}
	return rows[:n]
}

// DistinctValues returns the distinct values of a dimension in
// first-appearance order.
func DistinctValues(orders []model.Order, dim Dimension) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, order := range orders {
		v := dim.value(order)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// SeriesByKey partitions two-dimension group rows by the second key
// part, preserving row order within each partition. It feeds charts
// that draw one series per secondary value (segment x category).
func SeriesByKey(rows []model.GroupRow) ([]string, map[string][]model.GroupRow) {
	var names []string
	series := make(map[string][]model.GroupRow)
	for _, row := range rows {
		if len(row.Key) < 2 {
			continue
		}
		name := row.Key[1]
		if _, ok := series[name]; !ok {
			names = append(names, name)
		}
		series[name] = append(series[name], row)
	}
	return names, series
}
