package analytics

import (
	"math"
	"testing"
)

func TestGroupBySingleDimension(t *testing.T) {
	rows := GroupBy(sampleOrders(), []Dimension{ByRegion}, []Metric{Sales})
	if len(rows) != 3 {
		t.Fatalf("expected 3 regions, got %d", len(rows))
	}
	want := []struct {
		key   string
		sales float64
	}{
		{"East", 450},
		{"West", 200},
		{"Central", 80},
	}
	for i, w := range want {
		if rows[i].Key[0] != w.key || rows[i].Values[0] != w.sales {
			t.Fatalf("row %d: expected %s=%v, got %s=%v", i, w.key, w.sales, rows[i].Key[0], rows[i].Values[0])
		}
	}
}

func TestGroupByReconcilesWithTotal(t *testing.T) {
	orders := sampleOrders()
	total := Summarize(orders)
	for _, dim := range []Dimension{ByRegion, ByCategory, ByProduct, BySegment} {
		rows := GroupBy(orders, []Dimension{dim}, []Metric{Sales, Profit})
		var sales, profit float64
		for _, row := range rows {
			sales += row.Values[0]
			profit += row.Values[1]
		}
		if math.Abs(sales-total.TotalSales) > 1e-9 {
			t.Fatalf("%s: group sales %v != total %v", dim.Label(), sales, total.TotalSales)
		}
		if math.Abs(profit-total.TotalProfit) > 1e-9 {
			t.Fatalf("%s: group profit %v != total %v", dim.Label(), profit, total.TotalProfit)
		}
	}
}

func TestGroupBySortedDescending(t *testing.T) {
	rows := GroupBy(sampleOrders(), []Dimension{ByProduct}, []Metric{Profit})
	for i := 1; i < len(rows); i++ {
		if rows[i].Values[0] > rows[i-1].Values[0] {
			t.Fatalf("rows not sorted descending at %d: %v > %v", i, rows[i].Values[0], rows[i-1].Values[0])
		}
	}
	if rows[0].Key[0] != "Phone" {
		t.Fatalf("expected Phone first, got %s", rows[0].Key[0])
	}
	if rows[len(rows)-1].Key[0] != "Laptop" {
		t.Fatalf("expected Laptop last, got %s", rows[len(rows)-1].Key[0])
	}
}

func TestGroupByTwoDimensions(t *testing.T) {
	rows := GroupBy(sampleOrders(), []Dimension{ByCategory, BySegment}, []Metric{Sales})
	if len(rows) != 4 {
		t.Fatalf("expected 4 pairs, got %d", len(rows))
	}
	if rows[0].Key[0] != "Technology" || rows[0].Key[1] != "Consumer" || rows[0].Values[0] != 300 {
		t.Fatalf("unexpected first row: %+v", rows[0])
	}

	names, series := SeriesByKey(rows)
	if len(names) != 3 {
		t.Fatalf("expected 3 segments, got %d: %v", len(names), names)
	}
	consumer := series["Consumer"]
	if len(consumer) != 2 {
		t.Fatalf("expected 2 categories for Consumer, got %d", len(consumer))
	}
	for _, row := range consumer {
		if row.Key[1] != "Consumer" {
			t.Fatalf("row leaked into wrong series: %+v", row)
		}
	}
}

func TestTop(t *testing.T) {
	rows := GroupBy(sampleOrders(), []Dimension{ByProduct}, []Metric{Profit})
	if len(rows) != 5 {
		t.Fatalf("expected 5 products, got %d", len(rows))
	}
	top := Top(rows, 3)
	if len(top) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(top))
	}
	if top[0].Key[0] != "Phone" || top[1].Key[0] != "Desk" || top[2].Key[0] != "Paper" {
		t.Fatalf("unexpected top rows: %+v", top)
	}
	if got := Top(rows, 10); len(got) != 5 {
		t.Fatalf("expected clamp to 5 rows, got %d", len(got))
	}
	if got := Top(rows, 0); len(got) != 0 {
		t.Fatalf("expected no rows for n=0, got %d", len(got))
	}
}

func TestDistinctValues(t *testing.T) {
	segments := DistinctValues(sampleOrders(), BySegment)
	want := []string{"Consumer", "Corporate", "Home Office"}
	if len(segments) != len(want) {
		t.Fatalf("expected %d segments, got %d", len(want), len(segments))
	}
	for i := range want {
		if segments[i] != want[i] {
			t.Fatalf("expected %s at %d, got %s", want[i], i, segments[i])
		}
	}
}
