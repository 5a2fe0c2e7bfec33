package analytics

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mkvl/salesdash/internal/model"
)

func TestRenderBarChart(t *testing.T) {
	rows := GroupBy(sampleOrders(), []Dimension{ByProduct}, []Metric{Profit})
	var buf bytes.Buffer
	if err := RenderBarChart(&buf, "Top Products by Profit", rows, 80); err != nil {
		t.Fatalf("render bar chart: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Top Products by Profit") {
		t.Fatalf("expected title in output:\n%s", out)
	}
	if !strings.Contains(out, "Phone") || !strings.Contains(out, "$60.00") {
		t.Fatalf("expected top row in output:\n%s", out)
	}
	if !strings.Contains(out, positiveBar) {
		t.Fatalf("expected filled bars in output:\n%s", out)
	}
	if !strings.Contains(out, negativeBar) {
		t.Fatalf("expected hollow bar for negative profit:\n%s", out)
	}
}

func TestRenderBarChartTruncatesLabels(t *testing.T) {
	rows := []model.GroupRow{
		{Key: []string{strings.Repeat("Very Long Product Name ", 3)}, Values: []float64{10}},
	}
	var buf bytes.Buffer
	if err := RenderBarChart(&buf, "", rows, 60); err != nil {
		t.Fatalf("render bar chart: %v", err)
	}
	if !strings.Contains(buf.String(), "…") {
		t.Fatalf("expected truncated label, got %q", buf.String())
	}
}

func TestRenderBarChartEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderBarChart(&buf, "Sales by Region", nil, 80); err != nil {
		t.Fatalf("render bar chart: %v", err)
	}
	if !strings.Contains(buf.String(), "No matching orders.") {
		t.Fatalf("expected empty-state message, got %q", buf.String())
	}
}

func TestRenderSeriesBars(t *testing.T) {
	rows := GroupBy(sampleOrders(), []Dimension{ByCategory, BySegment}, []Metric{Sales})
	var buf bytes.Buffer
	if err := RenderSeriesBars(&buf, "Preferred Categories by Segment", rows, 80); err != nil {
		t.Fatalf("render series bars: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Preferred Categories by Segment", "Consumer", "Corporate", "Home Office", "Technology"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}
