package analytics

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/mkvl/salesdash/internal/model"
)

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{1234.5, "$1,234.50"},
		{1234567.891, "$1,234,567.89"},
		{-99.999, "-$100.00"},
		{0.005, "$0.01"},
		{math.NaN(), "n/a"},
	}
	for _, c := range cases {
		if got := FormatMoney(c.in); got != c.want {
			t.Fatalf("FormatMoney(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{12.345, "+12.35%"},
		{-5, "-5.00%"},
		{0, "+0.00%"},
		{math.Inf(1), "n/a"},
		{math.Inf(-1), "n/a"},
		{math.NaN(), "n/a"},
	}
	for _, c := range cases {
		if got := FormatPercent(c.in); got != c.want {
			t.Fatalf("FormatPercent(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatDays(t *testing.T) {
	if got := FormatDays(4.4); got != "4.40 days" {
		t.Fatalf("unexpected: %q", got)
	}
	if got := FormatDays(math.NaN()); got != "n/a" {
		t.Fatalf("unexpected: %q", got)
	}
	if got := FormatDayDelta(-1.5); got != "-1.50 days" {
		t.Fatalf("unexpected: %q", got)
	}
}

func TestRenderKPIs(t *testing.T) {
	baseline := Summarize(sampleOrders())
	current := Summarize(sampleOrders()[:1])
	report := Report{
		Baseline: baseline,
		Current:  current,
		Deltas:   Compare(baseline, current),
	}
	var buf bytes.Buffer
	if err := RenderKPIs(&buf, report); err != nil {
		t.Fatalf("render kpis: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Key Metrics", "Total Sales", "$100.00", "$730.00", "Avg Delivery"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestRenderGroupTable(t *testing.T) {
	rows := GroupBy(sampleOrders(), []Dimension{BySegment}, []Metric{Sales, Profit})
	var buf bytes.Buffer
	err := RenderGroupTable(&buf, "Sales & Profit by Customer Segment", []Dimension{BySegment}, []Metric{Sales, Profit}, rows)
	if err != nil {
		t.Fatalf("render group table: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Segment", "Sales", "Profit", "Consumer", "$450.00"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestRenderGroupTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderGroupTable(&buf, "", nil, nil, nil); err != nil {
		t.Fatalf("render group table: %v", err)
	}
	if !strings.Contains(buf.String(), "No matching orders.") {
		t.Fatalf("expected empty-state message, got %q", buf.String())
	}
}

func TestRenderTrend(t *testing.T) {
	buckets := Resample(sampleOrders(), model.Monthly)
	var buf bytes.Buffer
	if err := RenderTrend(&buf, buckets, model.Monthly, 80, 6, false); err != nil {
		t.Fatalf("render trend: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Monthly Sales & Profit Trend") {
		t.Fatalf("expected title in output:\n%s", out)
	}
	if !strings.Contains(out, "2024-01 .. 2024-03") {
		t.Fatalf("expected bucket span in output:\n%s", out)
	}
}

func TestRenderTrendEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderTrend(&buf, nil, model.Daily, 80, 6, false); err != nil {
		t.Fatalf("render trend: %v", err)
	}
	if !strings.Contains(buf.String(), "No matching orders.") {
		t.Fatalf("expected empty-state message, got %q", buf.String())
	}
}
