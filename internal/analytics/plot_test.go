package analytics

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestPlotSeries(t *testing.T) {
	var buf bytes.Buffer
	err := PlotSeries(&buf, "Sales & Profit Trend", "2024-01 .. 2024-03", []Series{
		{Name: "Sales", Values: []float64{100, 200, 300, 250, 400}},
		{Name: "Profit", Values: []float64{10, -5, 60, 20, 35}},
	}, 5, 4)
	if err != nil {
		t.Fatalf("PlotSeries failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Sales & Profit Trend") {
		t.Fatalf("expected title in output")
	}
	if !strings.Contains(out, "Scaled per series") {
		t.Fatalf("expected scale note in output")
	}
	if !strings.Contains(out, "2024-01 .. 2024-03") {
		t.Fatalf("expected span in output")
	}
	if !strings.Contains(out, "Legend:") {
		t.Fatalf("expected legend in output")
	}
	if !strings.Contains(out, "max=$400.00") || !strings.Contains(out, "min=-$5.00") {
		t.Fatalf("expected min/max lines in output:\n%s", out)
	}
}

func TestPlotSeriesSkipsEmpty(t *testing.T) {
	var buf bytes.Buffer
	err := PlotSeries(&buf, "Empty", "", []Series{{Name: "Sales"}}, 5, 4)
	if err != nil {
		t.Fatalf("PlotSeries failed: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output for empty series, got %q", buf.String())
	}
}

func TestPlotSeriesColorOutput(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	var plain, colored bytes.Buffer
	series := []Series{
		{Name: "Sales", Values: []float64{1, 2, 3}},
		{Name: "Profit", Values: []float64{3, 2, 1}},
	}
	if err := PlotSeries(&plain, "T", "", series, 5, 4); err != nil {
		t.Fatalf("PlotSeries failed: %v", err)
	}
	if err := PlotSeriesWithColor(&colored, "T", "", series, 5, 4, true); err != nil {
		t.Fatalf("PlotSeriesWithColor failed: %v", err)
	}
	if strings.Contains(plain.String(), "\x1b[") {
		t.Fatalf("expected no escape codes without color")
	}
	if !strings.Contains(colored.String(), "\x1b[") {
		t.Fatalf("expected escape codes with forced color")
	}
}

func TestPlotWidthFor(t *testing.T) {
	axisWidth := utf8.RuneCountInString(axisLabelTop) + utf8.RuneCountInString(axisSeparator)
	total := 80
	expected := total - axisWidth
	if expected < minPlotWidth {
		expected = minPlotWidth
	}
	if got := PlotWidthFor(total); got != expected {
		t.Fatalf("expected width %d, got %d", expected, got)
	}
	if got := PlotWidthFor(0); got != minPlotWidth {
		t.Fatalf("expected min width %d, got %d", minPlotWidth, got)
	}
}
