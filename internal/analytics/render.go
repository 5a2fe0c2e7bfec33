package analytics

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/mkvl/salesdash/internal/model"
)

// RenderKPIs prints the filtered-vs-overall KPI block.
func RenderKPIs(w io.Writer, report Report) error {
	if _, err := fmt.Fprintln(w, "Key Metrics (Filtered vs Overall)"); err != nil {
		return err
	}
	headers := []string{"Metric", "Filtered", "Overall", "Delta"}
	rows := [][]string{
		{"Total Sales", FormatMoney(report.Current.TotalSales), FormatMoney(report.Baseline.TotalSales), FormatPercent(report.Deltas.SalesPct)},
		{"Total Profit", FormatMoney(report.Current.TotalProfit), FormatMoney(report.Baseline.TotalProfit), FormatPercent(report.Deltas.ProfitPct)},
		{"Total Orders", fmt.Sprintf("%d", report.Current.TotalOrders), fmt.Sprintf("%d", report.Baseline.TotalOrders), FormatPercent(report.Deltas.OrdersPct)},
		{"Avg Delivery", FormatDays(report.Current.AvgDeliveryDays), FormatDays(report.Baseline.AvgDeliveryDays), FormatDayDelta(report.Deltas.DeliveryDays)},
	}
	rightAlign := map[int]bool{1: true, 2: true, 3: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

// RenderGroupTable prints one grouped summary as an aligned table.
func RenderGroupTable(w io.Writer, title string, dims []Dimension, metrics []Metric, rows []model.GroupRow) error {
	if title != "" {
		if _, err := fmt.Fprintln(w, title); err != nil {
			return err
		}
	}
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "No matching orders.")
		return err
	}
	headers := make([]string, 0, len(dims)+len(metrics))
	for _, dim := range dims {
		headers = append(headers, dim.Label())
	}
	rightAlign := map[int]bool{}
	for i, metric := range metrics {
		rightAlign[len(dims)+i] = true
		headers = append(headers, metric.Label())
	}
	tableRows := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells := append([]string(nil), row.Key...)
		for _, v := range row.Values {
			cells = append(cells, FormatMoney(v))
		}
		tableRows = append(tableRows, cells)
	}
	for _, line := range formatTable(headers, tableRows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

// RenderTrend prints the sales/profit trend plot for the series.
func RenderTrend(w io.Writer, buckets []model.TimeBucket, granularity model.Granularity, width, height int, useColor bool) error {
	if len(buckets) == 0 {
		_, err := fmt.Fprintln(w, "No matching orders.")
		return err
	}
	sales := make([]float64, len(buckets))
	profit := make([]float64, len(buckets))
	for i, bucket := range buckets {
		sales[i] = bucket.Sales
		profit[i] = bucket.Profit
	}
	title := fmt.Sprintf("%s Sales & Profit Trend", granularity)
	plotWidth := 0
	if width > 0 {
		plotWidth = PlotWidthFor(width)
	}
	span := formatBucketSpan(buckets, granularity)
	return PlotSeriesWithColor(w, title, span, []Series{
		{Name: "Sales", Values: sales},
		{Name: "Profit", Values: profit},
	}, plotWidth, height, useColor)
}

func formatBucketSpan(buckets []model.TimeBucket, granularity model.Granularity) string {
	format := "2006-01"
	if granularity == model.Daily {
		format = "2006-01-02"
	}
	first := buckets[0].Start.Format(format)
	last := buckets[len(buckets)-1].Start.Format(format)
	if first == last {
		return first
	}
	return first + " .. " + last
}

// FormatMoney formats an amount with a dollar prefix, comma grouping,
// and two decimals.
func FormatMoney(amount float64) string {
	if math.IsNaN(amount) {
		return "n/a"
	}
	negative := math.Signbit(amount)
	if negative {
		amount = -amount
	}
	whole := int64(amount)
	cents := int64(math.Round((amount - float64(whole)) * 100))
	if cents == 100 {
		whole++
		cents = 0
	}
	out := fmt.Sprintf("$%s.%02d", groupThousands(whole), cents)
	if negative {
		out = "-" + out
	}
	return out
}

func groupThousands(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	return strings.Join(parts, ",")
}

// FormatPercent formats a percentage delta, or "n/a" for the
// zero-baseline sentinel.
func FormatPercent(v float64) string {
	if !model.Defined(v) {
		return "n/a"
	}
	return fmt.Sprintf("%+.2f%%", v)
}

// FormatDays formats a mean delivery time, or "n/a" for empty input.
func FormatDays(v float64) string {
	if !model.Defined(v) {
		return "n/a"
	}
	return fmt.Sprintf("%.2f days", v)
}

// FormatDayDelta formats the absolute delivery-time delta.
func FormatDayDelta(v float64) string {
	if !model.Defined(v) {
		return "n/a"
	}
	return fmt.Sprintf("%+.2f days", v)
}
