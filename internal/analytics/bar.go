package analytics

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/mkvl/salesdash/internal/model"
)

const (
	minBarWidth   = 8
	maxLabelWidth = 28
	positiveBar   = "█"
	negativeBar   = "▒"
)

// RenderBarChart prints a horizontal bar chart of the first metric of
// each row. Bars are scaled to the largest absolute value; negative
// values use a hollow bar. Keys with two parts are joined for the
// label.
func RenderBarChart(w io.Writer, title string, rows []model.GroupRow, totalWidth int) error {
	if title != "" {
		if _, err := fmt.Fprintln(w, title); err != nil {
			return err
		}
	}
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "No matching orders.")
		return err
	}

	labels := make([]string, len(rows))
	values := make([]string, len(rows))
	labelWidth, valueWidth := 0, 0
	maxAbs := 0.0
	for i, row := range rows {
		labels[i] = truncateLabel(strings.Join(row.Key, " / "), maxLabelWidth)
		values[i] = FormatMoney(row.Values[0])
		if w := runewidth.StringWidth(labels[i]); w > labelWidth {
			labelWidth = w
		}
		if w := runewidth.StringWidth(values[i]); w > valueWidth {
			valueWidth = w
		}
		if v := math.Abs(row.Values[0]); v > maxAbs {
			maxAbs = v
		}
	}

	barWidth := totalWidth - labelWidth - valueWidth - 4
	if barWidth < minBarWidth {
		barWidth = minBarWidth
	}
	for i, row := range rows {
		bar := ""
		if maxAbs > 0 {
			n := int(math.Round(math.Abs(row.Values[0]) / maxAbs * float64(barWidth)))
			if n == 0 && row.Values[0] != 0 {
				n = 1
			}
			glyph := positiveBar
			if row.Values[0] < 0 {
				glyph = negativeBar
			}
			bar = strings.Repeat(glyph, n)
		}
		line := fmt.Sprintf("%s  %s %s",
			padCell(labels[i], labelWidth, false),
			padCell(values[i], valueWidth, true),
			bar)
		if _, err := fmt.Fprintln(w, strings.TrimRight(line, " ")); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

// RenderSeriesBars prints one bar chart per secondary key of a
// two-dimension grouping, e.g. preferred categories per segment.
func RenderSeriesBars(w io.Writer, title string, rows []model.GroupRow, totalWidth int) error {
	if title != "" {
		if _, err := fmt.Fprintln(w, title); err != nil {
			return err
		}
	}
	names, series := SeriesByKey(rows)
	if len(names) == 0 {
		_, err := fmt.Fprintln(w, "No matching orders.")
		return err
	}
	for _, name := range names {
		flat := make([]model.GroupRow, 0, len(series[name]))
		for _, row := range series[name] {
			flat = append(flat, model.GroupRow{Key: row.Key[:1], Values: row.Values})
		}
		if err := RenderBarChart(w, name, flat, totalWidth); err != nil {
			return err
		}
	}
	return nil
}

func truncateLabel(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}
