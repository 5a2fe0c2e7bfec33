package analytics

import (
	"context"

	"github.com/mkvl/salesdash/internal/dataset"
	"github.com/mkvl/salesdash/internal/model"
)

const defaultTopN = 10

// Options controls the derived views of a report.
type Options struct {
	Granularity model.Granularity
	TopN        int // top products by profit; defaults to 10
}

// Report contains all precomputed data one dashboard refresh renders.
// A zero-row filter result is valid: slices are empty and the current
// snapshot carries NaN means, which renderers show as "no data".
type Report struct {
	All      []model.Order
	Filtered []model.Order

	Baseline model.Snapshot
	Current  model.Snapshot
	Deltas   model.Deltas

	SalesByRegion   []model.GroupRow
	SalesByCategory []model.GroupRow
	TopProducts     []model.GroupRow // by summed profit
	SegmentSummary  []model.GroupRow // sales and profit per segment
	SegmentCategory []model.GroupRow // (category, segment) pairs, sales
	Trend           []model.TimeBucket
}

// BuildReport runs the full pipeline for one refresh: load (cached by
// the Loader), validate criteria, filter, then aggregate every view.
// It is synchronous and pure apart from the initial source read.
func BuildReport(ctx context.Context, src dataset.Source, criteria model.Criteria, opts Options) (Report, error) {
	if err := ValidateCriteria(criteria); err != nil {
		return Report{}, err
	}
	all, err := src.Load(ctx)
	if err != nil {
		return Report{}, err
	}
	filtered, err := Filter(all, criteria)
	if err != nil {
		return Report{}, err
	}

	topN := opts.TopN
	if topN <= 0 {
		topN = defaultTopN
	}

	baseline := Summarize(all)
	current := Summarize(filtered)
	return Report{
		All:             all,
		Filtered:        filtered,
		Baseline:        baseline,
		Current:         current,
		Deltas:          Compare(baseline, current),
		SalesByRegion:   GroupBy(filtered, []Dimension{ByRegion}, []Metric{Sales}),
		SalesByCategory: GroupBy(filtered, []Dimension{ByCategory}, []Metric{Sales}),
		TopProducts:     Top(GroupBy(filtered, []Dimension{ByProduct}, []Metric{Profit}), topN),
		SegmentSummary:  GroupBy(filtered, []Dimension{BySegment}, []Metric{Sales, Profit}),
		SegmentCategory: GroupBy(filtered, []Dimension{ByCategory, BySegment}, []Metric{Sales}),
		Trend:           Resample(filtered, opts.Granularity),
	}, nil
}
