package analytics

import (
	"sort"
	"time"

	"github.com/mkvl/salesdash/internal/model"
)

// Resample buckets orders by calendar day or calendar month of
// OrderDate and sums sales and profit per bucket. Month buckets are
// keyed by the first day of the month. The result is ordered
// chronologically ascending and sparse: periods with no orders are
// omitted rather than emitted as zero-valued buckets, so charts may
// show gaps.
func Resample(orders []model.Order, granularity model.Granularity) []model.TimeBucket {
	if len(orders) == 0 {
		return nil
	}
	index := make(map[time.Time]int)
	var buckets []model.TimeBucket
	for _, order := range orders {
		start := BucketStart(order.OrderDate, granularity)
		i, ok := index[start]
		if !ok {
			i = len(buckets)
			index[start] = i
			buckets = append(buckets, model.TimeBucket{Start: start})
		}
		buckets[i].Sales += order.Sales
		buckets[i].Profit += order.Profit
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Start.Before(buckets[j].Start)
	})
	return buckets
}

// BucketStart truncates a date to the start of its bucket period.
func BucketStart(t time.Time, granularity model.Granularity) time.Time {
	if granularity == model.Daily {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	}
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
