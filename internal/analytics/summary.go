package analytics

import (
	"math"

	"github.com/mkvl/salesdash/internal/model"
)

// Summarize computes the KPI snapshot over a set of orders: summed
// sales and profit, distinct order count, and mean delivery time.
// For an empty input AvgDeliveryDays is NaN ("no data"), never zero.
func Summarize(orders []model.Order) model.Snapshot {
	snapshot := model.Snapshot{}
	if len(orders) == 0 {
		snapshot.AvgDeliveryDays = math.NaN()
		return snapshot
	}
	seen := make(map[string]struct{}, len(orders))
	var deliveryDaysSum float64
	for _, order := range orders {
		snapshot.TotalSales += order.Sales
		snapshot.TotalProfit += order.Profit
		deliveryDaysSum += float64(order.DeliveryDays)
		seen[order.OrderID] = struct{}{}
	}
	snapshot.TotalOrders = len(seen)
	snapshot.AvgDeliveryDays = deliveryDaysSum / float64(len(orders))
	return snapshot
}

// Compare derives deltas of the current (filtered) snapshot against
// the baseline (unfiltered) one. Percentage deltas with a zero
// baseline are +Inf or -Inf matching the sign of current, and 0 when
// both metrics are zero; check model.Defined before formatting them.
// The delivery-time delta is a plain difference in days and is NaN
// when either mean is NaN.
func Compare(baseline, current model.Snapshot) model.Deltas {
	return model.Deltas{
		SalesPct:     percentDelta(baseline.TotalSales, current.TotalSales),
		ProfitPct:    percentDelta(baseline.TotalProfit, current.TotalProfit),
		OrdersPct:    percentDelta(float64(baseline.TotalOrders), float64(current.TotalOrders)),
		DeliveryDays: current.AvgDeliveryDays - baseline.AvgDeliveryDays,
	}
}

func percentDelta(baseline, current float64) float64 {
	if baseline == 0 {
		if current == 0 {
			return 0
		}
		return math.Inf(sign(current))
	}
	return (current - baseline) / baseline * 100
}

func sign(v float64) int {
	if v < 0 {
		return -1
	}
	return 1
}
