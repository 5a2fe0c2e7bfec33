// Package model defines shared data structures.
package model

import (
	"math"
	"time"
)

// Order is a single sales record from the dataset.
type Order struct {
	OrderID     string
	OrderDate   time.Time
	ShipDate    time.Time
	Segment     string
	Region      string
	Category    string
	ProductName string
	Sales       float64
	Profit      float64
	// DeliveryDays is derived as ShipDate - OrderDate in whole days.
	// Negative values are kept as-is; the dataset occasionally records
	// ship dates before order dates.
	DeliveryDays int
}

// Criteria selects which orders participate in a report.
// From/To bound OrderDate inclusively; Segments and Regions are
// set-membership filters and must both be non-empty.
type Criteria struct {
	From     time.Time
	To       time.Time
	Segments []string
	Regions  []string
}

// Granularity is the bucket width for time-series resampling.
type Granularity int

const (
	Monthly Granularity = iota
	Daily
)

// String returns the display name of the granularity.
func (g Granularity) String() string {
	if g == Daily {
		return "Daily"
	}
	return "Monthly"
}

// Snapshot holds scalar KPIs computed over one set of orders.
type Snapshot struct {
	TotalSales      float64
	TotalProfit     float64
	TotalOrders     int
	AvgDeliveryDays float64
}

// Deltas compares a filtered snapshot against the unfiltered baseline.
// Percentage fields are (current-baseline)/baseline*100; when the
// baseline metric is zero they are +/-Inf matching the sign of current
// (0 when both are zero). DeliveryDays is a plain difference in days.
type Deltas struct {
	SalesPct     float64
	ProfitPct    float64
	OrdersPct    float64
	DeliveryDays float64
}

// Defined returns false for percentage deltas with a zero baseline and
// for differences over empty inputs, so renderers can show "n/a".
func Defined(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// GroupRow is one entry of a grouped summary: a one- or two-part key
// and one summed value per requested metric.
type GroupRow struct {
	Key    []string
	Values []float64
}

// TimeBucket is one period of a resampled series.
type TimeBucket struct {
	Start  time.Time
	Sales  float64
	Profit float64
}

// FeedbackEntry is one line of the feedback log.
type FeedbackEntry struct {
	At      time.Time
	Comment string
}
