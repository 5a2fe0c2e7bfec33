// Package analytics contains the filter-and-aggregate pipeline and
// report rendering.
package analytics

import (
	"errors"
	"time"

	"github.com/mkvl/salesdash/internal/model"
)

// ErrIncompleteCriteria is returned when the segment or region
// selection is empty. The caller must halt and prompt for input; an
// empty selection is not a zero-result query.
var ErrIncompleteCriteria = errors.New("incomplete criteria: select at least one segment and one region")

// ValidateCriteria checks the non-empty-selection precondition.
func ValidateCriteria(criteria model.Criteria) error {
	if len(criteria.Segments) == 0 || len(criteria.Regions) == 0 {
		return ErrIncompleteCriteria
	}
	return nil
}

// Filter returns the orders matching the criteria: OrderDate within
// [From, To] inclusive, Segment and Region members of the respective
// selections (case-sensitive). The input is not mutated and row order
// is preserved, so filtering an already-filtered set with the same
// criteria is a no-op.
func Filter(orders []model.Order, criteria model.Criteria) ([]model.Order, error) {
	if err := ValidateCriteria(criteria); err != nil {
		return nil, err
	}
	segments := toSet(criteria.Segments)
	regions := toSet(criteria.Regions)

	out := make([]model.Order, 0, len(orders))
	for _, order := range orders {
		if order.OrderDate.Before(criteria.From) || order.OrderDate.After(criteria.To) {
			continue
		}
		if _, ok := segments[order.Segment]; !ok {
			continue
		}
		if _, ok := regions[order.Region]; !ok {
			continue
		}
		out = append(out, order)
	}
	return out, nil
}

// DateSpan returns the earliest and latest order dates, or zero times
// for an empty dataset. Useful as the default criteria date range.
func DateSpan(orders []model.Order) (from, to time.Time) {
	for i, order := range orders {
		if i == 0 || order.OrderDate.Before(from) {
			from = order.OrderDate
		}
		if i == 0 || order.OrderDate.After(to) {
			to = order.OrderDate
		}
	}
	return from, to
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
