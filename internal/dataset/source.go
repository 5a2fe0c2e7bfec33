// Package dataset loads, caches, and serializes the sales dataset.
package dataset

import (
	"context"
	"errors"

	"github.com/mkvl/salesdash/internal/model"
)

// ErrDataSource marks fatal dataset failures: a missing or unreadable
// source, missing required columns, or unparseable cells. No
// computation proceeds after a source error.
var ErrDataSource = errors.New("data source error")

// Source produces the full set of orders.
type Source interface {
	Load(ctx context.Context) ([]model.Order, error)
}
