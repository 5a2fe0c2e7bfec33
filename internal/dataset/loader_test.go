package dataset

import (
	"context"
	"errors"
	"testing"

	"github.com/mkvl/salesdash/internal/model"
)

type countingSource struct {
	orders []model.Order
	loads  int
	err    error
}

func (s *countingSource) Load(_ context.Context) ([]model.Order, error) {
	s.loads++
	if s.err != nil {
		return nil, s.err
	}
	return s.orders, nil
}

func TestLoaderCachesFirstLoad(t *testing.T) {
	src := &countingSource{orders: []model.Order{{OrderID: "O-1"}}}
	loader := NewLoader(src)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		orders, err := loader.Load(ctx)
		if err != nil {
			t.Fatalf("load %d: %v", i, err)
		}
		if len(orders) != 1 {
			t.Fatalf("load %d: expected 1 order, got %d", i, len(orders))
		}
	}
	if src.loads != 1 {
		t.Fatalf("expected a single source read, got %d", src.loads)
	}
}

func TestLoaderDoesNotCacheFailures(t *testing.T) {
	wantErr := errors.New("boom")
	src := &countingSource{err: wantErr}
	loader := NewLoader(src)
	ctx := context.Background()

	if _, err := loader.Load(ctx); !errors.Is(err, wantErr) {
		t.Fatalf("expected source error, got %v", err)
	}
	src.err = nil
	src.orders = []model.Order{{OrderID: "O-1"}}
	orders, err := loader.Load(ctx)
	if err != nil {
		t.Fatalf("load after failure: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("expected 1 order, got %d", len(orders))
	}
	if src.loads != 2 {
		t.Fatalf("expected 2 source reads, got %d", src.loads)
	}
}

func TestLoaderInvalidate(t *testing.T) {
	src := &countingSource{orders: []model.Order{{OrderID: "O-1"}}}
	loader := NewLoader(src)
	ctx := context.Background()

	if _, err := loader.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	loader.Invalidate()
	if _, err := loader.Load(ctx); err != nil {
		t.Fatalf("load after invalidate: %v", err)
	}
	if src.loads != 2 {
		t.Fatalf("expected re-read after invalidate, got %d loads", src.loads)
	}
}
