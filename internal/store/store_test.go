package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/mkvl/salesdash/internal/model"
)

func testOrders() []model.Order {
	return []model.Order{
		{
			OrderID:      "O-1",
			OrderDate:    time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC),
			ShipDate:     time.Date(2024, time.January, 8, 0, 0, 0, 0, time.UTC),
			Segment:      "Consumer",
			Region:       "East",
			Category:     "Furniture",
			ProductName:  "Desk",
			Sales:        100.5,
			Profit:       20.25,
			DeliveryDays: 3,
		},
		{
			OrderID:      "O-2",
			OrderDate:    time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC),
			ShipDate:     time.Date(2024, time.February, 8, 0, 0, 0, 0, time.UTC),
			Segment:      "Corporate",
			Region:       "West",
			Category:     "Technology",
			ProductName:  "Laptop",
			Sales:        200,
			Profit:       -10,
			DeliveryDays: -2,
		},
	}
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "orders.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func TestImportAndLoad(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	orders := testOrders()
	if err := st.ImportOrders(ctx, orders); err != nil {
		t.Fatalf("import orders: %v", err)
	}
	loaded, err := st.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(loaded) != len(orders) {
		t.Fatalf("expected %d orders, got %d", len(orders), len(loaded))
	}
	for i := range orders {
		if loaded[i] != orders[i] {
			t.Fatalf("order %d changed on round trip:\n%+v\n%+v", i, orders[i], loaded[i])
		}
	}
}

func TestImportReplacesDataset(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	orders := testOrders()
	if err := st.ImportOrders(ctx, orders); err != nil {
		t.Fatalf("first import: %v", err)
	}
	if err := st.ImportOrders(ctx, orders[:1]); err != nil {
		t.Fatalf("second import: %v", err)
	}
	count, err := st.CountOrders(ctx)
	if err != nil {
		t.Fatalf("count orders: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected re-import to replace rows, got %d", count)
	}
}

func TestLoadEmptyStore(t *testing.T) {
	st := openTestStore(t)
	orders, err := st.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(orders) != 0 {
		t.Fatalf("expected empty store, got %d orders", len(orders))
	}
	count, err := st.CountOrders(context.Background())
	if err != nil {
		t.Fatalf("count orders: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected 0 orders, got %d", count)
	}
}

func TestOpenCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "orders.db")
	st, err := Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := st.Close(); err != nil {
		t.Fatalf("close store: %v", err)
	}
}
