// Package store provides a SQLite-backed dataset source.
package store

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/mkvl/salesdash/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

const dateFormat = "2006-01-02"

// Store wraps SQLite access for the imported order dataset. It
// implements dataset.Source, so the dashboard can run against a
// database instead of the raw CSV file.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS orders (
			seq INTEGER PRIMARY KEY,
			order_id TEXT NOT NULL,
			order_date TEXT NOT NULL,
			ship_date TEXT NOT NULL,
			segment TEXT NOT NULL,
			region TEXT NOT NULL,
			category TEXT NOT NULL,
			product_name TEXT NOT NULL,
			sales REAL NOT NULL,
			profit REAL NOT NULL,
			delivery_days INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_orders_order_date ON orders(order_date);`,
		`CREATE INDEX IF NOT EXISTS idx_orders_segment ON orders(segment);`,
		`CREATE INDEX IF NOT EXISTS idx_orders_region ON orders(region);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// ImportOrders replaces the stored dataset with the given orders in a
// single transaction, preserving row order.
func (s *Store) ImportOrders(ctx context.Context, orders []model.Order) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM orders`); err != nil {
		return err
	}
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO orders (order_id, order_date, ship_date, segment, region, category, product_name, sales, profit, delivery_days)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := stmt.Close(); cerr != nil {
			// Best-effort statement close.
			_ = cerr
		}
	}()
	for _, order := range orders {
		if _, err = stmt.ExecContext(ctx,
			order.OrderID,
			order.OrderDate.Format(dateFormat),
			order.ShipDate.Format(dateFormat),
			order.Segment,
			order.Region,
			order.Category,
			order.ProductName,
			order.Sales,
			order.Profit,
			order.DeliveryDays,
		); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Load returns all stored orders in import order. It implements
// dataset.Source.
func (s *Store) Load(ctx context.Context) ([]model.Order, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT order_id, order_date, ship_date, segment, region, category, product_name, sales, profit, delivery_days
		 FROM orders ORDER BY seq ASC`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var orders []model.Order
	for rows.Next() {
		var order model.Order
		var orderDate, shipDate string
		if err := rows.Scan(
			&order.OrderID,
			&orderDate,
			&shipDate,
			&order.Segment,
			&order.Region,
			&order.Category,
			&order.ProductName,
			&order.Sales,
			&order.Profit,
			&order.DeliveryDays,
		); err != nil {
			return nil, err
		}
		parsedOrder, err := time.Parse(dateFormat, orderDate)
		if err != nil {
			return nil, err
		}
		parsedShip, err := time.Parse(dateFormat, shipDate)
		if err != nil {
			return nil, err
		}
		order.OrderDate = parsedOrder
		order.ShipDate = parsedShip
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return orders, nil
}

// CountOrders returns the number of stored orders.
func (s *Store) CountOrders(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM orders`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
