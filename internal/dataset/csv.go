package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/mkvl/salesdash/internal/model"
)

// Header columns the source must provide, in export order.
var Columns = []string{
	"Order ID",
	"Order Date",
	"Ship Date",
	"Segment",
	"Region",
	"Category",
	"Product Name",
	"Sales",
	"Profit",
}

var dateFormats = []string{"2006-01-02", "1/2/2006", "01/02/2006"}

// CSVSource reads orders from a CSV file.
type CSVSource struct {
	Path string
}

// Load implements Source.
func (s CSVSource) Load(_ context.Context) ([]model.Order, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open %s: %v", ErrDataSource, s.Path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			// Best-effort close on a read-only file.
			_ = cerr
		}
	}()
	orders, err := ParseCSV(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", s.Path, err)
	}
	return orders, nil
}

// ParseCSV reads orders from CSV data with a header row. All columns in
// Columns are required; extra columns are ignored. DeliveryDays is
// derived from the two date columns.
func ParseCSV(r io.Reader) ([]model.Order, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read header: %v", ErrDataSource, err)
	}
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[name] = i
	}
	for _, name := range Columns {
		if _, ok := idx[name]; !ok {
			return nil, fmt.Errorf("%w: missing required column %q", ErrDataSource, name)
		}
	}

	var orders []model.Order
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("%w: failed to read row %d: %v", ErrDataSource, line, err)
		}
		order, err := parseRow(record, idx)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrDataSource, line, err)
		}
		orders = append(orders, order)
	}
	return orders, nil
}

func parseRow(record []string, idx map[string]int) (model.Order, error) {
	field := func(name string) string {
		i := idx[name]
		if i >= len(record) {
			return ""
		}
		return record[i]
	}

	orderDate, err := parseDate(field("Order Date"))
	if err != nil {
		return model.Order{}, fmt.Errorf("invalid Order Date: %v", err)
	}
	shipDate, err := parseDate(field("Ship Date"))
	if err != nil {
		return model.Order{}, fmt.Errorf("invalid Ship Date: %v", err)
	}
	sales, err := strconv.ParseFloat(field("Sales"), 64)
	if err != nil {
		return model.Order{}, fmt.Errorf("invalid Sales %q", field("Sales"))
	}
	profit, err := strconv.ParseFloat(field("Profit"), 64)
	if err != nil {
		return model.Order{}, fmt.Errorf("invalid Profit %q", field("Profit"))
	}

	return model.Order{
		OrderID:      field("Order ID"),
		OrderDate:    orderDate,
		ShipDate:     shipDate,
		Segment:      field("Segment"),
		Region:       field("Region"),
		Category:     field("Category"),
		ProductName:  field("Product Name"),
		Sales:        sales,
		Profit:       profit,
		DeliveryDays: DeliveryDays(orderDate, shipDate),
	}, nil
}

func parseDate(value string) (time.Time, error) {
	for _, format := range dateFormats {
		if t, err := time.Parse(format, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", value)
}

// DeliveryDays computes the derived delivery time in whole days.
// Negative results are valid input, not an error.
func DeliveryDays(orderDate, shipDate time.Time) int {
	return int(shipDate.Sub(orderDate).Hours() / 24)
}

// WriteCSV serializes orders as UTF-8 CSV with the source header names.
// Re-parsing the output reproduces the same logical rows.
func WriteCSV(w io.Writer, orders []model.Order) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(Columns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, order := range orders {
		record := []string{
			order.OrderID,
			order.OrderDate.Format("2006-01-02"),
			order.ShipDate.Format("2006-01-02"),
			order.Segment,
			order.Region,
			order.Category,
			order.ProductName,
			strconv.FormatFloat(order.Sales, 'f', -1, 64),
			strconv.FormatFloat(order.Profit, 'f', -1, 64),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}
