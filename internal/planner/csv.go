package planner

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/alexanderramin/pawplan/internal/domain"
)

// ShoppingCSVHeader is the column layout of the shopping export.
var ShoppingCSVHeader = []string{"Ingredient", "Category", "Total grams (7 days)", "Avg grams/day"}

// ExportShoppingCSV writes items as comma-separated rows with a header.
// Numbers use the shortest representation that parses back to the same value.
func ExportShoppingCSV(w io.Writer, items []ShoppingItem) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ShoppingCSVHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, it := range items {
		row := []string{
			it.Ingredient,
			string(it.Category),
			strconv.FormatFloat(it.TotalGrams, 'f', -1, 64),
			strconv.FormatFloat(it.AvgGramsPerDay, 'f', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write %s: %w", it.Ingredient, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ParseShoppingCSV reads a file produced by ExportShoppingCSV.
func ParseShoppingCSV(r io.Reader) ([]ShoppingItem, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(ShoppingCSVHeader)

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, domain.NewValidationError("csv", "missing header")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	for i, col := range ShoppingCSVHeader {
		if header[i] != col {
			return nil, domain.NewValidationError("csv", fmt.Sprintf("column %d: want %q, got %q", i+1, col, header[i]))
		}
	}

	var items []ShoppingItem
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read line %d: %w", line, err)
		}
		total, err := strconv.ParseFloat(rec[2], 64)
		if err != nil {
			return nil, domain.NewValidationError("csv", fmt.Sprintf("line %d: bad total %q", line, rec[2]))
		}
		avg, err := strconv.ParseFloat(rec[3], 64)
		if err != nil {
			return nil, domain.NewValidationError("csv", fmt.Sprintf("line %d: bad average %q", line, rec[3]))
		}
		items = append(items, ShoppingItem{
			Ingredient:     rec[0],
			Category:       domain.Category(rec[1]),
			TotalGrams:     total,
			AvgGramsPerDay: avg,
		})
	}
	return items, nil
}
