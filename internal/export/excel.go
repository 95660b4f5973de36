package export

import (
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	"go-pracuj-scraper/internal/scraper"
)

const SheetName = "Jobs"

// Columns returns the lexicographically sorted union of keys across all
// records, so degraded records (extra "Error" key, missing fields) still
// line up in one sheet.
func Columns(records []scraper.Record) []string {
	set := map[string]struct{}{}
	for _, rec := range records {
		for key := range rec {
			set[key] = struct{}{}
		}
	}
	cols := make([]string, 0, len(set))
	for key := range set {
		cols = append(cols, key)
	}
	sort.Strings(cols)
	return cols
}

// WriteWorkbook writes records to a single-sheet xlsx file at path: header
// row of sorted column names, one row per record, empty cells for keys a
// record does not carry.
func WriteWorkbook(records []scraper.Record, path string) error {
	cols := Columns(records)

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("renaming sheet: %w", err)
	}

	for i, col := range cols {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(SheetName, cell, col); err != nil {
			return err
		}
	}

	for r, rec := range records {
		for c, col := range cols {
			value, ok := rec[col]
			if !ok {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(SheetName, cell, value); err != nil {
				return err
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}
