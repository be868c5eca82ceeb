// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tables loads the two delimited input tables into typed records.
// Columns are located by header name so extra columns pass through unused.
package tables

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pdiddy/evinputs/pkg/types"
)

// ErrLoad marks a missing, unreadable, or unparsable input table. Any load
// failure aborts the whole run; there is no partial processing.
var ErrLoad = errors.New("load error")

// ErrInvalidValue marks a cell whose value would make the derived
// coefficients non-finite (zero travel or load factor). Treated as a fatal
// data error rather than letting an infinite value reach the model inputs.
var ErrInvalidValue = errors.New("invalid value")

// Required target table columns.
const (
	colRegion        = "region"
	colYear          = "year"
	colSupplysector  = "supplysector"
	colTranSubsector = "tranSubsector"
	colSaleTarget    = "EV_Sale_Target(%)"
)

// Required assumption table columns.
const (
	colTechnology   = "stub.technology"
	colAnnualTravel = "assumptions on annual travel per vehicle"
	colLoadFactor   = "load factors"
)

// LoadTargets reads the EV sale-target table from path.
func LoadTargets(path string) ([]types.TargetRecord, error) {
	rows, cols, err := readTable(path, []string{colRegion, colYear, colSupplysector, colTranSubsector, colSaleTarget})
	if err != nil {
		return nil, err
	}

	records := make([]types.TargetRecord, 0, len(rows))
	for i, row := range rows {
		year, err := parseYear(path, i, row[cols[colYear]])
		if err != nil {
			return nil, err
		}
		target, err := parseFloat(path, i, colSaleTarget, row[cols[colSaleTarget]])
		if err != nil {
			return nil, err
		}
		records = append(records, types.TargetRecord{
			Region:        strings.TrimSpace(row[cols[colRegion]]),
			Year:          year,
			Supplysector:  strings.TrimSpace(row[cols[colSupplysector]]),
			TranSubsector: strings.TrimSpace(row[cols[colTranSubsector]]),
			SaleTargetPct: target,
		})
	}
	return records, nil
}

// LoadAssumptions reads the travel / load-factor assumption table from path.
// Zero or non-finite travel and load-factor values are rejected here so the
// downstream division never produces an infinite coefficient.
func LoadAssumptions(path string) ([]types.AssumptionRecord, error) {
	rows, cols, err := readTable(path, []string{colSupplysector, colTranSubsector, colTechnology, colYear, colAnnualTravel, colLoadFactor})
	if err != nil {
		return nil, err
	}

	records := make([]types.AssumptionRecord, 0, len(rows))
	for i, row := range rows {
		year, err := parseYear(path, i, row[cols[colYear]])
		if err != nil {
			return nil, err
		}
		travel, err := parseFloat(path, i, colAnnualTravel, row[cols[colAnnualTravel]])
		if err != nil {
			return nil, err
		}
		load, err := parseFloat(path, i, colLoadFactor, row[cols[colLoadFactor]])
		if err != nil {
			return nil, err
		}
		if travel == 0 || !isFinite(travel) {
			return nil, fmt.Errorf("%w: %s row %d: annual travel per vehicle is %v", ErrInvalidValue, path, i+2, travel)
		}
		if load == 0 || !isFinite(load) {
			return nil, fmt.Errorf("%w: %s row %d: load factor is %v", ErrInvalidValue, path, i+2, load)
		}
		records = append(records, types.AssumptionRecord{
			Supplysector:  strings.TrimSpace(row[cols[colSupplysector]]),
			TranSubsector: strings.TrimSpace(row[cols[colTranSubsector]]),
			Technology:    strings.TrimSpace(row[cols[colTechnology]]),
			Year:          year,
			AnnualTravel:  travel,
			LoadFactor:    load,
		})
	}
	return records, nil
}

// readTable reads a CSV file with a header row and returns its data rows
// plus a header-name → column-index map covering the required columns.
func readTable(path string, required []string) ([][]string, map[string]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: opening %s: %v", ErrLoad, path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, fmt.Errorf("%w: %s is empty (header row required)", ErrLoad, path)
		}
		return nil, nil, fmt.Errorf("%w: reading header of %s: %v", ErrLoad, path, err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, name := range required {
		if _, ok := cols[name]; !ok {
			return nil, nil, fmt.Errorf("%w: %s: missing column %q", ErrLoad, path, name)
		}
	}

	var rows [][]string
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("%w: parsing %s: %v", ErrLoad, path, err)
		}
		for _, name := range required {
			if cols[name] >= len(row) {
				return nil, nil, fmt.Errorf("%w: %s row %d: too few fields", ErrLoad, path, len(rows)+2)
			}
		}
		rows = append(rows, row)
	}
	return rows, cols, nil
}

// parseYear parses a year cell. i is the zero-based data row index; +2
// converts it to the one-based file line (header included) for messages.
func parseYear(path string, i int, s string) (int, error) {
	year, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %s row %d: invalid year %q", ErrLoad, path, i+2, s)
	}
	return year, nil
}

func parseFloat(path string, i int, col, s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s row %d: invalid %s %q", ErrLoad, path, i+2, col, s)
	}
	return v, nil
}

func isFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}
