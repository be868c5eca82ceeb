// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package assemble left-joins the canonical key space against the computed
// coefficient rows and writes the two output tables.
package assemble

import (
	"sort"

	"github.com/pdiddy/evinputs/internal/derive"
	"github.com/pdiddy/evinputs/pkg/types"
)

// coefKey joins a canonical row to a coefficient row. The coefficient rows
// all belong to the EV technology; the join deliberately ignores the
// canonical row's technology so every technology in a matched
// (region, year, sector, subsector) cell carries the same coefficient.
type coefKey struct {
	region        string
	year          int
	supplysector  string
	tranSubsector string
}

// CoefTable builds output table 1: the full canonical key space with the
// coefficient attached where the join matches. No row is dropped; unmatched
// rows keep a nil coefficient but still carry the re-derived energy-input
// name and the market name, which depend only on the keys.
// Rows are sorted by (region, supplysector, tranSubsector, technology, year).
func CoefTable(ks derive.KeySpace, coefs []types.CoefficientRow) ([]types.CoefTableRow, error) {
	matched := make(map[coefKey]float64, len(coefs))
	for _, c := range coefs {
		matched[coefKey{c.Region, c.Year, c.Supplysector, c.TranSubsector}] = c.Coefficient
	}

	rows := make([]types.CoefTableRow, 0, ks.Size())
	for _, region := range ks.Regions {
		for _, year := range ks.Years {
			for _, tech := range ks.Techs {
				name, err := derive.EnergyInputName(tech.Supplysector, year)
				if err != nil {
					return nil, err
				}
				row := types.CoefTableRow{
					Region:        region,
					Year:          year,
					Supplysector:  tech.Supplysector,
					TranSubsector: tech.TranSubsector,
					Technology:    tech.Technology,
					EnergyInput:   name,
					MarketName:    region,
				}
				if v, ok := matched[coefKey{region, year, tech.Supplysector, tech.TranSubsector}]; ok {
					c := v
					row.Coefficient = &c
				}
				rows = append(rows, row)
			}
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Region != b.Region {
			return a.Region < b.Region
		}
		if a.Supplysector != b.Supplysector {
			return a.Supplysector < b.Supplysector
		}
		if a.TranSubsector != b.TranSubsector {
			return a.TranSubsector < b.TranSubsector
		}
		if a.Technology != b.Technology {
			return a.Technology < b.Technology
		}
		return a.Year < b.Year
	})
	return rows, nil
}

// SortResources orders table 2 the same way as table 1 for stable output.
func SortResources(rows []types.ResourceRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Region != b.Region {
			return a.Region < b.Region
		}
		if a.Supplysector != b.Supplysector {
			return a.Supplysector < b.Supplysector
		}
		if a.TranSubsector != b.TranSubsector {
			return a.TranSubsector < b.TranSubsector
		}
		return a.Year < b.Year
	})
}
