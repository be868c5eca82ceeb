// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package gcamdoc builds the model input document from the assembled
// tables. Grouping (which nodes exist) and serialization (how they render)
// are separate passes.
package gcamdoc

import (
	"github.com/pdiddy/evinputs/internal/derive"
	"github.com/pdiddy/evinputs/pkg/types"
)

// Period is one model period of a stub technology: the energy-input
// coefficient plus, for the EV technology, an optional resource output.
type Period struct {
	Year        int
	Coefficient *float64
	EnergyInput string
	Market      string
	Resource    *types.ResourceRow
}

// Technology groups the periods of one stub technology.
type Technology struct {
	Name    string
	Periods []Period
}

// Subsector groups the technologies of one tranSubsector.
type Subsector struct {
	Name         string
	Technologies []Technology
}

// Sector groups the subsectors of one supplysector.
type Sector struct {
	Name       string
	Subsectors []Subsector
}

// RegionGroup groups one region's sector tree plus the recognized
// transport categories present in it.
type RegionGroup struct {
	Name    string
	Sectors []Sector

	// Categories are the recognized transport categories among the
	// region's supplysectors, in first-occurrence order. Unrecognized
	// prefixes are filtered out here, not rejected: policy nodes are only
	// generated for sectors the classification understands.
	Categories []derive.TransportCategory
}

// resKey locates a resource row for a period. Table 2 carries only the EV
// technology, so the key omits it.
type resKey struct {
	region        string
	supplysector  string
	tranSubsector string
	year          int
}

// Group builds the nested region → sector → subsector → technology → period
// structure from output table 1, preserving first-occurrence order at every
// level (the table is already sorted, so the order is the sort order).
// Resource rows from table 2 attach only to EV-technology periods; an EV
// period with no table-2 match simply has no resource output.
func Group(table1 []types.CoefTableRow, resources []types.ResourceRow, evTech string) []RegionGroup {
	res := make(map[resKey]types.ResourceRow, len(resources))
	for _, r := range resources {
		res[resKey{r.Region, r.Supplysector, r.TranSubsector, r.Year}] = r
	}

	var groups []RegionGroup
	regionIdx := make(map[string]int)

	for _, row := range table1 {
		ri, ok := regionIdx[row.Region]
		if !ok {
			ri = len(groups)
			regionIdx[row.Region] = ri
			groups = append(groups, RegionGroup{Name: row.Region})
		}
		region := &groups[ri]

		if n := len(region.Sectors); n == 0 || region.Sectors[n-1].Name != row.Supplysector {
			region.Sectors = append(region.Sectors, Sector{Name: row.Supplysector})
			if cat := derive.ClassifyTransport(row.Supplysector); cat != derive.CategoryUnrecognized {
				region.Categories = appendCategory(region.Categories, cat)
			}
		}
		sector := &region.Sectors[len(region.Sectors)-1]

		if n := len(sector.Subsectors); n == 0 || sector.Subsectors[n-1].Name != row.TranSubsector {
			sector.Subsectors = append(sector.Subsectors, Subsector{Name: row.TranSubsector})
		}
		sub := &sector.Subsectors[len(sector.Subsectors)-1]

		if n := len(sub.Technologies); n == 0 || sub.Technologies[n-1].Name != row.Technology {
			sub.Technologies = append(sub.Technologies, Technology{Name: row.Technology})
		}
		tech := &sub.Technologies[len(sub.Technologies)-1]

		p := Period{
			Year:        row.Year,
			Coefficient: row.Coefficient,
			EnergyInput: row.EnergyInput,
			Market:      row.MarketName,
		}
		if row.Technology == evTech {
			if r, ok := res[resKey{row.Region, row.Supplysector, row.TranSubsector, row.Year}]; ok {
				rr := r
				p.Resource = &rr
			}
		}
		tech.Periods = append(tech.Periods, p)
	}
	return groups
}

func appendCategory(cats []derive.TransportCategory, cat derive.TransportCategory) []derive.TransportCategory {
	for _, c := range cats {
		if c == cat {
			return cats
		}
	}
	return append(cats, cat)
}
