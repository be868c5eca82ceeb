// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package gcamdoc

import (
	"encoding/xml"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/pdiddy/evinputs/pkg/types"
)

// ErrSerialize marks a document construction or write failure.
var ErrSerialize = errors.New("serialization error")

// Scenario is the document root: <scenario><world>…</world></scenario>.
type Scenario struct {
	XMLName xml.Name  `xml:"scenario"`
	World   WorldNode `xml:"world"`
}

// WorldNode holds the region nodes.
type WorldNode struct {
	Regions []RegionNode `xml:"region"`
}

// RegionNode holds one region's sector tree followed by its policy nodes.
type RegionNode struct {
	Name     string       `xml:"name,attr"`
	Sectors  []SectorNode `xml:"supplysector"`
	Policies []PolicyNode `xml:"policy-portfolio-standard"`
}

// SectorNode is a supplysector.
type SectorNode struct {
	Name       string          `xml:"name,attr"`
	Subsectors []SubsectorNode `xml:"tranSubsector"`
}

// SubsectorNode is a tranSubsector.
type SubsectorNode struct {
	Name         string     `xml:"name,attr"`
	Technologies []TechNode `xml:"stub-technology"`
}

// TechNode is a stub technology.
type TechNode struct {
	Name    string       `xml:"name,attr"`
	Periods []PeriodNode `xml:"period"`
}

// PeriodNode is one model period. SecondaryOutput is present only on EV
// periods with a matching resource row.
type PeriodNode struct {
	Year            int              `xml:"year,attr"`
	EnergyInput     EnergyInputNode  `xml:"minicam-energy-input"`
	SecondaryOutput *SecondaryOutput `xml:"res-secondary-output"`
}

// EnergyInputNode is a minicam-energy-input. Coefficient is a string so an
// unmatched row renders an empty element rather than a zero.
type EnergyInputNode struct {
	Name        string `xml:"name,attr"`
	Coefficient string `xml:"coefficient"`
	MarketName  string `xml:"market-name"`
}

// SecondaryOutput is a res-secondary-output.
type SecondaryOutput struct {
	Name        string  `xml:"name,attr"`
	OutputRatio float64 `xml:"output-ratio"`
	PMultiplier float64 `xml:"pMultiplier"`
}

// PolicyNode is a policy-portfolio-standard constraint.
type PolicyNode struct {
	Name       string         `xml:"name,attr"`
	Market     string         `xml:"market"`
	PolicyType string         `xml:"policyType"`
	Constraint ConstraintNode `xml:"constraint"`
}

// ConstraintNode carries the fixed constraint value.
type ConstraintNode struct {
	Fillout string `xml:"fillout,attr"`
	Year    int    `xml:"year,attr"`
	Value   string `xml:",chardata"`
}

// Build serializes the grouped structure into the document tree, appending
// one policy node per (policy year × recognized category) after each
// region's sectors.
func Build(groups []RegionGroup, policyYears []int) *Scenario {
	doc := &Scenario{}
	for _, g := range groups {
		region := RegionNode{Name: g.Name}
		for _, s := range g.Sectors {
			sector := SectorNode{Name: s.Name}
			for _, sub := range s.Subsectors {
				subsector := SubsectorNode{Name: sub.Name}
				for _, t := range sub.Technologies {
					tech := TechNode{Name: t.Name}
					for _, p := range t.Periods {
						node := PeriodNode{
							Year: p.Year,
							EnergyInput: EnergyInputNode{
								Name:       p.EnergyInput,
								MarketName: p.Market,
							},
						}
						if p.Coefficient != nil {
							node.EnergyInput.Coefficient = strconv.FormatFloat(*p.Coefficient, 'g', -1, 64)
						}
						if p.Resource != nil {
							node.SecondaryOutput = &SecondaryOutput{
								Name:        p.Resource.SecondaryOutput,
								OutputRatio: p.Resource.OutputRatio,
								PMultiplier: p.Resource.PMultiplier,
							}
						}
						tech.Periods = append(tech.Periods, node)
					}
					subsector.Technologies = append(subsector.Technologies, tech)
				}
				sector.Subsectors = append(sector.Subsectors, subsector)
			}
			region.Sectors = append(region.Sectors, sector)
		}
		for _, year := range policyYears {
			for _, cat := range g.Categories {
				region.Policies = append(region.Policies, PolicyNode{
					Name:       fmt.Sprintf("EVTarget%d_%s", year, cat),
					Market:     g.Name,
					PolicyType: "RES",
					Constraint: ConstraintNode{Fillout: "1", Year: year, Value: "1"},
				})
			}
		}
		doc.World.Regions = append(doc.World.Regions, region)
	}
	return doc
}

// Write marshals the document with indentation and writes it once to path.
func Write(path string, doc *Scenario) error {
	data, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: marshaling document: %v", ErrSerialize, err)
	}
	data = append([]byte(xml.Header), data...)
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: writing %s: %v", ErrSerialize, path, err)
	}
	return nil
}

// BuildFromTables runs the grouping and serialization passes together.
func BuildFromTables(table1 []types.CoefTableRow, resources []types.ResourceRow, evTech string, policyYears []int) *Scenario {
	return Build(Group(table1, resources, evTech), policyYears)
}
