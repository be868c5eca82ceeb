// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package gcamdoc

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdiddy/evinputs/internal/derive"
	"github.com/pdiddy/evinputs/pkg/types"
)

func fl(v float64) *float64 { return &v }

// testTable returns a small sorted table 1: one region, a freight sector
// and a pass sector, with BEV and Liquids technologies.
func testTable() []types.CoefTableRow {
	return []types.CoefTableRow{
		{Region: "USA", Year: 2030, Supplysector: "trn_freight_road", TranSubsector: "truck",
			Technology: "BEV", Coefficient: fl(2500), EnergyInput: "EVTarget2030_freight", MarketName: "USA"},
		{Region: "USA", Year: 2035, Supplysector: "trn_freight_road", TranSubsector: "truck",
			Technology: "BEV", EnergyInput: "EVTarget2035_freight", MarketName: "USA"},
		{Region: "USA", Year: 2030, Supplysector: "trn_pass_road", TranSubsector: "4W",
			Technology: "BEV", Coefficient: fl(5000), EnergyInput: "EVTarget2030_pass", MarketName: "USA"},
		{Region: "USA", Year: 2035, Supplysector: "trn_pass_road", TranSubsector: "4W",
			Technology: "BEV", Coefficient: fl(10000), EnergyInput: "EVTarget2035_pass", MarketName: "USA"},
		{Region: "USA", Year: 2030, Supplysector: "trn_pass_road", TranSubsector: "4W",
			Technology: "Liquids", Coefficient: fl(5000), EnergyInput: "EVTarget2030_pass", MarketName: "USA"},
		{Region: "USA", Year: 2035, Supplysector: "trn_pass_road", TranSubsector: "4W",
			Technology: "Liquids", Coefficient: fl(10000), EnergyInput: "EVTarget2035_pass", MarketName: "USA"},
	}
}

func testResources() []types.ResourceRow {
	return []types.ResourceRow{
		// Matches the 2030 BEV pass period only; the 2035 BEV freight
		// period has no resource row and must be silently omitted.
		{Region: "USA", Supplysector: "trn_pass_road", TranSubsector: "4W", Technology: "BEV",
			Year: 2030, SecondaryOutput: "EVTarget2030_pass", OutputRatio: 0.00005, PMultiplier: 1e9},
		{Region: "USA", Supplysector: "trn_freight_road", TranSubsector: "truck", Technology: "BEV",
			Year: 2030, SecondaryOutput: "EVTarget2030_freight", OutputRatio: 0.00001, PMultiplier: 1e9},
	}
}

func TestGroup(t *testing.T) {
	groups := Group(testTable(), testResources(), "BEV")

	if len(groups) != 1 {
		t.Fatalf("len(groups) = %d, want 1", len(groups))
	}
	g := groups[0]
	if g.Name != "USA" {
		t.Errorf("region = %q, want USA", g.Name)
	}
	if len(g.Sectors) != 2 {
		t.Fatalf("len(sectors) = %d, want 2", len(g.Sectors))
	}
	// First-occurrence order follows the table: freight first.
	if g.Sectors[0].Name != "trn_freight_road" || g.Sectors[1].Name != "trn_pass_road" {
		t.Errorf("sector order = %q, %q", g.Sectors[0].Name, g.Sectors[1].Name)
	}
	if len(g.Categories) != 2 || g.Categories[0] != derive.CategoryFreight || g.Categories[1] != derive.CategoryPassenger {
		t.Errorf("categories = %v, want [freight pass]", g.Categories)
	}

	// Every table row appears exactly once as a period leaf.
	leaves := 0
	for _, s := range g.Sectors {
		for _, sub := range s.Subsectors {
			for _, tech := range sub.Technologies {
				leaves += len(tech.Periods)
			}
		}
	}
	if leaves != len(testTable()) {
		t.Errorf("period leaves = %d, want %d", leaves, len(testTable()))
	}

	// Resource output attaches to the matched BEV periods only.
	freightBEV := g.Sectors[0].Subsectors[0].Technologies[0]
	if freightBEV.Periods[0].Resource == nil {
		t.Error("freight BEV 2030 should carry a resource output")
	}
	if freightBEV.Periods[1].Resource != nil {
		t.Error("freight BEV 2035 has no table-2 row; resource must be omitted")
	}
	passSector := g.Sectors[1].Subsectors[0]
	for _, tech := range passSector.Technologies {
		if tech.Name == "Liquids" {
			for _, p := range tech.Periods {
				if p.Resource != nil {
					t.Error("non-BEV period must not carry a resource output")
				}
			}
		}
	}
}

func TestBuildPolicyNodes(t *testing.T) {
	years := []int{2025, 2030, 2035, 2040, 2045, 2050, 2055, 2060}
	doc := Build(Group(testTable(), testResources(), "BEV"), years)

	region := doc.World.Regions[0]
	// 8 fixed years × 2 categories present in the region.
	if len(region.Policies) != 16 {
		t.Fatalf("len(policies) = %d, want 16", len(region.Policies))
	}
	first := region.Policies[0]
	if first.Name != "EVTarget2025_freight" {
		t.Errorf("first policy name = %q, want EVTarget2025_freight", first.Name)
	}
	for _, p := range region.Policies {
		if p.Market != "USA" {
			t.Errorf("policy market = %q, want USA", p.Market)
		}
		if p.PolicyType != "RES" {
			t.Errorf("policyType = %q, want RES", p.PolicyType)
		}
		if p.Constraint.Fillout != "1" || p.Constraint.Value != "1" {
			t.Errorf("constraint = %+v, want fillout=1 value=1", p.Constraint)
		}
	}
}

func TestBuildSkipsUnrecognizedCategories(t *testing.T) {
	table := []types.CoefTableRow{
		{Region: "USA", Year: 2030, Supplysector: "trn_shipping", TranSubsector: "intl",
			Technology: "Liquids", EnergyInput: "x", MarketName: "USA"},
	}
	doc := Build(Group(table, nil, "BEV"), []int{2030})

	// Unrecognized prefixes are filtered from the policy category set, not
	// rejected: the sector tree still renders, the policies do not.
	region := doc.World.Regions[0]
	if len(region.Sectors) != 1 {
		t.Fatalf("len(sectors) = %d, want 1", len(region.Sectors))
	}
	if len(region.Policies) != 0 {
		t.Errorf("len(policies) = %d, want 0", len(region.Policies))
	}
}

func TestWriteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.xml")
	doc := BuildFromTables(testTable(), testResources(), "BEV", []int{2030})
	if err := Write(path, doc); err != nil {
		t.Fatalf("Write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading document: %v", err)
	}
	if !strings.HasPrefix(string(data), xml.Header) {
		t.Error("document missing XML header")
	}

	var got Scenario
	if err := xml.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(got.World.Regions) != 1 {
		t.Fatalf("regions = %d, want 1", len(got.World.Regions))
	}
	region := got.World.Regions[0]
	if region.Name != "USA" {
		t.Errorf("region name = %q", region.Name)
	}

	period := region.Sectors[0].Subsectors[0].Technologies[0].Periods[0]
	if period.EnergyInput.Name != "EVTarget2030_freight" {
		t.Errorf("energy input name = %q", period.EnergyInput.Name)
	}
	if period.EnergyInput.Coefficient != "2500" {
		t.Errorf("coefficient = %q, want 2500", period.EnergyInput.Coefficient)
	}
	if period.EnergyInput.MarketName != "USA" {
		t.Errorf("market-name = %q, want USA", period.EnergyInput.MarketName)
	}
	if period.SecondaryOutput == nil {
		t.Fatal("res-secondary-output missing on matched BEV period")
	}
	if period.SecondaryOutput.PMultiplier != 1e9 {
		t.Errorf("pMultiplier = %v, want 1e9", period.SecondaryOutput.PMultiplier)
	}

	// The unmatched BEV period keeps an empty coefficient element.
	empty := region.Sectors[0].Subsectors[0].Technologies[0].Periods[1]
	if empty.EnergyInput.Coefficient != "" {
		t.Errorf("unmatched coefficient = %q, want empty", empty.EnergyInput.Coefficient)
	}
}
