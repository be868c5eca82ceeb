// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package derive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/evinputs/pkg/types"
)

func testTargets() []types.TargetRecord {
	return []types.TargetRecord{
		{Region: "USA", Year: 2030, Supplysector: "trn_pass_road", TranSubsector: "4W", SaleTargetPct: 0.05},
		{Region: "China", Year: 2030, Supplysector: "trn_pass_road", TranSubsector: "4W", SaleTargetPct: 0.2},
		{Region: "USA", Year: 2035, Supplysector: "trn_freight_road", TranSubsector: "truck", SaleTargetPct: 0.1},
	}
}

func testAssumptions() []types.AssumptionRecord {
	return []types.AssumptionRecord{
		{Supplysector: "trn_pass_road", TranSubsector: "4W", Technology: "BEV", Year: 2030, AnnualTravel: 10, LoadFactor: 2},
		// Non-BEV rows never join.
		{Supplysector: "trn_pass_road", TranSubsector: "4W", Technology: "Liquids", Year: 2030, AnnualTravel: 12, LoadFactor: 1.8},
		// No target for this year; dropped by the inner join.
		{Supplysector: "trn_freight_road", TranSubsector: "truck", Technology: "BEV", Year: 2050, AnnualTravel: 20, LoadFactor: 5},
	}
}

func TestCoefficients(t *testing.T) {
	rows, err := Coefficients(testTargets(), testAssumptions(), "BEV")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// coefficient = (1/annual_travel) × target × 1e6.
	assert.Equal(t, "USA", rows[0].Region)
	assert.Equal(t, 2030, rows[0].Year)
	assert.Equal(t, "trn_pass_road", rows[0].Supplysector)
	assert.Equal(t, "4W", rows[0].TranSubsector)
	assert.Equal(t, "BEV", rows[0].Technology)
	assert.Equal(t, "EVTarget2030_pass", rows[0].EnergyInput)
	assert.InDelta(t, 5000, rows[0].Coefficient, 1e-6)

	assert.Equal(t, "China", rows[1].Region)
	assert.InDelta(t, 20000, rows[1].Coefficient, 1e-6)
}

func TestCoefficientsNoMatch(t *testing.T) {
	targets := []types.TargetRecord{
		{Region: "USA", Year: 2030, Supplysector: "trn_pass_road", TranSubsector: "4W", SaleTargetPct: 0.05},
	}
	assumptions := []types.AssumptionRecord{
		{Supplysector: "trn_freight_road", TranSubsector: "truck", Technology: "BEV", Year: 2030, AnnualTravel: 20, LoadFactor: 5},
	}

	_, err := Coefficients(targets, assumptions, "BEV")
	require.ErrorIs(t, err, ErrNoData)
}

func TestCoefficientsUnrecognizedSector(t *testing.T) {
	targets := []types.TargetRecord{
		{Region: "USA", Year: 2030, Supplysector: "trn_shipping", TranSubsector: "intl", SaleTargetPct: 0.05},
	}
	assumptions := []types.AssumptionRecord{
		{Supplysector: "trn_shipping", TranSubsector: "intl", Technology: "BEV", Year: 2030, AnnualTravel: 10, LoadFactor: 2},
	}

	// The naming path is strict: a joined row outside the recognized
	// prefixes aborts the run.
	_, err := Coefficients(targets, assumptions, "BEV")
	require.ErrorIs(t, err, ErrInvalidFormat)
}

func TestResourceOutputs(t *testing.T) {
	rows, err := ResourceOutputs(testTargets(), testAssumptions(), "BEV", 1e9)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// output_ratio = (1/annual_travel)/load_factor × 1e6 / 1e9.
	assert.Equal(t, "USA", rows[0].Region)
	assert.Equal(t, "trn_pass_road", rows[0].Supplysector)
	assert.Equal(t, "BEV", rows[0].Technology)
	assert.Equal(t, 2030, rows[0].Year)
	assert.Equal(t, "EVTarget2030_pass", rows[0].SecondaryOutput)
	assert.InDelta(t, 0.00005, rows[0].OutputRatio, 1e-12)
	assert.Equal(t, 1e9, rows[0].PMultiplier)
}

func TestResourceOutputsNoMatch(t *testing.T) {
	_, err := ResourceOutputs(testTargets(), nil, "BEV", 1e9)
	require.ErrorIs(t, err, ErrNoData)
}
