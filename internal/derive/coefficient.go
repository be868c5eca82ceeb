// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package derive

import (
	"errors"
	"fmt"

	"github.com/pdiddy/evinputs/pkg/types"
)

// ErrNoData marks a required join that produced zero rows: the upstream
// tables share no (supplysector, tranSubsector, year) keys for the EV
// technology, so the inputs are unusable.
var ErrNoData = errors.New("no data")

// Coefficients and output ratios are expressed per million service units.
const millionScale = 1e6

// joinKey matches an assumption row to a target row. Only the EV
// technology participates, so technology is not part of the key.
type joinKey struct {
	supplysector  string
	tranSubsector string
	year          int
}

// evAssumptions returns the assumption rows for the EV technology keyed for
// the target join. Rows without a matching target are dropped by the join;
// that is the intended filter, not data loss.
func evAssumptions(assumptions []types.AssumptionRecord, technology string) map[joinKey]types.AssumptionRecord {
	m := make(map[joinKey]types.AssumptionRecord)
	for _, a := range assumptions {
		if a.Technology != technology {
			continue
		}
		m[joinKey{a.Supplysector, a.TranSubsector, a.Year}] = a
	}
	return m
}

// Coefficients inner-joins the EV-technology assumptions against the sale
// targets and computes the energy-input coefficient per joined row:
//
//	coefficient = (1 / annual_travel) × sale_target × 1e6
func Coefficients(targets []types.TargetRecord, assumptions []types.AssumptionRecord, technology string) ([]types.CoefficientRow, error) {
	ev := evAssumptions(assumptions, technology)

	var rows []types.CoefficientRow
	for _, t := range targets {
		a, ok := ev[joinKey{t.Supplysector, t.TranSubsector, t.Year}]
		if !ok {
			continue
		}
		name, err := EnergyInputName(t.Supplysector, t.Year)
		if err != nil {
			return nil, err
		}
		rows = append(rows, types.CoefficientRow{
			Region:        t.Region,
			Year:          t.Year,
			Supplysector:  t.Supplysector,
			TranSubsector: t.TranSubsector,
			Technology:    a.Technology,
			Coefficient:   (1 / a.AnnualTravel) * t.SaleTargetPct * millionScale,
			EnergyInput:   name,
		})
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no %s assumption matches any target on (supplysector, tranSubsector, year)", ErrNoData, technology)
	}
	return rows, nil
}

// ResourceOutputs performs the same join and computes the secondary-output
// side credited to the EV technology:
//
//	output_ratio = (1 / annual_travel) / load_factor × 1e6 / pMultiplier
func ResourceOutputs(targets []types.TargetRecord, assumptions []types.AssumptionRecord, technology string, pMultiplier float64) ([]types.ResourceRow, error) {
	ev := evAssumptions(assumptions, technology)

	var rows []types.ResourceRow
	for _, t := range targets {
		a, ok := ev[joinKey{t.Supplysector, t.TranSubsector, t.Year}]
		if !ok {
			continue
		}
		name, err := EnergyInputName(t.Supplysector, t.Year)
		if err != nil {
			return nil, err
		}
		rows = append(rows, types.ResourceRow{
			Region:          t.Region,
			Supplysector:    t.Supplysector,
			TranSubsector:   t.TranSubsector,
			Technology:      a.Technology,
			Year:            t.Year,
			SecondaryOutput: name,
			OutputRatio:     (1 / a.AnnualTravel) / a.LoadFactor * millionScale / pMultiplier,
			PMultiplier:     pMultiplier,
		})
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no %s assumption matches any target on (supplysector, tranSubsector, year)", ErrNoData, technology)
	}
	return rows, nil
}
