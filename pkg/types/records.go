// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the record and configuration structs shared across
// the pipeline stages.
package types

// TargetRecord is one row of the EV sale-target table: the adoption target
// for a (region, sector, subsector, year) combination.
type TargetRecord struct {
	Region        string
	Year          int
	Supplysector  string
	TranSubsector string

	// SaleTargetPct is the EV sale target as a fraction (the "(%)" column).
	SaleTargetPct float64
}

// AssumptionRecord is one row of the vehicle-assumption table: travel and
// load-factor assumptions for a technology in a given year.
type AssumptionRecord struct {
	Supplysector  string
	TranSubsector string
	Technology    string
	Year          int

	// AnnualTravel is the assumed annual travel per vehicle (vkt/vehicle/yr).
	AnnualTravel float64

	// LoadFactor is the assumed persons or tonnes per vehicle.
	LoadFactor float64
}

// RegionYear is a distinct (region, year) pair taken from the target table.
type RegionYear struct {
	Region string
	Year   int
}

// TechTriple is a distinct (supplysector, tranSubsector, stub.technology)
// triple taken from the assumption table.
type TechTriple struct {
	Supplysector  string
	TranSubsector string
	Technology    string
}

// CoefficientRow is the result of joining EV-technology assumptions against
// sale targets: the energy-input coefficient for one
// (region, sector, subsector, year).
type CoefficientRow struct {
	Region        string
	Year          int
	Supplysector  string
	TranSubsector string
	Technology    string
	Coefficient   float64
	EnergyInput   string
}

// ResourceRow is the secondary-output side of the same join: the
// resource-output ratio credited to the EV technology.
type ResourceRow struct {
	Region          string
	Supplysector    string
	TranSubsector   string
	Technology      string
	Year            int
	SecondaryOutput string
	OutputRatio     float64
	PMultiplier     float64
}

// CoefTableRow is one row of the assembled StubTranTechCoef table. The
// canonical key space is preserved even where the coefficient join found no
// match, so Coefficient is nil for unmatched rows while EnergyInput and
// MarketName are always populated.
type CoefTableRow struct {
	Region        string
	Year          int
	Supplysector  string
	TranSubsector string
	Technology    string
	Coefficient   *float64
	EnergyInput   string
	MarketName    string
}
