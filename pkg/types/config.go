package types

// InputsConfig names the two input tables. Paths are explicit; no stage
// changes the process working directory.
type InputsConfig struct {
	// TargetsPath is the EV sale-target CSV.
	TargetsPath string `json:"targets" yaml:"targets"`

	// AssumptionsPath is the vehicle travel / load-factor assumption CSV.
	AssumptionsPath string `json:"assumptions" yaml:"assumptions"`
}

// OutputConfig holds the output directory and file names.
type OutputConfig struct {
	// Dir is the directory all output files are written into.
	Dir string `json:"dir" yaml:"dir"`

	// CoefFile is the assembled coefficient table (default StubTranTechCoef.csv).
	CoefFile string `json:"coef_file" yaml:"coef_file"`

	// ResFile is the resource-output table (default StubTranTechRES.csv).
	ResFile string `json:"res_file" yaml:"res_file"`

	// DocFile is the model input document (default new_RPS_BEV2.xml).
	DocFile string `json:"doc_file" yaml:"doc_file"`

	// SummaryFile is the run summary written next to the outputs
	// (default summary.yaml).
	SummaryFile string `json:"summary_file" yaml:"summary_file"`
}

// ScenarioConfig holds the scenario constants baked into the generated
// document. The defaults reproduce the standard BEV RES scenario.
type ScenarioConfig struct {
	// Technology is the stub-technology name that carries coefficient and
	// resource-output calculations (default "BEV").
	Technology string `json:"technology" yaml:"technology"`

	// PolicyYears are the years a policy-portfolio-standard node is
	// generated for, per region and transport category.
	PolicyYears []int `json:"policy_years" yaml:"policy_years"`

	// PMultiplier is the price multiplier on resource-output nodes.
	PMultiplier float64 `json:"p_multiplier" yaml:"p_multiplier"`
}

// CatalogConfig holds settings for the run catalog.
type CatalogConfig struct {
	// Dir is the directory containing the catalog database (default "catalog").
	Dir string `json:"dir" yaml:"dir"`
}

// Config groups all stage configurations.
type Config struct {
	Inputs   InputsConfig   `json:"inputs" yaml:"inputs"`
	Output   OutputConfig   `json:"output" yaml:"output"`
	Scenario ScenarioConfig `json:"scenario" yaml:"scenario"`
	Catalog  CatalogConfig  `json:"catalog" yaml:"catalog"`
}

// DefaultPolicyYears returns the standard policy constraint years.
func DefaultPolicyYears() []int {
	return []int{2025, 2030, 2035, 2040, 2045, 2050, 2055, 2060}
}

// ApplyDefaults fills zero-valued fields with their defaults.
func (c *Config) ApplyDefaults() {
	if c.Output.Dir == "" {
		c.Output.Dir = "."
	}
	if c.Output.CoefFile == "" {
		c.Output.CoefFile = "StubTranTechCoef.csv"
	}
	if c.Output.ResFile == "" {
		c.Output.ResFile = "StubTranTechRES.csv"
	}
	if c.Output.DocFile == "" {
		c.Output.DocFile = "new_RPS_BEV2.xml"
	}
	if c.Output.SummaryFile == "" {
		c.Output.SummaryFile = "summary.yaml"
	}
	if c.Scenario.Technology == "" {
		c.Scenario.Technology = "BEV"
	}
	if len(c.Scenario.PolicyYears) == 0 {
		c.Scenario.PolicyYears = DefaultPolicyYears()
	}
	if c.Scenario.PMultiplier == 0 {
		c.Scenario.PMultiplier = 1e9
	}
	if c.Catalog.Dir == "" {
		c.Catalog.Dir = "catalog"
	}
}
