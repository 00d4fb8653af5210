package schema

// FormulaDefinition describes one pacing formula for display purposes.
type FormulaDefinition struct {
	Key     FormulaKey `json:"key"`
	Name    string     `json:"name"`
	Purpose string     `json:"purpose"`
	Formula string     `json:"formula"`
}

// MetricsRenderModel contains all processed data needed for displaying formula definitions.
type MetricsRenderModel struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Thresholds  []int               `json:"thresholds"`
	Formulas    []FormulaDefinition `json:"formulas"`
	Guardrails  map[string]string   `json:"guardrails"`
}
