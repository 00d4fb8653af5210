package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// MilestoneStatus represents how a milestone date was derived.
	MilestoneStatus string

	// FormulaKey identifies a pacing formula.
	FormulaKey string
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All milestone statuses.
const (
	ReachedStatus    MilestoneStatus = "reached"      // crossed; date is a backward estimate
	ProjectedStatus  MilestoneStatus = "projected"    // not yet crossed; date is a forward projection
	OutOfRangeStatus MilestoneStatus = "out_of_range" // estimate falls after the end of the year
	NoPaceStatus     MilestoneStatus = "no_pace"      // daily rate is zero
	UndefinedStatus  MilestoneStatus = "undefined"    // input cannot be paced
)

// Formula keys used by the metrics command.
const (
	FormulaElapsed    FormulaKey = "elapsed_days"
	FormulaRate       FormulaKey = "daily_rate"
	FormulaWeekly     FormulaKey = "average_per_week"
	FormulaReached    FormulaKey = "reached_date"
	FormulaProjected  FormulaKey = "projected_date"
	FormulaProjection FormulaKey = "end_of_year_projection"
)

// DefaultPlaceholder replaces absent values in text and CSV output.
const DefaultPlaceholder = "—"

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

// AllMilestoneStatuses returns every status in display order.
var AllMilestoneStatuses = []MilestoneStatus{ReachedStatus, ProjectedStatus, OutOfRangeStatus, NoPaceStatus, UndefinedStatus}
