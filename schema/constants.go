package schema

// Custom string types for type safety.
type (
	// SourceFormat represents the on-disk format of the criteria table.
	SourceFormat string

	// OutputMode represents the format of the rating output.
	OutputMode string

	// Verdict represents a human label for an overall rating.
	Verdict string
)

// All criteria source formats supported.
const (
	ParquetSource SourceFormat = "parquet" // default
	CSVSource     SourceFormat = "csv"
	YAMLSource    SourceFormat = "yaml"
	SQLiteSource  SourceFormat = "sqlite"
)

// All output modes supported.
const (
	TextOut OutputMode = "text" // default
	JSONOut OutputMode = "json"
)

// All verdicts supported, from best to worst.
const (
	ExcellentVerdict Verdict = "Excellent"
	GoodVerdict      Verdict = "Good"
	MixedVerdict     Verdict = "Mixed"
	PoorVerdict      Verdict = "Poor"
)

// Rating bounds.
const (
	MinWeight = 0
	MaxWeight = 10

	// MaxRating is the nominal maximum of the overall rating.
	MaxRating = 20.0
)

// Column names of the criteria table.
const (
	CategoryColumn  = "Category"
	CriterionColumn = "Criterion"
)

// DefaultCriteriaFile is the fixed relative location of the criteria table.
const DefaultCriteriaFile = "Resources/rating_criteria.parquet"

// DefaultCriteriaTable is the table name used by the SQLite source.
const DefaultCriteriaTable = "rating_criteria"

// ValidSourceFormats lists all valid criteria source formats.
var ValidSourceFormats = map[SourceFormat]struct{}{
	ParquetSource: {},
	CSVSource:     {},
	YAMLSource:    {},
	SQLiteSource:  {},
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut: {},
	JSONOut: {},
}

// SourceExtensions maps file extensions to the format they imply.
var SourceExtensions = map[string]SourceFormat{
	".parquet": ParquetSource,
	".csv":     CSVSource,
	".yaml":    YAMLSource,
	".yml":     YAMLSource,
	".db":      SQLiteSource,
	".sqlite":  SQLiteSource,
	".sqlite3": SQLiteSource,
}
