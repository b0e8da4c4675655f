package schema

import "strings"

// Custom string types for type safety.
type (
	// SourceKey identifies one of the three input sources.
	SourceKey string

	// OutputMode represents an optional export format written next to the CSV reports.
	OutputMode string
)

// Source keys in report column order.
const (
	Source1 SourceKey = "source1"
	Source2 SourceKey = "source2"
	Source3 SourceKey = "source3"
)

// AllSources lists every source in report column order.
var AllSources = [3]SourceKey{Source1, Source2, Source3}

// SourceAliases maps the short dataset names used by older configs onto source keys.
var SourceAliases = map[string]SourceKey{
	"dp":  Source1,
	"iit": Source2,
	"wd":  Source3,
}

// All export modes supported.
const (
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// ValidExportModes lists all valid export modes.
var ValidExportModes = map[OutputMode]struct{}{
	JSONOut:    {},
	ParquetOut: {},
}

// Rendering precision for report values.
const (
	ScorePrecision  = 2 // scores and means
	WeightPrecision = 6 // normalized weights
	MethodPrecision = 3 // weights quoted inside the method description
)

// MaxHeaderLength is the recommended upper bound for a column header.
const MaxHeaderLength = 12

// SimpleHeaders is the column layout of the simple-mean report.
var SimpleHeaders = []string{
	"country", "score1", "score2", "score3", "mean", "url1", "url2", "url3",
}

// WeightedHeaders is the column layout of the weighted report.
var WeightedHeaders = []string{
	"country", "score1", "score2", "score3", "mean", "weighted",
	"w1", "w2", "w3", "url1", "url2", "url3", "method",
}

// DefaultAdjustments returns the independence adjustment applied to each source
// when configuration does not override it.
func DefaultAdjustments() map[SourceKey]float64 {
	return map[SourceKey]float64{
		Source1: 0.7,
		Source2: 1.0,
		Source3: 0.6,
	}
}

// ParseSourceKey resolves a user-supplied source name, honoring the short aliases.
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseSourceKey(s string) (SourceKey, bool) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, key := range AllSources {
		if name == string(key) {
			return key, true
		}
	}
	key, ok := SourceAliases[name]
	return key, ok
}
