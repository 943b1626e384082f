package logger

// Output controls what categories of information are shown at each verbosity level.
//
// Unlike log levels (which filter by severity), output categories control
// WHAT types of information are displayed regardless of severity.
//
// Verbosity Levels:
//
//	0 (default) - Command results, errors with hints, final status
//	1 (-v)      - + Run summaries, written files
//	2 (-vv)     - + Timing, config loaded, per-class details
//	3 (-vvv)    - + Overload plans and transform sets per function

// OutputCategory defines a category of output that can be enabled/disabled
type OutputCategory int

const (
	// Level 0 (default) - Always shown
	OutputResults    OutputCategory = iota // Command output (tables, descriptions)
	OutputErrors                           // Errors with hints and resolution steps
	OutputUserStatus                       // Final success/failure status

	// Level 1 (-v) - Informational
	OutputRunSummary // Class, overload and file counts of a run
	OutputFiles      // Every file written or found stale

	// Level 2 (-vv) - Detailed
	OutputTiming // Run timing
	OutputConfig // Config values loaded/applied

	// Level 3 (-vvv) - Trace
	OutputOverloadPlan // Resolved overloads of every function
)

// categoryLevels maps each output category to its minimum verbosity level
var categoryLevels = map[OutputCategory]int{
	OutputResults:    VerbosityUser,
	OutputErrors:     VerbosityUser,
	OutputUserStatus: VerbosityUser,

	OutputRunSummary: VerbosityInfo,
	OutputFiles:      VerbosityInfo,

	OutputTiming: VerbosityDebug,
	OutputConfig: VerbosityDebug,

	OutputOverloadPlan: VerbosityTrace,
}

// ShouldOutput returns true if the given category should be shown at the given verbosity
func ShouldOutput(verbosity int, category OutputCategory) bool {
	minLevel, ok := categoryLevels[category]
	if !ok {
		// Unknown category, default to highest verbosity required
		return verbosity >= VerbosityTrace
	}
	return verbosity >= minLevel
}

// categoryNames provides human-readable names for output categories
var categoryNames = map[OutputCategory]string{
	OutputResults:      "results",
	OutputErrors:       "errors",
	OutputUserStatus:   "status",
	OutputRunSummary:   "run-summary",
	OutputFiles:        "files",
	OutputTiming:       "timing",
	OutputConfig:       "config",
	OutputOverloadPlan: "overload-plan",
}

// CategoryName returns the human-readable name for an output category
func CategoryName(category OutputCategory) string {
	if name, ok := categoryNames[category]; ok {
		return name
	}
	return "unknown"
}
