package generator

import (
	"github.com/v19i/openapi-enum-arrays/internal/severity"
	"github.com/v19i/openapi-enum-arrays/resolver"
)

// Observer receives diagnostics at fixed points of the pipeline. The
// pipeline itself never prints; everything a caller may want to display
// about a run is delivered here.
type Observer interface {
	// Extracted is called once after extraction with the record counts of
	// the standalone and nested scans.
	Extracted(standalone, nested int)

	// Stage is called after each stage that changes the record count
	// (resolve, include, exclude) with the count before and after it.
	Stage(name string, before, after int)

	// Decision is called for every rename and merge decision.
	Decision(event resolver.Event)
}

// NopObserver discards all diagnostics.
type NopObserver struct{}

// Extracted implements Observer.
func (NopObserver) Extracted(_, _ int) {}

// Stage implements Observer.
func (NopObserver) Stage(_ string, _, _ int) {}

// Decision implements Observer.
func (NopObserver) Decision(_ resolver.Event) {}

var _ Observer = NopObserver{}

// LogObserver forwards diagnostics to a Logger. Counts and routine
// decisions are logged at debug level; decisions at warning severity are
// logged as warnings.
type LogObserver struct {
	Logger Logger
}

// NewLogObserver returns an observer logging to logger, or discarding
// output when logger is nil.
func NewLogObserver(logger Logger) *LogObserver {
	if logger == nil {
		logger = NopLogger{}
	}
	return &LogObserver{Logger: logger}
}

// Extracted implements Observer.
func (o *LogObserver) Extracted(standalone, nested int) {
	o.Logger.Debug("extracted enumerations",
		"standalone", standalone,
		"nested", nested,
		"total", standalone+nested)
}

// Stage implements Observer.
func (o *LogObserver) Stage(name string, before, after int) {
	o.Logger.Debug("stage complete", "stage", name, "before", before, "after", after)
}

// Decision implements Observer.
func (o *LogObserver) Decision(event resolver.Event) {
	attrs := []any{"kind", string(event.Kind), "path", event.Path}
	if event.Severity >= severity.SeverityWarning {
		o.Logger.Warn(event.String(), attrs...)
		return
	}
	o.Logger.Debug(event.String(), attrs...)
}

var _ Observer = (*LogObserver)(nil)
