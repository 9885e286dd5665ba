package batch

import (
	"fmt"
	"strings"
)

// Report aggregates the results of one batch run.
type Report struct {
	// Total is the number of creation attempts.
	Total int
	// Succeeded is the count of profiles created.
	Succeeded int
	// Failed is the count of failed attempts.
	Failed int
	// Results holds the per-profile outcomes in ascending index order.
	Results []Result
}

// Summarize builds a Report from the ordered result slice.
func Summarize(results []Result) *Report {
	r := &Report{Total: len(results), Results: results}
	for _, res := range results {
		if res.OK() {
			r.Succeeded++
		} else {
			r.Failed++
		}
	}
	return r
}

// IsSuccess returns true if every creation attempt succeeded.
func (r *Report) IsSuccess() bool {
	return r.Failed == 0
}

// String returns a formatted summary of the batch run.
func (r *Report) String() string {
	var sb strings.Builder

	sb.WriteString("=== Batch Creation Summary ===\n")
	sb.WriteString(fmt.Sprintf("Total profiles: %d\n", r.Total))
	sb.WriteString(fmt.Sprintf("Succeeded:      %d\n", r.Succeeded))
	sb.WriteString(fmt.Sprintf("Failed:         %d\n", r.Failed))

	if r.Failed > 0 {
		sb.WriteString("\nFailed creations:\n")
		for _, res := range r.Results {
			if !res.OK() {
				sb.WriteString(fmt.Sprintf("  - #%d: %s\n", res.Index+1, res.Err.Error()))
			}
		}
	}
	return sb.String()
}
