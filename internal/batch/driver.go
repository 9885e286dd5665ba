package batch

import "context"

// Creator defines the profile creation operation consumed by Run.
// This interface is satisfied by octo.Client and allows for testing.
type Creator interface {
	// CreateProfile creates one remote profile for the given spec and
	// returns its identifier.
	CreateProfile(ctx context.Context, spec ProfileSpec) (string, error)
}

// Result is the tagged outcome of one creation attempt.
type Result struct {
	// Index is the creation index the result belongs to.
	Index int
	// ProfileID is the identifier returned by the API on success.
	ProfileID string
	// Err is the failure reason. Nil on success.
	Err error
}

// OK reports whether the creation attempt succeeded.
func (r Result) OK() bool {
	return r.Err == nil
}

// Hook is invoked after each creation attempt completes.
// Used by the CLI to advance the progress bar.
type Hook func(Result)

// Run drives the specs through the creator strictly in ascending index
// order, one blocking call at a time. A failed creation is recorded and
// the batch continues: no retry, no abort, no rollback of the profiles
// already created. The returned results mirror the spec order exactly.
func Run(ctx context.Context, specs []ProfileSpec, creator Creator, hook Hook) []Result {
	results := make([]Result, 0, len(specs))
	for _, spec := range specs {
		id, err := creator.CreateProfile(ctx, spec)
		res := Result{Index: spec.Index, ProfileID: id, Err: err}
		results = append(results, res)
		if hook != nil {
			hook(res)
		}
	}
	return results
}
