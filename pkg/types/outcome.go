package types

// Outcome is the final disposition of one top-level argument.
type Outcome string

const (
	// OutcomeInstalled: the candidate was moved into place over the current object.
	OutcomeInstalled Outcome = "installed"
	// OutcomeBackedUp: the current file was moved to its backup, then replaced.
	OutcomeBackedUp Outcome = "backed-up"
	// OutcomeCreated: there was no current object, so the candidate was renamed into place.
	OutcomeCreated Outcome = "created"
	// OutcomeSkipped: the operator declined; both objects are untouched.
	OutcomeSkipped Outcome = "skipped"
	// OutcomeUnchanged: nothing would change, so the candidate was removed.
	OutcomeUnchanged Outcome = "unchanged"
	// OutcomeFailed: the argument could not be processed.
	OutcomeFailed Outcome = "failed"
	// OutcomeAborted: the operator stopped the run at this argument.
	OutcomeAborted Outcome = "aborted"
)

// Outcomes lists every outcome in summary order.
var Outcomes = []Outcome{
	OutcomeInstalled, OutcomeBackedUp, OutcomeCreated,
	OutcomeSkipped, OutcomeUnchanged, OutcomeFailed, OutcomeAborted,
}

// Result records what happened to one argument.
type Result struct {
	Arg     string  `json:"arg"`
	Current string  `json:"current"`
	New     string  `json:"new"`
	Outcome Outcome `json:"outcome"`
	Error   string  `json:"error,omitempty"`
	DryRun  bool    `json:"dry_run,omitempty"`
}

// Summary collects the results of one run in argument order.
type Summary struct {
	Results []Result `json:"results"`
}

// Add appends r.
func (s *Summary) Add(r Result) {
	s.Results = append(s.Results, r)
}

// Count returns how many results carry o.
func (s Summary) Count(o Outcome) int {
	n := 0
	for _, r := range s.Results {
		if r.Outcome == o {
			n++
		}
	}
	return n
}

// Aborted reports whether the run was stopped by the operator.
func (s Summary) Aborted() bool {
	return s.Count(OutcomeAborted) > 0
}
