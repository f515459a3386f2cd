package runner

import "github.com/yaklabco/gocorrect/pkg/correction"

// Outcome is the result of one request.
type Outcome struct {
	Request Request

	// Result is nil when Error is set.
	Result *correction.Result

	// Error is set when the request could not be evaluated at all.
	// Individual producer faults are in Result.ProducerErrors instead.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered and FilesResolved are only set by FixAll.
	FilesDiscovered int
	FilesResolved   int

	Requests int

	// Failed counts requests that could not be evaluated.
	Failed int

	Corrections int

	// ProducerErrors counts producer faults across all requests.
	ProducerErrors int
}

// Result is the overall runner result.
type Result struct {
	// Outcomes are in request order.
	Outcomes []Outcome

	Stats Stats
}

// HasFailures reports whether any request failed or any producer faulted.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.Failed > 0 || r.Stats.ProducerErrors > 0
}

// Corrections returns every computed correction in request order.
func (r *Result) Corrections() []correction.Correction {
	if r == nil {
		return nil
	}
	var out []correction.Correction
	for _, o := range r.Outcomes {
		if o.Result != nil {
			out = append(out, o.Result.Corrections...)
		}
	}
	return out
}

func (r *Result) accumulate(o Outcome) {
	r.Outcomes = append(r.Outcomes, o)
	r.Stats.Requests++

	if o.Error != nil {
		r.Stats.Failed++
		return
	}
	if o.Result == nil {
		return
	}
	r.Stats.Corrections += len(o.Result.Corrections)
	r.Stats.ProducerErrors += len(o.Result.ProducerErrors)
}
