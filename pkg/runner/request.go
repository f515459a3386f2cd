package runner

import (
	"github.com/yaklabco/gocorrect/pkg/correction"
	"github.com/yaklabco/gocorrect/pkg/unit"
)

// Request asks for the corrections of one context: fixes when Diagnostic is
// set, assists at [Offset, Offset+Length) otherwise.
type Request struct {
	Unit       *unit.Resolved
	Diagnostic *unit.Diagnostic

	Offset int
	Length int
}

// FixRequest requests fixes for d in u.
func FixRequest(u *unit.Resolved, d *unit.Diagnostic) Request {
	return Request{Unit: u, Diagnostic: d, Offset: d.Offset, Length: d.Length}
}

// AssistRequest requests assists for a selection in u.
func AssistRequest(u *unit.Resolved, offset, length int) Request {
	return Request{Unit: u, Offset: offset, Length: length}
}

// IsFix reports whether the request targets a diagnostic.
func (r Request) IsFix() bool {
	return r.Diagnostic != nil
}

// Path returns the file the request targets.
func (r Request) Path() string {
	if r.Unit == nil {
		return ""
	}
	return r.Unit.Path
}

// DiagnosticRequests returns a fix request for every diagnostic in units
// that some fix registered in reg handles. A nil reg selects
// correction.DefaultRegistry.
func DiagnosticRequests(reg *correction.Registry, units ...*unit.Resolved) []Request {
	if reg == nil {
		reg = correction.DefaultRegistry
	}

	handled := make(map[string]bool)
	var reqs []Request
	for _, u := range units {
		for i := range u.Diagnostics {
			d := &u.Diagnostics[i]
			ok, seen := handled[d.Code]
			if !seen {
				ok = len(reg.FixFactories(d.Code)) > 0
				handled[d.Code] = ok
			}
			if ok {
				reqs = append(reqs, FixRequest(u, d))
			}
		}
	}
	return reqs
}
