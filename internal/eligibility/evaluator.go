// Package eligibility decides whether a student meets a course's entry
// requirements and records why.
package eligibility

import (
	"fmt"

	"github.com/spigell/halatuju/internal/merit"
)

// AuditEntry records one evaluated predicate.
type AuditEntry struct {
	Label    string `json:"label"`
	Passed   bool   `json:"passed"`
	Reason   string `json:"reason,omitempty"`
	Blocking bool   `json:"blocking"`
}

// Result is the outcome of Evaluate.
type Result struct {
	Eligible   bool         `json:"eligible"`
	Audit      []AuditEntry `json:"audit"`
	Likelihood merit.Band   `json:"likelihood,omitempty"`
}

// Failed returns the blocking entries that did not pass.
func (r Result) Failed() []AuditEntry {
	var out []AuditEntry
	for _, e := range r.Audit {
		if e.Blocking && !e.Passed {
			out = append(out, e)
		}
	}
	return out
}

// Evaluate runs every active predicate of r against p. Nothing short-circuits:
// the audit holds one entry per active predicate whatever the outcome, so its
// length depends only on r. Eligible is the AND of the blocking entries.
func Evaluate(p Profile, r Requirement) Result {
	e := &evaluation{profile: p, req: r}

	for _, c := range checks {
		if c.active(r) {
			e.add(c.label, c.passed(p), c.reason, e.blocking(c.family))
		}
	}

	e.subjectGroups()
	e.complexGroups()
	e.thresholds()

	for _, c := range advisoryChecks {
		if !c.active(r) {
			continue
		}
		e.audit = append(e.audit, AuditEntry{Label: c.label, Passed: c.passed(p), Reason: c.reason})
	}

	likelihood := e.meritLikelihood()

	eligible := true
	for _, entry := range e.audit {
		if entry.Blocking && !entry.Passed {
			eligible = false
		}
	}

	if e.audit == nil {
		e.audit = []AuditEntry{}
	}

	return Result{Eligible: eligible, Audit: e.audit, Likelihood: likelihood}
}

type evaluation struct {
	profile Profile
	req     Requirement
	audit   []AuditEntry
}

// blocking decides whether a family of checks can reject the student. 3M-only
// courses ask for nothing beyond the demographic gate and the 3M check itself.
func (e *evaluation) blocking(f family) bool {
	switch f {
	case familyDemographic, familyThreeM:
		return true
	case familyAcademic:
		return !e.req.ThreeMOnly
	default:
		return false
	}
}

func (e *evaluation) add(label string, passed bool, reason string, blocking bool) {
	entry := AuditEntry{Label: label, Passed: passed, Blocking: blocking}
	if !passed {
		entry.Reason = reason
	}
	e.audit = append(e.audit, entry)
}

func (e *evaluation) thresholds() {
	blocking := e.blocking(familyAcademic)

	if n := e.req.MinCredits; n > 0 {
		e.add("chk_min_credit", e.profile.Credits() >= n,
			fmt.Sprintf("needs %d credits (found %d)", n, e.profile.Credits()), blocking)
	}
	if n := e.req.MinPass; n > 0 {
		e.add("chk_min_pass", e.profile.Passes() >= n,
			fmt.Sprintf("needs %d passes (found %d)", n, e.profile.Passes()), blocking)
	}
}

// meritLikelihood annotates courses that publish a cutoff. TVET courses never
// get a label. An unknown merit still yields an entry so the audit length stays
// a function of the requirement alone.
func (e *evaluation) meritLikelihood() merit.Band {
	cutoff := e.req.Cutoff()
	if cutoff <= 0 || e.req.IsTVET() {
		return merit.None
	}

	m, ok := e.profile.Merit()
	if !ok {
		e.audit = append(e.audit, AuditEntry{
			Label:  "chk_merit_likelihood",
			Reason: "merit unknown",
		})
		return merit.None
	}

	band, _ := merit.CheckProbability(m, cutoff)
	e.audit = append(e.audit, AuditEntry{
		Label:  "chk_merit_likelihood",
		Passed: band == merit.High,
		Reason: fmt.Sprintf("%s chance: merit %.2f against cutoff %.2f", band, m, cutoff),
	})
	return band
}
