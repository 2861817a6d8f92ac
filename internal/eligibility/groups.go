package eligibility

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spigell/halatuju/internal/grade"
)

func (e *evaluation) subjectGroups() {
	rules := e.req.SubjectGroupReq
	if !rules.Active() {
		return
	}

	blocking := e.blocking(familyAcademic)
	if rules.Malformed {
		e.add("chk_adv_subj_group", false, "invalid subject group requirement format", blocking)
		return
	}

	for i, rule := range rules.Rules {
		n := i + 1
		if rule.IsDiversity() {
			if e.req.ReqGroupDiversity {
				e.diversity(n, rule, blocking)
			}
			continue
		}

		found := e.countMeeting(rule.Subjects, rule.MinGrade)
		e.add(fmt.Sprintf("chk_subj_group_%d", n), found >= rule.MinCount,
			needReason(rule.MinCount, rule.Subjects, rule.MinGrade, found), blocking)
	}
}

// diversity takes the best attempted grade from each allowed group and needs
// MinCount groups at MinGrade. The aggregate units of the best groups are
// compared with max_aggregate_units in an advisory entry.
func (e *evaluation) diversity(n int, rule GroupRule, blocking bool) {
	var units []int
	for _, group := range rule.AllowedGroups {
		best, ok := e.bestIn(group)
		if ok && grade.MeetsGrade(best, rule.MinGrade) {
			units = append(units, grade.Units(best))
		}
	}

	e.add(fmt.Sprintf("chk_group_diversity_%d", n), len(units) >= rule.MinCount,
		fmt.Sprintf("needs %d subject groups at grade %s or better (found %d)", rule.MinCount, rule.MinGrade, len(units)),
		blocking)

	limit := e.req.MaxAggregateUnits
	if limit <= 0 {
		return
	}

	entry := AuditEntry{Label: fmt.Sprintf("chk_max_aggregate_%d", n)}
	if len(units) < rule.MinCount {
		entry.Reason = fmt.Sprintf("not enough subject groups to total (max %d units)", limit)
	} else {
		sort.Ints(units)
		total := 0
		for _, u := range units[:rule.MinCount] {
			total += u
		}
		entry.Passed = total <= limit
		entry.Reason = fmt.Sprintf("best %d groups total %d units (max %d)", rule.MinCount, total, limit)
	}
	e.audit = append(e.audit, entry)
}

func (e *evaluation) complexGroups() {
	c := e.req.ComplexRequirements
	if !c.Active() {
		return
	}

	blocking := e.blocking(familyAcademic)
	if c.Malformed {
		e.add("chk_complex_req", false, "invalid complex requirement format", blocking)
		return
	}

	for i, g := range c.Groups {
		found := e.countMeeting(g.Subjects, g.Grade)
		e.add(fmt.Sprintf("chk_complex_req_%d", i+1), found >= g.Count,
			needReason(g.Count, g.Subjects, g.Grade, found), blocking)
	}
}

func (e *evaluation) countMeeting(subjects []string, minimum grade.Grade) int {
	found := 0
	for _, s := range subjects {
		if grade.MeetsGrade(e.profile.Grade(s), minimum) {
			found++
		}
	}
	return found
}

func (e *evaluation) bestIn(subjects []string) (grade.Grade, bool) {
	var best grade.Grade
	ok := false
	for _, s := range subjects {
		g := e.profile.Grade(s)
		if !grade.Attempted(g) {
			continue
		}
		if !ok || grade.Units(g) < grade.Units(best) {
			best, ok = g, true
		}
	}
	return best, ok
}

func needReason(count int, subjects []string, minimum grade.Grade, found int) string {
	const shown = 5
	list := strings.Join(subjects, ", ")
	if len(subjects) > shown {
		list = strings.Join(subjects[:shown], ", ") + ", ..."
	}
	return fmt.Sprintf("needs %d of [%s] at grade %s or better (found %d)", count, list, minimum, found)
}
