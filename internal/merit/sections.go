package merit

import (
	"sort"

	"github.com/spigell/halatuju/internal/grade"
)

// Sections is a grade sheet partitioned for the merit formula. Sections are
// always full; unused slots hold grade.NotAttempted.
type Sections struct {
	First  [5]grade.Grade
	Second [3]grade.Grade
	Third  [1]grade.Grade
}

var (
	scienceCore = []string{grade.Math, grade.AddMath, grade.Physics, grade.Chem, grade.Bio}
	generalCore = []string{grade.BM, grade.Math, grade.Science}
)

// topUpMinimum is the weakest grade a non-core subject may have to fill a slot.
const topUpMinimum = grade.B

// PrepareInputs splits grades into merit sections. History always takes the
// third section. The first section starts with the stream core subjects and is
// topped up with the strongest remaining subjects graded B or better; the
// second section takes the next three. Slots nothing qualifies for stay empty.
func PrepareInputs(grades map[string]grade.Grade) Sections {
	var s Sections

	s.Third[0] = grades[grade.History]

	used := map[string]bool{grade.History: true}

	core := generalCore
	if grade.Attempted(grades[grade.Physics]) && grade.Attempted(grades[grade.Chem]) {
		core = scienceCore
	}

	first := make([]grade.Grade, 0, len(s.First))
	for _, code := range core {
		if g := grades[code]; grade.Attempted(g) {
			first = append(first, g)
			used[code] = true
		}
	}

	remaining := make([]string, 0, len(grades))
	for code, g := range grades {
		if !used[code] && grade.MeetsGrade(g, topUpMinimum) {
			remaining = append(remaining, code)
		}
	}
	sort.Slice(remaining, func(i, j int) bool {
		pi, pj := grade.Points(grades[remaining[i]]), grade.Points(grades[remaining[j]])
		if pi != pj {
			return pi > pj
		}
		return remaining[i] < remaining[j]
	})

	for len(first) < len(s.First) && len(remaining) > 0 {
		first = append(first, grades[remaining[0]])
		remaining = remaining[1:]
	}
	copy(s.First[:], first)

	for i := 0; i < len(s.Second) && len(remaining) > 0; i++ {
		s.Second[i] = grades[remaining[0]]
		remaining = remaining[1:]
	}

	return s
}

// Compute is PrepareInputs followed by Calculate.
func Compute(grades map[string]grade.Grade, coq float64) Result {
	return Calculate(PrepareInputs(grades), coq)
}
