package grade

import "strings"

// Grade is a letter grade as printed on the results slip.
type Grade string

const (
	APlus  Grade = "A+"
	A      Grade = "A"
	AMinus Grade = "A-"
	BPlus  Grade = "B+"
	B      Grade = "B"
	CPlus  Grade = "C+"
	C      Grade = "C"
	D      Grade = "D"
	E      Grade = "E"
	G      Grade = "G"
	// NotAttempted marks a subject the student did not sit.
	NotAttempted Grade = ""
)

// Tier is a coarse bucket over grades. Tiers are ordered: a higher tier always
// means a better grade.
type Tier int

const (
	TierNotAttempted Tier = iota
	// TierAttempted is a failing grade that still counts as sitting the paper.
	TierAttempted
	TierPass
	TierCredit
	TierDistinction
)

func (t Tier) String() string {
	switch t {
	case TierAttempted:
		return "attempted"
	case TierPass:
		return "pass"
	case TierCredit:
		return "credit"
	case TierDistinction:
		return "distinction"
	default:
		return "not attempted"
	}
}

type info struct {
	points int
	units  int
	tier   Tier
}

var scale = map[Grade]info{
	APlus:  {points: 18, units: 0, tier: TierDistinction},
	A:      {points: 16, units: 1, tier: TierDistinction},
	AMinus: {points: 14, units: 2, tier: TierDistinction},
	BPlus:  {points: 12, units: 3, tier: TierCredit},
	B:      {points: 10, units: 4, tier: TierCredit},
	CPlus:  {points: 8, units: 5, tier: TierCredit},
	C:      {points: 6, units: 6, tier: TierCredit},
	D:      {points: 4, units: 7, tier: TierPass},
	E:      {points: 2, units: 8, tier: TierPass},
	G:      {points: 0, units: 9, tier: TierAttempted},
}

const notAttemptedUnits = 10

// All lists the attempted grades from best to worst.
var All = []Grade{APlus, A, AMinus, BPlus, B, CPlus, C, D, E, G}

// Parse normalises s into a Grade. Unknown values are treated as not attempted.
func Parse(s string) Grade {
	g := Grade(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := scale[g]; ok {
		return g
	}
	return NotAttempted
}

// Valid reports whether g is one of the attempted grades.
func (g Grade) Valid() bool {
	_, ok := scale[g]
	return ok
}

func (g Grade) String() string {
	if g == NotAttempted {
		return "-"
	}
	return string(g)
}

// TierOf returns the tier of g.
func TierOf(g Grade) Tier {
	if i, ok := scale[g]; ok {
		return i.tier
	}
	return TierNotAttempted
}

// Points returns merit points for g (high is good).
func Points(g Grade) int {
	return scale[g].points
}

// Units returns aggregate units for g (low is good).
func Units(g Grade) int {
	if i, ok := scale[g]; ok {
		return i.units
	}
	return notAttemptedUnits
}

// Attempted reports whether the subject was sat, whatever the result.
func Attempted(g Grade) bool {
	return TierOf(g) >= TierAttempted
}

// MeetsTier reports whether g is at least tier t.
func MeetsTier(g Grade, t Tier) bool {
	return TierOf(g) >= t
}

// MeetsGrade reports whether g is at least the letter minimum. A not attempted
// subject never meets a letter minimum, not even G.
func MeetsGrade(g, minimum Grade) bool {
	if !g.Valid() {
		return false
	}
	if !minimum.Valid() {
		return true
	}
	return scale[g].points >= scale[minimum].points
}
