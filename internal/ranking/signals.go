// Package ranking orders eligible offerings by how well they match a
// student's preference signals.
package ranking

// Category groups preference signals.
type Category string

const (
	WorkPreference    Category = "work_preference_signals"
	LearningTolerance Category = "learning_tolerance_signals"
	Environment       Category = "environment_signals"
	ValueTradeoff     Category = "value_tradeoff_signals"
	EnergySensitivity Category = "energy_sensitivity_signals"
)

// Categories lists every category in scoring order.
var Categories = []Category{WorkPreference, LearningTolerance, Environment, ValueTradeoff, EnergySensitivity}

// Signals maps category to signal name to strength. Missing categories and
// names read as zero; unknown names are never scored.
type Signals map[Category]map[string]int

// Get returns the strength of a signal.
func (s Signals) Get(c Category, name string) int {
	return s[c][name]
}

// Has reports whether the signal has positive strength.
func (s Signals) Has(c Category, name string) bool {
	return s.Get(c, name) > 0
}
