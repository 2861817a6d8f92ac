// Package merit converts a grade sheet into a comparable merit percentage and
// classifies how far a student sits from a course cutoff.
package merit

import (
	"math"

	"github.com/spigell/halatuju/internal/grade"
)

const (
	// AcademicCeiling is the academic share of the 100 point merit.
	AcademicCeiling = 90.0
	// MaxCoq is the largest co-curricular addend.
	MaxCoq = 10.0

	firstWeight  = 40.0 / 72.0
	secondWeight = 5.0 / 6.0
	thirdWeight  = 5.0 / 18.0
	normaliser   = 9.0 / 8.0

	// FairGap is how far below a cutoff a student may sit and still be "Fair".
	FairGap = -5.0

	// gapTolerance absorbs rounding in studentMerit - cutoff, so a merit exactly
	// FairGap below a two-decimal cutoff still reads as Fair.
	gapTolerance = 1e-9
)

// Result is the outcome of a merit calculation.
type Result struct {
	Academic    float64 `json:"academic_merit"`
	Final       float64 `json:"final_merit"`
	TotalPoints int     `json:"total_points"`
}

// Band is a coarse admission-likelihood label.
type Band string

const (
	High Band = "High"
	Fair Band = "Fair"
	Low  Band = "Low"
	// None means no label applies (no cutoff, no merit, or a TVET course).
	None Band = ""
)

var colors = map[Band]string{
	High: "#2ecc71",
	Fair: "#f1c40f",
	Low:  "#e74c3c",
}

var penalties = map[Band]int{
	High: 0,
	Fair: -5,
	Low:  -15,
}

// Color returns the display colour of the band.
func (b Band) Color() string {
	if c, ok := colors[b]; ok {
		return c
	}
	return "#95a5a6"
}

// Penalty returns the ranking adjustment for the band.
func (b Band) Penalty() int {
	return penalties[b]
}

// Calculate computes academic and final merit from the three sections.
func Calculate(s Sections, coq float64) Result {
	p1 := sum(s.First[:])
	p2 := sum(s.Second[:])
	p3 := sum(s.Third[:])

	academic := (float64(p1)*firstWeight + float64(p2)*secondWeight + float64(p3)*thirdWeight) * normaliser
	academic = math.Min(academic, AcademicCeiling)

	coq = math.Max(0, math.Min(coq, MaxCoq))

	return Result{
		Academic:    round2(academic),
		Final:       round2(academic + coq),
		TotalPoints: p1 + p2 + p3,
	}
}

// CheckProbability classifies studentMerit against cutoff.
func CheckProbability(studentMerit, cutoff float64) (Band, string) {
	gap := studentMerit - cutoff

	var band Band
	switch {
	case gap >= 0:
		band = High
	case gap >= FairGap-gapTolerance:
		band = Fair
	default:
		band = Low
	}

	return band, band.Color()
}

func sum(grades []grade.Grade) int {
	total := 0
	for _, g := range grades {
		total += grade.Points(g)
	}
	return total
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
