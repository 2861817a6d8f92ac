package ranking

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spigell/halatuju/internal/eligibility"
	"github.com/spigell/halatuju/internal/merit"
	"github.com/spigell/halatuju/internal/offering"
)

func ptr(v float64) *float64 { return &v }

func keys(list []*offering.Offering) []string {
	ids := make([]string, 0, len(list))
	for _, o := range list {
		ids = append(ids, o.Key())
	}
	return ids
}

func TestRankHigherScoreFirst(t *testing.T) {
	t.Parallel()

	signals := Signals{
		WorkPreference:    {"hands_on": 1},
		LearningTolerance: {"learning_by_doing": 1},
		ValueTradeoff:     {"income_risk_tolerant": 1},
	}
	lookups := Lookups{
		CourseTags: map[string]CourseTags{
			"A": {WorkModality: "hands_on"},
			"B": {LearningStyle: []string{"project_based"}},
		},
		Modifiers: map[string]InstitutionModifiers{
			"city": {Urban: true},
		},
	}
	in := []*offering.Offering{
		{CourseID: "B", InstitutionID: "city", CourseName: "Sijil B", MeritCutoff: ptr(80), StudentMerit: ptr(60)},
		{CourseID: "A", InstitutionID: "city", CourseName: "Sijil A"},
	}

	res := Rank(in, signals, lookups)
	require.Len(t, res.Top5, 2)
	assert.Empty(t, res.Rest)

	assert.Equal(t, "A", res.Top5[0].CourseID)
	assert.Equal(t, 110, res.Top5[0].FitScore)
	assert.Equal(t, merit.None, res.Top5[0].Likelihood)

	assert.Equal(t, "B", res.Top5[1].CourseID)
	assert.Equal(t, 90, res.Top5[1].FitScore)
	assert.Equal(t, merit.Low, res.Top5[1].Likelihood)

	assert.Zero(t, in[0].FitScore)
	assert.Nil(t, in[0].FitReasons)
}

func TestRankMeritPenaltySkipped(t *testing.T) {
	t.Parallel()

	in := []*offering.Offering{
		{CourseID: "T", CourseName: "Sijil T", SourceType: eligibility.SourceTVET, MeritCutoff: ptr(90), StudentMerit: ptr(10)},
		{CourseID: "Z", CourseName: "Sijil Z", MeritCutoff: ptr(0), StudentMerit: ptr(10)},
		{CourseID: "U", CourseName: "Sijil U", MeritCutoff: ptr(90)},
		{CourseID: "F", CourseName: "Sijil F", MeritCutoff: ptr(75), StudentMerit: ptr(72)},
	}

	res := Rank(in, Signals{}, Lookups{})
	all := res.All()
	require.Len(t, all, 4)

	for _, o := range all[:3] {
		assert.Equal(t, BaseScore, o.FitScore, o.CourseID)
		assert.Equal(t, merit.None, o.Likelihood, o.CourseID)
	}
	assert.Equal(t, "F", all[3].CourseID)
	assert.Equal(t, BaseScore-5, all[3].FitScore)
	assert.Equal(t, merit.Fair, all[3].Likelihood)
}

func TestRankNonFiniteCutoff(t *testing.T) {
	t.Parallel()

	in := []*offering.Offering{
		{CourseID: "d", InstitutionID: "nan", CourseName: "Diploma X", MeritCutoff: ptr(math.NaN()), StudentMerit: ptr(60)},
		{CourseID: "d", InstitutionID: "low", CourseName: "Diploma X", MeritCutoff: ptr(40), StudentMerit: ptr(60)},
		{CourseID: "d", InstitutionID: "inf", CourseName: "Diploma X", MeritCutoff: ptr(math.Inf(1)), StudentMerit: ptr(60)},
		{CourseID: "d", InstitutionID: "none", CourseName: "Diploma X", StudentMerit: ptr(60)},
	}

	res := Rank(in, Signals{}, Lookups{})
	assert.Equal(t, []string{"d@low", "d@nan", "d@inf", "d@none"}, keys(res.Top5))

	for _, o := range res.Top5 {
		assert.Equal(t, BaseScore, o.FitScore, o.Key())
	}
	assert.Equal(t, merit.High, res.Top5[0].Likelihood)
	for _, o := range res.Top5[1:] {
		assert.Equal(t, merit.None, o.Likelihood, o.Key())
	}
}

func TestRankStable(t *testing.T) {
	t.Parallel()

	in := []*offering.Offering{
		{CourseID: "c1", InstitutionID: "i1", CourseName: "Sijil Masakan"},
		{CourseID: "c1", InstitutionID: "i2", CourseName: "Sijil Masakan"},
		{CourseID: "c1", InstitutionID: "i3", CourseName: "Sijil Masakan"},
	}

	res := Rank(in, Signals{}, Lookups{})
	assert.Equal(t, []string{"c1@i1", "c1@i2", "c1@i3"}, keys(res.Top5))
}

func TestRankTieBreaks(t *testing.T) {
	t.Parallel()

	lookups := Lookups{Subcategories: map[string]string{
		"u1": "Penyelidikan",
		"p1": "Premier",
		"p2": "Premier",
		"p3": "Premier",
		"p4": "Premier",
	}}
	in := []*offering.Offering{
		{CourseID: "mek", InstitutionID: "p1", CourseName: "Diploma Mekanikal"},
		{CourseID: "mek", InstitutionID: "u1", CourseName: "Diploma Mekanikal"},
		{CourseID: "sains", InstitutionID: "x", CourseName: "Asasi Sains"},
		{CourseID: "awam", InstitutionID: "p2", CourseName: "Diploma Awam", MeritCutoff: ptr(50)},
		{CourseID: "awam", InstitutionID: "p3", CourseName: "Diploma Awam", MeritCutoff: ptr(60)},
		{CourseID: "auto", InstitutionID: "p4", CourseName: "Diploma Automotif"},
	}

	res := Rank(in, Signals{}, lookups)
	assert.Equal(t, []string{"sains@x", "mek@u1", "awam@p3", "awam@p2", "auto@p4"}, keys(res.Top5))
	assert.Equal(t, []string{"mek@p1"}, keys(res.Rest))
}

func TestRankEmpty(t *testing.T) {
	t.Parallel()

	res := Rank(nil, nil, Lookups{})
	assert.NotNil(t, res.Top5)
	assert.NotNil(t, res.Rest)
	assert.Empty(t, res.All())
}

func TestCredentialPriority(t *testing.T) {
	t.Parallel()

	tests := map[string]int{
		"Asasi Sains Hayat":                  4,
		"Foundation in Engineering":          4,
		"Diploma Kejuruteraan Awam":          3,
		"Sijil Lanjutan Teknologi Automotif": 2,
		"Advanced Certificate in Welding":    2,
		"Sijil Kemahiran Malaysia":           1,
		"certificate in culinary arts":       1,
		"Ijazah Sarjana Muda":                0,
		"":                                   0,
	}

	for name, want := range tests {
		assert.Equal(t, want, CredentialPriority(name), name)
	}
}

func TestInstitutionPriority(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 14, InstitutionPriority("Penyelidikan"))
	assert.Equal(t, 6, InstitutionPriority("Kolej Komuniti"))
	assert.Equal(t, InstitutionPriority("IKBN"), InstitutionPriority("IKSN"))
	assert.Zero(t, InstitutionPriority("Swasta"))
}
