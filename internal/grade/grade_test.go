package grade

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Grade
	}{
		{"A+", APlus},
		{" a- ", AMinus},
		{"b", B},
		{"g", G},
		{"", NotAttempted},
		{"X", NotAttempted},
		{"TH", NotAttempted},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Parse(tt.in), "input %q", tt.in)
	}
}

func TestTierMonotonicInPoints(t *testing.T) {
	t.Parallel()

	grades := append([]Grade{NotAttempted}, All...)
	for _, x := range grades {
		for _, y := range grades {
			if Points(x) >= Points(y) && x.Valid() && y.Valid() {
				assert.GreaterOrEqual(t, TierOf(x), TierOf(y), "%s vs %s", x, y)
			}
		}
	}

	for _, g := range All {
		assert.Greater(t, TierOf(g), TierOf(NotAttempted), "grade %s must rank above not attempted", g)
	}
}

func TestTiers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, TierDistinction, TierOf(AMinus))
	assert.Equal(t, TierCredit, TierOf(C))
	assert.Equal(t, TierPass, TierOf(E))
	assert.Equal(t, TierAttempted, TierOf(G))
	assert.Equal(t, TierNotAttempted, TierOf(NotAttempted))
}

func TestMeets(t *testing.T) {
	t.Parallel()

	assert.True(t, MeetsTier(C, TierCredit))
	assert.False(t, MeetsTier(D, TierCredit))
	assert.True(t, MeetsTier(G, TierAttempted))
	assert.False(t, MeetsTier(G, TierPass))
	assert.False(t, MeetsTier(NotAttempted, TierAttempted))

	assert.True(t, MeetsGrade(B, B))
	assert.True(t, MeetsGrade(BPlus, B))
	assert.False(t, MeetsGrade(CPlus, B))
	assert.True(t, MeetsGrade(AMinus, AMinus))
	assert.False(t, MeetsGrade(BPlus, AMinus))
	assert.False(t, MeetsGrade(NotAttempted, G))
	assert.True(t, MeetsGrade(G, G))
}

func TestPointsAndUnits(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 18, Points(APlus))
	assert.Equal(t, 0, Points(G))
	assert.Equal(t, 0, Points(NotAttempted))
	assert.Equal(t, 0, Units(APlus))
	assert.Equal(t, 9, Units(G))
	assert.Equal(t, 10, Units(NotAttempted))
}

func TestMapSubjectCode(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"BM":       BM,
		"bi":       English,
		"SEJ":      History,
		"History":  History,
		"PHYSICS":  Physics,
		"phy":      Physics,
		"AMT":      AddMath,
		"PAI":      Islam,
		" chem ":   Chem,
		"Voc_Weld": "voc_weld",
	}

	for in, want := range tests {
		assert.Equal(t, want, MapSubjectCode(in), "input %q", in)
	}
}
