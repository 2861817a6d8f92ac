package grade

import "strings"

// Subject codes used as grade sheet keys.
const (
	BM         = "bm"
	English    = "eng"
	History    = "hist"
	Math       = "math"
	AddMath    = "addmath"
	Physics    = "phy"
	Chem       = "chem"
	Bio        = "bio"
	Science    = "sci"
	AddSci     = "addsci"
	CompSci    = "comp_sci"
	Islam      = "islam"
	Moral      = "moral"
	LegacyTech = "tech"
	LegacyVoc  = "voc"
)

// Technical and IT electives.
var TechnicalSubjects = []string{
	"eng_civil", "eng_mech", "eng_elec",
	"eng_draw", "gkt", "kelestarian", "reka_cipta",
	"comp_sci", "multimedia", "digital_gfx",
	LegacyTech,
}

// Vocational (MPV) electives.
var VocationalSubjects = []string{
	"voc_construct", "voc_plumb", "voc_wiring", "voc_weld",
	"voc_auto", "voc_elec_serv", "voc_food", "voc_landscape",
	"voc_catering", "voc_tailoring",
	LegacyVoc,
}

var subjectAliases = map[string]string{
	"BM":        BM,
	"BI":        English,
	"HISTORY":   History,
	"SEJARAH":   History,
	"SEJ":       History,
	"MATH":      Math,
	"MAT":       Math,
	"ADDMATH":   AddMath,
	"AMT":       AddMath,
	"PHYSICS":   Physics,
	"PHY":       Physics,
	"CHEMISTRY": Chem,
	"CHE":       Chem,
	"BIOLOGY":   Bio,
	"SCIENCE":   Science,
	"SN":        Science,
	"PAI":       Islam,
	"PI":        Islam,
	"PM":        Moral,
	"BC":        "b_cina",
	"BT":        "b_tamil",
	"BA":        "b_arab",
	"PSV":       "psv",
	"GEO":       "geo",
	"EKONOMI":   "ekonomi",
	"ECO":       "ekonomi",
	"ACC":       "poa",
	"BUS":       "business",
}

// MapSubjectCode maps catalogue and form subject codes (BM, BI, SEJ, PHYSICS,
// ...) to grade sheet keys. Codes without an alias are lower-cased.
func MapSubjectCode(code string) string {
	code = strings.TrimSpace(code)
	if alias, ok := subjectAliases[strings.ToUpper(code)]; ok {
		return alias
	}
	return strings.ToLower(code)
}
