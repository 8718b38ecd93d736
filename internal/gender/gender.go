// Package gender guesses a player's gender from the first name. The
// guess drives leaderboard filters and nothing else, the rating never
// looks at it.
package gender

import (
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

type Gender string

const (
	Unknown Gender = ""
	Male    Gender = "m"
	Female  Gender = "f"
)

// Names that the suffix rule gets wrong or cannot reach.
var knownFemale = mapset.NewThreadUnsafeSet(
	"любовь",
	"люба",
	"нинель",
	"николь",
	"эсфирь",
	"суламифь",
	"айгуль",
	"гузель",
)

// Male names and common diminutives that end in a female-looking vowel.
var maleExceptions = mapset.NewThreadUnsafeSet(
	"никита",
	"илья",
	"кузьма",
	"фома",
	"лука",
	"савва",
	"данила",
	"гаврила",
	"добрыня",
	"ваня",
	"вася",
	"петя",
	"коля",
	"толя",
	"костя",
	"витя",
	"митя",
	"дима",
	"лёша",
	"леша",
	"гоша",
	"гриша",
	"миша",
	"паша",
	"серёжа",
	"сережа",
	"стёпа",
	"степа",
	"сеня",
	"женя",
	"боря",
	"юра",
	"шура",
	"слава",
	"володя",
	"федя",
	"лёва",
	"лева",
	"рома",
	"тёма",
	"тема",
	"сёма",
	"сема",
	"яша",
	"лёня",
	"леня",
	"веня",
	"моня",
	"давидка",
)

// Guess works on the first word of the full name. Exact known names
// win over the suffix rule.
func Guess(name string) Gender {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return Unknown
	}
	first := strings.ToLower(fields[0])
	switch {
	case knownFemale.Contains(first):
		return Female
	case maleExceptions.Contains(first):
		return Male
	case strings.HasSuffix(first, "а"),
		strings.HasSuffix(first, "я"),
		strings.HasSuffix(first, "ья"):
		return Female
	default:
		return Male
	}
}
