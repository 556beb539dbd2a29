package faraid

import "strings"

// Relationship is the closed vocabulary every roster label collapses into.
// Keeping it closed lets the exclusion and share tables switch exhaustively;
// a new category that slips in without rules shows up immediately in tests.
type Relationship string

const (
	RelationHusband           Relationship = "husband"
	RelationWife              Relationship = "wife"
	RelationFather            Relationship = "father"
	RelationMother            Relationship = "mother"
	RelationSon               Relationship = "son"
	RelationDaughter          Relationship = "daughter"
	RelationGrandson          Relationship = "grandson"
	RelationGranddaughter     Relationship = "granddaughter"
	RelationGrandfather       Relationship = "grandfather"
	RelationGrandmother       Relationship = "grandmother"
	RelationFullBrother       Relationship = "full_brother"
	RelationFullSister        Relationship = "full_sister"
	RelationConsanguineBro    Relationship = "consanguine_brother"
	RelationConsanguineSis    Relationship = "consanguine_sister"
	RelationUterineBrother    Relationship = "uterine_brother"
	RelationUterineSister     Relationship = "uterine_sister"
	RelationFullNephew        Relationship = "full_nephew"
	RelationExcluded          Relationship = "excluded"
)

// relationSynonyms maps recognized labels (lowercased, trimmed) straight to a
// canonical relationship. Ambiguous labels like "child" or "spouse" are not
// listed here; they go through the gender/group disambiguators instead.
var relationSynonyms = map[string]Relationship{
	"husband": RelationHusband,
	"wife":    RelationWife,

	"father": RelationFather,
	"dad":    RelationFather,
	"mother": RelationMother,
	"mom":    RelationMother,
	"mum":    RelationMother,

	"son":      RelationSon,
	"daughter": RelationDaughter,

	"grandson":       RelationGrandson,
	"son's son":      RelationGrandson,
	"granddaughter":  RelationGranddaughter,
	"son's daughter": RelationGranddaughter,

	"grandfather":          RelationGrandfather,
	"paternal grandfather": RelationGrandfather,
	"father's father":      RelationGrandfather,
	"grandmother":          RelationGrandmother,
	"paternal grandmother": RelationGrandmother,
	"maternal grandmother": RelationGrandmother,
	"father's mother":      RelationGrandmother,
	"mother's mother":      RelationGrandmother,

	"brother":      RelationFullBrother,
	"full brother": RelationFullBrother,
	"sister":       RelationFullSister,
	"full sister":  RelationFullSister,

	"consanguine brother": RelationConsanguineBro,
	"paternal brother":    RelationConsanguineBro,
	"half brother":        RelationConsanguineBro,
	"consanguine sister":  RelationConsanguineSis,
	"paternal sister":     RelationConsanguineSis,
	"half sister":         RelationConsanguineSis,

	"uterine brother":  RelationUterineBrother,
	"maternal brother": RelationUterineBrother,
	"uterine sister":   RelationUterineSister,
	"maternal sister":  RelationUterineSister,

	"nephew":         RelationFullNephew,
	"full nephew":    RelationFullNephew,
	"brother's son":  RelationFullNephew,
}

// barredSynonyms are categories Fara'id never lets inherit: step and foster
// relations, adopted and illegitimate children, and the distant kindred
// (dhawu al-arham) reached through the female line.
var barredSynonyms = map[string]string{
	"stepfather":           "step-relations do not inherit",
	"stepmother":           "step-relations do not inherit",
	"stepson":              "step-relations do not inherit",
	"stepdaughter":         "step-relations do not inherit",
	"stepchild":            "step-relations do not inherit",
	"adopted son":          "adopted children do not inherit",
	"adopted daughter":     "adopted children do not inherit",
	"adopted child":        "adopted children do not inherit",
	"foster child":         "foster relations do not inherit",
	"foster mother":        "foster relations do not inherit",
	"foster father":        "foster relations do not inherit",
	"illegitimate child":   "illegitimate children do not inherit from the father",
	"maternal grandfather": "distant kindred (mother's father) does not inherit",
	"mother's father":      "distant kindred (mother's father) does not inherit",
	"daughter's son":       "distant kindred (daughter's children) does not inherit",
	"daughter's daughter":  "distant kindred (daughter's children) does not inherit",
	"aunt":                 "distant kindred (aunts) does not inherit",
	"paternal aunt":        "distant kindred (aunts) does not inherit",
	"maternal aunt":        "distant kindred (aunts) does not inherit",
	"maternal uncle":       "distant kindred (maternal uncles) does not inherit",
	"sister's son":         "distant kindred (sister's children) does not inherit",
	"sister's daughter":    "distant kindred (sister's children) does not inherit",
	"niece":                "distant kindred (nieces) does not inherit",
}

// normalized is one roster entry after stage 1.
type normalized struct {
	Heir     Heir
	Relation Relationship
	// Reason is set when Relation is RelationExcluded.
	Reason string
	// Unmapped marks labels the vocabulary did not recognize at all, so
	// callers can audit rosters that silently lost an heir.
	Unmapped bool
}

// normalizeRoster rewrites every heir's free-form labels into the canonical
// vocabulary. Pure relabeling: no heir is compared against another here.
func normalizeRoster(heirs []Heir) []normalized {
	out := make([]normalized, 0, len(heirs))
	for _, h := range heirs {
		out = append(out, normalizeHeir(h))
	}
	return out
}

func normalizeHeir(h Heir) normalized {
	label := strings.ToLower(strings.TrimSpace(h.Relationship))

	if rel, ok := relationSynonyms[label]; ok {
		return normalized{Heir: h, Relation: rel}
	}
	if reason, ok := barredSynonyms[label]; ok {
		return normalized{Heir: h, Relation: RelationExcluded, Reason: reason}
	}
	if rel, ok := disambiguate(label, h); ok {
		return normalized{Heir: h, Relation: rel}
	}
	return normalized{
		Heir:     h,
		Relation: RelationExcluded,
		Reason:   "unrecognized relationship " + strings.TrimSpace(h.Relationship),
		Unmapped: true,
	}
}

// disambiguate resolves generic labels using gender first, then the heir
// group label ("Child" in group "Sons" is a Son).
func disambiguate(label string, h Heir) (Relationship, bool) {
	male, female := genderOf(h)
	switch label {
	case "spouse", "partner":
		if male {
			return RelationHusband, true
		}
		if female {
			return RelationWife, true
		}
	case "child", "kid":
		if male {
			return RelationSon, true
		}
		if female {
			return RelationDaughter, true
		}
		return childFromGroup(h.HeirGroup)
	case "parent":
		if male {
			return RelationFather, true
		}
		if female {
			return RelationMother, true
		}
	case "grandchild":
		if male {
			return RelationGrandson, true
		}
		if female {
			return RelationGranddaughter, true
		}
	case "grandparent":
		if male {
			return RelationGrandfather, true
		}
		if female {
			return RelationGrandmother, true
		}
	case "sibling":
		if male {
			return RelationFullBrother, true
		}
		if female {
			return RelationFullSister, true
		}
	}
	return "", false
}

func genderOf(h Heir) (male, female bool) {
	switch strings.ToLower(strings.TrimSpace(h.Gender)) {
	case "male", "m", "man":
		return true, false
	case "female", "f", "woman":
		return false, true
	}
	return false, false
}

func childFromGroup(group string) (Relationship, bool) {
	g := strings.ToLower(group)
	switch {
	case strings.Contains(g, "son"):
		return RelationSon, true
	case strings.Contains(g, "daughter"):
		return RelationDaughter, true
	}
	return "", false
}
