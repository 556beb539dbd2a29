package faraid

import "fmt"

// resolveExclusions applies the Hajb blocking rules. Each rule is a predicate
// over the whole roster, not over the heir in isolation; the facts snapshot
// keeps every rule reading the same roster state.
//
// Returns the set of excluded roster indexes plus one note per exclusion
// naming the blocker.
func resolveExclusions(roster []normalized, facts rosterFacts) (map[int]string, []string) {
	excluded := make(map[int]string)
	var notes []string

	block := func(i int, reason string) {
		excluded[i] = reason
		notes = append(notes, fmt.Sprintf("%s (%s) excluded: %s",
			roster[i].Heir.Name, roster[i].Relation, reason))
	}

	for i, n := range roster {
		switch n.Relation {
		case RelationExcluded:
			// Barred at normalization; re-affirmed here as a blocking category.
			block(i, n.Reason)

		case RelationGrandson:
			if facts.sons > 0 {
				block(i, "blocked by Son")
			}

		case RelationGranddaughter:
			if facts.sons > 0 {
				block(i, "blocked by Son")
			} else if facts.daughters >= 2 && facts.grandsons == 0 {
				block(i, "blocked by two or more Daughters with no Grandson")
			}

		case RelationGrandfather:
			if facts.hasFather {
				block(i, "blocked by Father")
			}

		case RelationGrandmother:
			if facts.hasMother {
				block(i, "blocked by Mother")
			}

		case RelationFullBrother, RelationFullSister:
			if reason, ok := siblingBlock(facts); ok {
				block(i, reason)
			}

		case RelationConsanguineBro, RelationConsanguineSis:
			if reason, ok := siblingBlock(facts); ok {
				block(i, reason)
			} else if facts.hasFullBrother {
				block(i, "blocked by Full Brother")
			}

		case RelationUterineBrother, RelationUterineSister:
			if reason, ok := siblingBlock(facts); ok {
				block(i, reason)
			} else if facts.hasDescendant() {
				block(i, "blocked by descendant")
			} else if facts.hasGrandfather {
				block(i, "blocked by Grandfather")
			}

		case RelationFullNephew:
			if facts.hasMaleDescendant() {
				block(i, "blocked by male descendant")
			} else if facts.hasMaleAscendant() {
				block(i, "blocked by male ascendant")
			} else if facts.hasFullBrother {
				block(i, "blocked by Full Brother")
			}
		}
	}

	return excluded, notes
}

// siblingBlock covers the rule shared by every sibling category: a male
// descendant or the Father blocks all siblings.
func siblingBlock(facts rosterFacts) (string, bool) {
	if facts.hasMaleDescendant() {
		return "blocked by male descendant", true
	}
	if facts.hasFather {
		return "blocked by Father", true
	}
	return "", false
}
