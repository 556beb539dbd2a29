package faraid

// rosterFacts holds the roster-wide presence and count predicates every rule
// depends on. Computed once per invocation from the normalized roster and
// passed down, so all stages see the same snapshot.
type rosterFacts struct {
	sons           int
	daughters      int
	grandsons      int
	granddaughters int

	hasFather      bool
	hasMother      bool
	hasGrandfather bool
	hasGrandmother bool

	hasFullBrother        bool
	hasConsanguineBrother bool

	wives    int
	husbands int

	// siblings counts every sibling category across the full roster,
	// including siblings later blocked by Hajb. Mother's 1/6 threshold
	// counts them all; see DESIGN.md.
	siblings int
}

func factsOf(roster []normalized) rosterFacts {
	var f rosterFacts
	for _, n := range roster {
		switch n.Relation {
		case RelationSon:
			f.sons++
		case RelationDaughter:
			f.daughters++
		case RelationGrandson:
			f.grandsons++
		case RelationGranddaughter:
			f.granddaughters++
		case RelationFather:
			f.hasFather = true
		case RelationMother:
			f.hasMother = true
		case RelationGrandfather:
			f.hasGrandfather = true
		case RelationGrandmother:
			f.hasGrandmother = true
		case RelationFullBrother:
			f.hasFullBrother = true
			f.siblings++
		case RelationFullSister:
			f.siblings++
		case RelationConsanguineBro:
			f.hasConsanguineBrother = true
			f.siblings++
		case RelationConsanguineSis:
			f.siblings++
		case RelationUterineBrother, RelationUterineSister:
			f.siblings++
		case RelationWife:
			f.wives++
		case RelationHusband:
			f.husbands++
		}
	}
	return f
}

func (f rosterFacts) hasMaleDescendant() bool {
	return f.sons > 0 || f.grandsons > 0
}

func (f rosterFacts) hasFemaleDescendant() bool {
	return f.daughters > 0 || f.granddaughters > 0
}

func (f rosterFacts) hasDescendant() bool {
	return f.hasMaleDescendant() || f.hasFemaleDescendant()
}

func (f rosterFacts) hasMaleAscendant() bool {
	return f.hasFather || f.hasGrandfather
}
