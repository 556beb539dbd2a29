package faraid

import (
	"fmt"
	"math/big"
)

// residuaryGroup pairs a male-line relationship with the female counterpart
// that enters as co-residuary beside it. Order is priority order; the first
// group with an active male-line member takes the whole residue.
type residuaryGroup struct {
	male   Relationship
	female Relationship
}

var residuaryPriority = []residuaryGroup{
	{RelationSon, RelationDaughter},
	{RelationGrandson, RelationGranddaughter},
	{RelationFather, ""},
	{RelationGrandfather, ""},
	{RelationFullBrother, RelationFullSister},
	{RelationConsanguineBro, RelationConsanguineSis},
	{RelationFullNephew, ""},
}

// distributeResidue hands whatever the fixed shares left over to the highest
// priority residuary group, males weighted 2 and co-residuary females 1.
// Reports whether any group absorbed the residue.
func (c *calculation) distributeResidue() bool {
	residue := new(big.Rat).Sub(rat(baseParts), c.fixedTotal())
	if residue.Sign() <= 0 {
		return false
	}

	for _, group := range residuaryPriority {
		males := c.active(group.male)
		if len(males) == 0 {
			continue
		}
		members := males
		if group.female != "" {
			members = append(members, c.active(group.female)...)
		}
		weight := func(i int) *big.Rat {
			if c.roster[i].Relation == group.male {
				return big.NewRat(2, 1)
			}
			return big.NewRat(1, 1)
		}
		for i, share := range splitPool(residue, members, weight) {
			c.residue[i] = share
		}
		return true
	}
	return false
}

// adjust reconciles the total against the base after residue distribution:
// Awl inflates the base when fixed shares oversubscribe it, Radd returns an
// unclaimed remainder to the blood-relative fixed-share heirs.
func (c *calculation) adjust(residuaryTook bool) CalculationCase {
	total := c.allTotal()

	if total.Cmp(c.base) > 0 {
		// Awl: the base grows to the inflated total; individual parts keep
		// their values and are implicitly reduced against the new base.
		c.base = total
		c.notes = append(c.notes, fmt.Sprintf(
			"Awl: fixed shares total %s parts, base raised from %d to %s", ratLabel(total), baseParts, ratLabel(total)))
		return CaseAwl
	}

	if total.Cmp(c.base) < 0 && !residuaryTook {
		if c.applyRadd(new(big.Rat).Sub(c.base, total)) {
			return CaseRadd
		}
		// Nobody holds a share to return the remainder to: the roster has
		// no eligible heir at all. Shrink the base to the distributed total
		// so parts still close against it.
		c.base = total
		c.notes = append(c.notes, "no eligible heir remains; the estate is not distributable under the present roster")
		return CaseStandard
	}

	return CaseStandard
}

// applyRadd redistributes the shortfall among active fixed-share heirs in
// proportion to their existing parts. Spouses never participate; when only
// spouses hold shares the remainder returns to them instead, since the
// estate must still close to the base. Reports whether any heir was eligible
// to absorb the shortfall.
func (c *calculation) applyRadd(shortfall *big.Rat) bool {
	eligible := c.raddMembers(false)
	spousesOnly := false
	if len(eligible) == 0 {
		eligible = c.raddMembers(true)
		spousesOnly = true
	}
	if len(eligible) == 0 {
		return false
	}

	weight := func(i int) *big.Rat { return c.partsOf(i) }
	for i, share := range splitPool(shortfall, eligible, weight) {
		c.radd[i] = share
	}

	if spousesOnly {
		c.notes = append(c.notes, fmt.Sprintf(
			"Radd: no residuary or blood-relative heir present, %s surplus parts returned to the spouse(s)", ratLabel(shortfall)))
		return true
	}
	c.notes = append(c.notes, fmt.Sprintf(
		"Radd: %s surplus parts returned proportionally to non-spousal fixed-share heirs", ratLabel(shortfall)))
	return true
}

func (c *calculation) raddMembers(spouses bool) []int {
	var out []int
	for i, n := range c.roster {
		if _, blocked := c.excluded[i]; blocked {
			continue
		}
		isSpouse := n.Relation == RelationHusband || n.Relation == RelationWife
		if isSpouse != spouses {
			continue
		}
		if c.partsOf(i).Sign() > 0 {
			out = append(out, i)
		}
	}
	return out
}
