package faraid

import (
	"fmt"
	"math/big"
)

// baseParts is the common denominator all fixed shares are expressed
// against: 24 parts make up the whole estate.
const baseParts = 24

// calculation is the per-invocation working state threaded through stages
// 2-4. Indexes refer to positions in the normalized roster.
type calculation struct {
	roster   []normalized
	facts    rosterFacts
	excluded map[int]string
	notes    []string

	fixed   []*big.Rat // nil when the heir holds no fixed share
	residue []*big.Rat // nil when the heir took no residue
	radd    []*big.Rat // nil when no Radd correction applied

	base *big.Rat
}

func newCalculation(roster []normalized) *calculation {
	c := &calculation{
		roster:  roster,
		facts:   factsOf(roster),
		fixed:   make([]*big.Rat, len(roster)),
		residue: make([]*big.Rat, len(roster)),
		radd:    make([]*big.Rat, len(roster)),
		base:    rat(baseParts),
	}
	c.excluded, c.notes = resolveExclusions(roster, c.facts)
	return c
}

// active returns the roster indexes of non-excluded heirs with the given
// relationship, in input order.
func (c *calculation) active(rel Relationship) []int {
	var out []int
	for i, n := range c.roster {
		if n.Relation == rel {
			if _, blocked := c.excluded[i]; !blocked {
				out = append(out, i)
			}
		}
	}
	return out
}

func (c *calculation) addFixed(i int, parts *big.Rat) {
	c.fixed[i] = parts
}

// assignFixed applies the classical fixed-share (Furud) table. Shared pools
// are split evenly inside each category.
func (c *calculation) assignFixed() {
	f := c.facts

	if husbands := c.active(RelationHusband); len(husbands) > 0 {
		pool := rat(12)
		if f.hasDescendant() {
			pool = rat(6)
		}
		c.assignPool(pool, husbands)
	}

	if wives := c.active(RelationWife); len(wives) > 0 {
		pool := rat(6)
		if f.hasDescendant() {
			pool = rat(3)
		}
		c.assignPool(pool, wives)
	}

	// Father: 1/6 alongside any descendant; with only female descendants he
	// additionally competes for residue; with no descendants at all he is a
	// pure residuary and takes nothing here.
	if fathers := c.active(RelationFather); len(fathers) > 0 && f.hasDescendant() {
		c.addFixed(fathers[0], rat(4))
	}

	if mothers := c.active(RelationMother); len(mothers) > 0 {
		parts := rat(8)
		if f.hasDescendant() || f.siblings >= 2 {
			parts = rat(4)
		}
		c.addFixed(mothers[0], parts)
	}

	// Grandfather mirrors Father once the Father is absent.
	if gfs := c.active(RelationGrandfather); len(gfs) > 0 && f.hasDescendant() {
		c.addFixed(gfs[0], rat(4))
	}

	if gms := c.active(RelationGrandmother); len(gms) > 0 {
		c.assignPool(rat(4), gms)
	}

	if daughters := c.active(RelationDaughter); len(daughters) > 0 && f.sons == 0 {
		c.assignHalfOrTwoThirds(daughters)
	}

	c.assignGranddaughters()
	c.assignSisters()
	c.assignUterines()
}

// assignGranddaughters covers the son's-daughter ladder: full 1/2-or-2/3
// absent both Grandson and Daughter, the 1/6 completing two thirds beside a
// single Daughter, and nothing here when a Grandson pulls them into residue.
func (c *calculation) assignGranddaughters() {
	gds := c.active(RelationGranddaughter)
	if len(gds) == 0 || c.facts.grandsons > 0 {
		return
	}
	switch c.facts.daughters {
	case 0:
		c.assignHalfOrTwoThirds(gds)
	case 1:
		c.assignPool(rat(4), gds)
	}
}

func (c *calculation) assignSisters() {
	f := c.facts
	if f.hasDescendant() || f.hasMaleAscendant() {
		return
	}

	fullSisters := c.active(RelationFullSister)
	if len(fullSisters) > 0 && !f.hasFullBrother {
		c.assignHalfOrTwoThirds(fullSisters)
	}

	conSisters := c.active(RelationConsanguineSis)
	if len(conSisters) == 0 || f.hasConsanguineBrother || f.hasFullBrother {
		return
	}
	switch len(fullSisters) {
	case 0:
		c.assignHalfOrTwoThirds(conSisters)
	case 1:
		c.assignPool(rat(4), conSisters)
	default:
		c.notes = append(c.notes, fmt.Sprintf(
			"consanguine sisters take no fixed share: %d full sisters exhaust the two-thirds", len(fullSisters)))
	}
}

// assignUterines pools uterine siblings of both sexes: 1/6 for one, a shared
// 1/3 for two or more, split evenly with no male preference.
func (c *calculation) assignUterines() {
	uterines := append(c.active(RelationUterineBrother), c.active(RelationUterineSister)...)
	switch len(uterines) {
	case 0:
	case 1:
		c.addFixed(uterines[0], rat(4))
	default:
		c.assignPool(rat(8), uterines)
	}
}

// assignHalfOrTwoThirds applies the recurring pattern for daughter-like
// categories: a single heir takes 1/2, two or more share 2/3.
func (c *calculation) assignHalfOrTwoThirds(members []int) {
	if len(members) == 1 {
		c.addFixed(members[0], rat(12))
		return
	}
	c.assignPool(rat(16), members)
}

func (c *calculation) assignPool(pool *big.Rat, members []int) {
	for i, share := range splitPool(pool, members, evenWeight) {
		c.addFixed(i, share)
	}
}

// fixedTotal sums all assigned fixed parts.
func (c *calculation) fixedTotal() *big.Rat {
	total := new(big.Rat)
	for _, p := range c.fixed {
		if p != nil {
			total.Add(total, p)
		}
	}
	return total
}

// partsOf returns the heir's final parts: fixed + residue + radd.
func (c *calculation) partsOf(i int) *big.Rat {
	total := new(big.Rat)
	for _, p := range []*big.Rat{c.fixed[i], c.residue[i], c.radd[i]} {
		if p != nil {
			total.Add(total, p)
		}
	}
	return total
}

// allTotal sums every heir's final parts.
func (c *calculation) allTotal() *big.Rat {
	total := new(big.Rat)
	for i := range c.roster {
		total.Add(total, c.partsOf(i))
	}
	return total
}
