package faraid

import (
	"math"
	"math/big"
)

// Engine runs the four-stage Fara'id pipeline: normalize labels, resolve
// exclusions (Hajb), assign fixed shares (Furud), then distribute residue
// (Asabah) and reconcile with Awl or Radd. The goal is to keep the rules
// centralized and testable.
//
// Calculate is pure: no I/O, no shared state, identical inputs produce
// identical outputs.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// Calculate computes every heir's share of the estate.
//
// A zero estate or an empty roster is not an error; it yields an empty
// result so callers stay total.
func (e *Engine) Calculate(input EstateInput) *CalculationResult {
	if input.Amount <= 0 || len(input.Heirs) == 0 {
		return &CalculationResult{
			BaseNumber:   baseParts,
			Case:         CaseStandard,
			Notes:        []string{},
			Heirs:        []ShareResult{},
			GroupSummary: map[string]GroupSummary{},
		}
	}

	roster := normalizeRoster(input.Heirs)
	c := newCalculation(roster)

	for _, n := range roster {
		if n.Unmapped {
			c.notes = append(c.notes, "unmapped relationship label for "+n.Heir.Name+": treated as excluded")
		}
	}

	c.assignFixed()
	took := c.distributeResidue()
	caseTag := c.adjust(took)

	return e.assemble(input, c, caseTag)
}

// assemble converts final parts into fraction labels, percentages, and
// currency amounts, and aggregates the per-group summary.
func (e *Engine) assemble(input EstateInput, c *calculation, caseTag CalculationCase) *CalculationResult {
	result := &CalculationResult{
		BaseNumber:   ratInt(c.base),
		Case:         caseTag,
		Notes:        c.notes,
		Heirs:        make([]ShareResult, 0, len(c.roster)),
		GroupSummary: map[string]GroupSummary{},
	}
	if result.Notes == nil {
		result.Notes = []string{}
	}

	totalParts := new(big.Rat)
	amounts := make([]float64, len(c.roster))
	largest := -1

	for i := range c.roster {
		parts := c.partsOf(i)
		totalParts.Add(totalParts, parts)

		if c.base.Sign() > 0 {
			exact := new(big.Rat).Mul(new(big.Rat).Quo(parts, c.base), floatRat(input.Amount))
			amounts[i] = math.Round(ratFloat(exact))
		}
		if largest < 0 || parts.Cmp(c.partsOf(largest)) > 0 {
			largest = i
		}
	}

	// Per-heir rounding may drift off the estate total; settle the
	// difference on the largest share so the amounts close exactly. A
	// zero-part largest share means nobody took anything, so there is no
	// drift to settle.
	if largest >= 0 && c.partsOf(largest).Sign() > 0 {
		var sum float64
		for _, a := range amounts {
			sum += a
		}
		amounts[largest] += math.Round(input.Amount) - sum
	}

	for i, n := range c.roster {
		parts := c.partsOf(i)
		excluded := parts.Sign() == 0

		var percentage float64
		if c.base.Sign() > 0 {
			percentage = round2(ratFloat(new(big.Rat).Quo(parts, c.base)) * 100)
		}

		share := ShareResult{
			HeirID:       n.Heir.ID,
			Name:         n.Heir.Name,
			Relationship: n.Relation,
			HeirGroup:    n.Heir.HeirGroup,
			Fraction:     e.fractionLabel(c, i, excluded),
			Parts:        ratFloat(parts),
			Percentage:   percentage,
			Excluded:     excluded,
		}
		if !excluded {
			share.Amount = amounts[i]
		} else if _, blocked := c.excluded[i]; !blocked {
			// Active but nothing allocated: surface as excluded rather
			// than a silent zero row.
			result.Notes = append(result.Notes, n.Heir.Name+" receives no share under the present roster")
		}
		result.Heirs = append(result.Heirs, share)

		group := n.Heir.HeirGroup
		if group == "" {
			group = string(n.Relation)
		}
		summary := result.GroupSummary[group]
		summary.Count++
		summary.TotalShare = round2(summary.TotalShare + share.Percentage)
		summary.TotalAmount += share.Amount
		result.GroupSummary[group] = summary
	}

	result.TotalParts = ratFloat(totalParts)
	return result
}

// fractionLabel renders the human-readable share origin: "1/4",
// "1/6 + Residue", "Residue", "1/2 + Radd", or "Excluded".
func (e *Engine) fractionLabel(c *calculation, i int, excluded bool) string {
	if excluded {
		return "Excluded"
	}
	var label string
	if c.fixed[i] != nil {
		label = new(big.Rat).Quo(c.fixed[i], rat(baseParts)).RatString()
	}
	if c.residue[i] != nil {
		if label == "" {
			label = "Residue"
		} else {
			label += " + Residue"
		}
	}
	if c.radd[i] != nil {
		label += " + Radd"
	}
	return label
}

func ratLabel(r *big.Rat) string {
	return r.RatString()
}

func ratFloat(r *big.Rat) float64 {
	f, _ := r.Float64()
	return f
}

// ratInt converts a base value to its integer part count. Bases are sums of
// integral pools, so the denominator is always 1 in practice.
func ratInt(r *big.Rat) int {
	if r.IsInt() {
		return int(r.Num().Int64())
	}
	return int(math.Round(ratFloat(r)))
}

// floatRat builds an exact rational from a currency amount, preserving up to
// two decimal places.
func floatRat(f float64) *big.Rat {
	return big.NewRat(int64(math.Round(f*100)), 100)
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
