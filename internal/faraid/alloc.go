package faraid

import "math/big"

// splitPool divides pool among members proportionally to weight(i). The even
// fixed-share pools (all weights 1), the 2:1 residuary splits, and the
// parts-proportional Radd return all go through here so the arithmetic lives
// in one place.
//
// Shares are exact rationals; the returned shares sum to pool exactly.
func splitPool(pool *big.Rat, members []int, weight func(i int) *big.Rat) map[int]*big.Rat {
	total := new(big.Rat)
	for _, m := range members {
		total.Add(total, weight(m))
	}
	shares := make(map[int]*big.Rat, len(members))
	if total.Sign() == 0 {
		return shares
	}
	for _, m := range members {
		frac := new(big.Rat).Quo(weight(m), total)
		shares[m] = frac.Mul(frac, pool)
	}
	return shares
}

// evenWeight splits a pool equally.
func evenWeight(int) *big.Rat { return big.NewRat(1, 1) }

func rat(parts int64) *big.Rat { return big.NewRat(parts, 1) }
