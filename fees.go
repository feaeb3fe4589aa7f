package pnlsheet

// Fee tiers, as rates applied to the principal.
const (
	L1 Rate = 200 // 2%
	L2 Rate = 100 // 1%
	L3 Rate = 50  // 0.5%
)

// Fees holds the three tiered fees of a row.
type Fees struct {
	L1, L2, L3 Money
}

// ComputeFees derives the tiered fees from a principal in minor units.
// Each tier is rounded on its own, none is derived from another.
func ComputeFees(principal Money) Fees {
	return Fees{
		L1: L1.Apply(principal),
		L2: L2.Apply(principal),
		L3: L3.Apply(principal),
	}
}

// Add returns the component-wise sum of f and g.
func (f Fees) Add(g Fees) Fees {
	return Fees{L1: f.L1.Add(g.L1), L2: f.L2.Add(g.L2), L3: f.L3.Add(g.L3)}
}
