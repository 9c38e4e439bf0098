package gift

// Price returns the order price in USD cents for the given recipient count.
//
// The tiers are fixed: a single gift costs $150, a pair costs $240, and
// three or more cost $100 each. Counts outside the first two tiers fall
// through to the per-recipient rate, so Price(0) is 0 — callers are expected
// to reject empty orders before pricing them.
func Price(recipients int) int64 {
	switch recipients {
	case 1:
		return 15000
	case 2:
		return 24000
	default:
		return 10000 * int64(recipients)
	}
}
