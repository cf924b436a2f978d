// README: Fare schedule; kind factors and the Standard frequent-rider tiers.
package card

import "github.com/shopspring/decimal"

// Fare returns what the next non-transfer trip would cost right now. It is a
// pure read: counters are refreshed against the clock but not committed.
func (c *Card) Fare(intercity bool) decimal.Decimal {
	now := c.clock.Now()
	daily, _ := refreshDaily(c.dailyTrips, c.dailyDate, now)
	monthly, _, _ := refreshMonthly(c.monthlyTrips, c.monthlyYear, c.monthlyMonth, now)
	return fareFor(c.policy(), intercity, daily, monthly)
}

// fareFor prices a trip from the refreshed counters. dailyTrips and
// monthlyTrips are the counts before this trip, so trip N is priced while
// the monthly counter reads N-1.
func fareFor(p policy, intercity bool, dailyTrips, monthlyTrips int) decimal.Decimal {
	base := BaseFare
	if intercity {
		base = IntercityFare
	}
	if p.reducedTrips > 0 {
		if dailyTrips < p.reducedTrips {
			return base.Mul(p.reducedFactor)
		}
		return base
	}
	if p.monthlyTiers {
		switch {
		case monthlyTrips >= tier20From && monthlyTrips < tier25From:
			return base.Mul(tier20Factor)
		case monthlyTrips >= tier25From && monthlyTrips < tiersUntil:
			return base.Mul(tier25Factor)
		}
	}
	return base
}
