// README: Balance ledger and trip settlement state machine.
package card

import (
	"time"

	"github.com/shopspring/decimal"
)

// Load accepts one of the enumerated denominations and applies it to the
// card. Debt is cleared first; whatever does not fit under the ceiling is
// parked as pending credit. Returns false only for an invalid denomination,
// with no state change.
func (c *Card) Load(amount decimal.Decimal) bool {
	if !validDenomination(amount) {
		return false
	}
	remaining := amount
	if c.balance.IsNegative() {
		debt := c.balance.Neg()
		if remaining.LessThanOrEqual(debt) {
			c.balance = c.balance.Add(remaining)
			return true
		}
		remaining = remaining.Sub(debt)
		c.balance = decimal.Zero
	}
	headroom := BalanceCeiling.Sub(c.balance)
	if remaining.GreaterThan(headroom) {
		c.pending = c.pending.Add(remaining.Sub(headroom))
		c.balance = BalanceCeiling
		return true
	}
	c.balance = c.balance.Add(remaining)
	return true
}

// Charge debits the card if the kind's floor allows it, then drains as much
// pending credit as the freed headroom admits. A rejected charge mutates
// nothing.
func (c *Card) Charge(amount decimal.Decimal) bool {
	if c.balance.Sub(amount).LessThan(c.policy().floor) {
		return false
	}
	c.balance = c.balance.Sub(amount)
	c.creditPending()
	return true
}

// creditPending moves pending credit into the balance up to the ceiling.
// No-op when nothing is pending.
func (c *Card) creditPending() {
	if !c.pending.IsPositive() {
		return
	}
	headroom := BalanceCeiling.Sub(c.balance)
	if headroom.IsPositive() {
		move := decimal.Min(c.pending, headroom)
		c.balance = c.balance.Add(move)
		c.pending = c.pending.Sub(move)
	}
}

// SettleTrip runs one bus boarding: transfer check, fare resolution, charge,
// and counter bookkeeping. Returns false with no state change when the fare
// cannot be charged or the half-fare minimum interval is violated.
func (c *Card) SettleTrip(line string, intercity bool) bool {
	now := c.clock.Now()
	daily, dailyDate := refreshDaily(c.dailyTrips, c.dailyDate, now)
	monthly, mYear, mMonth := refreshMonthly(c.monthlyTrips, c.monthlyYear, c.monthlyMonth, now)

	if c.canTransfer(now, line) {
		// Free continuation: no charge, no quota or tier consumption.
		c.dailyTrips, c.dailyDate = daily, dailyDate
		c.monthlyTrips, c.monthlyYear, c.monthlyMonth = monthly, mYear, mMonth
		c.lastTripAt = now
		c.lastTripLine = line
		c.lastFare = decimal.Zero
		c.wasTransfer = true
		return true
	}

	p := c.policy()
	if p.minTripInterval > 0 && !c.lastPaidAt.IsZero() && now.Sub(c.lastPaidAt) < p.minTripInterval {
		return false
	}

	fare := fareFor(p, intercity, daily, monthly)
	if !c.Charge(fare) {
		return false
	}

	c.dailyTrips, c.dailyDate = daily+1, dailyDate
	if p.monthlyTiers {
		c.monthlyTrips, c.monthlyYear, c.monthlyMonth = monthly+1, mYear, mMonth
	} else {
		c.monthlyTrips, c.monthlyYear, c.monthlyMonth = monthly, mYear, mMonth
	}
	c.lastTripAt = now
	c.lastPaidAt = now
	c.lastTripLine = line
	c.lastFare = fare
	c.wasTransfer = false
	return true
}

// canTransfer checks free-transfer eligibility: a prior boarding on a
// different, non-empty line within the transfer window, on an allowed day,
// between 07:00 and 22:00.
func (c *Card) canTransfer(now time.Time, line string) bool {
	if line == "" || c.lastTripLine == "" || line == c.lastTripLine {
		return false
	}
	if c.lastTripAt.IsZero() || now.Sub(c.lastTripAt) > TransferWindow {
		return false
	}
	if c.policy().weekdayOnly {
		if !isWeekday(now) {
			return false
		}
	} else if now.Weekday() == time.Sunday {
		return false
	}
	return now.Hour() >= transferHourFrom && now.Hour() < transferHourTo
}

// CanPayNow is the horario gate: Standard cards pay any time, concession
// kinds only Mon-Fri between 06:00 and 22:00.
func (c *Card) CanPayNow() bool {
	if !c.policy().weekdayOnly {
		return true
	}
	now := c.clock.Now()
	return isWeekday(now) && now.Hour() >= weekdayHourFrom && now.Hour() < weekdayHourTo
}

// CanGoNegative reports whether charging amount may leave the balance below
// zero without breaching the floor. Always false for concession kinds.
func (c *Card) CanGoNegative(amount decimal.Decimal) bool {
	if c.kind != KindStandard {
		return false
	}
	return c.balance.Sub(amount).GreaterThanOrEqual(StandardFloor)
}

func isWeekday(t time.Time) bool {
	wd := t.Weekday()
	return wd >= time.Monday && wd <= time.Friday
}

func validDenomination(amount decimal.Decimal) bool {
	for _, v := range acceptedAmounts {
		if amount.Equal(decimal.NewFromInt(v)) {
			return true
		}
	}
	return false
}
