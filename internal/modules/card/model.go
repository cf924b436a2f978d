// README: Card aggregate, kind policies, and fare/balance constants.
package card

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/LeonYaquinto/TrabajoTarjeta2025YaquintoLuchini/internal/clock"
)

type Kind string

const (
	KindStandard      Kind = "standard"
	KindHalfFare      Kind = "half_fare"
	KindFullExemption Kind = "full_exemption"
)

func (k Kind) Valid() bool {
	switch k {
	case KindStandard, KindHalfFare, KindFullExemption:
		return true
	}
	return false
}

// Label is the rider-facing name printed on tickets.
func (k Kind) Label() string {
	switch k {
	case KindHalfFare:
		return "Medio Boleto"
	case KindFullExemption:
		return "Franquicia Completa"
	default:
		return "Normal"
	}
}

var (
	// BaseFare is the urban fare before any discount; IntercityFare is its
	// higher intercity counterpart. Both are tiered independently.
	BaseFare      = decimal.NewFromInt(1580)
	IntercityFare = decimal.NewFromInt(3000)

	// BalanceCeiling caps the stored balance; loads beyond it become
	// pending credit. StandardFloor is the debt Standard cards may run.
	BalanceCeiling = decimal.NewFromInt(56000)
	StandardFloor  = decimal.NewFromInt(-1200)

	halfFactor      = decimal.NewFromFloat(0.5)
	tier20Factor    = decimal.NewFromFloat(0.8)
	tier25Factor    = decimal.NewFromFloat(0.75)
	acceptedAmounts = []int64{2000, 3000, 4000, 5000, 8000, 10000, 15000, 20000, 25000, 30000}
)

const (
	// TransferWindow is how long after a paid boarding a free transfer
	// on a different line remains available.
	TransferWindow = 60 * time.Minute

	// HalfFareMinInterval is the mandatory gap between paid half-fare trips.
	HalfFareMinInterval = 5 * time.Minute

	transferHourFrom = 7
	transferHourTo   = 22
	weekdayHourFrom  = 6
	weekdayHourTo    = 22

	// Monthly counter values (read before increment) bounding each
	// frequent-rider tier: trips 30-59 pay 80%, trips 60-80 pay 75%,
	// trip 81 onward reverts to full fare.
	tier20From = 29
	tier25From = 59
	tiersUntil = 80
)

// policy captures everything that varies per card kind, so the settlement
// state machine lives in one place and kinds stay pure data.
type policy struct {
	floor           decimal.Decimal // lowest balance a charge may leave
	reducedTrips    int             // daily trips at reducedFactor (0 = none)
	reducedFactor   decimal.Decimal // factor applied to those trips
	weekdayOnly     bool            // payments and transfers Mon-Fri only
	minTripInterval time.Duration   // gap enforced between paid trips
	monthlyTiers    bool            // frequent-rider discount applies
}

var policies = map[Kind]policy{
	KindStandard: {
		floor:        StandardFloor,
		monthlyTiers: true,
	},
	KindHalfFare: {
		floor:           decimal.Zero,
		reducedTrips:    2,
		reducedFactor:   halfFactor,
		weekdayOnly:     true,
		minTripInterval: HalfFareMinInterval,
	},
	KindFullExemption: {
		floor:         decimal.Zero,
		reducedTrips:  2,
		reducedFactor: decimal.Zero,
		weekdayOnly:   true,
	},
}

// Card is the stored-value aggregate. It is not safe for concurrent use;
// callers serialize access per card.
type Card struct {
	id    int64
	kind  Kind
	clock clock.Clock

	balance decimal.Decimal
	pending decimal.Decimal

	lastTripAt   time.Time // any boarding, transfers included
	lastPaidAt   time.Time // last fare-paying boarding, for the interval rule
	lastTripLine string
	wasTransfer  bool
	lastFare     decimal.Decimal

	dailyTrips int
	dailyDate  time.Time // midnight of the day the counter belongs to

	monthlyTrips int
	monthlyYear  int
	monthlyMonth time.Month
}

func (c *Card) ID() int64                      { return c.id }
func (c *Card) Kind() Kind                     { return c.kind }
func (c *Card) Balance() decimal.Decimal       { return c.balance }
func (c *Card) PendingCredit() decimal.Decimal { return c.pending }
func (c *Card) LastFare() decimal.Decimal      { return c.lastFare }
func (c *Card) WasTransfer() bool              { return c.wasTransfer }

// MonthlyTrips reports paid trips in the current calendar month (Standard
// frequent-rider counter; zero after a month rollover).
func (c *Card) MonthlyTrips() int {
	n, _, _ := refreshMonthly(c.monthlyTrips, c.monthlyYear, c.monthlyMonth, c.clock.Now())
	return n
}

// DailyTrips reports quota-consuming trips taken today.
func (c *Card) DailyTrips() int {
	n, _ := refreshDaily(c.dailyTrips, c.dailyDate, c.clock.Now())
	return n
}

func (c *Card) policy() policy { return policies[c.kind] }

// refreshDaily resets the daily counter when the calendar date changes.
func refreshDaily(count int, day time.Time, now time.Time) (int, time.Time) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if !day.Equal(today) {
		return 0, today
	}
	return count, day
}

// refreshMonthly resets the monthly counter when the month or year changes.
func refreshMonthly(count int, year int, month time.Month, now time.Time) (int, int, time.Month) {
	if year != now.Year() || month != now.Month() {
		return 0, now.Year(), now.Month()
	}
	return count, year, month
}
