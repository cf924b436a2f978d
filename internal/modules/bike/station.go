// README: Bike station rental state machine; fines accrue here, money moves on the card.
package bike

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/LeonYaquinto/TrabajoTarjeta2025YaquintoLuchini/internal/clock"
	"github.com/LeonYaquinto/TrabajoTarjeta2025YaquintoLuchini/internal/modules/card"
)

var (
	// DailyFee is the flat charge per checkout; OverstayFine is added once
	// per late return, billed in full at the next checkout.
	DailyFee     = decimal.RequireFromString("1777.50")
	OverstayFine = decimal.NewFromInt(1000)
)

// MaxRental is how long a bike may be out before the return accrues a fine.
const MaxRental = 60 * time.Minute

// Station tracks open checkouts and pending fines per card ID. Fines persist
// across days until paid; they never reset at midnight. The station holds no
// balance of its own.
type Station struct {
	name  string
	clock clock.Clock

	checkouts map[int64]time.Time
	fines     map[int64]int
}

func NewStation(name string, clk clock.Clock) *Station {
	return &Station{
		name:      name,
		clock:     clk,
		checkouts: make(map[int64]time.Time),
		fines:     make(map[int64]int),
	}
}

func (s *Station) Name() string { return s.name }

// Checkout charges the daily fee plus every pending fine and hands out a
// bike. Fails without state change when the card is nil, already has a bike
// out, or cannot cover the charge.
func (s *Station) Checkout(c *card.Card) bool {
	if c == nil {
		return false
	}
	if _, out := s.checkouts[c.ID()]; out {
		return false
	}
	if !c.Charge(s.amountDue(c.ID())) {
		return false
	}
	s.checkouts[c.ID()] = s.clock.Now()
	s.fines[c.ID()] = 0
	return true
}

// Return closes the open checkout; past MaxRental it also accrues one fine
// to be billed at the next checkout.
func (s *Station) Return(c *card.Card) bool {
	if c == nil {
		return false
	}
	out, ok := s.checkouts[c.ID()]
	if !ok {
		return false
	}
	if s.clock.Now().Sub(out) > MaxRental {
		s.fines[c.ID()]++
	}
	delete(s.checkouts, c.ID())
	return true
}

// PendingFines reports unbilled late-return fines for the card.
func (s *Station) PendingFines(c *card.Card) int {
	if c == nil {
		return 0
	}
	return s.fines[c.ID()]
}

// HasCheckedOut reports whether the card currently has a bike out.
func (s *Station) HasCheckedOut(c *card.Card) bool {
	if c == nil {
		return false
	}
	_, out := s.checkouts[c.ID()]
	return out
}

// AmountDue is what the next checkout would charge: the daily fee plus all
// accumulated fines.
func (s *Station) AmountDue(c *card.Card) decimal.Decimal {
	if c == nil {
		return decimal.Zero
	}
	return s.amountDue(c.ID())
}

func (s *Station) amountDue(cardID int64) decimal.Decimal {
	return DailyFee.Add(OverstayFine.Mul(decimal.NewFromInt(int64(s.fines[cardID]))))
}
