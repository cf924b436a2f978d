// README: Bus trip orchestrator; gates the horario and issues tickets.
package bus

import (
	"github.com/LeonYaquinto/TrabajoTarjeta2025YaquintoLuchini/internal/clock"
	"github.com/LeonYaquinto/TrabajoTarjeta2025YaquintoLuchini/internal/modules/card"
)

// Bus identifies one line run by one operator. It is stateless across trips;
// all trip state lives on the card.
type Bus struct {
	line      string
	operator  string
	intercity bool
	clock     clock.Clock
}

func New(line, operator string, intercity bool, clk clock.Clock) *Bus {
	return &Bus{line: line, operator: operator, intercity: intercity, clock: clk}
}

func (b *Bus) Line() string     { return b.line }
func (b *Bus) Operator() string { return b.operator }
func (b *Bus) Intercity() bool  { return b.intercity }

// Settle charges one trip to the card and returns the receipt, or nil when
// the card is missing, outside its payment window, or the settlement fails.
func (b *Bus) Settle(c *card.Card) *Ticket {
	if c == nil {
		return nil
	}
	if !c.CanPayNow() {
		return nil
	}
	if !c.SettleTrip(b.line, b.intercity) {
		return nil
	}
	return &Ticket{
		Fare:     c.LastFare(),
		Line:     b.line,
		Operator: b.operator,
		Balance:  c.Balance(),
		IssuedAt: b.clock.Now(),
		CardKind: c.Kind(),
		CardID:   c.ID(),
		Transfer: c.WasTransfer(),
	}
}
