// README: Card issuer; owns the ID sequence and the in-process registry.
package card

import (
	"errors"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/LeonYaquinto/TrabajoTarjeta2025YaquintoLuchini/internal/clock"
)

var (
	ErrUnknownKind = errors.New("unknown card kind")
	ErrNotFound    = errors.New("card not found")
)

// Issuer hands out cards with monotonically increasing IDs and keeps every
// issued card for later lookup. The registry itself is safe for concurrent
// reads; mutating a Card still requires external serialization.
type Issuer struct {
	clock clock.Clock

	mu    sync.RWMutex
	seq   int64
	cards map[int64]*Card
}

func NewIssuer(clk clock.Clock) *Issuer {
	return &Issuer{clock: clk, cards: make(map[int64]*Card)}
}

func (i *Issuer) Issue(kind Kind) (*Card, error) {
	if !kind.Valid() {
		return nil, ErrUnknownKind
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	i.seq++
	c := &Card{
		id:       i.seq,
		kind:     kind,
		clock:    i.clock,
		balance:  decimal.Zero,
		pending:  decimal.Zero,
		lastFare: decimal.Zero,
	}
	i.cards[c.id] = c
	return c, nil
}

func (i *Issuer) Get(id int64) (*Card, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()
	c, ok := i.cards[id]
	if !ok {
		return nil, ErrNotFound
	}
	return c, nil
}
