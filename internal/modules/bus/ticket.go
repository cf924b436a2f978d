// README: Ticket, the immutable settlement receipt.
package bus

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/LeonYaquinto/TrabajoTarjeta2025YaquintoLuchini/internal/modules/card"
)

// Ticket records one successful bus settlement. Never mutated after issue.
type Ticket struct {
	Fare     decimal.Decimal
	Line     string
	Operator string
	Balance  decimal.Decimal
	IssuedAt time.Time
	CardKind card.Kind
	CardID   int64
	Transfer bool
}

func (t *Ticket) String() string {
	mark := ""
	if t.Transfer {
		mark = " (TRASBORDO)"
	}
	return fmt.Sprintf(
		"Boleto%s - %s\nLinea: %s - Empresa: %s\nTarjeta: %s (ID: %d)\nAbonado: $%s\nSaldo restante: $%s",
		mark,
		t.IssuedAt.Format("02/01/2006 15:04"),
		t.Line,
		t.Operator,
		t.CardKind.Label(),
		t.CardID,
		t.Fare.StringFixed(2),
		t.Balance.StringFixed(2),
	)
}
