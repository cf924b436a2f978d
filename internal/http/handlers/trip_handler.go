// README: Trip handler; settles a bus boarding and returns the ticket.
package handlers

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/LeonYaquinto/TrabajoTarjeta2025YaquintoLuchini/internal/clock"
	"github.com/LeonYaquinto/TrabajoTarjeta2025YaquintoLuchini/internal/modules/bus"
	"github.com/LeonYaquinto/TrabajoTarjeta2025YaquintoLuchini/internal/modules/card"
)

type TripHandler struct {
	issuer *card.Issuer
	clock  clock.Clock
	mu     *sync.Mutex
}

func NewTripHandler(issuer *card.Issuer, clk clock.Clock, mu *sync.Mutex) *TripHandler {
	return &TripHandler{issuer: issuer, clock: clk, mu: mu}
}

type payTripReq struct {
	CardID    int64  `json:"card_id"`
	Line      string `json:"line"`
	Operator  string `json:"operator"`
	Intercity bool   `json:"intercity"`
}

type ticketView struct {
	Fare     string `json:"fare"`
	Line     string `json:"line"`
	Operator string `json:"operator"`
	Balance  string `json:"balance"`
	IssuedAt string `json:"issued_at"`
	CardKind string `json:"card_kind"`
	CardID   int64  `json:"card_id"`
	Transfer bool   `json:"transfer"`
}

func (h *TripHandler) Pay(c *gin.Context) {
	var req payTripReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Line == "" {
		writeError(c, http.StatusBadRequest, "missing line")
		return
	}
	crd, err := h.issuer.Get(req.CardID)
	if err != nil {
		writeCardError(c, err)
		return
	}
	b := bus.New(req.Line, req.Operator, req.Intercity, h.clock)
	h.mu.Lock()
	ticket := b.Settle(crd)
	h.mu.Unlock()
	if ticket == nil {
		writeError(c, http.StatusPaymentRequired, "trip rejected")
		return
	}
	c.JSON(http.StatusCreated, ticketView{
		Fare:     ticket.Fare.StringFixed(2),
		Line:     ticket.Line,
		Operator: ticket.Operator,
		Balance:  ticket.Balance.StringFixed(2),
		IssuedAt: ticket.IssuedAt.Format(time.RFC3339),
		CardKind: string(ticket.CardKind),
		CardID:   ticket.CardID,
		Transfer: ticket.Transfer,
	})
}
