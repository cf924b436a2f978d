// README: Bike station handlers for checkout/return/status.
package handlers

import (
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/LeonYaquinto/TrabajoTarjeta2025YaquintoLuchini/internal/clock"
	"github.com/LeonYaquinto/TrabajoTarjeta2025YaquintoLuchini/internal/modules/bike"
	"github.com/LeonYaquinto/TrabajoTarjeta2025YaquintoLuchini/internal/modules/card"
)

type StationHandler struct {
	issuer *card.Issuer
	clock  clock.Clock
	mu     *sync.Mutex

	stations map[string]*bike.Station
}

func NewStationHandler(issuer *card.Issuer, clk clock.Clock, mu *sync.Mutex) *StationHandler {
	return &StationHandler{
		issuer:   issuer,
		clock:    clk,
		mu:       mu,
		stations: make(map[string]*bike.Station),
	}
}

type stationCardReq struct {
	CardID int64 `json:"card_id"`
}

func (h *StationHandler) Checkout(c *gin.Context) {
	h.act(c, func(s *bike.Station, crd *card.Card) bool { return s.Checkout(crd) },
		"checkout rejected")
}

func (h *StationHandler) Return(c *gin.Context) {
	h.act(c, func(s *bike.Station, crd *card.Card) bool { return s.Return(crd) },
		"no open checkout")
}

func (h *StationHandler) Status(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid card id")
		return
	}
	crd, err := h.issuer.Get(id)
	if err != nil {
		writeCardError(c, err)
		return
	}
	h.mu.Lock()
	s := h.station(c.Param("name"))
	resp := gin.H{
		"station":       s.Name(),
		"card_id":       crd.ID(),
		"checked_out":   s.HasCheckedOut(crd),
		"pending_fines": s.PendingFines(crd),
		"amount_due":    s.AmountDue(crd).StringFixed(2),
	}
	h.mu.Unlock()
	c.JSON(http.StatusOK, resp)
}

func (h *StationHandler) act(c *gin.Context, op func(*bike.Station, *card.Card) bool, rejectMsg string) {
	var req stationCardReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	crd, err := h.issuer.Get(req.CardID)
	if err != nil {
		writeCardError(c, err)
		return
	}
	h.mu.Lock()
	s := h.station(c.Param("name"))
	done := op(s, crd)
	balance := crd.Balance()
	fines := s.PendingFines(crd)
	h.mu.Unlock()
	if !done {
		writeError(c, http.StatusConflict, rejectMsg)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"station":       s.Name(),
		"card_id":       crd.ID(),
		"balance":       balance.StringFixed(2),
		"pending_fines": fines,
	})
}

// station lazily creates per-name stations; callers hold the mutex.
func (h *StationHandler) station(name string) *bike.Station {
	s, ok := h.stations[name]
	if !ok {
		s = bike.NewStation(name, h.clock)
		h.stations[name] = s
	}
	return s
}
