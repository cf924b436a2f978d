// README: Card handlers for issue/load/query.
package handlers

import (
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/LeonYaquinto/TrabajoTarjeta2025YaquintoLuchini/internal/modules/card"
)

type CardHandler struct {
	issuer *card.Issuer
	mu     *sync.Mutex
}

func NewCardHandler(issuer *card.Issuer, mu *sync.Mutex) *CardHandler {
	return &CardHandler{issuer: issuer, mu: mu}
}

type issueCardReq struct {
	Kind string `json:"kind"`
}

func (h *CardHandler) Issue(c *gin.Context) {
	var req issueCardReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	crd, err := h.issuer.Issue(card.Kind(req.Kind))
	if err != nil {
		writeCardError(c, err)
		return
	}
	c.JSON(http.StatusCreated, viewCard(crd))
}

func (h *CardHandler) Get(c *gin.Context) {
	crd, ok := h.lookup(c)
	if !ok {
		return
	}
	h.mu.Lock()
	view := viewCard(crd)
	h.mu.Unlock()
	c.JSON(http.StatusOK, view)
}

type loadReq struct {
	Amount decimal.Decimal `json:"amount"`
}

func (h *CardHandler) Load(c *gin.Context) {
	crd, ok := h.lookup(c)
	if !ok {
		return
	}
	var req loadReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	h.mu.Lock()
	loaded := crd.Load(req.Amount)
	view := viewCard(crd)
	h.mu.Unlock()
	if !loaded {
		writeError(c, http.StatusUnprocessableEntity, "amount is not an accepted denomination")
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *CardHandler) lookup(c *gin.Context) (*card.Card, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid card id")
		return nil, false
	}
	crd, err := h.issuer.Get(id)
	if err != nil {
		writeCardError(c, err)
		return nil, false
	}
	return crd, true
}
