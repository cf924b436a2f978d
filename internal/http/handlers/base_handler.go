// README: Base handler utilities (JSON error helpers, card view, error mapping).
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LeonYaquinto/TrabajoTarjeta2025YaquintoLuchini/internal/modules/card"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(c *gin.Context, status int, msg string) {
	c.JSON(status, errorResponse{Error: msg})
}

func writeCardError(c *gin.Context, err error) {
	switch err {
	case card.ErrUnknownKind:
		writeError(c, http.StatusBadRequest, err.Error())
	case card.ErrNotFound:
		writeError(c, http.StatusNotFound, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

type cardView struct {
	ID            int64  `json:"card_id"`
	Kind          string `json:"kind"`
	Balance       string `json:"balance"`
	PendingCredit string `json:"pending_credit"`
	LastFare      string `json:"last_fare"`
	Transfer      bool   `json:"transfer"`
	MonthlyTrips  int    `json:"monthly_trips"`
	DailyTrips    int    `json:"daily_trips"`
}

func viewCard(crd *card.Card) cardView {
	return cardView{
		ID:            crd.ID(),
		Kind:          string(crd.Kind()),
		Balance:       crd.Balance().StringFixed(2),
		PendingCredit: crd.PendingCredit().StringFixed(2),
		LastFare:      crd.LastFare().StringFixed(2),
		Transfer:      crd.WasTransfer(),
		MonthlyTrips:  crd.MonthlyTrips(),
		DailyTrips:    crd.DailyTrips(),
	}
}
