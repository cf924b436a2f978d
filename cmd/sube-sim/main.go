// README: Deterministic day-in-the-life simulation on a manual clock.
package main

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/LeonYaquinto/TrabajoTarjeta2025YaquintoLuchini/internal/clock"
	"github.com/LeonYaquinto/TrabajoTarjeta2025YaquintoLuchini/internal/modules/bike"
	"github.com/LeonYaquinto/TrabajoTarjeta2025YaquintoLuchini/internal/modules/bus"
	"github.com/LeonYaquinto/TrabajoTarjeta2025YaquintoLuchini/internal/modules/card"
)

func main() {
	log := logrus.New()

	// Tuesday morning, well inside every payment window.
	clk := clock.NewManual(time.Date(2025, time.September, 2, 8, 0, 0, 0, time.Local))
	issuer := card.NewIssuer(clk)

	standard, _ := issuer.Issue(card.KindStandard)
	student, _ := issuer.Issue(card.KindHalfFare)

	standard.Load(decimal.NewFromInt(10000))
	student.Load(decimal.NewFromInt(5000))

	linea120 := bus.New("120", "Rosario Bus", false, clk)
	linea115 := bus.New("115", "Semtur", false, clk)

	for _, trip := range []struct {
		b *bus.Bus
		c *card.Card
	}{
		{linea120, standard},
		{linea115, standard}, // within the hour, different line: free transfer
		{linea120, student},
	} {
		if t := trip.b.Settle(trip.c); t != nil {
			log.Info("\n" + t.String())
		} else {
			log.WithField("line", trip.b.Line()).Warn("trip rejected")
		}
		clk.Advance(10 * time.Minute)
	}

	station := bike.NewStation("Plaza Sarmiento", clk)
	station.Checkout(standard)
	clk.Advance(90 * time.Minute) // overstay: fine accrues on return
	station.Return(standard)
	log.WithFields(logrus.Fields{
		"fines":    station.PendingFines(standard),
		"next_due": station.AmountDue(standard).StringFixed(2),
		"balance":  standard.Balance().StringFixed(2),
	}).Info("bike rental settled")
}
