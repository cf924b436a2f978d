// README: HTTP server; registers routes and serializes domain mutations.
package http

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/LeonYaquinto/TrabajoTarjeta2025YaquintoLuchini/internal/clock"
	"github.com/LeonYaquinto/TrabajoTarjeta2025YaquintoLuchini/internal/http/handlers"
	"github.com/LeonYaquinto/TrabajoTarjeta2025YaquintoLuchini/internal/http/middleware"
	"github.com/LeonYaquinto/TrabajoTarjeta2025YaquintoLuchini/internal/modules/card"
)

type ServerDeps struct {
	Issuer *card.Issuer
	Clock  clock.Clock
	Log    *logrus.Logger
}

type Server struct {
	issuer *card.Issuer
	clock  clock.Clock
	log    *logrus.Logger

	// Cards, buses and stations are single-threaded by design; one mutex
	// serializes every mutation reaching the domain.
	mu sync.Mutex
}

func NewServer(deps ServerDeps) *Server {
	return &Server{issuer: deps.Issuer, clock: deps.Clock, log: deps.Log}
}

func (s *Server) Routes() http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middleware.Logging(s.log), middleware.Recovery(s.log))

	cardHandler := handlers.NewCardHandler(s.issuer, &s.mu)
	r.POST("/api/cards", cardHandler.Issue)
	r.GET("/api/cards/:id", cardHandler.Get)
	r.POST("/api/cards/:id/load", cardHandler.Load)

	tripHandler := handlers.NewTripHandler(s.issuer, s.clock, &s.mu)
	r.POST("/api/trips", tripHandler.Pay)

	stationHandler := handlers.NewStationHandler(s.issuer, s.clock, &s.mu)
	r.POST("/api/stations/:name/checkout", stationHandler.Checkout)
	r.POST("/api/stations/:name/return", stationHandler.Return)
	r.GET("/api/stations/:name/cards/:id", stationHandler.Status)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
