// README: Entry point; loads config, wires the issuer, starts the HTTP server.
package main

import (
	"net/http"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/LeonYaquinto/TrabajoTarjeta2025YaquintoLuchini/internal/clock"
	"github.com/LeonYaquinto/TrabajoTarjeta2025YaquintoLuchini/internal/config"
	httptransport "github.com/LeonYaquinto/TrabajoTarjeta2025YaquintoLuchini/internal/http"
	"github.com/LeonYaquinto/TrabajoTarjeta2025YaquintoLuchini/internal/modules/card"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal(err)
	}

	log := logrus.New()
	if level, err := logrus.ParseLevel(cfg.Log.Level); err == nil {
		log.SetLevel(level)
	}

	issuer := card.NewIssuer(clock.System{})

	server := httptransport.NewServer(httptransport.ServerDeps{
		Issuer: issuer,
		Clock:  clock.System{},
		Log:    log,
	})

	log.WithField("addr", cfg.HTTP.Addr).Info("sube-api listening")
	if err := http.ListenAndServe(cfg.HTTP.Addr, server.Routes()); err != nil {
		log.Fatal(err)
	}
}
