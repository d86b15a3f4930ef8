// @title IndiVoyage API
// @version 1.0
// @description Travel site for India: destinations, exclusive offers, trip cost estimates and booking.
// @contact.name IndiVoyage Support
// @contact.email support@exploreindia.com
// @host localhost:8080
// @BasePath /
package main

import (
	"indivoyage/config"
	"indivoyage/di"
	_ "indivoyage/docs"
	"indivoyage/shared/logger"
	"indivoyage/shared/timezone"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	timezone.Init(cfg)

	http, err := di.InitializeService()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize service")
	}

	http.Serve()
}
