package handler

import (
	"indivoyage/config"
	"indivoyage/di"
	"indivoyage/shared/logger"
	"indivoyage/shared/timezone"
	"indivoyage/transport/http/response"
	"net/http"
	"sync"
)

var (
	handler  http.HandlerFunc
	initErr  error
	initOnce sync.Once
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	initOnce.Do(func() {
		cfg := config.Get()

		logger.InitLogger(cfg)

		logger.SetLogLevel(cfg)

		timezone.Init(cfg)

		service, err := di.InitializeService()
		if err != nil {
			initErr = err

			return
		}

		handler = service.Adaptor()
	})

	if initErr != nil {
		logger.ErrorWithStack(initErr)
		response.WithUnhealthy(w)

		return
	}

	handler.ServeHTTP(w, r)
}
