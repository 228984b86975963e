package handler

import (
	"net/http"
	"pitch/config"
	"pitch/di"
	"pitch/shared/logger"
	"pitch/transport/http/response"
	"sync"

	pitchHTTP "pitch/transport/http"
)

var (
	server  *pitchHTTP.HTTP
	initErr error
	once    sync.Once
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger(cfg.Server.Env)

		logger.SetLogLevel(cfg)

		server, initErr = di.InitializeService()
	})

	if initErr != nil {
		response.WithError(w, initErr)

		return
	}

	server.ServeHTTP(w, r)
}
