package handler

import (
	"net/http"
	"sync"

	"tourism/config"
	"tourism/di"
	"tourism/shared/logger"
	thttp "tourism/transport/http"
)

var (
	server *thttp.HTTP
	once   sync.Once
)

// Handler is the serverless entrypoint. The service graph is built on the first request and
// reused by warm invocations.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.SetLogLevel(cfg)

		server = di.InitializeService()
	})

	server.ServeHTTP(w, r)
}
