package handler

import (
	"context"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const pingTimeout = 2 * time.Second

// Pinger verifica uma dependência externa, como o banco de eventos
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthcheckHandler responde 200 enquanto o banco responder; sem banco configurado vale só o processo
func HealthcheckHandler(database Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status, code := "ok", http.StatusOK
		body := map[string]any{
			"time": time.Now().UTC().Format(time.RFC3339),
		}

		if database != nil {
			ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
			defer cancel()

			if err := database.Ping(ctx); err != nil {
				logrus.WithError(err).Warn("Banco de eventos não respondeu ao healthcheck")
				status, code = "degraded", http.StatusServiceUnavailable
				body["database"] = "unavailable"
			} else {
				body["database"] = "ok"
			}
		}
		body["status"] = status

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		if err := json.NewEncoder(w).Encode(body); err != nil {
			logrus.WithError(err).Warn("error responding to healthcheck")
		}
	})
}
