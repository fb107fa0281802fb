package handlers

import (
	"context"
	"net/http"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

func (handler *HealthHandler) HealthzHandler(writer http.ResponseWriter, request *http.Request) {
	writer.WriteHeader(http.StatusOK)
	writer.Write([]byte("ok"))
}

func (handler *HealthHandler) ReadyzHandler(writer http.ResponseWriter, request *http.Request) {
	if handler.db != nil {
		if err := handler.db.Ping(request.Context()); err != nil {
			writer.WriteHeader(http.StatusServiceUnavailable)
			writer.Write([]byte("database unreachable"))
			return
		}
	}
	writer.WriteHeader(http.StatusOK)
	writer.Write([]byte("ready"))
}
