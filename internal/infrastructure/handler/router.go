package handler

import (
	"github.com/damon-houk/expense-tracker/internal/infrastructure/logger"
	"github.com/damon-houk/expense-tracker/internal/infrastructure/middleware"
	"github.com/gorilla/mux"
)

// NewRouter wires the tracker routes behind the request middleware
func NewRouter(h *TrackerHandler, log logger.Logger) *mux.Router {
	if log == nil {
		log = logger.GetDefaultLogger()
	}

	router := mux.NewRouter()
	router.Use(middleware.RequestID, middleware.Recover(log), middleware.Logging(log))
	h.RegisterRoutes(router)
	return router
}
