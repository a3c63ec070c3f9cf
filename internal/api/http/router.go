package httpapi

import (
	"net/http"

	"mealcrate/internal/logger"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func NewRouter(handler *Handler) http.Handler {
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	return cors.Default().Handler(r)
}

func StartServer(addr string, handler http.Handler, log *logger.Logger) {
	log.WithField("addr", addr).Info("customer analytics service starting")
	log.Fatal(http.ListenAndServe(addr, handler))
}
