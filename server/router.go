package server

import (
	"net/http"

	"github.com/gorilla/mux"

	"investmint-dashboard/server/handlers"
)

type Router struct {
	pageHandler *handlers.PageHandler
	router      *mux.Router
}

// NewRouter creates a router with the app’s routes.
func NewRouter(
	pageHandler *handlers.PageHandler,
	router *mux.Router) *Router {
	return &Router{
		pageHandler: pageHandler,
		router:      router,
	}
}

func (r *Router) RegisterRoutes() {
	r.router.Use(RequestID, AccessLog, NoStore)

	// pages accept ?sort={date|temperatureC|temperatureF|summary}&dir={asc|desc}
	r.router.HandleFunc(handlers.DASHBOARD_PATH, r.pageHandler.Dashboard).Methods(http.MethodGet, http.MethodHead)
	r.router.HandleFunc(handlers.WEATHER_PATH, r.pageHandler.Weather).Methods(http.MethodGet, http.MethodHead)
	r.router.HandleFunc(handlers.CHART_PATH, r.pageHandler.WeatherChart).Methods(http.MethodGet, http.MethodHead)
	r.router.HandleFunc(handlers.DEBUG_PATH, r.pageHandler.Debug).Methods(http.MethodGet, http.MethodHead)

	r.router.HandleFunc(handlers.HEALTH_PATH, r.pageHandler.Health).Methods(http.MethodGet)
}
