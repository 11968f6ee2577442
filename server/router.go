package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// VenueRoutes serves the catalog browsing endpoints.
type VenueRoutes interface {
	ListVenues(w http.ResponseWriter, r *http.Request)
	GetVenue(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

// ItineraryRoutes serves itinerary generation.
type ItineraryRoutes interface {
	GenerateItinerary(w http.ResponseWriter, r *http.Request)
	GetBudgetChart(w http.ResponseWriter, r *http.Request)
}

// CatalogRoutes serves catalog maintenance.
type CatalogRoutes interface {
	RefreshCatalog(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	venueHandler     VenueRoutes
	itineraryHandler ItineraryRoutes
	catalogHandler   CatalogRoutes
	router           *mux.Router
}

// NewRouter creates a router with the app's routes.
func NewRouter(
	venueHandler VenueRoutes,
	itineraryHandler ItineraryRoutes,
	catalogHandler CatalogRoutes,
	router *mux.Router) *Router {
	return &Router{
		venueHandler:     venueHandler,
		itineraryHandler: itineraryHandler,
		catalogHandler:   catalogHandler,
		router:           router,
	}
}

func (r *Router) RegisterRoutes() {
	// expects optional repeated ?category={nature|education|food|cafe}
	r.router.HandleFunc("/v1/venues", r.venueHandler.ListVenues).Methods("GET")
	r.router.HandleFunc("/v1/venues/{id}", r.venueHandler.GetVenue).Methods("GET")

	r.router.HandleFunc("/v1/itineraries", r.itineraryHandler.GenerateItinerary).Methods("POST")
	r.router.HandleFunc("/v1/itineraries/budget-chart", r.itineraryHandler.GetBudgetChart).Methods("POST")

	r.router.HandleFunc("/v1/catalog/refresh", r.catalogHandler.RefreshCatalog).Methods("POST")

	r.router.HandleFunc("/ping", r.venueHandler.Ping).Methods("GET")
}
