package handlers

import (
	"net/http"

	"go.uber.org/zap"

	services "trip-planner/service"
)

type CatalogHandler struct {
	refresher services.CatalogRefresher
	logger    *zap.Logger
}

func NewCatalogHandler(refresher services.CatalogRefresher, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{refresher: refresher, logger: logger}
}

// RefreshCatalog handles POST /v1/catalog/refresh
func (h *CatalogHandler) RefreshCatalog(w http.ResponseWriter, r *http.Request) {
	venues, err := h.refresher.RefreshCatalog(r.Context())
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	h.logger.Info("catalog refreshed on demand", zap.Int("venues", len(venues)))
	writeJSON(w, h.logger, http.StatusOK, map[string]int{"venues": len(venues)})
}
