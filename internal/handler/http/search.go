package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/grindtime/api/internal/adapter"
	"github.com/grindtime/api/internal/logger"
	"github.com/grindtime/api/internal/utils"
)

// searchFood handles GET /api/food/search?q=...&limit=... by proxying the
// FoodData Central search API with the server-side key.
func (h *Handler) searchFood(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	query := r.URL.Query().Get("q")
	if query == "" {
		writeError(w, "query parameter q is required", http.StatusBadRequest)
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	foods, err := h.foodSearcher.SearchFoods(ctx, query, limit)
	if err != nil {
		writeSearchError(w, log, err)
		return
	}

	utils.WriteJSON(w, foods, http.StatusOK)
}

// searchVideos handles GET /api/videos/search?q=...&limit=... by proxying
// the YouTube Data API search with the server-side key.
func (h *Handler) searchVideos(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	query := r.URL.Query().Get("q")
	if query == "" {
		writeError(w, "query parameter q is required", http.StatusBadRequest)
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	videos, err := h.videoSearcher.SearchVideos(ctx, query, limit)
	if err != nil {
		writeSearchError(w, log, err)
		return
	}

	utils.WriteJSON(w, videos, http.StatusOK)
}

func writeSearchError(w http.ResponseWriter, log *logger.Logger, err error) {
	switch {
	case errors.Is(err, adapter.ErrSearchUnavailable):
		log.Warn().Err(err).Msg("search endpoint is not configured")
		writeError(w, "search is not available", http.StatusServiceUnavailable)
	case errors.Is(err, adapter.ErrUpstreamFailed):
		log.Err(err).Msg("upstream search API failed")
		writeError(w, "upstream search failed", http.StatusBadGateway)
	default:
		log.Err(err).Msg("unexpected error occurred during search")
		writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
