package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/grindtime/api/internal/logger"
	"github.com/grindtime/api/internal/service"
	"github.com/grindtime/api/internal/store"
	"github.com/grindtime/api/internal/utils"
	"github.com/grindtime/api/models"
)

// saveRecord handles POST /api/records/{table}: a generic insert of the
// request body's fields into the named fitness table, scoped to the
// authenticated user.
func (h *Handler) saveRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in context")
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	table := chi.URLParam(r, "table")

	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	id, err := h.services.RecordService.SaveRecord(ctx, userID, table, fields)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTableNotAllowed), errors.Is(err, store.ErrNoSuchTable):
			log.Err(err).Str("table", table).Msg("unknown record table")
			writeError(w, "unknown record table", http.StatusNotFound)
			return
		case errors.Is(err, store.ErrEmptyPayload), errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Str("table", table).Msg("no valid fields to insert")
			writeError(w, "no valid fields to insert", http.StatusBadRequest)
			return
		default:
			log.Err(err).Str("table", table).Msg("unexpected error occurred during record insert")
			writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.RecordResponse{ID: id}, http.StatusCreated)
}

// latestRecord handles GET /api/records/{table}/latest: the most recent
// record of the named table owned by the authenticated user.
func (h *Handler) latestRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in context")
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	table := chi.URLParam(r, "table")

	row, err := h.services.RecordService.LatestRecord(ctx, userID, table)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTableNotAllowed),
			errors.Is(err, store.ErrNoSuchTable),
			errors.Is(err, store.ErrTableNotUserScoped):
			log.Err(err).Str("table", table).Msg("unknown record table")
			writeError(w, "unknown record table", http.StatusNotFound)
			return
		case errors.Is(err, store.ErrRecordNotFound):
			writeError(w, "no record found", http.StatusNotFound)
			return
		default:
			log.Err(err).Str("table", table).Msg("unexpected error occurred during record lookup")
			writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, row, http.StatusOK)
}
