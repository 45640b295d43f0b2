package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Rafail-Drakakis/Coins-collection/internal/logger"
	"github.com/Rafail-Drakakis/Coins-collection/internal/service"
	"github.com/Rafail-Drakakis/Coins-collection/internal/store"
	"github.com/Rafail-Drakakis/Coins-collection/models"
)

func (h *Handler) listCoins(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	coins, err := h.services.CoinService.ListCoins(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listCoins").Msg("error listing coins")
		writeError(w, err)
		return
	}

	// an empty collection is a JSON array, never null
	if coins == nil {
		coins = []models.Coin{}
	}

	writeJSON(w, http.StatusOK, coins)
}

func (h *Handler) addCoin(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.CoinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.addCoin").Msg("invalid JSON was passed")
		writeError(w, service.ErrNoDataProvided)
		return
	}

	status, err := h.services.CoinService.AddCoin(r.Context(), req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.addCoin").Msg("error adding coin")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, models.MutationResponse{Status: status})
}

func (h *Handler) removeCoin(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := strconv.ParseInt(chi.URLParam(r, "coinID"), 10, 64)
	if err != nil {
		log.Err(err).Str("func", "*Handler.removeCoin").Msg("non-numeric coin id")
		writeError(w, store.ErrCoinNotFound)
		return
	}

	status, err := h.services.CoinService.RemoveCoin(r.Context(), id)
	if err != nil {
		log.Err(err).Str("func", "*Handler.removeCoin").Msg("error removing coin")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, models.MutationResponse{Status: status})
}

func writeJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

// writeError serialises err into the {error} payload with the HTTP
// status it maps to.
func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFromError(err), models.MutationResponse{Error: messageFromError(err)})
}
