package donation

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/fundraise/internal/http/identity"
	"github.com/MrJamesThe3rd/fundraise/internal/ledger"
	"github.com/MrJamesThe3rd/fundraise/internal/query"
)

type Handler struct {
	ledgers *ledger.Service
	queries *query.Service
}

func NewHandler(ledgers *ledger.Service, queries *query.Service) *Handler {
	return &Handler{ledgers: ledgers, queries: queries}
}

func (h *Handler) Routes(r chi.Router) {
	r.Use(identity.Require)
	r.Post("/", h.donate)
	r.Get("/", h.history)
	r.Patch("/{id}", h.amend)
	r.Delete("/{id}", h.retract)
}

// statusForError maps the ledger error taxonomy onto HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, ledger.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ledger.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ledger.ErrConflict), errors.Is(err, ledger.ErrIntegrity):
		return http.StatusConflict
	case errors.Is(err, ledger.ErrConnection):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

type donateRequest struct {
	FundID uuid.UUID       `json:"fund_id"`
	Amount decimal.Decimal `json:"amount"`
}

func (h *Handler) donate(w http.ResponseWriter, r *http.Request) {
	callerID, ok := identity.FromContext(r.Context())
	if !ok {
		http.Error(w, "missing caller identity", http.StatusUnauthorized)
		return
	}

	var req donateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	d, err := h.ledgers.Donate(r.Context(), req.FundID, callerID, req.Amount)
	if err != nil {
		http.Error(w, err.Error(), statusForError(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(d)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) history(w http.ResponseWriter, r *http.Request) {
	callerID, ok := identity.FromContext(r.Context())
	if !ok {
		http.Error(w, "missing caller identity", http.StatusUnauthorized)
		return
	}

	donations, err := h.queries.DonorHistory(r.Context(), callerID)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(donations)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type amendRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

func (h *Handler) amend(w http.ResponseWriter, r *http.Request) {
	callerID, ok := identity.FromContext(r.Context())
	if !ok {
		http.Error(w, "missing caller identity", http.StatusUnauthorized)
		return
	}

	donationID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req amendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	d, err := h.ledgers.AmendDonation(r.Context(), callerID, donationID, req.Amount)
	if err != nil {
		http.Error(w, err.Error(), statusForError(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(d)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) retract(w http.ResponseWriter, r *http.Request) {
	callerID, ok := identity.FromContext(r.Context())
	if !ok {
		http.Error(w, "missing caller identity", http.StatusUnauthorized)
		return
	}

	donationID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.ledgers.RetractDonation(r.Context(), callerID, donationID); err != nil {
		http.Error(w, err.Error(), statusForError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
