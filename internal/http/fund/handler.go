package fund

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/fundraise/internal/fund"
	"github.com/MrJamesThe3rd/fundraise/internal/http/identity"
	"github.com/MrJamesThe3rd/fundraise/internal/ledger"
	"github.com/MrJamesThe3rd/fundraise/internal/query"
)

type Handler struct {
	funds   *fund.Service
	ledgers *ledger.Service
	queries *query.Service
}

func NewHandler(funds *fund.Service, ledgers *ledger.Service, queries *query.Service) *Handler {
	return &Handler{funds: funds, ledgers: ledgers, queries: queries}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.listEligible)
	r.Get("/providers", h.listProviders)

	r.Group(func(r chi.Router) {
		r.Use(identity.Require)
		r.Post("/", h.create)
		r.Get("/mine", h.listMine)
		r.Patch("/{id}", h.updateTerms)
		r.Post("/{id}/verify", h.verify)
		r.Delete("/{id}", h.delete)
	})
}

func (h *Handler) listEligible(w http.ResponseWriter, r *http.Request) {
	funds, err := h.queries.ActiveFunds(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toEligibleList(funds)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) listProviders(w http.ResponseWriter, r *http.Request) {
	providers, err := h.queries.Providers(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toProviderList(providers)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type createFundRequest struct {
	ServiceID     uuid.UUID       `json:"service_id"`
	AmountNeeded  decimal.Decimal `json:"amount_needed"`
	ProofOfCharge string          `json:"proof_of_charge"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	callerID, ok := identity.FromContext(r.Context())
	if !ok {
		http.Error(w, "missing caller identity", http.StatusUnauthorized)
		return
	}

	var req createFundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	f, err := h.funds.Create(r.Context(), fund.CreateParams{
		RecipientID:   callerID,
		ServiceID:     req.ServiceID,
		AmountNeeded:  req.AmountNeeded,
		ProofOfCharge: req.ProofOfCharge,
	})
	if err != nil {
		if errors.Is(err, fund.ErrInvalidAmount) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(f)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) listMine(w http.ResponseWriter, r *http.Request) {
	callerID, ok := identity.FromContext(r.Context())
	if !ok {
		http.Error(w, "missing caller identity", http.StatusUnauthorized)
		return
	}

	funds, err := h.queries.RecipientFunds(r.Context(), callerID)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toRecipientList(funds)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateTermsRequest struct {
	AmountNeeded  decimal.Decimal `json:"amount_needed"`
	ProofOfCharge string          `json:"proof_of_charge"`
}

func (h *Handler) updateTerms(w http.ResponseWriter, r *http.Request) {
	callerID, ok := identity.FromContext(r.Context())
	if !ok {
		http.Error(w, "missing caller identity", http.StatusUnauthorized)
		return
	}

	fundID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateTermsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.funds.UpdateTerms(r.Context(), callerID, fundID, req.AmountNeeded, req.ProofOfCharge); err != nil {
		switch {
		case errors.Is(err, fund.ErrInvalidAmount):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, fund.ErrNotFound):
			http.Error(w, "fund not found", http.StatusNotFound)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) verify(w http.ResponseWriter, r *http.Request) {
	fundID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.funds.Verify(r.Context(), fundID); err != nil {
		if errors.Is(err, fund.ErrNotFound) {
			http.Error(w, "fund not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	callerID, ok := identity.FromContext(r.Context())
	if !ok {
		http.Error(w, "missing caller identity", http.StatusUnauthorized)
		return
	}

	fundID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.ledgers.DeleteFund(r.Context(), callerID, fundID); err != nil {
		if errors.Is(err, ledger.ErrNotFound) {
			http.Error(w, "fund not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
