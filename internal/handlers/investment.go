package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/finwise-dev/finwise-backend/internal/dto"
	"github.com/finwise-dev/finwise-backend/internal/middleware"
	"github.com/finwise-dev/finwise-backend/internal/models"
	"github.com/finwise-dev/finwise-backend/internal/response"
)

type InvestmentService interface {
	Create(ctx context.Context, uid string, req dto.CreateInvestmentRequest) (*models.Investment, error)
	List(ctx context.Context, uid string) ([]*models.Investment, error)
}

type investmentHandlers struct {
	ResponseHandler response.ResponseHandler
	InvestmentSvc   InvestmentService
}

func NewInvestmentHandlers(deps *Deps) *investmentHandlers {
	return &investmentHandlers{
		ResponseHandler: deps.ResponseHandler,
		InvestmentSvc:   deps.InvestmentSvc,
	}
}

func (h *investmentHandlers) InvestmentRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Create)
	return r
}

func (h *investmentHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var body dto.CreateInvestmentRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	uid := middleware.UID(r.Context())
	inv, err := h.InvestmentSvc.Create(r.Context(), uid, body)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteSuccess(w, http.StatusCreated, inv)
}

func (h *investmentHandlers) List(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	invs, err := h.InvestmentSvc.List(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteSuccess(w, http.StatusOK, invs)
}
