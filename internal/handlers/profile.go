package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/finwise-dev/finwise-backend/internal/dto"
	"github.com/finwise-dev/finwise-backend/internal/middleware"
	"github.com/finwise-dev/finwise-backend/internal/response"
)

type ProfileService interface {
	Get(ctx context.Context, uid string) (dto.Profile, error)
	SetInvestmentGoal(ctx context.Context, uid, goal string) error
}

type profileHandlers struct {
	ResponseHandler response.ResponseHandler
	ProfileSvc      ProfileService
}

func NewProfileHandlers(deps *Deps) *profileHandlers {
	return &profileHandlers{
		ResponseHandler: deps.ResponseHandler,
		ProfileSvc:      deps.ProfileSvc,
	}
}

func (h *profileHandlers) ProfileRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Get)
	r.Put("/", h.Update)
	return r
}

func (h *profileHandlers) Get(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	profile, err := h.ProfileSvc.Get(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteSuccess(w, http.StatusOK, profile)
}

func (h *profileHandlers) Update(w http.ResponseWriter, r *http.Request) {
	var body dto.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	uid := middleware.UID(r.Context())
	if err := h.ProfileSvc.SetInvestmentGoal(r.Context(), uid, body.InvestmentGoal); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteSuccess(w, http.StatusOK, nil)
}
