package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/finwise-dev/finwise-backend/internal/dto"
	"github.com/finwise-dev/finwise-backend/internal/middleware"
	"github.com/finwise-dev/finwise-backend/internal/response"
)

type SummaryService interface {
	Get(ctx context.Context, uid string) (dto.SummaryResponse, error)
}

type summaryHandlers struct {
	ResponseHandler response.ResponseHandler
	SummarySvc      SummaryService
}

func NewSummaryHandlers(deps *Deps) *summaryHandlers {
	return &summaryHandlers{
		ResponseHandler: deps.ResponseHandler,
		SummarySvc:      deps.SummarySvc,
	}
}

func (h *summaryHandlers) SummaryRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Get)
	return r
}

func (h *summaryHandlers) Get(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	result, err := h.SummarySvc.Get(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteSuccess(w, http.StatusOK, result)
}
