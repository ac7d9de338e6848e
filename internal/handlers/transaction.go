package handlers

import (
	"context"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/finwise-dev/finwise-backend/internal/dto"
	"github.com/finwise-dev/finwise-backend/internal/errs"
	"github.com/finwise-dev/finwise-backend/internal/middleware"
	"github.com/finwise-dev/finwise-backend/internal/response"
)

// uploadSizeLimit caps statement uploads at 8 MiB.
const uploadSizeLimit = 8 << 20

type TransactionService interface {
	Upload(ctx context.Context, uid string, file io.Reader) (dto.UploadResult, error)
	List(ctx context.Context, uid string) (dto.TransactionList, error)
}

type transactionHandlers struct {
	ResponseHandler response.ResponseHandler
	TransactionSvc  TransactionService
}

func NewTransactionHandlers(deps *Deps) *transactionHandlers {
	return &transactionHandlers{
		ResponseHandler: deps.ResponseHandler,
		TransactionSvc:  deps.TransactionSvc,
	}
}

func (h *transactionHandlers) TransactionRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/upload", h.Upload)
	return r
}

func (h *transactionHandlers) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, uploadSizeLimit)

	file, _, err := r.FormFile("file")
	if err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("no file uploaded"))
		return
	}
	defer file.Close()

	uid := middleware.UID(r.Context())
	result, err := h.TransactionSvc.Upload(r.Context(), uid, file)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteSuccess(w, http.StatusOK, result)
}

func (h *transactionHandlers) List(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	result, err := h.TransactionSvc.List(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteSuccess(w, http.StatusOK, result)
}
