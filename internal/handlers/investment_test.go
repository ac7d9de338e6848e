package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/finwise-dev/finwise-backend/internal/dto"
	"github.com/finwise-dev/finwise-backend/internal/errs"
	"github.com/finwise-dev/finwise-backend/internal/models"
)

type stubInvestmentService struct {
	called  bool
	uid     string
	req     dto.CreateInvestmentRequest
	created *models.Investment
	list    []*models.Investment
	err     error
}

func (s *stubInvestmentService) Create(ctx context.Context, uid string, req dto.CreateInvestmentRequest) (*models.Investment, error) {
	s.called = true
	s.uid = uid
	s.req = req
	return s.created, s.err
}

func (s *stubInvestmentService) List(ctx context.Context, uid string) ([]*models.Investment, error) {
	s.called = true
	s.uid = uid
	return s.list, s.err
}

func TestCreateInvestmentHandlerSuccess(t *testing.T) {
	invSvc := &stubInvestmentService{created: &models.Investment{InvestmentID: "inv-1", Company: "ACME"}}
	resp := &stubResponseHandler{}
	h := NewInvestmentHandlers(&Deps{ResponseHandler: resp, InvestmentSvc: invSvc})

	body := `{"dateInvested":"2024-03-01","type":"stock","company":"ACME","amount":500}`
	req := authedRequest(http.MethodPost, "/investments", strings.NewReader(body))
	rr := httptest.NewRecorder()

	h.Create(rr, req)

	if !invSvc.called || invSvc.uid != "uid-123" {
		t.Fatalf("service not called for the authed user: %+v", invSvc)
	}
	if invSvc.req.Company != "ACME" || invSvc.req.Amount != 500 {
		t.Fatalf("request body not decoded: %+v", invSvc.req)
	}
	if !resp.writeSuccessCalled || resp.writeSuccessStatus != http.StatusCreated {
		t.Fatalf("WriteSuccess not called with status 201")
	}
}

func TestCreateInvestmentHandlerInvalidJSON(t *testing.T) {
	invSvc := &stubInvestmentService{}
	resp := &stubResponseHandler{}
	h := NewInvestmentHandlers(&Deps{ResponseHandler: resp, InvestmentSvc: invSvc})

	req := authedRequest(http.MethodPost, "/investments", strings.NewReader("not-json"))
	rr := httptest.NewRecorder()

	h.Create(rr, req)

	if invSvc.called {
		t.Fatalf("service should not be called on invalid JSON")
	}
	if !resp.handleErrorCalled {
		t.Fatalf("expected HandleError to be called")
	}
}

func TestCreateInvestmentHandlerValidationError(t *testing.T) {
	invSvc := &stubInvestmentService{err: errs.NewValidationError("company is required")}
	resp := &stubResponseHandler{}
	h := NewInvestmentHandlers(&Deps{ResponseHandler: resp, InvestmentSvc: invSvc})

	body := `{"dateInvested":"2024-03-01","type":"stock","company":"","amount":500}`
	req := authedRequest(http.MethodPost, "/investments", strings.NewReader(body))
	rr := httptest.NewRecorder()

	h.Create(rr, req)

	var valErr *errs.ValidationError
	if !errors.As(resp.handleError, &valErr) {
		t.Fatalf("expected ValidationError passed through, got %T", resp.handleError)
	}
}

func TestListInvestmentsHandler(t *testing.T) {
	invSvc := &stubInvestmentService{list: []*models.Investment{{InvestmentID: "inv-1"}}}
	resp := &stubResponseHandler{}
	h := NewInvestmentHandlers(&Deps{ResponseHandler: resp, InvestmentSvc: invSvc})

	req := authedRequest(http.MethodGet, "/investments", nil)
	rr := httptest.NewRecorder()

	h.List(rr, req)

	if !resp.writeSuccessCalled || resp.writeSuccessStatus != http.StatusOK {
		t.Fatalf("WriteSuccess not called with status 200")
	}
	list, ok := resp.writeSuccessData.([]*models.Investment)
	if !ok || len(list) != 1 {
		t.Fatalf("unexpected response payload: %+v", resp.writeSuccessData)
	}
}
