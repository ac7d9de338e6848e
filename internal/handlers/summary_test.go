package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/finwise-dev/finwise-backend/internal/dto"
	"github.com/finwise-dev/finwise-backend/internal/errs"
)

type stubSummaryService struct {
	called bool
	uid    string
	resp   dto.SummaryResponse
	err    error
}

func (s *stubSummaryService) Get(ctx context.Context, uid string) (dto.SummaryResponse, error) {
	s.called = true
	s.uid = uid
	return s.resp, s.err
}

func TestSummaryHandlerSuccess(t *testing.T) {
	sumSvc := &stubSummaryService{resp: dto.SummaryResponse{
		FinancialBehaviorSummary: "steady saver",
		InvestmentSummary:        "regular index buys",
		InvestmentTips:           []string{"keep going"},
	}}
	resp := &stubResponseHandler{}
	h := NewSummaryHandlers(&Deps{ResponseHandler: resp, SummarySvc: sumSvc})

	req := authedRequest(http.MethodGet, "/summary", nil)
	rr := httptest.NewRecorder()

	h.Get(rr, req)

	if !sumSvc.called || sumSvc.uid != "uid-123" {
		t.Fatalf("service not called for the authed user: %+v", sumSvc)
	}
	if !resp.writeSuccessCalled || resp.writeSuccessStatus != http.StatusOK {
		t.Fatalf("WriteSuccess not called with status 200")
	}
	payload, ok := resp.writeSuccessData.(dto.SummaryResponse)
	if !ok || payload.FinancialBehaviorSummary != "steady saver" {
		t.Fatalf("unexpected response payload: %+v", resp.writeSuccessData)
	}
}

func TestSummaryHandlerServiceError(t *testing.T) {
	sumSvc := &stubSummaryService{err: errs.NewDatabaseError("get", "read failed", nil)}
	resp := &stubResponseHandler{}
	h := NewSummaryHandlers(&Deps{ResponseHandler: resp, SummarySvc: sumSvc})

	req := authedRequest(http.MethodGet, "/summary", nil)
	rr := httptest.NewRecorder()

	h.Get(rr, req)

	if !resp.handleErrorCalled {
		t.Fatalf("expected HandleError to be called")
	}
	if resp.writeSuccessCalled {
		t.Fatalf("WriteSuccess should not be called on error")
	}
}
