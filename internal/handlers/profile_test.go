package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/finwise-dev/finwise-backend/internal/dto"
	"github.com/finwise-dev/finwise-backend/internal/models"
)

type stubProfileService struct {
	called  bool
	uid     string
	goalSet string
	profile dto.Profile
	err     error
}

func (s *stubProfileService) Get(ctx context.Context, uid string) (dto.Profile, error) {
	s.called = true
	s.uid = uid
	return s.profile, s.err
}

func (s *stubProfileService) SetInvestmentGoal(ctx context.Context, uid, goal string) error {
	s.called = true
	s.uid = uid
	s.goalSet = goal
	return s.err
}

func TestProfileGetHandler(t *testing.T) {
	profSvc := &stubProfileService{profile: dto.Profile{FinancialBehavior: models.BehaviorSaver, InvestmentGoal: "retire early"}}
	resp := &stubResponseHandler{}
	h := NewProfileHandlers(&Deps{ResponseHandler: resp, ProfileSvc: profSvc})

	req := authedRequest(http.MethodGet, "/profile", nil)
	rr := httptest.NewRecorder()

	h.Get(rr, req)

	if !profSvc.called || profSvc.uid != "uid-123" {
		t.Fatalf("service not called for the authed user: %+v", profSvc)
	}
	payload, ok := resp.writeSuccessData.(dto.Profile)
	if !ok || payload.InvestmentGoal != "retire early" {
		t.Fatalf("unexpected response payload: %+v", resp.writeSuccessData)
	}
}

func TestProfileUpdateHandler(t *testing.T) {
	profSvc := &stubProfileService{}
	resp := &stubResponseHandler{}
	h := NewProfileHandlers(&Deps{ResponseHandler: resp, ProfileSvc: profSvc})

	body := `{"investmentGoal":"buy a house"}`
	req := authedRequest(http.MethodPut, "/profile", strings.NewReader(body))
	rr := httptest.NewRecorder()

	h.Update(rr, req)

	if profSvc.goalSet != "buy a house" {
		t.Fatalf("goal not passed to service: %q", profSvc.goalSet)
	}
	if !resp.writeSuccessCalled || resp.writeSuccessStatus != http.StatusOK {
		t.Fatalf("WriteSuccess not called with status 200")
	}
}

func TestProfileUpdateHandlerInvalidJSON(t *testing.T) {
	profSvc := &stubProfileService{}
	resp := &stubResponseHandler{}
	h := NewProfileHandlers(&Deps{ResponseHandler: resp, ProfileSvc: profSvc})

	req := authedRequest(http.MethodPut, "/profile", strings.NewReader("not-json"))
	rr := httptest.NewRecorder()

	h.Update(rr, req)

	if profSvc.called {
		t.Fatalf("service should not be called on invalid JSON")
	}
	if !resp.handleErrorCalled {
		t.Fatalf("expected HandleError to be called")
	}
}
