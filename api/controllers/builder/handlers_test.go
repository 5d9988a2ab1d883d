package builder

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	buildersvc "github.com/savannatrails/safari-backend/internal/builder"
	pkgerrors "github.com/savannatrails/safari-backend/pkg/errors"
	"github.com/savannatrails/safari-backend/pkg/logger"
)

type testBuilderService struct {
	openFn    func(ctx context.Context) (*buildersvc.SummaryDTO, error)
	closeFn   func(ctx context.Context, sessionID string) error
	summaryFn func(ctx context.Context, sessionID string) (*buildersvc.SummaryDTO, error)
	toggleFn  func(ctx context.Context, sessionID string, input buildersvc.ToggleInput) (*buildersvc.SummaryDTO, error)
	nightsFn  func(ctx context.Context, sessionID, itemID string, nights int) (*buildersvc.SummaryDTO, error)
	submitFn  func(ctx context.Context, sessionID string, input buildersvc.SubmitInput) (*buildersvc.SubmitResult, error)
}

func (s *testBuilderService) OpenSession(ctx context.Context) (*buildersvc.SummaryDTO, error) {
	if s.openFn != nil {
		return s.openFn(ctx)
	}
	return &buildersvc.SummaryDTO{SessionID: uuid.NewString()}, nil
}

func (s *testBuilderService) CloseSession(ctx context.Context, sessionID string) error {
	if s.closeFn != nil {
		return s.closeFn(ctx, sessionID)
	}
	return nil
}

func (s *testBuilderService) Summary(ctx context.Context, sessionID string) (*buildersvc.SummaryDTO, error) {
	if s.summaryFn != nil {
		return s.summaryFn(ctx, sessionID)
	}
	return &buildersvc.SummaryDTO{SessionID: sessionID}, nil
}

func (s *testBuilderService) Toggle(ctx context.Context, sessionID string, input buildersvc.ToggleInput) (*buildersvc.SummaryDTO, error) {
	if s.toggleFn != nil {
		return s.toggleFn(ctx, sessionID, input)
	}
	return &buildersvc.SummaryDTO{SessionID: sessionID}, nil
}

func (s *testBuilderService) UpdateNights(ctx context.Context, sessionID, itemID string, nights int) (*buildersvc.SummaryDTO, error) {
	if s.nightsFn != nil {
		return s.nightsFn(ctx, sessionID, itemID, nights)
	}
	return &buildersvc.SummaryDTO{SessionID: sessionID}, nil
}

func (s *testBuilderService) Submit(ctx context.Context, sessionID string, input buildersvc.SubmitInput) (*buildersvc.SubmitResult, error) {
	if s.submitFn != nil {
		return s.submitFn(ctx, sessionID, input)
	}
	return &buildersvc.SubmitResult{PackageID: uuid.New()}, nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
}

func sessionRequest(method, path, sessionID, body string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("sessionID", sessionID)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
}

func TestSessionOpenReturnsCreated(t *testing.T) {
	sessionID := uuid.NewString()
	svc := &testBuilderService{
		openFn: func(ctx context.Context) (*buildersvc.SummaryDTO, error) {
			return &buildersvc.SummaryDTO{SessionID: sessionID, Items: []buildersvc.ItemView{}}, nil
		},
	}

	resp := httptest.NewRecorder()
	SessionOpen(svc, testLogger())(resp, httptest.NewRequest(http.MethodPost, "/api/v1/builder/session", nil))

	if resp.Code != http.StatusCreated {
		t.Fatalf("unexpected status %d", resp.Code)
	}
	var envelope struct {
		Data buildersvc.SummaryDTO `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if envelope.Data.SessionID != sessionID {
		t.Fatalf("unexpected session id %q", envelope.Data.SessionID)
	}
}

func TestToggleDecodesPayload(t *testing.T) {
	sessionID := uuid.NewString()
	catalogID := uuid.New()
	var got buildersvc.ToggleInput
	svc := &testBuilderService{
		toggleFn: func(ctx context.Context, sid string, input buildersvc.ToggleInput) (*buildersvc.SummaryDTO, error) {
			if sid != sessionID {
				t.Fatalf("unexpected session %q", sid)
			}
			got = input
			return &buildersvc.SummaryDTO{SessionID: sid}, nil
		},
	}

	body := `{"type":"lodge","catalog_id":"` + catalogID.String() + `","nights":3}`
	resp := httptest.NewRecorder()
	Toggle(svc, testLogger())(resp, sessionRequest(http.MethodPost, "/api/v1/builder/"+sessionID+"/toggle", sessionID, body))

	if resp.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", resp.Code, resp.Body.String())
	}
	if got.CatalogID != catalogID {
		t.Fatalf("unexpected catalog id %s", got.CatalogID)
	}
	if got.Nights == nil || *got.Nights != 3 {
		t.Fatalf("unexpected nights %v", got.Nights)
	}
}

func TestToggleRejectsUnknownFields(t *testing.T) {
	resp := httptest.NewRecorder()
	body := `{"type":"lodge","catalog_id":"` + uuid.NewString() + `","bogus":true}`
	Toggle(&testBuilderService{}, testLogger())(resp, sessionRequest(http.MethodPost, "/toggle", uuid.NewString(), body))

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestUpdateNightsValidatesBody(t *testing.T) {
	resp := httptest.NewRecorder()
	UpdateNights(&testBuilderService{}, testLogger())(resp, sessionRequest(http.MethodPatch, "/items/x", uuid.NewString(), `{"nights":0}`))

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestSubmitAllowsEmptyBody(t *testing.T) {
	called := false
	svc := &testBuilderService{
		submitFn: func(ctx context.Context, sessionID string, input buildersvc.SubmitInput) (*buildersvc.SubmitResult, error) {
			called = true
			if input.Participants != nil {
				t.Fatal("expected no participant override")
			}
			return &buildersvc.SubmitResult{PackageID: uuid.New()}, nil
		},
	}

	resp := httptest.NewRecorder()
	Submit(svc, testLogger())(resp, sessionRequest(http.MethodPost, "/submit", uuid.NewString(), ""))

	if resp.Code != http.StatusCreated {
		t.Fatalf("unexpected status %d: %s", resp.Code, resp.Body.String())
	}
	if !called {
		t.Fatal("expected service called")
	}
}

func TestSubmitParsesDateOverrides(t *testing.T) {
	var got buildersvc.SubmitInput
	svc := &testBuilderService{
		submitFn: func(ctx context.Context, sessionID string, input buildersvc.SubmitInput) (*buildersvc.SubmitResult, error) {
			got = input
			return &buildersvc.SubmitResult{PackageID: uuid.New()}, nil
		},
	}

	body := `{"name":"Honeymoon","start_date":"2026-10-01","end_date":"2026-10-08","participants":4}`
	resp := httptest.NewRecorder()
	Submit(svc, testLogger())(resp, sessionRequest(http.MethodPost, "/submit", uuid.NewString(), body))

	if resp.Code != http.StatusCreated {
		t.Fatalf("unexpected status %d: %s", resp.Code, resp.Body.String())
	}
	if got.Name == nil || *got.Name != "Honeymoon" {
		t.Fatalf("unexpected name %v", got.Name)
	}
	if got.StartDate == nil || got.StartDate.Format("2006-01-02") != "2026-10-01" {
		t.Fatalf("unexpected start date %v", got.StartDate)
	}
	if got.Participants == nil || *got.Participants != 4 {
		t.Fatalf("unexpected participants %v", got.Participants)
	}
}

func TestSubmitConflictWhilePending(t *testing.T) {
	svc := &testBuilderService{
		submitFn: func(ctx context.Context, sessionID string, input buildersvc.SubmitInput) (*buildersvc.SubmitResult, error) {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "submission already in progress")
		},
	}

	resp := httptest.NewRecorder()
	Submit(svc, testLogger())(resp, sessionRequest(http.MethodPost, "/submit", uuid.NewString(), ""))

	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", resp.Code)
	}
}
