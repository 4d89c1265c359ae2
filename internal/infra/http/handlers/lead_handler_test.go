package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/plotvista/plotvista/internal/entity"
	"github.com/plotvista/plotvista/internal/usecase"
)

type MockLeadService struct {
	mock.Mock
}

func (m *MockLeadService) Create(ctx context.Context, caller entity.Caller, input usecase.CreateLeadInput) (*entity.Lead, error) {
	args := m.Called(ctx, caller, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadService) Update(ctx context.Context, caller entity.Caller, id string, input usecase.CreateLeadInput) (*entity.Lead, error) {
	args := m.Called(ctx, caller, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadService) Delete(ctx context.Context, caller entity.Caller, id string) error {
	args := m.Called(ctx, caller, id)
	return args.Error(0)
}

func (m *MockLeadService) TodayFollowUps(ctx context.Context, caller entity.Caller) ([]*entity.Lead, error) {
	args := m.Called(ctx, caller)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Lead), args.Error(1)
}

type MockLeadAssigner struct {
	mock.Mock
}

func (m *MockLeadAssigner) Execute(ctx context.Context, caller entity.Caller, leadID string, input usecase.AssignLeadInput) (*entity.Lead, error) {
	args := m.Called(ctx, caller, leadID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

type MockLeadVisibility struct {
	mock.Mock
}

func (m *MockLeadVisibility) VisibleLeads(ctx context.Context, caller entity.Caller) ([]*entity.Lead, error) {
	args := m.Called(ctx, caller)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Lead), args.Error(1)
}

func newLeadHandlerFixture() (*LeadHandler, *MockLeadService, *MockLeadAssigner, *MockLeadVisibility) {
	svc := new(MockLeadService)
	assigner := new(MockLeadAssigner)
	visibility := new(MockLeadVisibility)
	return NewLeadHandler(svc, assigner, visibility), svc, assigner, visibility
}

func TestLeadHandler_ListUsesCallerVisibility(t *testing.T) {
	handler, _, _, visibility := newLeadHandlerFixture()

	lead := entity.NewLead("Rajesh Kumar", "", "9876543212", entity.LeadSourceWebsite, "", "")
	visibility.On("VisibleLeads", mock.Anything, testCaller()).Return([]*entity.Lead{lead}, nil)

	rec := httptest.NewRecorder()
	handler.List(rec, authedRequest(http.MethodGet, "/api/leads", nil, testCaller()))

	assert.Equal(t, http.StatusOK, rec.Code)

	var got []*entity.Lead
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Len(t, got, 1)
	assert.Equal(t, lead.ID, got[0].ID)
	visibility.AssertExpectations(t)
}

func TestLeadHandler_ListEmptyIsJSONArray(t *testing.T) {
	handler, _, _, visibility := newLeadHandlerFixture()

	visibility.On("VisibleLeads", mock.Anything, mock.Anything).Return([]*entity.Lead(nil), nil)

	rec := httptest.NewRecorder()
	handler.List(rec, authedRequest(http.MethodGet, "/api/leads", nil, testCaller()))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestLeadHandler_AssignLeadForbidden(t *testing.T) {
	handler, _, assigner, _ := newLeadHandlerFixture()

	assigner.On("Execute", mock.Anything, mock.Anything, "lead-1", mock.Anything).
		Return(nil, &usecase.DomainError{Code: usecase.CodeForbidden, Message: "only admins can assign leads"})

	body, _ := json.Marshal(usecase.AssignLeadInput{SalespersonID: "sp-2"})
	req := authedRequest(http.MethodPatch, "/api/leads/lead-1/assign", body, testCaller())
	req = withURLParam(req, "id", "lead-1")

	rec := httptest.NewRecorder()
	handler.AssignLead(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestLeadHandler_DeleteNotFound(t *testing.T) {
	handler, svc, _, _ := newLeadHandlerFixture()

	svc.On("Delete", mock.Anything, mock.Anything, "missing").
		Return(&usecase.DomainError{Code: usecase.CodeNotFound, Message: "lead missing: not found"})

	req := authedRequest(http.MethodDelete, "/api/leads/missing", nil, testCaller())
	req = withURLParam(req, "id", "missing")

	rec := httptest.NewRecorder()
	handler.Delete(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}
