package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/plotvista/plotvista/internal/entity"
	"github.com/plotvista/plotvista/internal/usecase"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.AuthOutput), args.Error(1)
}

func TestAuthHandler_LoginReturnsTokenAndUser(t *testing.T) {
	svc := new(MockAuthService)
	handler := NewAuthHandler(svc)

	input := usecase.LoginInput{Email: "admin@example.com", Password: "password123"}
	svc.On("Login", mock.Anything, input).Return(&usecase.AuthOutput{
		Token: "jwt-token",
		User:  usecase.AuthUser{ID: "u-1", Name: "Admin User", Email: input.Email, Role: entity.RoleAdmin},
	}, nil)

	body, _ := json.Marshal(input)
	rec := httptest.NewRecorder()
	handler.Login(rec, httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body)))

	assert.Equal(t, http.StatusOK, rec.Code)

	var got usecase.AuthOutput
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "jwt-token", got.Token)
	assert.Equal(t, entity.RoleAdmin, got.User.Role)
}

func TestAuthHandler_BadCredentialsAre401(t *testing.T) {
	svc := new(MockAuthService)
	handler := NewAuthHandler(svc)

	svc.On("Login", mock.Anything, mock.Anything).
		Return(nil, &usecase.DomainError{Code: usecase.CodeUnauthorized, Message: "invalid credentials"})

	body, _ := json.Marshal(usecase.LoginInput{Email: "admin@example.com", Password: "wrong"})
	rec := httptest.NewRecorder()
	handler.Login(rec, httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body)))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid credentials")
}

func TestAuthHandler_MalformedBody(t *testing.T) {
	handler := NewAuthHandler(new(MockAuthService))

	rec := httptest.NewRecorder()
	handler.Login(rec, httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader([]byte("{"))))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
