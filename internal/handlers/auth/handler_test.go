package auth_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"pitch/config"
	"pitch/infras/jwt"
	"pitch/infras/otel/mocks"
	authMocks "pitch/internal/domains/auth/mocks"
	"pitch/internal/domains/auth/model/dto"
	"pitch/internal/domains/auth/service"
	"pitch/internal/handlers/auth"
	"pitch/shared/constant"
	"pitch/transport/http/middleware"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newJWT() jwt.JWT {
	cfg := &config.Config{}
	cfg.App.Name = "pitch"
	cfg.JWT.AccessSecret = "access"
	cfg.JWT.RefreshSecret = "refresh"
	cfg.JWT.AccessExpireMin = 5
	cfg.JWT.RefreshExpireMin = 60

	return jwt.New(cfg)
}

func newRouter(svc service.Auth, jwtService jwt.JWT) http.Handler {
	handler := auth.New(svc, mocks.NewOtel(), middleware.NewAuthMiddleware(jwtService, mocks.NewOtel()))

	router := chi.NewRouter()
	router.Route("/api", handler.Router)

	return router
}

func serve(router http.Handler, method, target, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if token != "" {
		req.Header.Set(constant.RequestHeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func TestHandler_LoginThenMe(t *testing.T) {
	jwtService := newJWT()
	router := newRouter(service.New(mocks.NewOtel(), jwtService), jwtService)

	rec := serve(router, http.MethodPost, "/api/auth/login", `{"email":"rahul@example.com","password":"secret1"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := struct {
		Data dto.AuthResponse `json:"data"`
	}{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "1", body.Data.User.ID)
	assert.Equal(t, "rahul", body.Data.User.Name)
	require.NotEmpty(t, body.Data.Tokens.AccessToken)

	rec = serve(router, http.MethodGet, "/api/auth/me", "", body.Data.Tokens.AccessToken)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"id":"1","name":"rahul","email":"rahul@example.com"}}`, rec.Body.String())

	rec = serve(router, http.MethodGet, "/api/auth/me", "", body.Data.Tokens.RefreshToken)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = serve(router, http.MethodPost, "/api/auth/refresh-token", `{"refreshToken":"`+body.Data.Tokens.RefreshToken+`"}`, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := newRouter(authMocks.NewMockAuth(ctrl), newJWT())

	tests := []struct {
		name   string
		target string
		body   string
		want   string
	}{
		{name: "login without email", target: "/api/auth/login", body: `{"password":"secret1"}`, want: "email is required"},
		{name: "login with short password", target: "/api/auth/login", body: `{"email":"a@b.co","password":"123"}`, want: "password must be greater than or equal to 6"},
		{name: "signup password mismatch", target: "/api/auth/signup", body: `{"name":"Ab","email":"a@b.co","password":"secret1","confirmPassword":"secret2"}`, want: "confirmPassword must match Password"},
		{name: "refresh without token", target: "/api/auth/refresh-token", body: `{}`, want: "refreshToken is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(router, http.MethodPost, tt.target, tt.body, "")

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, `{"error":"`+tt.want+`"}`, rec.Body.String())
		})
	}
}

func TestHandler_Signup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := authMocks.NewMockAuth(ctrl)
	router := newRouter(mockService, newJWT())

	mockService.EXPECT().
		Signup(gomock.Any(), dto.SignupRequest{Name: "Mithali", Email: "m@example.com", Password: "secret1", ConfirmPassword: "secret1"}).
		Return(dto.AuthResponse{User: dto.UserResponse{ID: "u-1", Name: "Mithali", Email: "m@example.com"}}, nil)

	rec := serve(router, http.MethodPost, "/api/auth/signup", `{"name":"Mithali","email":"m@example.com","password":"secret1","confirmPassword":"secret1"}`, "")

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"u-1"`)
}
