package newsletter_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"pitch/config"
	"pitch/infras/otel/mocks"
	newsletterMocks "pitch/internal/domains/newsletter/mocks"
	"pitch/internal/domains/newsletter/model"
	"pitch/internal/domains/newsletter/model/dto"
	"pitch/internal/domains/newsletter/service"
	"pitch/internal/handlers/newsletter"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newRouter(svc service.Newsletter) http.Handler {
	handler := newsletter.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/api", handler.Router)

	return router
}

func TestHandler_Subscribe(t *testing.T) {
	router := newRouter(service.New(nil, &config.Config{}, mocks.NewOtel()))

	tests := []struct {
		name     string
		body     string
		wantCode int
		wantBody string
	}{
		{
			name:     "trims and accepts",
			body:     `{"email":"  fan@example.com "}`,
			wantCode: http.StatusOK,
			wantBody: `{"message":"Successfully subscribed to newsletter","email":"fan@example.com"}`,
		},
		{
			name:     "missing email",
			body:     `{}`,
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"Email is required"}`,
		},
		{
			name:     "malformed email",
			body:     `{"email":"not-an-email"}`,
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"Invalid email format"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/newsletter", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestHandler_SubscribeErrors(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(svc *newsletterMocks.MockNewsletter)
		wantCode  int
	}{
		{
			name:      "undecodable body",
			body:      `{"email":`,
			setupMock: func(_ *newsletterMocks.MockNewsletter) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "relay failure",
			body: `{"email":"fan@example.com"}`,
			setupMock: func(svc *newsletterMocks.MockNewsletter) {
				svc.EXPECT().
					Subscribe(gomock.Any(), dto.SubscribeRequest{Email: "fan@example.com"}).
					Return(dto.SubscribeResponse{}, model.ErrRelayFailed)
			},
			wantCode: http.StatusBadGateway,
		},
		{
			name: "unexpected error",
			body: `{"email":"fan@example.com"}`,
			setupMock: func(svc *newsletterMocks.MockNewsletter) {
				svc.EXPECT().
					Subscribe(gomock.Any(), gomock.Any()).
					Return(dto.SubscribeResponse{}, errors.New("boom"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := newsletterMocks.NewMockNewsletter(ctrl)
			tt.setupMock(svc)

			req := httptest.NewRequest(http.MethodPost, "/api/newsletter", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			newRouter(svc).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
