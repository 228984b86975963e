package service_test

import (
	"context"
	"errors"
	"pitch/infras/jwt"
	jwtMocks "pitch/infras/jwt/mocks"
	"pitch/infras/otel/mocks"
	"pitch/internal/domains/auth/model/dto"
	"pitch/internal/domains/auth/service"
	"pitch/shared/constant"
	"pitch/shared/failure"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var tokenPair = &jwt.TokenPair{
	AccessToken:  "access",
	RefreshToken: "refresh",
	TokenType:    "Bearer",
	ExpiresIn:    3600,
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockJWT := jwtMocks.NewMockJWT(ctrl)
	svc := service.New(mocks.NewOtel(), mockJWT)

	tests := []struct {
		name      string
		req       dto.LoginRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "any credentials are accepted",
			req:  dto.LoginRequest{Email: "rahul@example.com", Password: "whatever"},
			setupMock: func() {
				mockJWT.EXPECT().
					GenerateTokenPair(jwt.Subject{UserID: "1", Email: "rahul@example.com", Name: "rahul"}).
					Return(tokenPair, nil)
			},
		},
		{
			name: "token generation failure",
			req:  dto.LoginRequest{Email: "rahul@example.com", Password: "whatever"},
			setupMock: func() {
				mockJWT.EXPECT().
					GenerateTokenPair(gomock.Any()).
					Return(nil, errors.New("signing failed"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Login(context.Background(), tt.req)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, 500, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "1", res.User.ID)
			assert.Equal(t, "rahul", res.User.Name)
			assert.Equal(t, "access", res.Tokens.AccessToken)
			assert.Equal(t, "Bearer", res.Tokens.TokenType)
		})
	}
}

func TestAuthService_Signup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockJWT := jwtMocks.NewMockJWT(ctrl)
	svc := service.New(mocks.NewOtel(), mockJWT)

	mockJWT.EXPECT().GenerateTokenPair(gomock.Any()).Return(tokenPair, nil).Times(2)

	req := dto.SignupRequest{Name: "Mithali", Email: "mithali@example.com", Password: "secret1", ConfirmPassword: "secret1"}

	first, err := svc.Signup(context.Background(), req)
	require.NoError(t, err)

	second, err := svc.Signup(context.Background(), req)
	require.NoError(t, err)

	_, err = uuid.Parse(first.User.ID)
	require.NoError(t, err)
	assert.NotEqual(t, first.User.ID, second.User.ID)
	assert.Equal(t, "Mithali", first.User.Name)
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockJWT := jwtMocks.NewMockJWT(ctrl)
	svc := service.New(mocks.NewOtel(), mockJWT)

	mockJWT.EXPECT().RefreshTokens("good").Return(tokenPair, nil)
	mockJWT.EXPECT().RefreshTokens("bad").Return(nil, jwt.ErrInvalidToken)

	res, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "good"})
	require.NoError(t, err)
	assert.Equal(t, "refresh", res.RefreshToken)

	_, err = svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "bad"})
	require.Error(t, err)
	assert.Equal(t, 401, failure.GetCode(err))
}

func TestAuthService_Me(t *testing.T) {
	svc := service.New(mocks.NewOtel(), nil)

	_, err := svc.Me(context.Background())
	require.Error(t, err)
	assert.Equal(t, 401, failure.GetCode(err))

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "1")
	ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, "rahul@example.com")
	ctx = context.WithValue(ctx, constant.ContextKeyUserName, "rahul")

	res, err := svc.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, dto.UserResponse{ID: "1", Name: "rahul", Email: "rahul@example.com"}, res)
}
