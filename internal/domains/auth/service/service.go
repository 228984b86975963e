package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"pitch/infras/jwt"
	"pitch/infras/otel"
	"pitch/internal/domains/auth/model"
	"pitch/internal/domains/auth/model/dto"
	"pitch/shared/constant"
	"pitch/shared/failure"

	"github.com/rs/zerolog/log"
)

// Auth issues tokens for the demo accounts. Credentials are accepted as given and nothing is stored.
type Auth interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.AuthResponse, error)
	Signup(ctx context.Context, req dto.SignupRequest) (dto.AuthResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.TokenResponse, error)
	Me(ctx context.Context) (dto.UserResponse, error)
}

type serviceImpl struct {
	otel       otel.Otel
	jwtService jwt.JWT
}

func New(otel otel.Otel, jwt jwt.JWT) Auth {
	return &serviceImpl{
		otel:       otel,
		jwtService: jwt,
	}
}

func (s *serviceImpl) issue(user model.User) (res dto.AuthResponse, err error) {
	tokenPair, err := s.jwtService.GenerateTokenPair(jwt.Subject{UserID: user.ID, Email: user.Email, Name: user.Name})
	if err != nil {
		log.Error().Err(err).Str("email", user.Email).Msg("failed to generate token pair")

		return res, failure.InternalError(err) //nolint:wrapcheck
	}

	res.From(user, tokenPair)

	return res, nil
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.AuthResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, err = s.issue(req.ToModel())
	if err != nil {
		return res, err
	}

	scope.AddEvent("user logged in")

	return res, nil
}

func (s *serviceImpl) Signup(ctx context.Context, req dto.SignupRequest) (res dto.AuthResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Signup")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user := req.ToModel()

	res, err = s.issue(user)
	if err != nil {
		return res, err
	}

	log.Info().Str("id", user.ID).Str("email", user.Email).Msg("user signed up")

	return res, nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.TokenResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshToken")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	tokenPair, err := s.jwtService.RefreshTokens(req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("rejected refresh token")

		return res, failure.Unauthorized("invalid or expired refresh token") //nolint:wrapcheck
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

// Me returns the user stored in the context by the authentication middleware.
func (s *serviceImpl) Me(ctx context.Context) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Me")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if userID == "" {
		return res, failure.Unauthorized("authentication required") //nolint:wrapcheck
	}

	email, _ := ctx.Value(constant.ContextKeyUserEmail).(string)
	name, _ := ctx.Value(constant.ContextKeyUserName).(string)

	res.FromModel(model.User{ID: userID, Name: name, Email: email})

	return res, nil
}
