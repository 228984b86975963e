package dto

import (
	"pitch/infras/jwt"
	"pitch/internal/domains/auth/model"
	"strings"

	"github.com/google/uuid"
)

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// ToModel derives the demo user from the email. Every login gets the same id.
func (r *LoginRequest) ToModel() model.User {
	name, _, _ := strings.Cut(r.Email, "@")

	return model.User{
		ID:    model.LoginUserID,
		Name:  name,
		Email: r.Email,
	}
}

type SignupRequest struct {
	Name            string `json:"name"            validate:"required,min=2,max=100"`
	Email           string `json:"email"           validate:"required,email"`
	Password        string `json:"password"        validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

func (r *SignupRequest) ToModel() model.User {
	return model.User{
		ID:    uuid.NewString(),
		Name:  strings.TrimSpace(r.Name),
		Email: r.Email,
	}
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (r *UserResponse) FromModel(user model.User) {
	r.ID = user.ID
	r.Name = user.Name
	r.Email = user.Email
}

type TokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	TokenType    string `json:"tokenType"`
	ExpiresIn    int64  `json:"expiresIn"`
}

func (r *TokenResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	r.AccessToken = tokenPair.AccessToken
	r.RefreshToken = tokenPair.RefreshToken
	r.TokenType = tokenPair.TokenType
	r.ExpiresIn = tokenPair.ExpiresIn
}

type AuthResponse struct {
	User   UserResponse  `json:"user"`
	Tokens TokenResponse `json:"tokens"`
}

func (r *AuthResponse) From(user model.User, tokenPair *jwt.TokenPair) {
	r.User.FromModel(user)
	r.Tokens.FromTokenPair(tokenPair)
}
