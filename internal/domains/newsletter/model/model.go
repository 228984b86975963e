package model

import (
	"net/http"
	"pitch/shared/failure"
	"time"
)

const MessageSubscribed = "Successfully subscribed to newsletter"

var (
	ErrEmailRequired = &failure.Failure{Code: http.StatusBadRequest, Message: "Email is required"}
	ErrInvalidEmail  = &failure.Failure{Code: http.StatusBadRequest, Message: "Invalid email format"}
	ErrRelayFailed   = &failure.Failure{Code: http.StatusBadGateway, Message: "Failed to queue confirmation email"}
)

type Subscription struct {
	Email        string    `json:"email"`
	SubscribedAt time.Time `json:"subscribedAt"`
}
