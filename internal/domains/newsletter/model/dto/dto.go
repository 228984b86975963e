package dto

import (
	"pitch/internal/domains/newsletter/model"
	"pitch/shared/timezone"
	"strings"
)

type SubscribeRequest struct {
	Email string `json:"email"`
}

// NormalizedEmail returns the email without surrounding whitespace.
func (r *SubscribeRequest) NormalizedEmail() string {
	return strings.TrimSpace(r.Email)
}

func (r *SubscribeRequest) ToModel() model.Subscription {
	return model.Subscription{
		Email:        r.NormalizedEmail(),
		SubscribedAt: timezone.Now(),
	}
}

type SubscribeResponse struct {
	Message string `json:"message"`
	Email   string `json:"email"`
}

func (r *SubscribeResponse) FromModel(subscription model.Subscription) {
	r.Message = model.MessageSubscribed
	r.Email = subscription.Email
}
