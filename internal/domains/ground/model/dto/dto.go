package dto

import (
	"net/http"
	"pitch/internal/domains/ground/model"
	"pitch/shared/constant"
	"pitch/shared/failure"
	"strconv"
)

// GroundFilter narrows the listing. A nil flag does not filter.
type GroundFilter struct {
	Featured *bool
	Popular  *bool
}

// FromRequest reads the featured and popular query params.
func (f *GroundFilter) FromRequest(r *http.Request) error {
	var err error

	if f.Featured, err = boolParam(r, constant.RequestParamFeature); err != nil {
		return err
	}

	if f.Popular, err = boolParam(r, constant.RequestParamPopular); err != nil {
		return err
	}

	return nil
}

func boolParam(r *http.Request, name string) (*bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil //nolint:nilnil
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, failure.BadRequestFromString(name + " must be true or false")
	}

	return &value, nil
}

func (f GroundFilter) Match(ground model.Ground) bool {
	if f.Featured != nil && ground.Featured != *f.Featured {
		return false
	}

	if f.Popular != nil && ground.Popular != *f.Popular {
		return false
	}

	return true
}

type GroundResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Location     string   `json:"location"`
	Image        string   `json:"image"`
	Rating       float64  `json:"rating"`
	ReviewCount  int      `json:"reviewCount"`
	PricePerHour int      `json:"pricePerHour"`
	Capacity     int      `json:"capacity"`
	Amenities    []string `json:"amenities"`
	Featured     bool     `json:"featured,omitempty"`
	Popular      bool     `json:"popular,omitempty"`
}

func (r *GroundResponse) FromModel(ground model.Ground) {
	r.ID = ground.ID
	r.Name = ground.Name
	r.Location = ground.Location
	r.Image = ground.Image
	r.Rating = ground.Rating
	r.ReviewCount = ground.ReviewCount
	r.PricePerHour = ground.PricePerHour
	r.Capacity = ground.Capacity
	r.Amenities = append([]string{}, ground.Amenities...)
	r.Featured = ground.Featured
	r.Popular = ground.Popular
}

type GetGroundsResponse struct {
	Grounds   []GroundResponse `json:"grounds"`
	TotalData int              `json:"totalData"`
}

func (r *GetGroundsResponse) FromModels(grounds []model.Ground) {
	r.TotalData = len(grounds)

	r.Grounds = make([]GroundResponse, len(grounds))
	for i, ground := range grounds {
		r.Grounds[i].FromModel(ground)
	}
}

type PricingTierResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	PricePerHour int      `json:"pricePerHour"`
	Features     []string `json:"features"`
	Popular      bool     `json:"popular,omitempty"`
}

func (r *PricingTierResponse) FromModel(tier model.PricingTier) {
	r.ID = tier.ID
	r.Name = tier.Name
	r.Description = tier.Description
	r.PricePerHour = tier.PricePerHour
	r.Features = append([]string{}, tier.Features...)
	r.Popular = tier.Popular
}

func FromPricingTiers(tiers []model.PricingTier) []PricingTierResponse {
	res := make([]PricingTierResponse, len(tiers))
	for i, tier := range tiers {
		res[i].FromModel(tier)
	}

	return res
}
