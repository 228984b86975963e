package model

const EntityName = "ground"

type Ground struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Location     string   `json:"location"`
	Image        string   `json:"image"`
	Rating       float64  `json:"rating"`
	ReviewCount  int      `json:"reviewCount"`
	PricePerHour int      `json:"pricePerHour"`
	Capacity     int      `json:"capacity"`
	Amenities    []string `json:"amenities"`
	Featured     bool     `json:"featured"`
	Popular      bool     `json:"popular"`
}

type PricingTier struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	PricePerHour int      `json:"pricePerHour"`
	Features     []string `json:"features"`
	Popular      bool     `json:"popular"`
}

// Catalog is the static listing shipped with the binary.
type Catalog struct {
	Grounds      []Ground      `json:"grounds"`
	PricingTiers []PricingTier `json:"pricingTiers"`
}
