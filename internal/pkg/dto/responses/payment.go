package responses

import "time"

type Payment struct {
	ReferenceID        string    `json:"referenceId"`
	UserID             string    `json:"userId"`
	PromoCode          string    `json:"promoCode,omitempty"`
	DiscountPercentage float64   `json:"discountPercentage"`
	Amount             string    `json:"amount"`
	CreatedAt          time.Time `json:"createdAt"`
}
