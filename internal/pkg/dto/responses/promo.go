package responses

import "time"

type PromoCode struct {
	Code               string    `json:"code"`
	DiscountPercentage float64   `json:"discountPercentage"`
	ExpiryDate         time.Time `json:"expiryDate"`
	IsActive           bool      `json:"isActive"`
}
