package requests

import "time"

type CreatePromoCode struct {
	Code               string    `json:"code" validate:"required"`
	DiscountPercentage float64   `json:"discountPercentage" validate:"gte=0,lte=100"`
	ExpiryDate         time.Time `json:"expiryDate" validate:"required"`
	IsActive           bool      `json:"isActive"`
}
