package models

import "time"

// PromoCode entitles its holder to a percentage discount while isActive is
// true and expiryDate has not passed. Codes match case-sensitively and are
// unique by code.
type PromoCode struct {
	ID                 string    `bson:"_id,omitempty"`
	Code               string    `bson:"code"`
	IsActive           bool      `bson:"isActive"`
	ExpiryDate         time.Time `bson:"expiryDate"`
	DiscountPercentage float64   `bson:"discountPercentage"`
	TimeModel          `bson:",inline"`
}
