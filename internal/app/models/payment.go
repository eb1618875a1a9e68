package models

type Payment struct {
	ID                 string  `bson:"_id,omitempty"`
	ReferenceID        string  `bson:"referenceId"`
	UserID             string  `bson:"userId"`
	PromoCode          string  `bson:"promoCode,omitempty"`
	DiscountPercentage float64 `bson:"discountPercentage"`
	Amount             string  `bson:"amount"`
	TimeModel          `bson:",inline"`
}
