package requests

type CreatePayment struct {
	UserID    string `json:"userId" validate:"required"`
	PromoCode string `json:"promoCode"`
}
