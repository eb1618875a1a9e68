package requests

type RegisterUser struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type Login struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type SendSubscriptionEmail struct {
	UserID    string `json:"userId" validate:"required"`
	PromoCode string `json:"promoCode"`
}
