package responses

import "time"

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type Login struct {
	Token string `json:"token"`
}

type SendSubscriptionEmail struct {
	Recipient  string `json:"recipient"`
	FinalPrice string `json:"finalPrice"`
}
