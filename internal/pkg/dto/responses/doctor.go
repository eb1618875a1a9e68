package responses

import "time"

type Doctor struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Specialty     string    `json:"specialty"`
	LicenseNumber string    `json:"licenseNumber"`
	CreatedAt     time.Time `json:"createdAt"`
}

type Admin struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}
