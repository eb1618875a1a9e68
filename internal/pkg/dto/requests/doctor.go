package requests

type RegisterDoctor struct {
	Name          string `json:"name" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password" validate:"required,min=8"`
	Specialty     string `json:"specialty" validate:"required"`
	LicenseNumber string `json:"licenseNumber" validate:"required"`
}

type UpdateDoctor struct {
	Name          string `json:"name"`
	Specialty     string `json:"specialty"`
	LicenseNumber string `json:"licenseNumber"`
}
