package requests

type CreateProvider struct {
	Name      string `json:"name" validate:"required"`
	Specialty string `json:"specialty" validate:"required"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	Website   string `json:"website" validate:"omitempty,url"`
}

type UpdateProvider struct {
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	Website   string `json:"website" validate:"omitempty,url"`
}
