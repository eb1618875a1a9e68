package requests

type CreateQualification struct {
	ProviderID  string `json:"providerId" validate:"required"`
	Degree      string `json:"degree" validate:"required"`
	Institution string `json:"institution" validate:"required"`
	Year        int    `json:"year" validate:"required,gte=1900"`
}

type UpdateQualification struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        int    `json:"year" validate:"omitempty,gte=1900"`
}
