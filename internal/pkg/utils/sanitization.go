package utils

import (
	"strings"

	"carepass-service/internal/pkg/dto/requests"
)

func SanitizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func SanitizeRegisterUserRequest(request *requests.RegisterUser) {
	request.Name = strings.TrimSpace(request.Name)
	request.Email = SanitizeEmail(request.Email)
}

func SanitizeLoginRequest(request *requests.Login) {
	request.Email = SanitizeEmail(request.Email)
}

func SanitizeJoinWaitlistRequest(request *requests.JoinWaitlist) {
	request.Name = strings.TrimSpace(request.Name)
	request.Email = SanitizeEmail(request.Email)
}

func SanitizeRegisterDoctorRequest(request *requests.RegisterDoctor) {
	request.Name = strings.TrimSpace(request.Name)
	request.Email = SanitizeEmail(request.Email)
	request.Specialty = strings.TrimSpace(request.Specialty)
	request.LicenseNumber = strings.TrimSpace(request.LicenseNumber)
}

func SanitizeRegisterAdminRequest(request *requests.RegisterAdmin) {
	request.Name = strings.TrimSpace(request.Name)
	request.Email = SanitizeEmail(request.Email)
}

func SanitizeCreateProviderRequest(request *requests.CreateProvider) {
	request.Name = strings.TrimSpace(request.Name)
	request.Specialty = strings.TrimSpace(request.Specialty)
	request.Website = strings.TrimSpace(request.Website)
}

func SanitizeCreatePromoCodeRequest(request *requests.CreatePromoCode) {
	request.Code = strings.TrimSpace(request.Code)
}
