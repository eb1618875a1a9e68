package doctors

import (
	"context"
	"time"

	"carepass-service/internal/app/config"
	"carepass-service/internal/app/models"
	"carepass-service/internal/pkg/dto/requests"
	"carepass-service/internal/pkg/dto/responses"
	"carepass-service/internal/pkg/exceptions"
	"carepass-service/internal/pkg/utils"
)

type doctorUsecase struct {
	DoctorRepository DoctorRepository
	InternalConfig   *config.InternalConfig
}

func NewDoctorUsecase(doctorMongoRepository DoctorRepository, internalConfig *config.InternalConfig) DoctorUsecase {
	return &doctorUsecase{
		DoctorRepository: doctorMongoRepository,
		InternalConfig:   internalConfig,
	}
}

func (uc *doctorUsecase) RegisterDoctor(ctx context.Context, request *requests.RegisterDoctor) (*responses.Doctor, error) {
	existing, err := uc.DoctorRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	now := time.Now()
	doctor := &models.Doctor{
		Name:          request.Name,
		Email:         request.Email,
		Password:      hashedPassword,
		Specialty:     request.Specialty,
		LicenseNumber: request.LicenseNumber,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	doctorID, err := uc.DoctorRepository.CreateDoctor(ctx, doctor)
	if err != nil {
		return nil, err
	}

	return buildDoctorResponse(doctorID, doctor), nil
}

func (uc *doctorUsecase) LoginDoctor(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	doctor, err := uc.DoctorRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if doctor == nil || !utils.CheckPasswordHash(request.Password, doctor.Password) {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	expTime := time.Duration(uc.InternalConfig.JWT.ExpTimeInHour) * time.Hour
	token, err := utils.GenerateJWT(doctor.ID, uc.InternalConfig.JWT.Secret, expTime)
	if err != nil {
		return nil, err
	}

	return &responses.Login{Token: token}, nil
}

func (uc *doctorUsecase) GetDoctorByID(ctx context.Context, doctorID string) (*responses.Doctor, error) {
	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotExist(nil)
	}
	return buildDoctorResponse(doctor.ID, doctor), nil
}

func (uc *doctorUsecase) GetDoctors(ctx context.Context) ([]responses.Doctor, error) {
	doctorList, err := uc.DoctorRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]responses.Doctor, 0, len(doctorList))
	for _, doctor := range doctorList {
		result = append(result, *buildDoctorResponse(doctor.ID, &doctor))
	}
	return result, nil
}

func (uc *doctorUsecase) UpdateDoctor(ctx context.Context, doctorID string, request *requests.UpdateDoctor) (*responses.Doctor, error) {
	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotExist(nil)
	}

	updateData := map[string]interface{}{"updatedAt": time.Now()}
	if request.Name != "" {
		updateData["name"] = request.Name
		doctor.Name = request.Name
	}
	if request.Specialty != "" {
		updateData["specialty"] = request.Specialty
		doctor.Specialty = request.Specialty
	}
	if request.LicenseNumber != "" {
		updateData["licenseNumber"] = request.LicenseNumber
		doctor.LicenseNumber = request.LicenseNumber
	}

	if err := uc.DoctorRepository.UpdateDoctor(ctx, doctorID, updateData); err != nil {
		return nil, err
	}
	return buildDoctorResponse(doctor.ID, doctor), nil
}

func buildDoctorResponse(doctorID string, doctor *models.Doctor) *responses.Doctor {
	return &responses.Doctor{
		ID:            doctorID,
		Name:          doctor.Name,
		Email:         doctor.Email,
		Specialty:     doctor.Specialty,
		LicenseNumber: doctor.LicenseNumber,
		CreatedAt:     doctor.CreatedAt,
	}
}
