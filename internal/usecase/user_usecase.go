package usecase

import (
	"context"

	"medical-records-backend/internal/converter"
	"medical-records-backend/internal/delivery/dto"
	"medical-records-backend/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// UserUsecase serves the patient lookups scoped to a doctor.
type UserUsecase interface {
	SearchPatients(ctx context.Context, doctorID uint, name string) ([]dto.PatientResponse, error)
	GetPatientsByDoctor(ctx context.Context, doctorID uint) ([]dto.PatientResponse, error)
}

type userUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	userRepo    repository.UserRepository
	patientRepo repository.PatientRepository
}

func NewUserUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	patientRepo repository.PatientRepository,
) UserUsecase {
	return &userUsecase{
		db:          db,
		log:         log,
		userRepo:    userRepo,
		patientRepo: patientRepo,
	}
}

// SearchPatients does a case-insensitive substring match on the patient name
// within the given doctor's patients. No match is an empty 200 list, not 404.
func (u *userUsecase) SearchPatients(ctx context.Context, doctorID uint, name string) ([]dto.PatientResponse, error) {
	patients, err := u.patientRepo.SearchByDoctorAndName(ctx, u.db, doctorID, name)
	if err != nil {
		u.log.Warnf("Failed to search patients: %+v", err)
		return nil, err
	}
	return converter.PatientsToResponse(patients), nil
}

// GetPatientsByDoctor requires the doctor to exist; its patient list may
// still be empty.
func (u *userUsecase) GetPatientsByDoctor(ctx context.Context, doctorID uint) ([]dto.PatientResponse, error) {
	doctor, err := u.userRepo.FindByID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	patients, err := u.patientRepo.FindByDoctor(ctx, u.db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to list patients by doctor: %+v", err)
		return nil, err
	}
	return converter.PatientsToResponse(patients), nil
}
