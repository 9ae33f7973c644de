package usecase

import (
	"context"
	"errors"
	"strconv"

	"medical-records-backend/internal/converter"
	"medical-records-backend/internal/delivery/dto"
	"medical-records-backend/internal/domain/entity"
	"medical-records-backend/internal/domain/repository"
	"medical-records-backend/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPatientNotFound = errors.New("patient not found")
	ErrDoctorNotFound  = errors.New("doctor not found")
	ErrEmailTaken      = errors.New("email already exists")
)

type PatientUsecase interface {
	Create(ctx context.Context, doctorID uint, req *dto.PatientCreateRequest) (*dto.PatientResponse, error)
	List(ctx context.Context) ([]dto.PatientResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.PatientResponse, error)
	Update(ctx context.Context, id uint, req *dto.PatientUpdateRequest) (*dto.PatientResponse, error)
	PartialUpdate(ctx context.Context, id uint, req *dto.PatientUpdateRequest) (*dto.PatientResponse, error)
	Delete(ctx context.Context, id uint) error
}

type patientUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	patientRepo  repository.PatientRepository
	userRepo     repository.UserRepository
	auditService service.AuditService
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	userRepo repository.UserRepository,
	auditService service.AuditService,
) PatientUsecase {
	return &patientUsecase{
		db:           db,
		log:          log,
		patientRepo:  patientRepo,
		userRepo:     userRepo,
		auditService: auditService,
	}
}

// Create persists a new patient owned by the authenticated doctor. Any
// doctor_id in the request body is discarded: ownership always comes from
// the token subject.
func (u *patientUsecase) Create(ctx context.Context, doctorID uint, req *dto.PatientCreateRequest) (*dto.PatientResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	status := req.Status
	if status == "" {
		status = entity.PatientStatusUnvisited
	}

	patient := &entity.Patient{
		Name:           req.Name,
		Age:            *req.Age,
		Gender:         req.Gender,
		MedicalHistory: req.MedicalHistory,
		Email:          req.Email,
		DoctorID:       doctorID,
		Status:         status,
	}

	if err := u.patientRepo.Create(ctx, tx, patient); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailTaken
		}
		if isForeignKeyError(err, "doctor") {
			return nil, ErrDoctorNotFound
		}
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &doctorID, entity.AuditActionPatientCreate, "patient", strconv.FormatUint(uint64(patient.ID), 10), converter.PatientToResponse(patient)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) List(ctx context.Context) ([]dto.PatientResponse, error) {
	patients, err := u.patientRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, err
	}
	return converter.PatientsToResponse(patients), nil
}

func (u *patientUsecase) GetByID(ctx context.Context, id uint) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}
	return converter.PatientToResponse(patient), nil
}

// Update applies every field present in the body. Despite the PUT verb this
// is a partial merge, and a changed doctor_id is NOT checked against the
// users table; only PartialUpdate does that.
func (u *patientUsecase) Update(ctx context.Context, id uint, req *dto.PatientUpdateRequest) (*dto.PatientResponse, error) {
	return u.merge(ctx, id, req, false)
}

// PartialUpdate applies the same merge but validates that a newly supplied
// doctor_id references an existing user.
func (u *patientUsecase) PartialUpdate(ctx context.Context, id uint, req *dto.PatientUpdateRequest) (*dto.PatientResponse, error) {
	return u.merge(ctx, id, req, true)
}

func (u *patientUsecase) merge(ctx context.Context, id uint, req *dto.PatientUpdateRequest, checkDoctor bool) (*dto.PatientResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	oldValue := converter.PatientToResponse(patient)

	if req.DoctorID != nil {
		if checkDoctor {
			doctor, err := u.userRepo.FindByID(tx, *req.DoctorID)
			if err != nil {
				u.log.Warnf("Failed to find doctor: %+v", err)
				return nil, err
			}
			if doctor == nil {
				return nil, ErrDoctorNotFound
			}
		}
		patient.DoctorID = *req.DoctorID
	}
	if req.Name != nil {
		patient.Name = *req.Name
	}
	if req.Age != nil {
		patient.Age = *req.Age
	}
	if req.Gender != nil {
		patient.Gender = *req.Gender
	}
	if req.MedicalHistory != nil {
		patient.MedicalHistory = *req.MedicalHistory
	}
	if req.Email != nil {
		patient.Email = *req.Email
	}
	if req.Status != nil {
		patient.Status = *req.Status
	}

	if err := u.patientRepo.Update(ctx, tx, patient); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailTaken
		}
		u.log.Warnf("Failed to update patient: %+v", err)
		return nil, err
	}

	newValue := converter.PatientToResponse(patient)
	if err := u.auditService.LogUpdate(ctx, tx, nil, entity.AuditActionPatientUpdate, "patient", strconv.FormatUint(uint64(patient.ID), 10), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return newValue, nil
}

func (u *patientUsecase) Delete(ctx context.Context, id uint) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return err
	}
	if patient == nil {
		return ErrPatientNotFound
	}

	if err := u.patientRepo.Delete(ctx, tx, patient); err != nil {
		u.log.Warnf("Failed to delete patient: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, tx, nil, entity.AuditActionPatientDelete, "patient", strconv.FormatUint(uint64(patient.ID), 10), converter.PatientToResponse(patient)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
