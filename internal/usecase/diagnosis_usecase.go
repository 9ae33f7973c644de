package usecase

import (
	"context"
	"errors"

	"medical-records-backend/internal/converter"
	"medical-records-backend/internal/delivery/dto"
	"medical-records-backend/internal/domain/entity"
	"medical-records-backend/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ErrNoDiagnoses is returned when a diagnosis listing comes back empty.
// Unlike the other list endpoints, the diagnosis listings treat an empty
// result as not-found.
var ErrNoDiagnoses = errors.New("no diagnoses found")

type DiagnosisUsecase interface {
	Create(ctx context.Context, req *dto.DiagnosisCreateRequest) (*dto.DiagnosisResponse, error)
	List(ctx context.Context) ([]dto.DiagnosisResponse, error)
	ListByPatient(ctx context.Context, patientID uint) ([]dto.DiagnosisResponse, error)
}

type diagnosisUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	diagnosisRepo repository.DiagnosisRepository
	patientRepo   repository.PatientRepository
}

func NewDiagnosisUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	diagnosisRepo repository.DiagnosisRepository,
	patientRepo repository.PatientRepository,
) DiagnosisUsecase {
	return &diagnosisUsecase{
		db:            db,
		log:           log,
		diagnosisRepo: diagnosisRepo,
		patientRepo:   patientRepo,
	}
}

// Create persists a diagnosis entry. A supplied patient_id must reference
// an existing patient; an omitted one leaves the entry unlinked.
func (u *diagnosisUsecase) Create(ctx context.Context, req *dto.DiagnosisCreateRequest) (*dto.DiagnosisResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if req.PatientID != nil {
		patient, err := u.patientRepo.FindByID(ctx, tx, *req.PatientID)
		if err != nil {
			u.log.Warnf("Failed to find patient: %+v", err)
			return nil, err
		}
		if patient == nil {
			return nil, ErrPatientNotFound
		}
	}

	diagnosis := &entity.Diagnosis{
		Video:       req.Video,
		Description: req.Description,
		Suggestion:  req.Suggestion,
		PatientID:   req.PatientID,
	}

	if err := u.diagnosisRepo.Create(ctx, tx, diagnosis); err != nil {
		u.log.Warnf("Failed to create diagnosis: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DiagnosisToResponse(diagnosis), nil
}

func (u *diagnosisUsecase) List(ctx context.Context) ([]dto.DiagnosisResponse, error) {
	diagnoses, err := u.diagnosisRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to list diagnoses: %+v", err)
		return nil, err
	}
	if len(diagnoses) == 0 {
		return nil, ErrNoDiagnoses
	}
	return converter.DiagnosesToResponse(diagnoses), nil
}

func (u *diagnosisUsecase) ListByPatient(ctx context.Context, patientID uint) ([]dto.DiagnosisResponse, error) {
	diagnoses, err := u.diagnosisRepo.FindByPatient(ctx, u.db, patientID)
	if err != nil {
		u.log.Warnf("Failed to list diagnoses by patient: %+v", err)
		return nil, err
	}
	if len(diagnoses) == 0 {
		return nil, ErrNoDiagnoses
	}
	return converter.DiagnosesToResponse(diagnoses), nil
}
