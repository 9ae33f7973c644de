package repository

import (
	"context"

	"medical-records-backend/internal/domain/entity"
	domainRepo "medical-records-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type diagnosisRepository struct{}

func NewDiagnosisRepository() domainRepo.DiagnosisRepository {
	return &diagnosisRepository{}
}

func (r *diagnosisRepository) Create(ctx context.Context, db *gorm.DB, diagnosis *entity.Diagnosis) error {
	return db.WithContext(ctx).Create(diagnosis).Error
}

func (r *diagnosisRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Diagnosis, error) {
	var diagnoses []entity.Diagnosis
	err := db.WithContext(ctx).Find(&diagnoses).Error
	if err != nil {
		return nil, err
	}
	return diagnoses, nil
}

func (r *diagnosisRepository) FindByPatient(ctx context.Context, db *gorm.DB, patientID uint) ([]entity.Diagnosis, error) {
	var diagnoses []entity.Diagnosis
	err := db.WithContext(ctx).Where("patient_id = ?", patientID).Find(&diagnoses).Error
	if err != nil {
		return nil, err
	}
	return diagnoses, nil
}
