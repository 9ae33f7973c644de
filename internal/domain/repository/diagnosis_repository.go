package repository

import (
	"context"

	"medical-records-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type DiagnosisRepository interface {
	Create(ctx context.Context, db *gorm.DB, diagnosis *entity.Diagnosis) error
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.Diagnosis, error)
	FindByPatient(ctx context.Context, db *gorm.DB, patientID uint) ([]entity.Diagnosis, error)
}
