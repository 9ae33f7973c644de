package repository

import (
	"context"

	"medical-records-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(ctx context.Context, db *gorm.DB, patient *entity.Patient) error
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.Patient, error)
	FindByID(ctx context.Context, db *gorm.DB, id uint) (*entity.Patient, error)
	FindByDoctor(ctx context.Context, db *gorm.DB, doctorID uint) ([]entity.Patient, error)
	SearchByDoctorAndName(ctx context.Context, db *gorm.DB, doctorID uint, name string) ([]entity.Patient, error)
	Update(ctx context.Context, db *gorm.DB, patient *entity.Patient) error
	Delete(ctx context.Context, db *gorm.DB, patient *entity.Patient) error
}
