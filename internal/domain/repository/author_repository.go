package repository

import (
	"context"

	"medical-records-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type AuthorRepository interface {
	Create(ctx context.Context, db *gorm.DB, author *entity.Author) error
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.Author, error)
	FindByID(ctx context.Context, db *gorm.DB, id uint) (*entity.Author, error)
	Update(ctx context.Context, db *gorm.DB, author *entity.Author) error
	Delete(ctx context.Context, db *gorm.DB, author *entity.Author) error
}
