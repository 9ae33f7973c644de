package repository

import (
	"context"
	"errors"

	"medical-records-backend/internal/domain/entity"
	domainRepo "medical-records-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type authorRepository struct{}

func NewAuthorRepository() domainRepo.AuthorRepository {
	return &authorRepository{}
}

func (r *authorRepository) Create(ctx context.Context, db *gorm.DB, author *entity.Author) error {
	return db.WithContext(ctx).Create(author).Error
}

func (r *authorRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Author, error) {
	var authors []entity.Author
	err := db.WithContext(ctx).Find(&authors).Error
	if err != nil {
		return nil, err
	}
	return authors, nil
}

func (r *authorRepository) FindByID(ctx context.Context, db *gorm.DB, id uint) (*entity.Author, error) {
	var author entity.Author
	err := db.WithContext(ctx).First(&author, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &author, nil
}

func (r *authorRepository) Update(ctx context.Context, db *gorm.DB, author *entity.Author) error {
	return db.WithContext(ctx).Save(author).Error
}

func (r *authorRepository) Delete(ctx context.Context, db *gorm.DB, author *entity.Author) error {
	return db.WithContext(ctx).Delete(author).Error
}
