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

var ErrAuthorNotFound = errors.New("author not found")

type AuthorUsecase interface {
	Create(ctx context.Context, req *dto.AuthorCreateRequest) (*dto.AuthorResponse, error)
	List(ctx context.Context) ([]dto.AuthorResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.AuthorResponse, error)
	Update(ctx context.Context, id uint, req *dto.AuthorUpdateRequest) (*dto.AuthorResponse, error)
	Delete(ctx context.Context, id uint) error
}

type authorUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	authorRepo repository.AuthorRepository
}

func NewAuthorUsecase(db *gorm.DB, log *logrus.Logger, authorRepo repository.AuthorRepository) AuthorUsecase {
	return &authorUsecase{
		db:         db,
		log:        log,
		authorRepo: authorRepo,
	}
}

func (u *authorUsecase) Create(ctx context.Context, req *dto.AuthorCreateRequest) (*dto.AuthorResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	author := &entity.Author{
		Name:           req.Name,
		Specialisation: req.Specialisation,
	}

	if err := u.authorRepo.Create(ctx, tx, author); err != nil {
		u.log.Warnf("Failed to create author: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.AuthorToResponse(author), nil
}

func (u *authorUsecase) List(ctx context.Context) ([]dto.AuthorResponse, error) {
	authors, err := u.authorRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to list authors: %+v", err)
		return nil, err
	}
	return converter.AuthorsToResponse(authors), nil
}

// GetByID returns (nil, nil) for an unknown id: the endpoint answers 200
// with a null author rather than 404.
func (u *authorUsecase) GetByID(ctx context.Context, id uint) (*dto.AuthorResponse, error) {
	author, err := u.authorRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find author: %+v", err)
		return nil, err
	}
	return converter.AuthorToResponse(author), nil
}

func (u *authorUsecase) Update(ctx context.Context, id uint, req *dto.AuthorUpdateRequest) (*dto.AuthorResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	author, err := u.authorRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find author: %+v", err)
		return nil, err
	}
	if author == nil {
		return nil, ErrAuthorNotFound
	}

	if req.Name != nil {
		author.Name = *req.Name
	}
	if req.Specialisation != nil {
		author.Specialisation = *req.Specialisation
	}

	if err := u.authorRepo.Update(ctx, tx, author); err != nil {
		u.log.Warnf("Failed to update author: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.AuthorToResponse(author), nil
}

func (u *authorUsecase) Delete(ctx context.Context, id uint) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	author, err := u.authorRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find author: %+v", err)
		return err
	}
	if author == nil {
		return ErrAuthorNotFound
	}

	if err := u.authorRepo.Delete(ctx, tx, author); err != nil {
		u.log.Warnf("Failed to delete author: %+v", err)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
