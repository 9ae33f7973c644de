package converter

import (
	"medical-records-backend/internal/delivery/dto"
	"medical-records-backend/internal/domain/entity"
)

func AuthorToResponse(author *entity.Author) *dto.AuthorResponse {
	if author == nil {
		return nil
	}

	return &dto.AuthorResponse{
		ID:             author.ID,
		Name:           author.Name,
		Specialisation: author.Specialisation,
	}
}

func AuthorsToResponse(authors []entity.Author) []dto.AuthorResponse {
	result := make([]dto.AuthorResponse, 0, len(authors))
	for i := range authors {
		result = append(result, *AuthorToResponse(&authors[i]))
	}
	return result
}
