package mappers

import (
	"github.com/tunedeck/checkout-service/internal/domain"
	"github.com/tunedeck/checkout-service/internal/infrastructure/postgres/models"
)

func ToDomainTrack(model *models.TrackModel) *domain.Track {
	return &domain.Track{
		ID:        model.ID,
		Title:     model.Title,
		Artist:    model.Artist,
		Price:     model.Price,
		Currency:  model.Currency,
		Status:    model.Status,
		AudioFile: model.AudioFile,
		CoverURL:  model.CoverURL,
		CreatedAt: model.CreatedAt,
	}
}

func ToDomainUser(model *models.UserModel) *domain.User {
	return &domain.User{
		ID:    model.ID,
		Email: model.Email,
		Name:  model.Name,
	}
}
