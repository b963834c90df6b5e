package repositories

import (
	"github.com/volatiletech/null/v8"
	"streaming-service.backend/internal/domain/entities"
	"streaming-service.backend/internal/infrastructure/models"
)

const defaultBatchSize = 500

func batchOrDefault(n int) int {
	if n <= 0 {
		return defaultBatchSize
	}
	return n
}

func toUserModel(u entities.User) models.User {
	return models.User{
		UserID:           u.ID,
		Email:            u.Email,
		PasswordHash:     u.PasswordHash,
		FullName:         u.FullName,
		RegistrationDate: u.RegistrationDate,
		SubscriptionType: string(u.SubscriptionType),
	}
}

func toUserEntity(m *models.User) *entities.User {
	return &entities.User{
		ID:               m.UserID,
		Email:            m.Email,
		PasswordHash:     m.PasswordHash,
		FullName:         m.FullName,
		RegistrationDate: m.RegistrationDate,
		SubscriptionType: entities.SubscriptionType(m.SubscriptionType),
	}
}

func toPaymentMethodModel(p entities.PaymentMethod) models.PaymentMethod {
	return models.PaymentMethod{
		UserID:         p.UserID,
		MethodType:     string(p.MethodType),
		CardLastDigits: p.CardLastDigits.Ptr(),
		IsDefault:      p.IsDefault,
		AddedDate:      p.AddedDate,
		ExpiryDate:     p.ExpiryDate.Ptr(),
	}
}

func toMovieModel(m entities.Movie) models.Movie {
	return models.Movie{
		Title:           m.Title,
		Director:        m.Director,
		ReleaseYear:     m.ReleaseYear.Ptr(),
		Genres:          m.Genres.Ptr(),
		DurationMinutes: m.DurationMinutes.Ptr(),
		IMDbRating:      m.IMDbRating.Ptr(),
	}
}

func toDeviceModel(d entities.Device) models.Device {
	return models.Device{
		UserID:        d.UserID,
		DeviceType:    string(d.DeviceType),
		DeviceName:    d.DeviceName,
		LastLoginDate: d.LastLoginDate.Ptr(),
		AppVersion:    d.AppVersion,
		IsActive:      d.IsActive,
	}
}

func toViewingModel(r entities.ViewingRecord) models.ViewingHistory {
	return models.ViewingHistory{
		UserID:           r.UserID,
		MovieID:          r.MovieID,
		DeviceID:         r.DeviceID,
		StartTime:        r.StartTime,
		EndTime:          r.EndTime,
		ViewedPercentage: r.ViewedPercentage,
	}
}

func toReviewEntity(m models.UserReview) entities.Review {
	return entities.Review{
		ReviewID:   m.ReviewID,
		UserID:     m.UserID,
		MovieID:    m.MovieID,
		Rating:     m.Rating,
		ReviewText: null.StringFromPtr(m.ReviewText),
		CreatedAt:  m.CreatedAt,
	}
}
