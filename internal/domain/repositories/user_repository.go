package repositories

import (
	"context"

	"streaming-service.backend/internal/domain/entities"
)

// UserRepository defines user data operations
type UserRepository interface {
	// BulkCreate inserts users keeping their provisional IDs as user_id
	BulkCreate(ctx context.Context, users []entities.User) error
	GetByID(ctx context.Context, id int64) (*entities.User, error)
	Count(ctx context.Context) (int64, error)
}

// PaymentMethodRepository defines payment method data operations
type PaymentMethodRepository interface {
	BulkCreate(ctx context.Context, methods []entities.PaymentMethod) error
}
