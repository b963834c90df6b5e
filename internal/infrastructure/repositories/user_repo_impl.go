package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"streaming-service.backend/internal/domain/entities"
	domainerrors "streaming-service.backend/internal/domain/errors"
	"streaming-service.backend/internal/infrastructure/models"
)

// UserRepository implements user data operations
type UserRepository struct {
	db        *gorm.DB
	batchSize int
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB, batchSize int) *UserRepository {
	return &UserRepository{db: db, batchSize: batchOrDefault(batchSize)}
}

// BulkCreate inserts users with explicit user_id values
func (r *UserRepository) BulkCreate(ctx context.Context, users []entities.User) error {
	if len(users) == 0 {
		return nil
	}
	rows := make([]models.User, len(users))
	for i, u := range users {
		rows[i] = toUserModel(u)
	}
	return GetDB(ctx, r.db).CreateInBatches(rows, r.batchSize).Error
}

// GetByID gets a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*entities.User, error) {
	var m models.User
	if err := GetDB(ctx, r.db).Where("user_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toUserEntity(&m), nil
}

// Count returns the number of users
func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := GetDB(ctx, r.db).Model(&models.User{}).Count(&n).Error
	return n, err
}

// PaymentMethodRepository implements payment method data operations
type PaymentMethodRepository struct {
	db        *gorm.DB
	batchSize int
}

// NewPaymentMethodRepository creates a new payment method repository
func NewPaymentMethodRepository(db *gorm.DB, batchSize int) *PaymentMethodRepository {
	return &PaymentMethodRepository{db: db, batchSize: batchOrDefault(batchSize)}
}

// BulkCreate inserts payment methods
func (r *PaymentMethodRepository) BulkCreate(ctx context.Context, methods []entities.PaymentMethod) error {
	if len(methods) == 0 {
		return nil
	}
	rows := make([]models.PaymentMethod, len(methods))
	for i, m := range methods {
		rows[i] = toPaymentMethodModel(m)
	}
	return GetDB(ctx, r.db).CreateInBatches(rows, r.batchSize).Error
}
