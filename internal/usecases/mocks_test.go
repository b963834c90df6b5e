package usecases_test

import (
	"context"

	"github.com/stretchr/testify/mock"
	"streaming-service.backend/internal/domain/entities"
)

// Mock UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Do(ctx context.Context, f func(context.Context) error) error {
	m.Called(ctx, f)
	return f(ctx)
}

// Mock UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) BulkCreate(ctx context.Context, users []entities.User) error {
	args := m.Called(ctx, users)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// Mock PaymentMethodRepository
type MockPaymentMethodRepository struct {
	mock.Mock
}

func (m *MockPaymentMethodRepository) BulkCreate(ctx context.Context, methods []entities.PaymentMethod) error {
	args := m.Called(ctx, methods)
	return args.Error(0)
}

// Mock MovieRepository
type MockMovieRepository struct {
	mock.Mock
}

func (m *MockMovieRepository) BulkCreate(ctx context.Context, movies []entities.Movie) (map[int64]int64, error) {
	args := m.Called(ctx, movies)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]int64), args.Error(1)
}

// Mock DeviceRepository
type MockDeviceRepository struct {
	mock.Mock
}

func (m *MockDeviceRepository) BulkCreate(ctx context.Context, devices []entities.Device) (map[int64]int64, error) {
	args := m.Called(ctx, devices)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]int64), args.Error(1)
}

// Mock ViewingHistoryRepository
type MockViewingHistoryRepository struct {
	mock.Mock
}

func (m *MockViewingHistoryRepository) BulkCreate(ctx context.Context, records []entities.ViewingRecord) error {
	args := m.Called(ctx, records)
	return args.Error(0)
}

// Mock SeedRunRepository
type MockSeedRunRepository struct {
	mock.Mock
}

func (m *MockSeedRunRepository) Create(ctx context.Context, run *entities.SeedRun) error {
	args := m.Called(ctx, run)
	return args.Error(0)
}

func (m *MockSeedRunRepository) ListRecent(ctx context.Context, limit int) ([]*entities.SeedRun, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.SeedRun), args.Error(1)
}

// Mock SchemaRepository
type MockSchemaRepository struct {
	mock.Mock
}

func (m *MockSchemaRepository) Truncate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Mock AnalyticsRepository
type MockAnalyticsRepository struct {
	mock.Mock
}

func (m *MockAnalyticsRepository) AvgReleaseYear(ctx context.Context) (*float64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*float64), args.Error(1)
}

func (m *MockAnalyticsRepository) UserStatistics(ctx context.Context) ([]entities.UserStatistic, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.UserStatistic), args.Error(1)
}

func (m *MockAnalyticsRepository) GenreRatings(ctx context.Context) ([]entities.GenreRating, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.GenreRating), args.Error(1)
}

func (m *MockAnalyticsRepository) TableColumns(ctx context.Context) ([]entities.TableColumn, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.TableColumn), args.Error(1)
}

func (m *MockAnalyticsRepository) DirectorRatings(ctx context.Context) ([]entities.DirectorRating, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.DirectorRating), args.Error(1)
}

func (m *MockAnalyticsRepository) UsersBySubscription(ctx context.Context, subscription entities.SubscriptionType, limit, offset int) ([]entities.SubscriberRow, int64, error) {
	args := m.Called(ctx, subscription, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]entities.SubscriberRow), args.Get(1).(int64), args.Error(2)
}

func (m *MockAnalyticsRepository) UpdateUserSubscription(ctx context.Context, userID int64, subscription entities.SubscriptionType) (*entities.SubscriptionUpdate, error) {
	args := m.Called(ctx, userID, subscription)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.SubscriptionUpdate), args.Error(1)
}

func (m *MockAnalyticsRepository) DatabaseSize(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockAnalyticsRepository) CreateReviewsTable(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAnalyticsRepository) InsertRandomReviews(ctx context.Context, count int) ([]entities.Review, error) {
	args := m.Called(ctx, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Review), args.Error(1)
}

// Mock DatabaseAdmin
type MockDatabaseAdmin struct {
	mock.Mock
}

func (m *MockDatabaseAdmin) DropDatabase(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

// Mock ReportCache
type MockReportCache struct {
	mock.Mock
}

func (m *MockReportCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	args := m.Called(ctx, key, dest)
	return args.Bool(0), args.Error(1)
}

func (m *MockReportCache) Set(ctx context.Context, key string, value interface{}) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockReportCache) Invalidate(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}
