package handlers

import (
	"context"

	"streaming-service.backend/internal/domain/entities"
	domainerrors "streaming-service.backend/internal/domain/errors"
)

type analyticsRepoStub struct {
	avg         *float64
	subscribers map[entities.SubscriptionType][]entities.SubscriberRow
	users       map[int64]entities.SubscriptionType
	reviews     []entities.Review
	tableReady  bool
	err         error
}

func newAnalyticsRepoStub() *analyticsRepoStub {
	avg := 1985.5
	return &analyticsRepoStub{
		avg: &avg,
		subscribers: map[entities.SubscriptionType][]entities.SubscriberRow{
			entities.SubscriptionBasic: {
				{UserID: 1, Email: "ivan.petrov@mail.ru", FullName: "Петров Иван Сергеевич"},
				{UserID: 3, Email: "o.smirnova@gmail.com", FullName: "Смирнова Ольга Андреевна"},
			},
		},
		users: map[int64]entities.SubscriptionType{1: entities.SubscriptionBasic, 3: entities.SubscriptionBasic},
	}
}

func (s *analyticsRepoStub) AvgReleaseYear(context.Context) (*float64, error) {
	return s.avg, s.err
}

func (s *analyticsRepoStub) UserStatistics(context.Context) ([]entities.UserStatistic, error) {
	return []entities.UserStatistic{{UserID: 1, TotalViews: 4}}, s.err
}

func (s *analyticsRepoStub) GenreRatings(context.Context) ([]entities.GenreRating, error) {
	return []entities.GenreRating{{Genre: "drama", MovieCount: 2}}, s.err
}

func (s *analyticsRepoStub) TableColumns(context.Context) ([]entities.TableColumn, error) {
	return []entities.TableColumn{{TableName: "movies", ColumnName: "title"}}, s.err
}

func (s *analyticsRepoStub) DirectorRatings(context.Context) ([]entities.DirectorRating, error) {
	return []entities.DirectorRating{{Director: "Тарковский", AvgRating: 8.1}}, s.err
}

func (s *analyticsRepoStub) UsersBySubscription(_ context.Context, sub entities.SubscriptionType, limit, offset int) ([]entities.SubscriberRow, int64, error) {
	if s.err != nil {
		return nil, 0, s.err
	}
	rows := s.subscribers[sub]
	total := int64(len(rows))
	if offset >= len(rows) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(rows) {
		end = len(rows)
	}
	return rows[offset:end], total, nil
}

func (s *analyticsRepoStub) UpdateUserSubscription(_ context.Context, userID int64, sub entities.SubscriptionType) (*entities.SubscriptionUpdate, error) {
	if _, ok := s.users[userID]; !ok {
		return nil, domainerrors.ErrNotFound
	}
	s.users[userID] = sub
	return &entities.SubscriptionUpdate{UserID: userID, SubscriptionType: sub}, nil
}

func (s *analyticsRepoStub) DatabaseSize(context.Context) (string, error) {
	return "12 MB", s.err
}

func (s *analyticsRepoStub) CreateReviewsTable(context.Context) error {
	s.tableReady = true
	s.reviews = nil
	return s.err
}

func (s *analyticsRepoStub) InsertRandomReviews(_ context.Context, count int) ([]entities.Review, error) {
	if !s.tableReady {
		return nil, domainerrors.NotFound("user_reviews does not exist")
	}
	for i := 0; i < count; i++ {
		s.reviews = append(s.reviews, entities.Review{ReviewID: int64(len(s.reviews) + 1), UserID: 1, MovieID: 1, Rating: 7})
	}
	return s.reviews, nil
}

type uowStub struct{}

func (uowStub) Do(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

type seedStoreStub struct {
	users    int
	movies   int
	devices  int
	history  int
	runs     []*entities.SeedRun
	truncate int
	failWith error
}

func (s *seedStoreStub) userRepo() *seedUserRepo     { return &seedUserRepo{s} }
func (s *seedStoreStub) paymentRepo() *seedPayRepo   { return &seedPayRepo{s} }
func (s *seedStoreStub) movieRepo() *seedMovieRepo   { return &seedMovieRepo{s} }
func (s *seedStoreStub) deviceRepo() *seedDeviceRepo { return &seedDeviceRepo{s} }
func (s *seedStoreStub) historyRepo() *seedViewRepo  { return &seedViewRepo{s} }

type seedUserRepo struct{ s *seedStoreStub }

func (r *seedUserRepo) BulkCreate(_ context.Context, users []entities.User) error {
	if r.s.failWith != nil {
		return r.s.failWith
	}
	r.s.users += len(users)
	return nil
}
func (r *seedUserRepo) GetByID(context.Context, int64) (*entities.User, error) {
	return nil, domainerrors.ErrNotFound
}
func (r *seedUserRepo) Count(context.Context) (int64, error) { return int64(r.s.users), nil }

type seedPayRepo struct{ s *seedStoreStub }

func (r *seedPayRepo) BulkCreate(context.Context, []entities.PaymentMethod) error { return nil }

type seedMovieRepo struct{ s *seedStoreStub }

func (r *seedMovieRepo) BulkCreate(_ context.Context, movies []entities.Movie) (map[int64]int64, error) {
	ids := make(map[int64]int64, len(movies))
	for _, m := range movies {
		r.s.movies++
		ids[m.ID] = int64(r.s.movies)
	}
	return ids, nil
}

type seedDeviceRepo struct{ s *seedStoreStub }

func (r *seedDeviceRepo) BulkCreate(_ context.Context, devices []entities.Device) (map[int64]int64, error) {
	ids := make(map[int64]int64, len(devices))
	for _, d := range devices {
		r.s.devices++
		ids[d.ID] = int64(r.s.devices)
	}
	return ids, nil
}

type seedViewRepo struct{ s *seedStoreStub }

func (r *seedViewRepo) BulkCreate(_ context.Context, records []entities.ViewingRecord) error {
	r.s.history += len(records)
	return nil
}

func (s *seedStoreStub) Create(_ context.Context, run *entities.SeedRun) error {
	s.runs = append([]*entities.SeedRun{run}, s.runs...)
	return nil
}

func (s *seedStoreStub) ListRecent(_ context.Context, limit int) ([]*entities.SeedRun, error) {
	if limit > 0 && limit < len(s.runs) {
		return s.runs[:limit], nil
	}
	return s.runs, nil
}

func (s *seedStoreStub) Truncate(context.Context) error {
	s.truncate++
	s.users, s.movies, s.devices, s.history = 0, 0, 0, 0
	return nil
}
