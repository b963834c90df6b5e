package models

type Movie struct {
	MovieID         int64    `gorm:"column:movie_id;primaryKey"`
	Title           string   `gorm:"type:varchar(255);not null"`
	Director        string   `gorm:"type:varchar(255)"`
	ReleaseYear     *int     `gorm:"column:release_year"`
	Genres          *string  `gorm:"type:text"`
	DurationMinutes *int     `gorm:"column:duration_minutes"`
	IMDbRating      *float64 `gorm:"column:imdb_rating;type:numeric(3,1)"`
}

func (Movie) TableName() string { return "movies" }
