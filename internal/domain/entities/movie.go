package entities

import "github.com/volatiletech/null/v8"

// DefaultMovieDuration is used for viewing sessions of movies without a known runtime
const DefaultMovieDuration = 120

// Movie represents a catalog title sampled into the dataset
type Movie struct {
	ID              int64        `json:"movieId"`
	Title           string       `json:"title"`
	Director        string       `json:"director"`
	ReleaseYear     null.Int     `json:"releaseYear"`
	Genres          null.String  `json:"genres"`
	DurationMinutes null.Int     `json:"durationMinutes"`
	IMDbRating      null.Float64 `json:"imdbRating"`
}

// Duration returns the runtime in minutes, falling back to DefaultMovieDuration
func (m Movie) Duration() int {
	if !m.DurationMinutes.Valid || m.DurationMinutes.Int == 0 {
		return DefaultMovieDuration
	}
	return m.DurationMinutes.Int
}
