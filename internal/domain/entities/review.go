package entities

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// Review represents a row of the lab's user_reviews table
type Review struct {
	ReviewID   int64       `json:"reviewId"`
	UserID     int64       `json:"userId"`
	MovieID    int64       `json:"movieId"`
	Rating     int         `json:"rating"`
	ReviewText null.String `json:"reviewText"`
	CreatedAt  time.Time   `json:"createdAt"`
}
