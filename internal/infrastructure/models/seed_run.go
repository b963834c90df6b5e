package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SeedRun is the audit row written for every persisted generation run
type SeedRun struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Seed           int64          `gorm:"not null"`
	Status         string         `gorm:"type:varchar(20);not null"`
	Users          int            `gorm:"not null"`
	PaymentMethods int            `gorm:"not null"`
	Movies         int            `gorm:"not null"`
	Devices        int            `gorm:"not null"`
	ViewingHistory int            `gorm:"not null"`
	SkippedRows    int            `gorm:"not null"`
	MappingGaps    int            `gorm:"not null"`
	Warnings       datatypes.JSON `gorm:"type:jsonb"`
	StartedAt      time.Time      `gorm:"not null"`
	FinishedAt     time.Time      `gorm:"not null"`
}

func (SeedRun) TableName() string { return "seed_runs" }

// UserReview maps the lab's user_reviews table
type UserReview struct {
	ReviewID   int64     `gorm:"column:review_id;primaryKey"`
	UserID     int64     `gorm:"not null"`
	MovieID    int64     `gorm:"not null"`
	Rating     int       `gorm:"not null"`
	ReviewText *string   `gorm:"type:text"`
	CreatedAt  time.Time `gorm:"autoCreateTime:false"`
}

func (UserReview) TableName() string { return "user_reviews" }
