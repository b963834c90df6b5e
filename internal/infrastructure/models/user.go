package models

import "time"

// User maps cinema.users. The schema comes from the connection search_path.
type User struct {
	UserID           int64     `gorm:"column:user_id;primaryKey;autoIncrement:false"`
	Email            string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash     string    `gorm:"type:varchar(255);not null"`
	FullName         string    `gorm:"type:varchar(255);not null"`
	RegistrationDate time.Time `gorm:"type:date;not null"`
	SubscriptionType string    `gorm:"type:varchar(20);not null"`
}

func (User) TableName() string { return "users" }

type PaymentMethod struct {
	PaymentMethodID int64      `gorm:"column:payment_method_id;primaryKey"`
	UserID          int64      `gorm:"not null;index"`
	MethodType      string     `gorm:"type:varchar(20);not null"`
	CardLastDigits  *string    `gorm:"type:varchar(4)"`
	IsDefault       bool       `gorm:"not null;default:false"`
	AddedDate       time.Time  `gorm:"type:date;not null"`
	ExpiryDate      *time.Time `gorm:"type:date"`
}

func (PaymentMethod) TableName() string { return "payment_methods" }
