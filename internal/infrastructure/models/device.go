package models

import "time"

type Device struct {
	DeviceID      int64      `gorm:"column:device_id;primaryKey"`
	UserID        int64      `gorm:"not null;index"`
	DeviceType    string     `gorm:"type:varchar(20);not null"`
	DeviceName    string     `gorm:"type:varchar(100)"`
	LastLoginDate *time.Time `gorm:"type:date"`
	AppVersion    string     `gorm:"type:varchar(20)"`
	IsActive      bool       `gorm:"not null;default:true"`
}

func (Device) TableName() string { return "devices" }

type ViewingHistory struct {
	ViewID           int64     `gorm:"column:view_id;primaryKey"`
	UserID           int64     `gorm:"not null;index"`
	MovieID          int64     `gorm:"not null;index"`
	DeviceID         int64     `gorm:"not null"`
	StartTime        time.Time `gorm:"not null"`
	EndTime          time.Time `gorm:"not null"`
	ViewedPercentage int       `gorm:"not null"`
}

func (ViewingHistory) TableName() string { return "viewing_history" }
