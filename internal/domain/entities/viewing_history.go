package entities

import "time"

// ViewingRecord represents one playback session
type ViewingRecord struct {
	UserID           int64     `json:"userId"`
	MovieID          int64     `json:"movieId"`
	DeviceID         int64     `json:"deviceId"`
	StartTime        time.Time `json:"startTime"`
	EndTime          time.Time `json:"endTime"`
	ViewedPercentage int       `json:"viewedPercentage"`
}
