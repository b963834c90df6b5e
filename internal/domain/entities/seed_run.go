package entities

import (
	"time"

	"github.com/google/uuid"
)

// SeedRunStatus represents the outcome of a persisted generation run
type SeedRunStatus string

const (
	SeedRunCompleted SeedRunStatus = "COMPLETED"
	SeedRunFailed    SeedRunStatus = "FAILED"
)

// SeedRun is the audit record of one generate-and-persist run
type SeedRun struct {
	ID             uuid.UUID     `json:"id"`
	Seed           int64         `json:"seed"`
	Status         SeedRunStatus `json:"status"`
	Users          int           `json:"users"`
	PaymentMethods int           `json:"paymentMethods"`
	Movies         int           `json:"movies"`
	Devices        int           `json:"devices"`
	ViewingHistory int           `json:"viewingHistory"`
	SkippedRows    int           `json:"skippedRows"`
	MappingGaps    int           `json:"mappingGaps"`
	Warnings       []string      `json:"warnings"`
	StartedAt      time.Time     `json:"startedAt"`
	FinishedAt     time.Time     `json:"finishedAt"`
}

// SeedInput represents the parameters of a generation run
type SeedInput struct {
	Users           int   `json:"users" binding:"omitempty,min=1,max=100000"`
	Movies          int   `json:"movies" binding:"omitempty,min=1,max=100000"`
	Seed            int64 `json:"seed"`
	Truncate        bool  `json:"truncate"`
	PaymentsPerUser int   `json:"paymentsPerUser" binding:"omitempty,min=1,max=3"`
	DevicesPerUser  int   `json:"devicesPerUser" binding:"omitempty,min=1,max=4"`
}
