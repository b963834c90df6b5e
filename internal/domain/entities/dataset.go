package entities

import "time"

// Dataset is the in-memory output of one generation run
type Dataset struct {
	Seed           int64           `json:"seed"`
	GeneratedAt    time.Time       `json:"generatedAt"`
	Users          []User          `json:"users"`
	PaymentMethods []PaymentMethod `json:"paymentMethods"`
	Movies         []Movie         `json:"movies"`
	Devices        []Device        `json:"devices"`
	ViewingHistory []ViewingRecord `json:"viewingHistory"`
	Warnings       []string        `json:"warnings"`
	SkippedRows    int             `json:"skippedRows"`
}

// DatasetSummary is a count-only view of a Dataset
type DatasetSummary struct {
	Seed           int64     `json:"seed"`
	GeneratedAt    time.Time `json:"generatedAt"`
	Users          int       `json:"users"`
	PaymentMethods int       `json:"paymentMethods"`
	Movies         int       `json:"movies"`
	Devices        int       `json:"devices"`
	ViewingHistory int       `json:"viewingHistory"`
	SkippedRows    int       `json:"skippedRows"`
	Warnings       []string  `json:"warnings"`
}

// Summary returns entity counts for logging and CLI output
func (d *Dataset) Summary() DatasetSummary {
	return DatasetSummary{
		Seed:           d.Seed,
		GeneratedAt:    d.GeneratedAt,
		Users:          len(d.Users),
		PaymentMethods: len(d.PaymentMethods),
		Movies:         len(d.Movies),
		Devices:        len(d.Devices),
		ViewingHistory: len(d.ViewingHistory),
		SkippedRows:    d.SkippedRows,
		Warnings:       d.Warnings,
	}
}
