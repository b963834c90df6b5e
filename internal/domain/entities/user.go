package entities

import "time"

// SubscriptionType represents a user's subscription tier
type SubscriptionType string

const (
	SubscriptionBasic    SubscriptionType = "basic"
	SubscriptionStandard SubscriptionType = "standard"
	SubscriptionPremium  SubscriptionType = "premium"
)

// SubscriptionTypes lists the tiers in their canonical order
var SubscriptionTypes = []SubscriptionType{SubscriptionBasic, SubscriptionStandard, SubscriptionPremium}

// Valid reports whether s is a known tier
func (s SubscriptionType) Valid() bool {
	for _, t := range SubscriptionTypes {
		if s == t {
			return true
		}
	}
	return false
}

// User represents a streaming service subscriber.
// ID is provisional during generation and is kept as the persisted user_id.
type User struct {
	ID               int64            `json:"userId"`
	Email            string           `json:"email"`
	PasswordHash     string           `json:"-"`
	FullName         string           `json:"fullName"`
	RegistrationDate time.Time        `json:"registrationDate"`
	SubscriptionType SubscriptionType `json:"subscriptionType"`
}
