package entities

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// UserStatistic is one row of the per-user activity report
type UserStatistic struct {
	UserID             int64            `json:"userId" gorm:"column:user_id"`
	FullName           string           `json:"fullName" gorm:"column:full_name"`
	Email              string           `json:"email" gorm:"column:email"`
	SubscriptionType   SubscriptionType `json:"subscriptionType" gorm:"column:subscription_type"`
	RegistrationDate   time.Time        `json:"registrationDate" gorm:"column:registration_date"`
	TotalViews         int64            `json:"totalViews" gorm:"column:total_views"`
	AvgPercentageViews null.Float64     `json:"avgPercentageViews" gorm:"column:avg_percentage_views"`
	DeviceCount        int64            `json:"deviceCount" gorm:"column:device_count"`
	PaymentMethodCount int64            `json:"paymentMethodCount" gorm:"column:payment_method_count"`
}

// GenreRating is one row of the genre analysis report
type GenreRating struct {
	Genre             string       `json:"genre" gorm:"column:genre"`
	MovieCount        int64        `json:"movieCount" gorm:"column:movie_count"`
	AvgIMDbRating     null.Float64 `json:"avgImdbRating" gorm:"column:avg_imdb_rating"`
	AvgCompletionRate null.Float64 `json:"avgCompletionRate" gorm:"column:avg_completion_rate"`
	TotalViews        int64        `json:"totalViews" gorm:"column:total_views"`
}

// TableColumn describes a column of a cinema table
type TableColumn struct {
	TableName              string      `json:"tableName" gorm:"column:table_name"`
	ColumnName             string      `json:"columnName" gorm:"column:column_name"`
	DataType               string      `json:"dataType" gorm:"column:data_type"`
	IsNullable             string      `json:"isNullable" gorm:"column:is_nullable"`
	ColumnDefault          null.String `json:"columnDefault" gorm:"column:column_default"`
	CharacterMaximumLength null.Int    `json:"characterMaximumLength" gorm:"column:character_maximum_length"`
	NumericPrecision       null.Int    `json:"numericPrecision" gorm:"column:numeric_precision"`
	NumericScale           null.Int    `json:"numericScale" gorm:"column:numeric_scale"`
}

// DirectorRating is one row of the director average rating report
type DirectorRating struct {
	Director  string  `json:"director" gorm:"column:director"`
	AvgRating float64 `json:"avgRating" gorm:"column:avg_rating"`
}

// SubscriberRow is one row of the users-by-subscription report
type SubscriberRow struct {
	UserID           int64     `json:"userId" gorm:"column:user_id"`
	Email            string    `json:"email" gorm:"column:email"`
	FullName         string    `json:"fullName" gorm:"column:full_name"`
	RegistrationDate time.Time `json:"registrationDate" gorm:"column:registration_date"`
}

// SubscriptionUpdate is the result of the update_user_subscription procedure
type SubscriptionUpdate struct {
	UserID           int64            `json:"userId" gorm:"column:user_id"`
	SubscriptionType SubscriptionType `json:"subscriptionType" gorm:"column:subscription_type"`
}
