package entities

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// PaymentMethodType represents a payment instrument kind
type PaymentMethodType string

const (
	PaymentCreditCard PaymentMethodType = "credit card"
	PaymentDebitCard  PaymentMethodType = "debit card"
	PaymentPayPal     PaymentMethodType = "paypal"
	PaymentGooglePay  PaymentMethodType = "google pay"
	PaymentApplePay   PaymentMethodType = "apple pay"
)

// PaymentMethodTypes lists every supported instrument
var PaymentMethodTypes = []PaymentMethodType{
	PaymentCreditCard, PaymentDebitCard, PaymentPayPal, PaymentGooglePay, PaymentApplePay,
}

// IsCard reports whether the instrument carries card digits and an expiry date
func (t PaymentMethodType) IsCard() bool {
	return t == PaymentCreditCard || t == PaymentDebitCard
}

// PaymentMethod represents a user's payment instrument
type PaymentMethod struct {
	UserID         int64             `json:"userId"`
	MethodType     PaymentMethodType `json:"methodType"`
	CardLastDigits null.String       `json:"cardLastDigits"`
	IsDefault      bool              `json:"isDefault"`
	AddedDate      time.Time         `json:"addedDate"`
	ExpiryDate     null.Time         `json:"expiryDate"`
}
