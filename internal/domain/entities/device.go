package entities

import "github.com/volatiletech/null/v8"

// DeviceType represents the class of a playback device
type DeviceType string

const (
	DevicePhone   DeviceType = "phone"
	DeviceTablet  DeviceType = "tablet"
	DeviceSmartTV DeviceType = "smarttv"
	DevicePC      DeviceType = "pc"
	DeviceConsole DeviceType = "console"
)

// DeviceTypes lists every device class in canonical order
var DeviceTypes = []DeviceType{DevicePhone, DeviceTablet, DeviceSmartTV, DevicePC, DeviceConsole}

// Device represents a user's registered playback device
type Device struct {
	ID            int64      `json:"deviceId"`
	UserID        int64      `json:"userId"`
	DeviceType    DeviceType `json:"deviceType"`
	DeviceName    string     `json:"deviceName"`
	LastLoginDate null.Time  `json:"lastLoginDate"`
	AppVersion    string     `json:"appVersion"`
	IsActive      bool       `json:"isActive"`
}
