package models

import (
	"time"
)

type StoreSetting struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Key       string    `json:"key" gorm:"uniqueIndex;not null"`
	Value     string    `json:"value" gorm:"not null"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	SettingShippingInsideDhaka  = "shipping_rate_inside_dhaka"
	SettingShippingOutsideDhaka = "shipping_rate_outside_dhaka"
)
