package schema

import (
	"time"
)

// Account is a user recognized by the resource name of their Google profile
type Account struct {
	AccountNumber string     `json:"account_number" gorm:"primary_key"`
	DisplayName   string     `json:"name"`
	Age           string     `json:"age"`
	Gender        string     `json:"gender"`
	LastRefreshAt *time.Time `json:"last_refresh_at"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// PushSubscription is a web push endpoint registered by a browser
type PushSubscription struct {
	ID            uint      `json:"-" gorm:"primary_key"`
	AccountNumber string    `json:"-" gorm:"index"`
	Endpoint      string    `json:"endpoint" gorm:"unique_index;not null"`
	P256dh        string    `json:"-" gorm:"column:p256dh"`
	Auth          string    `json:"-"`
	CreatedAt     time.Time `json:"created_at"`
}

// PushSubscriptionKeys is the `keys` object of a browser subscription
type PushSubscriptionKeys struct {
	P256dh string `json:"p256dh" binding:"required"`
	Auth   string `json:"auth" binding:"required"`
}

// PushSubscriptionRequest is the PushSubscription JSON produced by browsers
type PushSubscriptionRequest struct {
	Endpoint string               `json:"endpoint" binding:"required"`
	Keys     PushSubscriptionKeys `json:"keys" binding:"required"`
}
