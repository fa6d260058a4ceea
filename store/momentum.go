package store

import (
	"time"

	"github.com/jinzhu/gorm"

	"github.com/bitmark-inc/momentum-api/schema"
)

// momentum main datastore
type MomentumCore interface {
	Ping() error

	// Account
	UpsertAccount(accountNumber, name, age, gender string) (*schema.Account, error)
	GetAccount(accountNumber string) (*schema.Account, error)
	UpdateAccountRefreshTime(accountNumber string, t time.Time) error

	// Push subscription
	AddPushSubscription(accountNumber string, req schema.PushSubscriptionRequest) (bool, error)
	ListPushSubscriptions(accountNumber string) ([]schema.PushSubscription, error)
	RemovePushSubscription(endpoint string) error
}

// MomentumStore is an implementation of MomentumCore
type MomentumStore struct {
	ormDB *gorm.DB
}

func NewMomentumStore(ormDB *gorm.DB) *MomentumStore {
	return &MomentumStore{
		ormDB: ormDB,
	}
}

// Ping is to check the storage health status
func (s *MomentumStore) Ping() error {
	return s.ormDB.DB().Ping()
}
