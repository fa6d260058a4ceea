package store

import (
	"fmt"
	"time"

	"github.com/jinzhu/gorm"

	"github.com/bitmark-inc/momentum-api/schema"
)

var ErrAccountNotFound = fmt.Errorf("account not found")

// UpsertAccount registers an account or refreshes its profile fields
func (s *MomentumStore) UpsertAccount(accountNumber, name, age, gender string) (*schema.Account, error) {
	var a schema.Account
	if err := s.ormDB.
		Where(schema.Account{AccountNumber: accountNumber}).
		Assign(schema.Account{
			DisplayName: name,
			Age:         age,
			Gender:      gender,
		}).
		FirstOrCreate(&a).Error; err != nil {
		return nil, err
	}

	return &a, nil
}

// GetAccount returns an account instance of a given account number
func (s *MomentumStore) GetAccount(accountNumber string) (*schema.Account, error) {
	var a schema.Account
	if err := s.ormDB.Where("account_number = ?", accountNumber).First(&a).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &a, nil
}

// UpdateAccountRefreshTime keeps the time of the latest fitness refresh
func (s *MomentumStore) UpdateAccountRefreshTime(accountNumber string, t time.Time) error {
	result := s.ormDB.Model(&schema.Account{}).
		Where("account_number = ?", accountNumber).
		Update("last_refresh_at", t)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrAccountNotFound
	}

	return nil
}
