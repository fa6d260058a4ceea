package store

import (
	"fmt"

	"github.com/jinzhu/gorm"
	"github.com/lib/pq"

	"github.com/bitmark-inc/momentum-api/schema"
)

const uniqueViolation = "23505"

var ErrSubscriptionNotFound = fmt.Errorf("push subscription not found")

func isUniqueViolation(err error) bool {
	if pqErr, ok := err.(*pq.Error); ok {
		return pqErr.Code == uniqueViolation
	}
	return false
}

// AddPushSubscription stores a browser subscription. A known endpoint is
// updated in place and reported as not created.
func (s *MomentumStore) AddPushSubscription(accountNumber string, req schema.PushSubscriptionRequest) (bool, error) {
	var sub schema.PushSubscription
	err := s.ormDB.Where("endpoint = ?", req.Endpoint).First(&sub).Error
	switch {
	case err == nil:
		return false, s.ormDB.Model(&sub).Updates(map[string]interface{}{
			"account_number": accountNumber,
			"p256dh":         req.Keys.P256dh,
			"auth":           req.Keys.Auth,
		}).Error
	case gorm.IsRecordNotFoundError(err):
	default:
		return false, err
	}

	sub = schema.PushSubscription{
		AccountNumber: accountNumber,
		Endpoint:      req.Endpoint,
		P256dh:        req.Keys.P256dh,
		Auth:          req.Keys.Auth,
	}
	if err := s.ormDB.Create(&sub).Error; err != nil {
		if isUniqueViolation(err) {
			// registered by a concurrent request
			return s.AddPushSubscription(accountNumber, req)
		}
		return false, err
	}

	return true, nil
}

func (s *MomentumStore) ListPushSubscriptions(accountNumber string) ([]schema.PushSubscription, error) {
	subs := []schema.PushSubscription{}
	if err := s.ormDB.Where("account_number = ?", accountNumber).Order("id").Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}

// RemovePushSubscription deletes a subscription that can no longer receive
// messages
func (s *MomentumStore) RemovePushSubscription(endpoint string) error {
	result := s.ormDB.Where("endpoint = ?", endpoint).Delete(schema.PushSubscription{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrSubscriptionNotFound
	}

	return nil
}
