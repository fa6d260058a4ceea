package background

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/bitmark-inc/momentum-api/schema"
	"github.com/bitmark-inc/momentum-api/store"
)

const (
	notificationLogPrefix = "notification"
	defaultConcurrency    = 8
)

var ErrNoSubscription = fmt.Errorf("no push subscription")

// PushMessage is the payload delivered to the service worker of a browser
type PushMessage struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type DeliveryResult struct {
	Sent    int `json:"sent"`
	Failed  int `json:"failed"`
	Removed int `json:"removed"`
}

type NotificationCenter interface {
	Broadcast(ctx context.Context, accountNumber string, msg PushMessage) (DeliveryResult, error)
}

// Sender delivers a payload to one subscription and returns the status code
// answered by the push service
type Sender interface {
	Send(ctx context.Context, sub schema.PushSubscription, payload []byte) (int, error)
}

// PushNotificationCenter sends messages to every push subscription of an
// account. Subscriptions answered with 404 or 410 are removed once the
// dispatch is done.
type PushNotificationCenter struct {
	store       store.MomentumCore
	sender      Sender
	concurrency int
}

func NewPushNotificationCenter(store store.MomentumCore, sender Sender) *PushNotificationCenter {
	return &PushNotificationCenter{
		store:       store,
		sender:      sender,
		concurrency: defaultConcurrency,
	}
}

func isGone(status int) bool {
	return status == http.StatusNotFound || status == http.StatusGone
}

func (p *PushNotificationCenter) Broadcast(ctx context.Context, accountNumber string, msg PushMessage) (DeliveryResult, error) {
	var result DeliveryResult

	subs, err := p.store.ListPushSubscriptions(accountNumber)
	if err != nil {
		return result, err
	}

	if len(subs) == 0 {
		return result, ErrNoSubscription
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return result, err
	}

	var mu sync.Mutex
	stale := make([]string, 0)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)
	for _, sub := range subs {
		sub := sub
		g.Go(func() error {
			status, err := p.sender.Send(gctx, sub, payload)

			mu.Lock()
			defer mu.Unlock()

			switch {
			case err != nil:
				result.Failed++
				log.WithFields(log.Fields{
					"prefix":         notificationLogPrefix,
					"account_number": accountNumber,
					"endpoint":       sub.Endpoint,
					"error":          err,
				}).Error("push delivery failed")
			case isGone(status):
				result.Failed++
				stale = append(stale, sub.Endpoint)
			case status >= 200 && status < 300:
				result.Sent++
			default:
				result.Failed++
				log.WithFields(log.Fields{
					"prefix":         notificationLogPrefix,
					"account_number": accountNumber,
					"endpoint":       sub.Endpoint,
					"status":         status,
				}).Warn("push service rejected the message")
			}

			return nil
		})
	}
	// delivery failures are counted in result, workers always return nil
	g.Wait()

	for _, endpoint := range stale {
		if err := p.store.RemovePushSubscription(endpoint); err != nil && err != store.ErrSubscriptionNotFound {
			log.WithFields(log.Fields{
				"prefix":   notificationLogPrefix,
				"endpoint": endpoint,
				"error":    err,
			}).Error("remove expired push subscription")
			continue
		}
		result.Removed++
	}

	log.WithFields(log.Fields{
		"prefix":         notificationLogPrefix,
		"account_number": accountNumber,
		"sent":           result.Sent,
		"failed":         result.Failed,
		"removed":        result.Removed,
	}).Info("push message dispatched")

	return result, nil
}
