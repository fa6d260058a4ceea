package background

import (
	"context"

	webpush "github.com/SherClockHolmes/webpush-go"

	"github.com/bitmark-inc/momentum-api/schema"
)

const defaultTTL = 60

// WebPushSender delivers payloads with VAPID-signed web push requests
type WebPushSender struct {
	publicKey  string
	privateKey string
	subscriber string
	ttl        int
}

func NewWebPushSender(publicKey, privateKey, subscriber string) *WebPushSender {
	return &WebPushSender{
		publicKey:  publicKey,
		privateKey: privateKey,
		subscriber: subscriber,
		ttl:        defaultTTL,
	}
}

func (w *WebPushSender) Send(ctx context.Context, sub schema.PushSubscription, payload []byte) (int, error) {
	resp, err := webpush.SendNotificationWithContext(ctx, payload, &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			Auth:   sub.Auth,
			P256dh: sub.P256dh,
		},
	}, &webpush.Options{
		Subscriber:      w.subscriber,
		VAPIDPublicKey:  w.publicKey,
		VAPIDPrivateKey: w.privateKey,
		TTL:             w.ttl,
	})
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	return resp.StatusCode, nil
}
