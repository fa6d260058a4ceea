package api

import (
	"net/http"

	"github.com/golang/mock/gomock"

	"github.com/bitmark-inc/momentum-api/background"
	"github.com/bitmark-inc/momentum-api/schema"
	"github.com/bitmark-inc/momentum-api/store"
)

func (s *ServerTestSuite) TestAddSubscription() {
	s.expectAccount()

	req := schema.PushSubscriptionRequest{
		Endpoint: "https://push.example.com/send/abc",
		Keys: schema.PushSubscriptionKeys{
			P256dh: "BNcRdreALRFXTkOOUHK1EtK2wtaz5Ry4YfYCA_0QTpQtUbVlUls0VJXg7A8u-Ts1XbjhazAkj7I99e8QcYP7DkM",
			Auth:   "tBHItJI5svbpez7KI4CCXg",
		},
	}
	s.store.EXPECT().AddPushSubscription(testAccountNumber, req).Return(true, nil).Times(1)

	w := s.request("POST", "/api/subscriptions", req)
	s.Equal(http.StatusCreated, w.Code)
	s.JSONEq(`{"success":true,"created":true}`, w.Body.String())
}

func (s *ServerTestSuite) TestAddSubscriptionWithoutKeys() {
	s.expectAccount()

	w := s.request("POST", "/api/subscriptions", map[string]string{
		"endpoint": "https://push.example.com/send/abc",
	})
	s.Equal(http.StatusBadRequest, w.Code)
	var resp ErrorResponse
	s.decode(w, &resp)
	s.Equal(errorInvalidParameters, resp)
}

func (s *ServerTestSuite) TestRemoveSubscription() {
	s.expectAccount()

	s.store.EXPECT().RemovePushSubscription("https://push.example.com/send/abc").Return(nil).Times(1)

	w := s.request("DELETE", "/api/subscriptions", map[string]string{
		"endpoint": "https://push.example.com/send/abc",
	})
	s.Equal(http.StatusOK, w.Code)
}

func (s *ServerTestSuite) TestRemoveUnknownSubscription() {
	s.expectAccount()

	s.store.EXPECT().RemovePushSubscription("https://push.example.com/send/gone").
		Return(store.ErrSubscriptionNotFound).Times(1)

	w := s.request("DELETE", "/api/subscriptions", map[string]string{
		"endpoint": "https://push.example.com/send/gone",
	})
	s.Equal(http.StatusNotFound, w.Code)
	var resp ErrorResponse
	s.decode(w, &resp)
	s.Equal(errorSubscriptionNotFound, resp)
}

func (s *ServerTestSuite) TestSampleNotificationWithoutSubscription() {
	s.expectAccount()

	s.center.EXPECT().Broadcast(gomock.Any(), testAccountNumber, gomock.Any()).
		Return(background.DeliveryResult{}, background.ErrNoSubscription).Times(1)

	w := s.request("POST", "/api/notifications/test", nil)
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"success":false,"message":"No subscriptions found"}`, w.Body.String())
}

func (s *ServerTestSuite) TestSampleNotification() {
	s.expectAccount()

	s.center.EXPECT().Broadcast(gomock.Any(), testAccountNumber, background.PushMessage{
		Title: "Test Notification",
		Body:  "Push notifications are working! 🎉",
	}).Return(background.DeliveryResult{Sent: 2, Failed: 1, Removed: 1}, nil).Times(1)

	w := s.request("POST", "/api/notifications/test", nil)
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"success":true,"sent":2,"failed":1,"removed":1}`, w.Body.String())
}
