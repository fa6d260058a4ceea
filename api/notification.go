package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/momentum-api/background"
	"github.com/bitmark-inc/momentum-api/schema"
	"github.com/bitmark-inc/momentum-api/store"
)

// addSubscription is the API to register a web push subscription of a browser
func (s *Server) addSubscription(c *gin.Context) {
	account, ok := requestAccount(c)
	if !ok {
		return
	}

	var params schema.PushSubscriptionRequest
	if err := c.ShouldBindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	created, err := s.store.AddPushSubscription(account.AccountNumber, params)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"created": created,
	})
}

// removeSubscription is the API to unregister a web push subscription
func (s *Server) removeSubscription(c *gin.Context) {
	var params struct {
		Endpoint string `json:"endpoint" binding:"required"`
	}

	if err := c.ShouldBindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if err := s.store.RemovePushSubscription(params.Endpoint); err != nil {
		if err == store.ErrSubscriptionNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorSubscriptionNotFound)
			return
		}
		shouldInterupt(err, c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// sendSampleNotification is the API to push a sample message to every
// subscription of the caller
func (s *Server) sendSampleNotification(c *gin.Context) {
	account, ok := requestAccount(c)
	if !ok {
		return
	}

	msg, err := background.SampleMessage()
	if shouldInterupt(err, c) {
		return
	}

	result, err := s.notificationCenter.Broadcast(c.Request.Context(), account.AccountNumber, msg)
	if err == background.ErrNoSubscription {
		c.JSON(http.StatusOK, gin.H{
			"success": false,
			"message": "No subscriptions found",
		})
		return
	}
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"sent":    result.Sent,
		"failed":  result.Failed,
		"removed": result.Removed,
	})
}
