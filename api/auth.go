package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/momentum-api/external/people"
	"github.com/bitmark-inc/momentum-api/schema"
)

const bearerPrefix = "Bearer "

// accessTokenMiddleware extracts the Google access token of the caller. The
// token is only passed through to Google and never stored.
// Header format:
// - Authorization: 'Bearer ya29.xxxxxx'
func (s *Server) accessTokenMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			abortWithEncoding(c, http.StatusUnauthorized, errorInvalidAuthorizationFormat)
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
		if token == "" {
			abortWithEncoding(c, http.StatusUnauthorized, errorInvalidAuthorizationFormat)
			return
		}

		c.Set("access_token", token)
		c.Next()
	}
}

// recognizeAccountMiddleware is a middleware to recognize the caller by
// the resource name of their Google profile. It registers the account on
// the first visit and attaches an "account" key in gin's context.
func (s *Server) recognizeAccountMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		profile, err := s.people.Me(c.Request.Context(), c.GetString("access_token"))
		if err != nil {
			if err == people.ErrUnauthorized {
				abortWithEncoding(c, http.StatusUnauthorized, errorInvalidToken, err)
				return
			}
			abortWithEncoding(c, http.StatusBadGateway, errorProfileUnavailable, err)
			return
		}

		account, err := s.store.UpsertAccount(profile.ResourceName, profile.Name, profile.Age, profile.Gender)
		if shouldInterupt(err, c) {
			return
		}

		if account == nil {
			abortWithEncoding(c, http.StatusUnauthorized, errorAccountNotFound)
			return
		}

		c.Set("account", account)
		c.Next()
	}
}

func requestAccount(c *gin.Context) (*schema.Account, bool) {
	a, ok := c.MustGet("account").(*schema.Account)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	}
	return a, ok
}
