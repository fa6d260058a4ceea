package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// profile is the API to query the profile of the caller
func (s *Server) profile(c *gin.Context) {
	account, ok := requestAccount(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"name":   account.DisplayName,
		"age":    account.Age,
		"gender": account.Gender,
	})
}
