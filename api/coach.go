package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/momentum-api/coach"
	"github.com/bitmark-inc/momentum-api/utils"
)

// coachChat is the API to ask the fitness coach about the stored window
func (s *Server) coachChat(c *gin.Context) {
	account, ok := requestAccount(c)
	if !ok {
		return
	}
	logger := log.WithField("api", "coachChat")

	var params struct {
		Message string `json:"message" binding:"required"`
	}

	if err := c.ShouldBindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	records, err := s.mongoStore.GetDailyRecords(account.AccountNumber, "", int64(s.windowDays))
	if shouldInterupt(err, c) {
		return
	}

	reply, err := s.coach.Ask(c.Request.Context(), records, params.Message)
	if err != nil {
		messageID := coach.UnavailableMessageID
		if err == coach.ErrNoFitnessData {
			messageID = coach.NoDataMessageID
		} else {
			logger.WithError(err).Error("coach reply")
		}

		reply, err = utils.Localize(messageID, nil)
		if shouldInterupt(err, c) {
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"reply": reply,
	})
}
