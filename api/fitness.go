package api

import (
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/momentum-api/external/googlefit"
	"github.com/bitmark-inc/momentum-api/fitness"
	"github.com/bitmark-inc/momentum-api/schema"
)

const maxHistoryLimit = 90

// window returns the start of the oldest calendar day of the window and now
func (s *Server) window() (time.Time, time.Time) {
	end := s.now().UTC()
	today := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return today.AddDate(0, 0, -(s.windowDays - 1)), end
}

// fitnessRefresh is the API to pull the latest fitness window from Google,
// evaluate it and keep the result for the account
func (s *Server) fitnessRefresh(c *gin.Context) {
	account, ok := requestAccount(c)
	if !ok {
		return
	}
	logger := log.WithField("api", "fitnessRefresh").WithField("account_number", account.AccountNumber)

	start, end := s.window()
	buckets, err := s.googleFit.Aggregate(c.Request.Context(), c.GetString("access_token"), start, end)
	if err != nil {
		if err == googlefit.ErrUnauthorized {
			abortWithEncoding(c, http.StatusUnauthorized, errorInvalidToken, err)
			return
		}
		logger.WithError(err).Error("aggregate fitness data")
		abortWithEncoding(c, http.StatusBadGateway, errorFitnessUnavailable, err)
		return
	}

	report := fitness.Process(buckets, s.thresholds)

	if err := s.mongoStore.SaveDailyRecords(account.AccountNumber, report.Records); shouldInterupt(err, c) {
		return
	}

	if latest, ok := report.Latest(); ok {
		if _, err := s.mongoStore.SaveFindingReport(schema.FindingReport{
			AccountNumber: account.AccountNumber,
			Date:          latest.Date,
			Findings:      report.Findings,
		}); shouldInterupt(err, c) {
			return
		}

		if len(report.Findings) > 0 {
			if err := s.background.EnqueueHealthAlert(account.AccountNumber, latest.Date, report.Findings); err != nil {
				sentry.CaptureException(err)
				logger.WithError(err).Error("enqueue health alert")
			}
		}
	}

	if err := s.store.UpdateAccountRefreshTime(account.AccountNumber, end); err != nil {
		logger.WithError(err).Warn("update refresh time")
	}

	c.JSON(http.StatusOK, gin.H{
		"records":  report.Records,
		"findings": report.Findings,
	})
}

// fitnessHistory is the API to query stored daily records
func (s *Server) fitnessHistory(c *gin.Context) {
	account, ok := requestAccount(c)
	if !ok {
		return
	}

	var params struct {
		Before string `form:"before"`
		Limit  int64  `form:"limit"`
	}

	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if params.Before != "" {
		if _, err := time.Parse(schema.DateLayout, params.Before); err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidDateFormat, err)
			return
		}
	}

	if params.Limit <= 0 {
		params.Limit = int64(s.windowDays)
	}
	if params.Limit > maxHistoryLimit {
		params.Limit = maxHistoryLimit
	}

	records, err := s.mongoStore.GetDailyRecords(account.AccountNumber, params.Before, params.Limit)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"records": records,
	})
}
