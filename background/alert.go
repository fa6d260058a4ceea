package background

import (
	"context"
	"time"

	"github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"
)

const (
	BroadcastHealthAlertTask = "broadcast_health_alert"

	alertLogPrefix = "alert"
	alertTimeout   = 30 * time.Second
)

// BroadcastHealthAlert is a background job to push the findings of an
// account day. Findings are claimed before the push, so concurrent jobs of
// the same day never push a finding twice.
func (m *BackgroundManager) BroadcastHealthAlert(accountNumber, date string, findings []string) error {
	logger := log.WithFields(log.Fields{
		"prefix":         alertLogPrefix,
		"account_number": accountNumber,
		"date":           date,
	})

	claimed, err := m.mongoStore.ClaimFindings(accountNumber, date, findings)
	if err != nil {
		logger.WithError(err).Error("claim findings")
		return err
	}

	if len(claimed) == 0 {
		logger.Debug("every finding has been notified")
		return nil
	}

	msg, err := HealthAlertMessage(claimed)
	if err != nil {
		m.releaseFindings(logger, accountNumber, date, claimed)
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), alertTimeout)
	defer cancel()

	result, err := m.notificationCenter.Broadcast(ctx, accountNumber, msg)
	if err != nil {
		m.releaseFindings(logger, accountNumber, date, claimed)
		if err == ErrNoSubscription {
			logger.Info("skip health alert for account without push subscription")
			return nil
		}
		sentry.CaptureException(err)
		logger.WithError(err).Error("broadcast health alert")
		return err
	}

	if result.Sent == 0 {
		m.releaseFindings(logger, accountNumber, date, claimed)
		logger.WithField("failed", result.Failed).Warn("health alert reached no subscription")
		return nil
	}

	logger.WithField("findings", len(claimed)).Info("health alert sent")
	return nil
}

// releaseFindings puts findings back to pending so a later refresh can
// push them again
func (m *BackgroundManager) releaseFindings(logger *log.Entry, accountNumber, date string, findings []string) {
	if err := m.mongoStore.ReleaseFindings(accountNumber, date, findings); err != nil {
		sentry.CaptureException(err)
		logger.WithError(err).Error("release findings")
	}
}
