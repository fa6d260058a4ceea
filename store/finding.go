package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/momentum-api/schema"
)

var ErrFindingReportNotFound = fmt.Errorf("finding report not found")

type FindingReporter interface {
	GetFindingReport(accountNumber, date string) (*schema.FindingReport, error)
	SaveFindingReport(report schema.FindingReport) (*schema.FindingReport, error)
	ClaimFindings(accountNumber, date string, findings []string) ([]string, error)
	ReleaseFindings(accountNumber, date string, findings []string) error
}

func (m *mongoDB) GetFindingReport(accountNumber, date string) (*schema.FindingReport, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var report schema.FindingReport
	if err := m.collection(schema.FindingReportCollection).FindOne(ctx, bson.M{
		"account_number": accountNumber,
		"date":           date,
	}).Decode(&report); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrFindingReportNotFound
		}
		return nil, err
	}

	return &report, nil
}

// SaveFindingReport replaces the findings of an account day. Findings
// notified by earlier reports of the same day stay notified.
func (m *mongoDB) SaveFindingReport(report schema.FindingReport) (*schema.FindingReport, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if report.Findings == nil {
		report.Findings = []string{}
	}
	if report.Timestamp == 0 {
		report.Timestamp = time.Now().UTC().Unix()
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	filter := bson.M{
		"account_number": report.AccountNumber,
		"date":           report.Date,
	}
	update := bson.M{
		"$set": bson.M{
			"findings": report.Findings,
			"ts":       report.Timestamp,
		},
		"$setOnInsert": bson.M{
			"id":                uuid.New().String(),
			"notified_findings": []string{},
		},
	}

	var saved schema.FindingReport
	err := m.collection(schema.FindingReportCollection).FindOneAndUpdate(ctx, filter, update, opts).Decode(&saved)
	if isDuplicateKeyError(err) {
		// a concurrent refresh inserted the same day first
		err = m.collection(schema.FindingReportCollection).FindOneAndUpdate(ctx, filter, update, opts).Decode(&saved)
	}
	if err != nil {
		log.WithFields(log.Fields{
			"prefix":         mongoLogPrefix,
			"account_number": report.AccountNumber,
			"date":           report.Date,
			"error":          err,
		}).Error("save finding report")
		return nil, err
	}

	return &saved, nil
}

// ClaimFindings atomically records findings as notified for an account day
// and returns the ones that no earlier claim holds. A claimed finding is
// returned by exactly one caller.
func (m *mongoDB) ClaimFindings(accountNumber, date string, findings []string) ([]string, error) {
	if len(findings) == 0 {
		return []string{}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	filter := bson.M{
		"account_number": accountNumber,
		"date":           date,
	}
	update := bson.M{
		"$addToSet": bson.M{
			"notified_findings": bson.M{"$each": findings},
		},
		"$setOnInsert": bson.M{
			"id":       uuid.New().String(),
			"findings": findings,
			"ts":       time.Now().UTC().Unix(),
		},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.Before)

	var before schema.FindingReport
	err := m.collection(schema.FindingReportCollection).FindOneAndUpdate(ctx, filter, update, opts).Decode(&before)
	if isDuplicateKeyError(err) {
		err = m.collection(schema.FindingReportCollection).FindOneAndUpdate(ctx, filter, update, opts).Decode(&before)
	}

	switch err {
	case nil:
	case mongo.ErrNoDocuments:
		// inserted by this claim
	default:
		log.WithFields(log.Fields{
			"prefix":         mongoLogPrefix,
			"account_number": accountNumber,
			"date":           date,
			"error":          err,
		}).Error("claim findings")
		return nil, err
	}

	return schema.FindingReport{
		Findings:         findings,
		NotifiedFindings: before.NotifiedFindings,
	}.PendingFindings(), nil
}

// ReleaseFindings returns claimed findings to pending when they could not
// be pushed
func (m *mongoDB) ReleaseFindings(accountNumber, date string, findings []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	result, err := m.collection(schema.FindingReportCollection).UpdateOne(ctx,
		bson.M{
			"account_number": accountNumber,
			"date":           date,
		},
		bson.M{
			"$pullAll": bson.M{
				"notified_findings": findings,
			},
		})
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return ErrFindingReportNotFound
	}

	return nil
}
