package store

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/momentum-api/schema"
)

type DailyRecordStore interface {
	SaveDailyRecords(accountNumber string, records []schema.DailyRecord) error
	GetDailyRecords(accountNumber, before string, limit int64) ([]schema.DailyRecord, error)
}

// SaveDailyRecords upserts the records of an account, one document per day
func (m *mongoDB) SaveDailyRecords(accountNumber string, records []schema.DailyRecord) error {
	if len(records) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	now := time.Now().UTC().Unix()
	models := make([]mongo.WriteModel, 0, len(records))
	for _, r := range records {
		doc := schema.DailyRecordDocument{
			AccountNumber: accountNumber,
			Record:        r.Fields(),
			UpdatedAt:     now,
		}

		models = append(models, mongo.NewUpdateOneModel().
			SetFilter(bson.M{
				"account_number": accountNumber,
				"date":           r.Date,
			}).
			SetUpdate(bson.M{"$set": doc}).
			SetUpsert(true))
	}

	result, err := m.collection(schema.DailyRecordCollection).BulkWrite(ctx, models, options.BulkWrite().SetOrdered(false))
	if err != nil {
		log.WithFields(log.Fields{
			"prefix":         mongoLogPrefix,
			"account_number": accountNumber,
			"error":          err,
		}).Error("save daily records")
		return err
	}

	log.WithFields(log.Fields{
		"prefix":         mongoLogPrefix,
		"account_number": accountNumber,
		"upserted":       result.UpsertedCount,
		"modified":       result.ModifiedCount,
	}).Debug("save daily records")

	return nil
}

// GetDailyRecords returns at most `limit` of the newest records dated
// before `before`, ordered from oldest to newest. An empty `before` means
// no upper bound.
func (m *mongoDB) GetDailyRecords(accountNumber, before string, limit int64) ([]schema.DailyRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	filter := bson.M{"account_number": accountNumber}
	if before != "" {
		filter["date"] = bson.M{"$lt": before}
	}

	opts := options.Find().SetSort(bson.M{"date": -1})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := m.collection(schema.DailyRecordCollection).Find(ctx, filter, opts)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix":         mongoLogPrefix,
			"account_number": accountNumber,
			"error":          err,
		}).Error("query daily records")
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []schema.DailyRecordDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	records := make([]schema.DailyRecord, len(docs))
	for i, doc := range docs {
		records[len(docs)-1-i] = doc.Record.Record()
	}

	return records, nil
}
