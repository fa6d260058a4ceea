package fitness

import (
	"math"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/bitmark-inc/momentum-api/schema"
)

const logPrefix = "fitness"

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", logPrefix)
}

// round rounds half up, the rounding used by every derived daily value
func round(x float64) int {
	return int(math.Floor(x + 0.5))
}

// dayAccumulator folds the samples of a single bucket
type dayAccumulator struct {
	steps         int64
	calories      float64
	heartRates    []float64
	sleepSegments int
	weightKg      float64
	heightMeters  float64
}

func (a *dayAccumulator) addSteps(v schema.Value) {
	if i, ok := v.Int(); ok {
		a.steps += i
	}
}

func (a *dayAccumulator) addCalories(v schema.Value) {
	if f, ok := v.Float(); ok {
		a.calories += f
	}
}

func (a *dayAccumulator) addHeartRate(v schema.Value) {
	if f, ok := v.Float(); ok {
		a.heartRates = append(a.heartRates, f)
	}
}

// addSleep counts segment presence, the value itself is a sleep stage
func (a *dayAccumulator) addSleep(schema.Value) {
	a.sleepSegments++
}

func (a *dayAccumulator) addWeight(v schema.Value) {
	if f, ok := v.Float(); ok && f != 0 {
		a.weightKg = f
	}
}

func (a *dayAccumulator) addHeight(v schema.Value) {
	if f, ok := v.Float(); ok && f != 0 {
		a.heightMeters = f
	}
}

func (a *dayAccumulator) reducer(c schema.Channel) func(schema.Value) {
	switch c {
	case schema.ChannelSteps:
		return a.addSteps
	case schema.ChannelCalories:
		return a.addCalories
	case schema.ChannelHeartRate:
		return a.addHeartRate
	case schema.ChannelSleep:
		return a.addSleep
	case schema.ChannelWeight:
		return a.addWeight
	case schema.ChannelHeight:
		return a.addHeight
	}
	return nil
}

func (a *dayAccumulator) avgHeartRate() int {
	if len(a.heartRates) == 0 {
		return 0
	}

	var sum float64
	for _, hr := range a.heartRates {
		sum += hr
	}
	return round(sum / float64(len(a.heartRates)))
}

// BucketDate returns the UTC calendar date of a bucket start timestamp
func BucketDate(startTimeMillis int64) string {
	return time.Unix(0, startTimeMillis*int64(time.Millisecond)).UTC().Format(schema.DateLayout)
}

// AggregateBucket reduces one bucket into a daily record. Missing or
// non-numeric values contribute nothing.
func AggregateBucket(bucket schema.RawBucket) schema.DailyRecord {
	var acc dayAccumulator

	for _, dataset := range bucket.Datasets {
		channel := Classify(dataset.DataSourceID)
		reduce := acc.reducer(channel)
		if reduce == nil {
			log.WithFields(logrus.Fields{
				"data_source_id": dataset.DataSourceID,
				"points":         len(dataset.Points),
			}).Warn("skip unrecognized data source")
			continue
		}

		for _, point := range dataset.Points {
			for _, v := range point.Values {
				reduce(v)
			}
		}
	}

	return schema.DailyRecord{
		Date:          BucketDate(bucket.StartTimeMillis),
		Steps:         schema.ObservedValue(int(acc.steps)),
		Calories:      schema.ObservedValue(round(acc.calories)),
		AvgHeartRate:  schema.ObservedValue(acc.avgHeartRate()),
		SleepSegments: schema.ObservedValue(acc.sleepSegments),
		WeightKg:      acc.weightKg,
		HeightMeters:  acc.heightMeters,
	}
}

// Aggregate produces one daily record per bucket, in bucket order
func Aggregate(buckets []schema.RawBucket) []schema.DailyRecord {
	records := make([]schema.DailyRecord, 0, len(buckets))
	for _, b := range buckets {
		records = append(records, AggregateBucket(b))
	}
	return records
}
