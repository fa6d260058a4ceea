package schema

import (
	"encoding/json"
	"time"
)

const (
	DailyRecordCollection = "dailyRecord"

	// DateLayout is the calendar date format of DailyRecord.Date
	DateLayout = "2006-01-02"
)

// Metric is a daily field that can be repaired by gap-filling
type Metric string

const (
	MetricSteps         Metric = "steps"
	MetricCalories      Metric = "calories"
	MetricAvgHeartRate  Metric = "avgHeartRate"
	MetricSleepSegments Metric = "sleepSegments"
)

// FillableMetrics lists the gap-filled metrics in the order they are filled
var FillableMetrics = []Metric{
	MetricSteps,
	MetricCalories,
	MetricAvgHeartRate,
	MetricSleepSegments,
}

// Provenance tells whether a value was measured or estimated
type Provenance string

const (
	Observed  Provenance = "observed"
	Estimated Provenance = "estimated"
)

// Measurement is a fillable value with its provenance. The zero value is
// an observed zero.
type Measurement struct {
	Value      int
	Provenance Provenance
}

// IsEstimated reports whether the value was produced by gap-filling
func (m Measurement) IsEstimated() bool {
	return m.Provenance == Estimated
}

func ObservedValue(v int) Measurement {
	return Measurement{Value: v, Provenance: Observed}
}

func EstimatedValue(v int) Measurement {
	return Measurement{Value: v, Provenance: Estimated}
}

// DailyRecord is the aggregated summary of one calendar day
type DailyRecord struct {
	Date          string
	Steps         Measurement
	Calories      Measurement
	AvgHeartRate  Measurement
	SleepSegments Measurement
	WeightKg      float64
	HeightMeters  float64
}

// Measurement returns the measurement of a fillable metric, or nil for an
// unknown metric.
func (r *DailyRecord) Measurement(metric Metric) *Measurement {
	switch metric {
	case MetricSteps:
		return &r.Steps
	case MetricCalories:
		return &r.Calories
	case MetricAvgHeartRate:
		return &r.AvgHeartRate
	case MetricSleepSegments:
		return &r.SleepSegments
	}
	return nil
}

// Estimated reports whether the given metric was gap-filled
func (r DailyRecord) Estimated(metric Metric) bool {
	if m := r.Measurement(metric); m != nil {
		return m.IsEstimated()
	}
	return false
}

// Time returns the UTC midnight of the record date
func (r DailyRecord) Time() (time.Time, error) {
	return time.ParseInLocation(DateLayout, r.Date, time.UTC)
}

// DailyRecordFields is the flat wire shape of a DailyRecord. Every
// estimated flag is always present.
type DailyRecordFields struct {
	Date                   string  `json:"date" bson:"date"`
	Steps                  int     `json:"steps" bson:"steps"`
	StepsEstimated         bool    `json:"stepsEstimated" bson:"steps_estimated"`
	Calories               int     `json:"calories" bson:"calories"`
	CaloriesEstimated      bool    `json:"caloriesEstimated" bson:"calories_estimated"`
	AvgHeartRate           int     `json:"avgHeartRate" bson:"avg_heart_rate"`
	AvgHeartRateEstimated  bool    `json:"avgHeartRateEstimated" bson:"avg_heart_rate_estimated"`
	SleepSegments          int     `json:"sleepSegments" bson:"sleep_segments"`
	SleepSegmentsEstimated bool    `json:"sleepSegmentsEstimated" bson:"sleep_segments_estimated"`
	WeightKg               float64 `json:"weightKg" bson:"weight_kg"`
	HeightMeters           float64 `json:"heightMeters" bson:"height_meters"`
}

func measurementOf(v int, estimated bool) Measurement {
	if estimated {
		return EstimatedValue(v)
	}
	return ObservedValue(v)
}

// Fields flattens the record into its wire shape
func (r DailyRecord) Fields() DailyRecordFields {
	return DailyRecordFields{
		Date:                   r.Date,
		Steps:                  r.Steps.Value,
		StepsEstimated:         r.Steps.IsEstimated(),
		Calories:               r.Calories.Value,
		CaloriesEstimated:      r.Calories.IsEstimated(),
		AvgHeartRate:           r.AvgHeartRate.Value,
		AvgHeartRateEstimated:  r.AvgHeartRate.IsEstimated(),
		SleepSegments:          r.SleepSegments.Value,
		SleepSegmentsEstimated: r.SleepSegments.IsEstimated(),
		WeightKg:               r.WeightKg,
		HeightMeters:           r.HeightMeters,
	}
}

// Record rebuilds the tagged record from its wire shape
func (f DailyRecordFields) Record() DailyRecord {
	return DailyRecord{
		Date:          f.Date,
		Steps:         measurementOf(f.Steps, f.StepsEstimated),
		Calories:      measurementOf(f.Calories, f.CaloriesEstimated),
		AvgHeartRate:  measurementOf(f.AvgHeartRate, f.AvgHeartRateEstimated),
		SleepSegments: measurementOf(f.SleepSegments, f.SleepSegmentsEstimated),
		WeightKg:      f.WeightKg,
		HeightMeters:  f.HeightMeters,
	}
}

func (r DailyRecord) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Fields())
}

func (r *DailyRecord) UnmarshalJSON(data []byte) error {
	var f DailyRecordFields
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*r = f.Record()
	return nil
}

// DailyRecordDocument is a DailyRecord stored for an account
type DailyRecordDocument struct {
	AccountNumber string            `bson:"account_number"`
	Record        DailyRecordFields `bson:",inline"`
	UpdatedAt     int64             `bson:"updated_at"`
}
