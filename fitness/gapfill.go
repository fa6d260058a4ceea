package fitness

import (
	"github.com/sirupsen/logrus"

	"github.com/bitmark-inc/momentum-api/schema"
)

// FillMissingWithAverage replaces the zero values of a metric with the
// rounded mean of its positive values across the window and marks them as
// estimated. It returns how many records were changed. A window without
// any positive value is left untouched.
func FillMissingWithAverage(records []schema.DailyRecord, metric schema.Metric) int {
	var sum, valid int
	for i := range records {
		m := records[i].Measurement(metric)
		if m == nil {
			return 0
		}
		if m.Value > 0 {
			sum += m.Value
			valid++
		}
	}

	if valid == 0 {
		return 0
	}

	avg := round(float64(sum) / float64(valid))
	filled := 0
	for i := range records {
		m := records[i].Measurement(metric)
		if m.Value == 0 {
			*m = schema.EstimatedValue(avg)
			filled++
		}
	}

	return filled
}

// FillAll gap-fills every fillable metric, each from its own values only
func FillAll(records []schema.DailyRecord) map[schema.Metric]int {
	counts := make(map[schema.Metric]int, len(schema.FillableMetrics))
	for _, metric := range schema.FillableMetrics {
		counts[metric] = FillMissingWithAverage(records, metric)
		if counts[metric] > 0 {
			log.WithFields(logrus.Fields{
				"metric": metric,
				"filled": counts[metric],
			}).Debug("fill missing values with window average")
		}
	}
	return counts
}
