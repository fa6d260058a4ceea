package fitness

import (
	"github.com/bitmark-inc/momentum-api/risk"
	"github.com/bitmark-inc/momentum-api/schema"
)

// Report is the outcome of processing one window of buckets
type Report struct {
	Records  []schema.DailyRecord  `json:"records"`
	Findings []string              `json:"findings"`
	Filled   map[schema.Metric]int `json:"filled"`
}

// Latest returns the newest record of the window
func (r Report) Latest() (schema.DailyRecord, bool) {
	if len(r.Records) == 0 {
		return schema.DailyRecord{}, false
	}
	return r.Records[len(r.Records)-1], true
}

// Process aggregates the buckets, fills the gaps and evaluates the newest
// day against the whole window. An empty window yields an empty report.
func Process(buckets []schema.RawBucket, t risk.Thresholds) Report {
	records := Aggregate(buckets)
	filled := FillAll(records)

	report := Report{
		Records:  records,
		Findings: []string{},
		Filled:   filled,
	}

	if latest, ok := report.Latest(); ok {
		report.Findings = risk.Analyze(latest, records, t)
	}

	log.WithField("days", len(records)).WithField("findings", len(report.Findings)).Debug("fitness window processed")
	return report
}
