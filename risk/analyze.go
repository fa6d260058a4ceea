package risk

import (
	"fmt"
	"math"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/bitmark-inc/momentum-api/schema"
)

var log = logrus.WithField("prefix", "risk")

const (
	criticalStepsFinding  = "⚠️ Critical: Very low activity (%d steps - recommended: 10,000+)"
	lowStepsFinding       = "⚠️ Low activity level (%d steps - aim for 5,000+)"
	belowTargetFinding    = "📊 Below recommended activity (%d steps - target: 10,000)"
	highHeartRateFinding  = "❤️ High average heart rate (%d bpm - normal: 60-100)"
	lowHeartRateFinding   = "❤️ Unusually low heart rate (%d bpm - consult doctor if persistent)"
	lowCaloriesFinding    = "🔥 Very low calorie burn (%d cal - may indicate inactivity)"
	noSleepFinding        = "😴 No sleep data detected - tracking may be off"
	minimalSleepFinding   = "😴 Minimal sleep recorded (%d segments - aim for 7-9 hours)"
	lowTrendFinding       = "📉 Consistently low activity over %d days (avg: %d steps)"
	belowTrendFinding     = "📊 Below target activity over %d days (avg: %d steps)"
	decliningTrendFinding = "📉 Declining activity trend detected - stay active!"
	weekendFinding        = "🏠 Weekend sedentary alert - try to stay active on rest days!"
)

// Analyze evaluates a day against the thresholds and the trailing history,
// which ends with that day. Findings are returned in rule order. Estimated
// values never trigger a finding.
func Analyze(day schema.DailyRecord, history []schema.DailyRecord, t Thresholds) []string {
	findings := make([]string, 0)

	if !day.Steps.IsEstimated() {
		steps := day.Steps.Value
		switch {
		case steps < t.CriticalSteps:
			findings = append(findings, fmt.Sprintf(criticalStepsFinding, steps))
		case steps < t.LowSteps:
			findings = append(findings, fmt.Sprintf(lowStepsFinding, steps))
		case steps < t.TargetSteps:
			findings = append(findings, fmt.Sprintf(belowTargetFinding, steps))
		}
	}

	if hr := day.AvgHeartRate; !hr.IsEstimated() && hr.Value > 0 {
		if hr.Value > t.HighHeartRate {
			findings = append(findings, fmt.Sprintf(highHeartRateFinding, hr.Value))
		}
		if hr.Value < t.LowHeartRate {
			findings = append(findings, fmt.Sprintf(lowHeartRateFinding, hr.Value))
		}
	}

	if !day.Calories.IsEstimated() && day.Calories.Value < t.LowCalories {
		findings = append(findings, fmt.Sprintf(lowCaloriesFinding, day.Calories.Value))
	}

	if sleep := day.SleepSegments; !sleep.IsEstimated() {
		if sleep.Value == 0 {
			findings = append(findings, noSleepFinding)
		} else if sleep.Value < t.MinimalSleepSegments {
			findings = append(findings, fmt.Sprintf(minimalSleepFinding, sleep.Value))
		}
	}

	findings = append(findings, trendFindings(history, t)...)

	if isWeekend(day) && !day.Steps.IsEstimated() && day.Steps.Value < t.WeekendSteps {
		findings = append(findings, weekendFinding)
	}

	return findings
}

func trendFindings(history []schema.DailyRecord, t Thresholds) []string {
	if t.TrendDays <= 0 || len(history) < t.TrendDays {
		return nil
	}

	recent := history[len(history)-t.TrendDays:]
	realSteps := make([]int, 0, len(recent))
	for _, d := range recent {
		if !d.Steps.IsEstimated() {
			realSteps = append(realSteps, d.Steps.Value)
		}
	}

	var findings []string

	if len(realSteps) >= t.TrendMinRealDays && len(realSteps) > 0 {
		sum := 0
		for _, s := range realSteps {
			sum += s
		}
		avg := float64(sum) / float64(len(realSteps))
		rounded := int(math.Floor(avg + 0.5))

		if avg < float64(t.LowSteps) {
			findings = append(findings, fmt.Sprintf(lowTrendFinding, len(realSteps), rounded))
		} else if avg < float64(t.TargetSteps) {
			findings = append(findings, fmt.Sprintf(belowTrendFinding, len(realSteps), rounded))
		}
	}

	if len(realSteps) == len(recent) && isStrictlyDecreasing(realSteps) &&
		realSteps[len(realSteps)-1] < t.DecliningLastSteps {
		findings = append(findings, decliningTrendFinding)
	}

	return findings
}

func isStrictlyDecreasing(values []int) bool {
	if len(values) < 2 {
		return false
	}
	for i := 1; i < len(values); i++ {
		if values[i] >= values[i-1] {
			return false
		}
	}
	return true
}

// isWeekend reads the weekday from the record date in UTC
func isWeekend(day schema.DailyRecord) bool {
	date, err := day.Time()
	if err != nil {
		log.WithError(err).WithField("date", day.Date).Warn("skip weekend check for unparsable date")
		return false
	}

	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		return true
	}
	return false
}
