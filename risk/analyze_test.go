package risk

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/momentum-api/schema"
)

func stepsDay(date string, steps schema.Measurement) schema.DailyRecord {
	return schema.DailyRecord{
		Date:          date,
		Steps:         steps,
		AvgHeartRate:  schema.ObservedValue(72),
		Calories:      schema.ObservedValue(2000),
		SleepSegments: schema.ObservedValue(4),
	}
}

func relaxedThresholds() Thresholds {
	t := DefaultThresholds()
	t.CriticalSteps = 1000
	return t
}

func TestAnalyzeWeekdayFindingsInRuleOrder(t *testing.T) {
	day := schema.DailyRecord{
		Date:          "2024-01-10",
		Steps:         schema.ObservedValue(1800),
		AvgHeartRate:  schema.ObservedValue(120),
		Calories:      schema.ObservedValue(900),
		SleepSegments: schema.ObservedValue(0),
	}

	findings := Analyze(day, []schema.DailyRecord{day}, relaxedThresholds())
	assert.Equal(t, []string{
		"⚠️ Low activity level (1800 steps - aim for 5,000+)",
		"❤️ High average heart rate (120 bpm - normal: 60-100)",
		"🔥 Very low calorie burn (900 cal - may indicate inactivity)",
		"😴 No sleep data detected - tracking may be off",
	}, findings)
}

func TestAnalyzeDefaultCriticalStepsThreshold(t *testing.T) {
	day := schema.DailyRecord{
		Date:          "2024-01-10",
		Steps:         schema.ObservedValue(1800),
		AvgHeartRate:  schema.ObservedValue(120),
		Calories:      schema.ObservedValue(900),
		SleepSegments: schema.ObservedValue(0),
	}

	findings := Analyze(day, []schema.DailyRecord{day}, DefaultThresholds())
	assert.Equal(t, []string{
		"⚠️ Critical: Very low activity (1800 steps - recommended: 10,000+)",
		"❤️ High average heart rate (120 bpm - normal: 60-100)",
		"🔥 Very low calorie burn (900 cal - may indicate inactivity)",
		"😴 No sleep data detected - tracking may be off",
	}, findings)

	day.Steps = schema.ObservedValue(12000)
	assert.Contains(t, Analyze(day, nil, DefaultThresholds()),
		"⚠️ Critical: Very low activity (12000 steps - recommended: 10,000+)")
}

func TestAnalyzeStepBands(t *testing.T) {
	thresholds := relaxedThresholds()

	findings := Analyze(stepsDay("2024-01-10", schema.ObservedValue(4200)), nil, thresholds)
	assert.Equal(t, []string{"📊 Below recommended activity (4200 steps - target: 10,000)"}, findings)

	findings = Analyze(stepsDay("2024-01-10", schema.ObservedValue(800)), nil, thresholds)
	assert.Equal(t, []string{"⚠️ Critical: Very low activity (800 steps - recommended: 10,000+)"}, findings)

	assert.Empty(t, Analyze(stepsDay("2024-01-10", schema.ObservedValue(7000)), nil, thresholds))
}

func TestAnalyzeLowHeartRateAndMinimalSleep(t *testing.T) {
	day := stepsDay("2024-01-10", schema.ObservedValue(7000))
	day.AvgHeartRate = schema.ObservedValue(42)
	day.SleepSegments = schema.ObservedValue(1)

	assert.Equal(t, []string{
		"❤️ Unusually low heart rate (42 bpm - consult doctor if persistent)",
		"😴 Minimal sleep recorded (1 segments - aim for 7-9 hours)",
	}, Analyze(day, nil, relaxedThresholds()))
}

func TestAnalyzeMissingHeartRateIsSilent(t *testing.T) {
	day := stepsDay("2024-01-10", schema.ObservedValue(7000))
	day.AvgHeartRate = schema.ObservedValue(0)

	assert.Empty(t, Analyze(day, nil, relaxedThresholds()))
}

func TestAnalyzeSkipsEstimatedValues(t *testing.T) {
	day := schema.DailyRecord{
		Date:          "2024-01-06",
		Steps:         schema.EstimatedValue(150),
		AvgHeartRate:  schema.EstimatedValue(130),
		Calories:      schema.EstimatedValue(300),
		SleepSegments: schema.EstimatedValue(1),
	}

	assert.Empty(t, Analyze(day, []schema.DailyRecord{day}, DefaultThresholds()))
}

func TestAnalyzeDecliningTrend(t *testing.T) {
	history := []schema.DailyRecord{
		stepsDay("2024-01-08", schema.ObservedValue(9000)),
		stepsDay("2024-01-09", schema.ObservedValue(5000)),
		stepsDay("2024-01-10", schema.ObservedValue(2500)),
	}

	findings := Analyze(history[2], history, relaxedThresholds())
	assert.Contains(t, findings, "📉 Declining activity trend detected - stay active!")

	reversed := []schema.DailyRecord{
		stepsDay("2024-01-08", schema.ObservedValue(2500)),
		stepsDay("2024-01-09", schema.ObservedValue(5000)),
		stepsDay("2024-01-10", schema.ObservedValue(9000)),
	}

	findings = Analyze(reversed[2], reversed, relaxedThresholds())
	assert.NotContains(t, findings, "📉 Declining activity trend detected - stay active!")
}

func TestAnalyzeDecliningTrendNeedsRealDays(t *testing.T) {
	history := []schema.DailyRecord{
		stepsDay("2024-01-08", schema.ObservedValue(9000)),
		stepsDay("2024-01-09", schema.EstimatedValue(5000)),
		stepsDay("2024-01-10", schema.ObservedValue(2500)),
	}

	findings := Analyze(history[2], history, relaxedThresholds())
	assert.NotContains(t, findings, "📉 Declining activity trend detected - stay active!")
	assert.NotContains(t, findings, "📊 Below target activity over 2 days (avg: 5750 steps)")
}

func TestAnalyzeAverageTrend(t *testing.T) {
	low := []schema.DailyRecord{
		stepsDay("2024-01-08", schema.ObservedValue(1500)),
		stepsDay("2024-01-09", schema.EstimatedValue(4000)),
		stepsDay("2024-01-10", schema.ObservedValue(1200)),
	}
	assert.Contains(t, Analyze(low[2], low, relaxedThresholds()),
		"📉 Consistently low activity over 2 days (avg: 1350 steps)")

	below := []schema.DailyRecord{
		stepsDay("2024-01-07", schema.ObservedValue(20000)),
		stepsDay("2024-01-08", schema.ObservedValue(3000)),
		stepsDay("2024-01-09", schema.ObservedValue(4001)),
		stepsDay("2024-01-10", schema.ObservedValue(6000)),
	}
	assert.Equal(t, []string{
		"📊 Below target activity over 3 days (avg: 4334 steps)",
	}, Analyze(below[3], below, relaxedThresholds()))
}

func TestAnalyzeTrendNeedsThreeDays(t *testing.T) {
	history := []schema.DailyRecord{
		stepsDay("2024-01-09", schema.ObservedValue(1500)),
		stepsDay("2024-01-10", schema.ObservedValue(1200)),
	}

	findings := Analyze(history[1], history, relaxedThresholds())
	assert.Equal(t, []string{"⚠️ Low activity level (1200 steps - aim for 5,000+)"}, findings)
}

func TestAnalyzeWeekendSedentary(t *testing.T) {
	saturday := stepsDay("2024-01-06", schema.ObservedValue(1500))
	assert.Contains(t, Analyze(saturday, nil, relaxedThresholds()),
		"🏠 Weekend sedentary alert - try to stay active on rest days!")

	wednesday := stepsDay("2024-01-10", schema.ObservedValue(1500))
	assert.NotContains(t, Analyze(wednesday, nil, relaxedThresholds()),
		"🏠 Weekend sedentary alert - try to stay active on rest days!")

	estimated := stepsDay("2024-01-07", schema.EstimatedValue(1500))
	assert.Empty(t, Analyze(estimated, nil, relaxedThresholds()))
}

func TestAnalyzeUnparsableDate(t *testing.T) {
	day := stepsDay("not a date", schema.ObservedValue(1500))
	assert.Equal(t, []string{"⚠️ Low activity level (1500 steps - aim for 5,000+)"},
		Analyze(day, nil, relaxedThresholds()))
}

func TestThresholdsFromConfig(t *testing.T) {
	viper.Set("risk.critical_steps", 1000)
	viper.Set("risk.weekend_steps", 3000)
	defer viper.Reset()

	thresholds := ThresholdsFromConfig()
	expected := DefaultThresholds()
	expected.CriticalSteps = 1000
	expected.WeekendSteps = 3000
	assert.Equal(t, expected, thresholds)
}
