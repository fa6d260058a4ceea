package risk

import (
	"github.com/spf13/viper"
)

// Thresholds holds every numeric limit used by Analyze
type Thresholds struct {
	// CriticalSteps is checked before LowSteps. Its default of 200,000 is
	// above any plausible daily count, so every real step value falls
	// under it unless the key `risk.critical_steps` overrides it.
	CriticalSteps int
	LowSteps      int
	TargetSteps   int

	HighHeartRate int
	LowHeartRate  int

	LowCalories int

	MinimalSleepSegments int

	TrendDays          int
	TrendMinRealDays   int
	DecliningLastSteps int

	WeekendSteps int
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		CriticalSteps:        200000,
		LowSteps:             2000,
		TargetSteps:          5000,
		HighHeartRate:        110,
		LowHeartRate:         45,
		LowCalories:          1200,
		MinimalSleepSegments: 2,
		TrendDays:            3,
		TrendMinRealDays:     2,
		DecliningLastSteps:   3000,
		WeekendSteps:         2000,
	}
}

// ThresholdsFromConfig returns the default thresholds overridden by any
// `risk.*` key present in the configuration.
func ThresholdsFromConfig() Thresholds {
	t := DefaultThresholds()

	for key, field := range map[string]*int{
		"risk.critical_steps":         &t.CriticalSteps,
		"risk.low_steps":              &t.LowSteps,
		"risk.target_steps":           &t.TargetSteps,
		"risk.high_heart_rate":        &t.HighHeartRate,
		"risk.low_heart_rate":         &t.LowHeartRate,
		"risk.low_calories":           &t.LowCalories,
		"risk.minimal_sleep_segments": &t.MinimalSleepSegments,
		"risk.trend_days":             &t.TrendDays,
		"risk.trend_min_real_days":    &t.TrendMinRealDays,
		"risk.declining_last_steps":   &t.DecliningLastSteps,
		"risk.weekend_steps":          &t.WeekendSteps,
	} {
		if viper.IsSet(key) {
			*field = viper.GetInt(key)
		}
	}

	return t
}
