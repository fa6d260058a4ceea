package schema

import (
	"bytes"
	"encoding/json"
	"math"
)

// Channel is a category of physiological measurement carried by a dataset
type Channel string

const (
	ChannelUnknown   Channel = "unknown"
	ChannelSteps     Channel = "step_count"
	ChannelHeartRate Channel = "heart_rate"
	ChannelSleep     Channel = "sleep"
	ChannelCalories  Channel = "calories"
	ChannelWeight    Channel = "weight"
	ChannelHeight    Channel = "height"
)

// Value is a single numeric reading of a point. A nil field means the
// source did not supply that representation.
type Value struct {
	IntVal *int64   `json:"intVal,omitempty" bson:"int_val,omitempty"`
	FpVal  *float64 `json:"fpVal,omitempty" bson:"fp_val,omitempty"`
}

// Float returns the floating value of v and whether it is usable.
func (v Value) Float() (float64, bool) {
	if v.FpVal == nil || math.IsNaN(*v.FpVal) || math.IsInf(*v.FpVal, 0) {
		return 0, false
	}
	return *v.FpVal, true
}

// Int returns the integer value of v. A floating value is not converted.
func (v Value) Int() (int64, bool) {
	if v.IntVal == nil {
		return 0, false
	}
	return *v.IntVal, true
}

// UnmarshalJSON keeps a value that is not a number as missing instead of
// failing the whole document
func (v *Value) UnmarshalJSON(data []byte) error {
	*v = Value{}

	var raw struct {
		IntVal json.RawMessage `json:"intVal"`
		FpVal  json.RawMessage `json:"fpVal"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}

	if isNumber(raw.IntVal) {
		var i int64
		if err := json.Unmarshal(raw.IntVal, &i); err == nil {
			v.IntVal = &i
		}
	}

	if isNumber(raw.FpVal) {
		var f float64
		if err := json.Unmarshal(raw.FpVal, &f); err == nil {
			v.FpVal = &f
		}
	}

	return nil
}

func isNumber(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return false
	}
	return raw[0] == '-' || (raw[0] >= '0' && raw[0] <= '9')
}

// Point is one sample of a dataset
type Point struct {
	Values []Value `json:"value" bson:"value"`
}

// Dataset groups the points of one data source inside a bucket
type Dataset struct {
	DataSourceID string  `json:"dataSourceId" bson:"data_source_id"`
	Points       []Point `json:"point" bson:"point"`
}

// RawBucket is one calendar-day window of raw samples
type RawBucket struct {
	StartTimeMillis int64     `json:"startTimeMillis" bson:"start_time_millis"`
	EndTimeMillis   int64     `json:"endTimeMillis" bson:"end_time_millis"`
	Datasets        []Dataset `json:"dataset" bson:"dataset"`
}

func Int64Value(i int64) Value {
	return Value{IntVal: &i}
}

func FloatValue(f float64) Value {
	return Value{FpVal: &f}
}
