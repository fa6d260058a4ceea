package googlefit

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"

	"github.com/bitmark-inc/momentum-api/schema"
)

const (
	defaultURL     = "https://www.googleapis.com"
	aggregatePath  = "/fitness/v1/users/me/dataset:aggregate"
	bucketDuration = 24 * time.Hour
)

var (
	ErrUnauthorized = fmt.Errorf("google fit rejected the access token")
	errEmptyToken   = fmt.Errorf("empty access token")
)

// DataTypes are the aggregated data types requested for every bucket
var DataTypes = []string{
	"com.google.step_count.delta",
	"com.google.heart_rate.bpm",
	"com.google.sleep.segment",
	"com.google.calories.expended",
	"com.google.weight",
	"com.google.height",
}

var log = logrus.WithField("prefix", "googlefit")

type Client interface {
	Aggregate(ctx context.Context, accessToken string, start, end time.Time) ([]schema.RawBucket, error)
}

type client struct {
	http *resty.Client
}

type aggregateBy struct {
	DataTypeName string `json:"dataTypeName"`
}

type bucketByTime struct {
	DurationMillis int64 `json:"durationMillis"`
}

type aggregateRequest struct {
	AggregateBy     []aggregateBy `json:"aggregateBy"`
	BucketByTime    bucketByTime  `json:"bucketByTime"`
	StartTimeMillis int64         `json:"startTimeMillis"`
	EndTimeMillis   int64         `json:"endTimeMillis"`
}

// bucket carries its timestamps as decimal strings
type bucket struct {
	StartTimeMillis string           `json:"startTimeMillis"`
	EndTimeMillis   string           `json:"endTimeMillis"`
	Dataset         []schema.Dataset `json:"dataset"`
}

type aggregateResponse struct {
	Bucket []bucket `json:"bucket"`
}

func millis(t time.Time) int64 {
	return t.UnixNano() / int64(time.Millisecond)
}

func parseMillis(field, value string) int64 {
	ms, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		log.WithError(err).WithField(field, value).Warn("unparsable bucket timestamp")
		return 0
	}
	return ms
}

// Aggregate fetches one-day buckets covering [start, end)
func (c *client) Aggregate(ctx context.Context, accessToken string, start, end time.Time) ([]schema.RawBucket, error) {
	if accessToken == "" {
		return nil, errEmptyToken
	}

	body := aggregateRequest{
		BucketByTime:    bucketByTime{DurationMillis: int64(bucketDuration / time.Millisecond)},
		StartTimeMillis: millis(start),
		EndTimeMillis:   millis(end),
	}
	for _, t := range DataTypes {
		body.AggregateBy = append(body.AggregateBy, aggregateBy{DataTypeName: t})
	}

	var result aggregateResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		SetBody(body).
		SetResult(&result).
		Post(aggregatePath)
	if err != nil {
		return nil, err
	}

	switch resp.StatusCode() {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return nil, ErrUnauthorized
	default:
		log.WithField("status", resp.StatusCode()).WithField("body", resp.String()).Error("google fit aggregate failed")
		return nil, fmt.Errorf("google fit aggregate failed with status %d", resp.StatusCode())
	}

	buckets := make([]schema.RawBucket, 0, len(result.Bucket))
	for _, b := range result.Bucket {
		buckets = append(buckets, schema.RawBucket{
			StartTimeMillis: parseMillis("start_time_millis", b.StartTimeMillis),
			EndTimeMillis:   parseMillis("end_time_millis", b.EndTimeMillis),
			Datasets:        b.Dataset,
		})
	}

	return buckets, nil
}

func New(url string, timeout time.Duration) Client {
	u := defaultURL
	if url != "" {
		u = url
	}

	return &client{
		http: resty.New().
			SetBaseURL(u).
			SetTimeout(timeout).
			SetHeader("Content-Type", "application/json").
			SetHeader("Accept", "application/json"),
	}
}
