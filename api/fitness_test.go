package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/bitmark-inc/momentum-api/external/googlefit"
	"github.com/bitmark-inc/momentum-api/fitness"
	"github.com/bitmark-inc/momentum-api/schema"
)

func testBucket(day time.Time, steps int64) schema.RawBucket {
	start := day.UnixNano() / int64(time.Millisecond)
	return schema.RawBucket{
		StartTimeMillis: start,
		EndTimeMillis:   start + 86400000,
		Datasets: []schema.Dataset{
			{
				DataSourceID: "derived:com.google.step_count.delta:merged",
				Points:       []schema.Point{{Values: []schema.Value{schema.Int64Value(steps)}}},
			},
			{
				DataSourceID: "derived:com.google.calories.expended:merged",
				Points:       []schema.Point{{Values: []schema.Value{schema.FloatValue(2000)}}},
			},
			{
				DataSourceID: "derived:com.google.heart_rate.bpm:merged",
				Points:       []schema.Point{{Values: []schema.Value{schema.FloatValue(70)}}},
			},
			{
				DataSourceID: "derived:com.google.sleep.segment:merged",
				Points: []schema.Point{
					{Values: []schema.Value{schema.Int64Value(1)}},
					{Values: []schema.Value{schema.Int64Value(4)}},
					{Values: []schema.Value{schema.Int64Value(5)}},
				},
			},
		},
	}
}

func decliningWindow() []schema.RawBucket {
	return []schema.RawBucket{
		testBucket(time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC), 9000),
		testBucket(time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC), 5000),
		testBucket(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), 2500),
	}
}

func (s *ServerTestSuite) TestFitnessRefresh() {
	s.expectAccount()

	buckets := decliningWindow()
	expected := fitness.Process(decliningWindow(), s.server.thresholds)
	s.Require().NotEmpty(expected.Findings)

	s.googleFit.EXPECT().Aggregate(gomock.Any(), testAccessToken, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, _ string, start, end time.Time) ([]schema.RawBucket, error) {
			s.True(start.Equal(time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)))
			s.True(end.Equal(testNow))
			return buckets, nil
		}).Times(1)
	s.mongoStore.EXPECT().SaveDailyRecords(testAccountNumber, expected.Records).Return(nil).Times(1)
	s.mongoStore.EXPECT().SaveFindingReport(schema.FindingReport{
		AccountNumber: testAccountNumber,
		Date:          "2024-01-10",
		Findings:      expected.Findings,
	}).Return(&schema.FindingReport{ID: "report-id"}, nil).Times(1)
	s.enqueuer.EXPECT().EnqueueHealthAlert(testAccountNumber, "2024-01-10", expected.Findings).Return(nil).Times(1)
	s.store.EXPECT().UpdateAccountRefreshTime(testAccountNumber, testNow).Return(nil).Times(1)

	w := s.request("POST", "/api/fitness/refresh", nil)
	s.Equal(http.StatusOK, w.Code)

	var resp struct {
		Records  []schema.DailyRecord `json:"records"`
		Findings []string             `json:"findings"`
	}
	s.decode(w, &resp)
	s.Equal(expected.Records, resp.Records)
	s.Equal(expected.Findings, resp.Findings)
	s.Equal(2500, resp.Records[2].Steps.Value)
	s.Equal(3, resp.Records[2].SleepSegments.Value)
}

func (s *ServerTestSuite) TestFitnessRefreshEnqueueFailureStillResponds() {
	s.expectAccount()

	s.googleFit.EXPECT().Aggregate(gomock.Any(), testAccessToken, gomock.Any(), gomock.Any()).
		Return(decliningWindow(), nil).Times(1)
	s.mongoStore.EXPECT().SaveDailyRecords(testAccountNumber, gomock.Any()).Return(nil).Times(1)
	s.mongoStore.EXPECT().SaveFindingReport(gomock.Any()).Return(&schema.FindingReport{}, nil).Times(1)
	s.enqueuer.EXPECT().EnqueueHealthAlert(testAccountNumber, "2024-01-10", gomock.Any()).
		Return(errors.New("broker down")).Times(1)
	s.store.EXPECT().UpdateAccountRefreshTime(testAccountNumber, testNow).Return(nil).Times(1)

	w := s.request("GET", "/api/fitness", nil)
	s.Equal(http.StatusOK, w.Code)
}

func (s *ServerTestSuite) TestFitnessRefreshEmptyWindow() {
	s.expectAccount()

	s.googleFit.EXPECT().Aggregate(gomock.Any(), testAccessToken, gomock.Any(), gomock.Any()).
		Return([]schema.RawBucket{}, nil).Times(1)
	s.mongoStore.EXPECT().SaveDailyRecords(testAccountNumber, []schema.DailyRecord{}).Return(nil).Times(1)
	s.store.EXPECT().UpdateAccountRefreshTime(testAccountNumber, testNow).Return(nil).Times(1)

	w := s.request("POST", "/api/fitness/refresh", nil)
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"records":[],"findings":[]}`, w.Body.String())
}

func (s *ServerTestSuite) TestFitnessRefreshExpiredToken() {
	s.expectAccount()

	s.googleFit.EXPECT().Aggregate(gomock.Any(), testAccessToken, gomock.Any(), gomock.Any()).
		Return(nil, googlefit.ErrUnauthorized).Times(1)

	w := s.request("POST", "/api/fitness/refresh", nil)
	s.Equal(http.StatusUnauthorized, w.Code)
	var resp ErrorResponse
	s.decode(w, &resp)
	s.Equal(errorInvalidToken, resp)
}

func (s *ServerTestSuite) TestFitnessRefreshSourceUnavailable() {
	s.expectAccount()

	s.googleFit.EXPECT().Aggregate(gomock.Any(), testAccessToken, gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection reset")).Times(1)

	w := s.request("POST", "/api/fitness/refresh", nil)
	s.Equal(http.StatusBadGateway, w.Code)
	var resp ErrorResponse
	s.decode(w, &resp)
	s.Equal(errorFitnessUnavailable, resp)
}

func (s *ServerTestSuite) TestFitnessHistory() {
	s.expectAccount()

	records := []schema.DailyRecord{
		{Date: "2024-01-03", Steps: schema.ObservedValue(4000)},
		{Date: "2024-01-04", Steps: schema.EstimatedValue(4000)},
	}
	s.mongoStore.EXPECT().GetDailyRecords(testAccountNumber, "2024-01-05", int64(maxHistoryLimit)).
		Return(records, nil).Times(1)

	w := s.request("GET", "/api/fitness/history?before=2024-01-05&limit=365", nil)
	s.Equal(http.StatusOK, w.Code)

	var resp struct {
		Records []schema.DailyRecord `json:"records"`
	}
	s.decode(w, &resp)
	s.Equal(records, resp.Records)
}

func (s *ServerTestSuite) TestFitnessHistoryDefaultLimit() {
	s.expectAccount()

	s.mongoStore.EXPECT().GetDailyRecords(testAccountNumber, "", int64(3)).Return([]schema.DailyRecord{}, nil).Times(1)

	w := s.request("GET", "/api/fitness/history", nil)
	s.Equal(http.StatusOK, w.Code)
}

func (s *ServerTestSuite) TestFitnessHistoryInvalidDate() {
	s.expectAccount()

	w := s.request("GET", "/api/fitness/history?before=01/05/2024", nil)
	s.Equal(http.StatusBadRequest, w.Code)
	var resp ErrorResponse
	s.decode(w, &resp)
	s.Equal(errorInvalidDateFormat, resp)
}
