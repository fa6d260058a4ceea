package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang/mock/gomock"

	"github.com/bitmark-inc/momentum-api/schema"
)

func (s *ServerTestSuite) TestCoachChat() {
	s.expectAccount()

	records := []schema.DailyRecord{
		{Date: "2024-01-09", Steps: schema.ObservedValue(6400)},
		{Date: "2024-01-10", Steps: schema.ObservedValue(7200)},
	}
	s.mongoStore.EXPECT().GetDailyRecords(testAccountNumber, "", int64(3)).Return(records, nil).Times(1)
	s.llm.EXPECT().Generate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, prompt string) (string, error) {
			s.True(strings.Contains(prompt, "How am I doing?"))
			return "You are doing well.", nil
		}).Times(1)

	w := s.request("POST", "/api/coach/chat", map[string]string{"message": "How am I doing?"})
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"reply":"You are doing well."}`, w.Body.String())
}

func (s *ServerTestSuite) TestCoachChatWithoutData() {
	s.expectAccount()

	s.mongoStore.EXPECT().GetDailyRecords(testAccountNumber, "", int64(3)).Return([]schema.DailyRecord{}, nil).Times(1)

	w := s.request("POST", "/api/coach/chat", map[string]string{"message": "How am I doing?"})
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"reply":"Load fitness data first."}`, w.Body.String())
}

func (s *ServerTestSuite) TestCoachChatModelUnavailable() {
	s.expectAccount()

	s.mongoStore.EXPECT().GetDailyRecords(testAccountNumber, "", int64(3)).
		Return([]schema.DailyRecord{{Date: "2024-01-10"}}, nil).Times(1)
	s.llm.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("", errors.New("connection refused")).Times(1)

	w := s.request("POST", "/api/coach/chat", map[string]string{"message": "How am I doing?"})
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"reply":"AI coach failed. Make sure Ollama is running."}`, w.Body.String())
}

func (s *ServerTestSuite) TestCoachChatWithoutMessage() {
	s.expectAccount()

	w := s.request("POST", "/api/coach/chat", map[string]string{})
	s.Equal(http.StatusBadRequest, w.Code)
}
