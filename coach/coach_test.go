package coach_test

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/momentum-api/coach"
	"github.com/bitmark-inc/momentum-api/mocks"
	"github.com/bitmark-inc/momentum-api/schema"
	"github.com/bitmark-inc/momentum-api/utils"
)

func init() {
	os.Setenv("TEST_I18N_DIR", "../i18n")
	viper.AutomaticEnv()
	viper.SetEnvPrefix("test")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	utils.InitI18NBundle()
}

var testRecords = []schema.DailyRecord{
	{Date: "2024-01-09", Steps: schema.ObservedValue(5400), AvgHeartRate: schema.EstimatedValue(78)},
	{Date: "2024-01-10", Steps: schema.ObservedValue(1800), AvgHeartRate: schema.ObservedValue(78)},
}

func TestBuildPrompt(t *testing.T) {
	prompt, err := coach.BuildPrompt(testRecords, "How did I sleep?")
	assert.NoError(t, err)
	assert.Contains(t, prompt, "User 2-day fitness data:")
	assert.Contains(t, prompt, `"avgHeartRateEstimated": true`)
	assert.Contains(t, prompt, `"date": "2024-01-10"`)
	assert.Contains(t, prompt, `User question: "How did I sleep?"`)
	assert.Contains(t, prompt, "- Do not diagnose")
}

func TestAsk(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	llm := mocks.NewMockLLM(ctl)
	llm.EXPECT().Generate(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, prompt string) (string, error) {
		assert.Contains(t, prompt, "How am I doing?")
		return "- Walk more", nil
	}).Times(1)

	reply, err := coach.New(llm).Ask(context.Background(), testRecords, "How am I doing?")
	assert.NoError(t, err)
	assert.Equal(t, "- Walk more", reply)
}

func TestAskWithoutRecords(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	_, err := coach.New(mocks.NewMockLLM(ctl)).Ask(context.Background(), nil, "hi")
	assert.Equal(t, coach.ErrNoFitnessData, err)
}

func TestAskModelFailure(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	llm := mocks.NewMockLLM(ctl)
	llm.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("", fmt.Errorf("connection refused")).Times(1)

	_, err := coach.New(llm).Ask(context.Background(), testRecords, "hi")
	assert.Error(t, err)
}
