package background_test

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/suite"

	"github.com/bitmark-inc/momentum-api/background"
	"github.com/bitmark-inc/momentum-api/mocks"
	"github.com/bitmark-inc/momentum-api/utils"
)

const (
	testAccountNumber = "people/1"
	testDate          = "2024-01-10"
)

type HealthAlertTestSuite struct {
	suite.Suite
	ctl        *gomock.Controller
	mongoStore *mocks.MockMongoStore
	center     *mocks.MockNotificationCenter
	manager    *background.BackgroundManager
}

func (s *HealthAlertTestSuite) SetupSuite() {
	os.Setenv("TEST_I18N_DIR", "../i18n")
	viper.AutomaticEnv()
	viper.SetEnvPrefix("test")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	utils.InitI18NBundle()
}

func (s *HealthAlertTestSuite) SetupTest() {
	s.ctl = gomock.NewController(s.T())
	s.mongoStore = mocks.NewMockMongoStore(s.ctl)
	s.center = mocks.NewMockNotificationCenter(s.ctl)
	s.manager = background.New(mocks.NewMockMomentumCore(s.ctl), s.mongoStore, s.center, nil)
}

func (s *HealthAlertTestSuite) TearDownTest() {
	s.ctl.Finish()
}

func (s *HealthAlertTestSuite) TestSendsOnlyClaimedFindings() {
	findings := []string{"low steps", "no sleep", "high heart rate"}
	s.mongoStore.EXPECT().ClaimFindings(testAccountNumber, testDate, findings).
		Return([]string{"no sleep", "high heart rate"}, nil).Times(1)

	s.center.EXPECT().Broadcast(gomock.Any(), testAccountNumber, background.PushMessage{
		Title: "⚠️ Momentum Health Alert",
		Body:  "no sleep • high heart rate",
	}).Return(background.DeliveryResult{Sent: 1}, nil).Times(1)

	s.NoError(s.manager.BroadcastHealthAlert(testAccountNumber, testDate, findings))
}

func (s *HealthAlertTestSuite) TestSkipsWhenNothingIsClaimed() {
	s.mongoStore.EXPECT().ClaimFindings(testAccountNumber, testDate, []string{"low steps"}).
		Return([]string{}, nil).Times(1)

	s.NoError(s.manager.BroadcastHealthAlert(testAccountNumber, testDate, []string{"low steps"}))
}

func (s *HealthAlertTestSuite) TestConcurrentJobsPushOnce() {
	findings := []string{"low steps"}

	// the store hands a finding to a single claimer
	gomock.InOrder(
		s.mongoStore.EXPECT().ClaimFindings(testAccountNumber, testDate, findings).Return(findings, nil),
		s.mongoStore.EXPECT().ClaimFindings(testAccountNumber, testDate, findings).Return([]string{}, nil),
	)
	s.center.EXPECT().Broadcast(gomock.Any(), testAccountNumber, gomock.Any()).
		Return(background.DeliveryResult{Sent: 1}, nil).Times(1)

	s.NoError(s.manager.BroadcastHealthAlert(testAccountNumber, testDate, findings))
	s.NoError(s.manager.BroadcastHealthAlert(testAccountNumber, testDate, findings))
}

func (s *HealthAlertTestSuite) TestClaimError() {
	s.mongoStore.EXPECT().ClaimFindings(testAccountNumber, testDate, gomock.Any()).
		Return(nil, errors.New("mongo down")).Times(1)

	s.EqualError(s.manager.BroadcastHealthAlert(testAccountNumber, testDate, []string{"low steps"}), "mongo down")
}

func (s *HealthAlertTestSuite) TestNoSubscriptionReleasesFindings() {
	s.mongoStore.EXPECT().ClaimFindings(testAccountNumber, testDate, gomock.Any()).Return([]string{"low steps"}, nil).Times(1)
	s.center.EXPECT().Broadcast(gomock.Any(), testAccountNumber, gomock.Any()).Return(background.DeliveryResult{}, background.ErrNoSubscription).Times(1)
	s.mongoStore.EXPECT().ReleaseFindings(testAccountNumber, testDate, []string{"low steps"}).Return(nil).Times(1)

	s.NoError(s.manager.BroadcastHealthAlert(testAccountNumber, testDate, []string{"low steps"}))
}

func (s *HealthAlertTestSuite) TestFailedDeliveryReleasesFindings() {
	s.mongoStore.EXPECT().ClaimFindings(testAccountNumber, testDate, gomock.Any()).Return([]string{"low steps"}, nil).Times(1)
	s.center.EXPECT().Broadcast(gomock.Any(), testAccountNumber, gomock.Any()).Return(background.DeliveryResult{Failed: 2}, nil).Times(1)
	s.mongoStore.EXPECT().ReleaseFindings(testAccountNumber, testDate, []string{"low steps"}).Return(nil).Times(1)

	s.NoError(s.manager.BroadcastHealthAlert(testAccountNumber, testDate, []string{"low steps"}))
}

func (s *HealthAlertTestSuite) TestBroadcastErrorReleasesFindings() {
	s.mongoStore.EXPECT().ClaimFindings(testAccountNumber, testDate, gomock.Any()).Return([]string{"low steps"}, nil).Times(1)
	s.center.EXPECT().Broadcast(gomock.Any(), testAccountNumber, gomock.Any()).Return(background.DeliveryResult{}, errors.New("db down")).Times(1)
	s.mongoStore.EXPECT().ReleaseFindings(testAccountNumber, testDate, []string{"low steps"}).Return(errors.New("db down")).Times(1)

	s.EqualError(s.manager.BroadcastHealthAlert(testAccountNumber, testDate, []string{"low steps"}), "db down")
}

func TestHealthAlertTestSuite(t *testing.T) {
	suite.Run(t, new(HealthAlertTestSuite))
}
