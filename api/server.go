package api

import (
	"context"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/bitmark-inc/momentum-api/background"
	"github.com/bitmark-inc/momentum-api/coach"
	"github.com/bitmark-inc/momentum-api/external/googlefit"
	"github.com/bitmark-inc/momentum-api/external/ollama"
	"github.com/bitmark-inc/momentum-api/external/people"
	"github.com/bitmark-inc/momentum-api/logmodule"
	"github.com/bitmark-inc/momentum-api/risk"
	"github.com/bitmark-inc/momentum-api/store"
)

const defaultWindowDays = 7

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store      store.MomentumCore
	mongoStore store.MongoStore

	// External services
	googleFit googlefit.Client
	people    people.Client
	coach     *coach.Coach

	// push notifications and job pool enqueuer
	notificationCenter background.NotificationCenter
	background         background.Enqueuer

	thresholds risk.Thresholds
	windowDays int
	now        func() time.Time
}

// NewServer new instance of server
func NewServer(
	momentumCore store.MomentumCore,
	mongoStore store.MongoStore,
	googleFit googlefit.Client,
	peopleClient people.Client,
	llm ollama.LLM,
	notificationCenter background.NotificationCenter,
	enqueuer background.Enqueuer) *Server {
	windowDays := viper.GetInt("fitness.window_days")
	if windowDays <= 0 {
		windowDays = defaultWindowDays
	}

	return &Server{
		store:              momentumCore,
		mongoStore:         mongoStore,
		googleFit:          googleFit,
		people:             peopleClient,
		coach:              coach.New(llm),
		notificationCenter: notificationCenter,
		background:         enqueuer,
		thresholds:         risk.ThresholdsFromConfig(),
		windowDays:         windowDays,
		now:                time.Now,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func corsConfig() cors.Config {
	config := cors.Config{
		AllowMethods:     []string{"GET", "POST", "DELETE"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	if origins := viper.GetStringSlice("server.cors.origins"); len(origins) > 0 {
		config.AllowOrigins = origins
	} else {
		config.AllowAllOrigins = true
		config.AllowCredentials = false
	}

	return config
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.Use(cors.New(corsConfig()))
	apiRoute.GET("/information", s.information)

	// api route other than `/information` will apply the following middleware
	apiRoute.Use(s.accessTokenMiddleware())
	apiRoute.Use(s.recognizeAccountMiddleware())

	apiRoute.GET("/profile", s.profile)

	fitnessRoute := apiRoute.Group("/fitness")
	{
		fitnessRoute.GET("", s.fitnessRefresh)
		fitnessRoute.POST("/refresh", s.fitnessRefresh)
		fitnessRoute.GET("/history", s.fitnessHistory)
	}

	subscriptionRoute := apiRoute.Group("/subscriptions")
	{
		subscriptionRoute.POST("", s.addSubscription)
		subscriptionRoute.DELETE("", s.removeSubscription)
	}

	apiRoute.POST("/notifications/test", s.sendSampleNotification)
	apiRoute.POST("/coach/chat", s.coachChat)

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.store.Ping()
	if shouldInterupt(err, c) {
		return
	}

	err = s.mongoStore.Ping()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func (s *Server) information(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"information": map[string]interface{}{
			"server": map[string]interface{}{
				"version":          viper.GetString("server.version"),
				"vapid_public_key": viper.GetString("vapid.public_key"),
			},
			"window_days":    s.windowDays,
			"system_version": "Momentum 0.1",
		},
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
