package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/RichardKnop/machinery/v1"
	machineryconf "github.com/RichardKnop/machinery/v1/config"
	machinerylog "github.com/RichardKnop/machinery/v1/log"
	"github.com/getsentry/sentry-go"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/bitmark-inc/momentum-api/background"
	"github.com/bitmark-inc/momentum-api/store"
	"github.com/bitmark-inc/momentum-api/utils"
)

const defaultConcurrency = 4

var (
	logger      *zap.Logger
	ormDB       *gorm.DB
	mongoClient *mongo.Client
	manager     *background.BackgroundManager
)

func init() {
	logger = buildLogger()
}

func buildLogger() *zap.Logger {
	config := zap.NewDevelopmentConfig()
	config.Level.SetLevel(zapcore.InfoLevel)

	logger, err := config.Build()
	if err != nil {
		panic("Failed to setup logger")
	}

	return logger
}

// initLog sets up logrus for the packages shared with the api server and
// routes machinery logs through it
func initLog() {
	logLevel, err := logrus.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logLevel)
	}

	logrus.SetOutput(os.Stdout)

	logrus.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})

	machinerylog.Set(logrus.WithField("prefix", "machinery"))
}

func initSentry() {
	// Sentry
	logger.Info("Initializing sentry")
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              viper.GetString("sentry.dsn"),
		AttachStacktrace: true,
		Environment:      viper.GetString("sentry.environment"),
		Dist:             viper.GetString("sentry.dist"),
	}); err != nil {
		logger.Panic("fail to initialize sentry", zap.Error(err))
	}
}

func loadConfig(file string) {
	// Config from file
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix("momentum")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("i18n.dir", "./i18n")
	viper.SetDefault("mongo.database", "momentum")
	viper.SetDefault("worker.concurrency", defaultConcurrency)
}

func main() {
	var configFile string
	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)
	initLog()
	initSentry()
	utils.InitI18NBundle()

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		logger.Info("Worker is preparing to shutdown")

		if manager != nil {
			manager.Quit()
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if ormDB != nil {
			logger.Info("Shutting down orm store")
			if err := ormDB.Close(); err != nil {
				logger.Error("close orm store", zap.Error(err))
			}
		}

		if mongoClient != nil {
			logger.Info("Shutting down mongo store")
			if err := mongoClient.Disconnect(ctx); err != nil {
				logger.Error("disconnect mongo store", zap.Error(err))
			}
		}

		sentry.Flush(2 * time.Second)
		_ = logger.Sync()
		os.Exit(0)
	}()

	var err error

	ormDB, err = gorm.Open("postgres", viper.GetString("orm.conn"))
	if err != nil {
		logger.Panic("open orm database with error", zap.Error(err))
	}

	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	opts.SetMaxPoolSize(viper.GetUint64("mongo.pool"))
	mongoClient, err = mongo.NewClient(opts)
	if nil != err {
		logger.Panic("create mongo client with error", zap.Error(err))
	}

	err = mongoClient.Connect(context.Background())
	if nil != err {
		logger.Panic("connect mongo database with error", zap.Error(err))
	}

	var conf = &machineryconf.Config{
		Broker:        viper.GetString("redis.conn"),
		DefaultQueue:  "momentum_background",
		ResultBackend: viper.GetString("redis.conn"),
	}
	taskServer, err := machinery.NewServer(conf)
	if err != nil {
		logger.Panic("create task server with error", zap.Error(err))
	}

	momentumStore := store.NewMomentumStore(ormDB)
	mongoStore := store.NewMongoStore(mongoClient, viper.GetString("mongo.database"))

	notificationCenter := background.NewPushNotificationCenter(momentumStore,
		background.NewWebPushSender(
			viper.GetString("vapid.public_key"),
			viper.GetString("vapid.private_key"),
			viper.GetString("vapid.subscriber"),
		))

	manager = background.New(momentumStore, mongoStore, notificationCenter, taskServer)
	if err := manager.RegisterTasks(); err != nil {
		logger.Panic("register tasks with error", zap.Error(err))
	}

	concurrency := viper.GetInt("worker.concurrency")
	logger.Info("Starting background worker", zap.Int("concurrency", concurrency))
	if err := manager.Run(concurrency); err != nil {
		logger.Panic("background worker stopped with error", zap.Error(err))
	}
}
