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

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/RichardKnop/machinery/v1"
	machineryconf "github.com/RichardKnop/machinery/v1/config"
	"github.com/getsentry/sentry-go"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/bitmark-inc/momentum-api/api"
	"github.com/bitmark-inc/momentum-api/background"
	"github.com/bitmark-inc/momentum-api/external/googlefit"
	"github.com/bitmark-inc/momentum-api/external/ollama"
	"github.com/bitmark-inc/momentum-api/external/people"
	"github.com/bitmark-inc/momentum-api/store"
	"github.com/bitmark-inc/momentum-api/utils"
)

var (
	server      *api.Server
	ormDB       *gorm.DB
	mongoClient *mongo.Client
)

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stdout)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
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

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("i18n.dir", "./i18n")
	viper.SetDefault("mongo.database", "momentum")
	viper.SetDefault("googlefit.timeout", 20*time.Second)
	viper.SetDefault("people.timeout", 10*time.Second)
	viper.SetDefault("ollama.timeout", 60*time.Second)
}

func main() {
	var configFile string

	initialCtx, cancelInitialization := context.WithCancel(context.Background())

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info("Server is preparing to shutdown")

		if initialCtx != nil && cancelInitialization != nil {
			log.Info("Cancelling initialization")
			cancelInitialization()
			<-initialCtx.Done()
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if server != nil {
			log.Info("Shutdown api server")
			if err := server.Shutdown(ctx); err != nil {
				log.Error("Server Shutdown:", err)
			}
		}

		if ormDB != nil {
			log.Info("Shutting down orm store")
			if err := ormDB.Close(); err != nil {
				log.Error(err)
			}
		}

		if mongoClient != nil {
			log.Info("Shutting down mongo store")
			if err := mongoClient.Disconnect(ctx); err != nil {
				log.Error(err)
			}
		}

		sentry.Flush(2 * time.Second)
		os.Exit(1)
	}()

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	// Sentry
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              viper.GetString("sentry.dsn"),
		AttachStacktrace: true,
		Environment:      viper.GetString("sentry.environment"),
		Dist:             viper.GetString("sentry.dist"),
	}); err != nil {
		log.Error(err)
	}
	log.WithField("prefix", "init").Info("Initialized sentry")

	utils.InitI18NBundle()
	log.WithField("prefix", "init").Info("Loaded i18n messages")

	// Init redis
	var conf = &machineryconf.Config{
		Broker:        viper.GetString("redis.conn"),
		DefaultQueue:  "momentum_background",
		ResultBackend: viper.GetString("redis.conn"),
	}
	machineryServer, err := machinery.NewServer(conf)
	if err != nil {
		log.Panic(err)
	}

	ormDB, err = gorm.Open("postgres", viper.GetString("orm.conn"))
	if err != nil {
		log.Panic(err)
	}

	// initialise mongodb connections
	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	opts.SetMaxPoolSize(viper.GetUint64("mongo.pool"))
	mongoClient, err = mongo.NewClient(opts)
	if nil != err {
		log.Panicf("create mongo client with error: %s", err)
	}

	err = mongoClient.Connect(initialCtx)
	if nil != err {
		log.Panicf("connect mongo database with error: %s", err)
	}

	momentumStore := store.NewMomentumStore(ormDB)
	mongoStore := store.NewMongoStore(mongoClient, viper.GetString("mongo.database"))

	notificationCenter := background.NewPushNotificationCenter(momentumStore,
		background.NewWebPushSender(
			viper.GetString("vapid.public_key"),
			viper.GetString("vapid.private_key"),
			viper.GetString("vapid.subscriber"),
		))

	// Init http server
	server = api.NewServer(
		momentumStore,
		mongoStore,
		googlefit.New(viper.GetString("googlefit.url"), viper.GetDuration("googlefit.timeout")),
		people.New(viper.GetString("people.url"), viper.GetDuration("people.timeout")),
		ollama.New(viper.GetString("ollama.url"), viper.GetString("ollama.model"), viper.GetDuration("ollama.timeout")),
		notificationCenter,
		background.NewMachineryEnqueuer(machineryServer))
	log.WithField("prefix", "init").Info("Initialized http server")

	// Remove initial context
	initialCtx = nil
	cancelInitialization = nil

	log.Fatal(server.Run(":" + viper.GetString("server.port")))
}
