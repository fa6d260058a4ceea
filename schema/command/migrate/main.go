package main

import (
	"strings"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/spf13/viper"

	"github.com/bitmark-inc/momentum-api/schema"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("momentum")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.SetDefault("mongo.database", "momentum")
}

func main() {
	db, err := gorm.Open("postgres", viper.GetString("orm.conn"))
	if err != nil {
		panic(err)
	}
	defer db.Close()

	if err := db.Exec(`CREATE SCHEMA IF NOT EXISTS momentum`).Error; err != nil {
		panic(err)
	}

	if err := db.Exec("SET search_path TO momentum").Error; err != nil {
		panic(err)
	}

	if err := db.AutoMigrate(
		&schema.Account{},
		&schema.PushSubscription{},
	).Error; err != nil {
		panic(err)
	}

	if err := db.Model(schema.PushSubscription{}).
		AddForeignKey("account_number", "accounts(account_number)", "CASCADE", "CASCADE").Error; err != nil {
		panic(err)
	}

	schema.NewMongoDBIndexer(viper.GetString("mongo.conn"), viper.GetString("mongo.database")).IndexAll()
}
