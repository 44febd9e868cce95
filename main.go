/* main.go
 * The "main" method for running the match scheduler bot and its read-only
 * web view. For details see `readme.md`
 * Usage: go run main.go -addr=":8080" -db="matchday"
 */

package main

import (
	"context"
	"flag"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"matchday-bot/api/api"
	"matchday-bot/bot"
	"matchday-bot/internal/log"
	"matchday-bot/web"
)

func main() {
	err := godotenv.Load()

	// Flags
	addrPtr := flag.String("addr", ":8080", "Listen address for the read-only HTTP view")
	dbPtr := flag.String("db", "matchday", "MongoDB database name")
	devPtr := flag.String("dev", "false", "Development logging: takes true or false as argument")

	flag.Parse()

	if err != nil && !os.IsNotExist(err) {
		panic("Error loading .env file")
	}

	isDev, err := convertStrToBool(*devPtr)
	if err != nil {
		panic("Invalid \"dev\" flag. Should be true or false")
	}
	if err := log.Init(isDev); err != nil {
		panic(err)
	}
	defer log.Sync()

	mongoURI := envOrDefault("MONGO_URI", "mongodb://localhost:27017")
	matchAPI, err := api.NewAPI(*dbPtr, mongoURI)
	if err != nil {
		log.Fatal("failed to initialize API", zap.Error(err))
	}
	defer func() {
		if err := matchAPI.Store.Disconnect(context.TODO()); err != nil {
			log.Error("failed to disconnect store", zap.Error(err))
		}
	}()

	// One subscription keeps the mirror current for both frontends
	if err := matchAPI.Subscribe(nil); err != nil {
		log.Fatal("failed to subscribe to matches", zap.Error(err))
	}
	defer matchAPI.Close()

	go func() {
		if err := web.Start(web.Config{Addr: *addrPtr, API: matchAPI}); err != nil {
			log.Error("web server stopped", zap.Error(err))
		}
	}()

	// Init bot and run until interrupted
	b, err := bot.NewBot(os.Getenv("DISCORD_TOKEN"), matchAPI)
	if err != nil {
		log.Fatal("failed to initialize bot", zap.Error(err))
	}
	if err := b.Run(); err != nil {
		log.Fatal("bot stopped", zap.Error(err))
	}
}
