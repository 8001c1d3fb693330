package main

import (
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"fightboard/internal/api"
	"fightboard/internal/catalog"
	"fightboard/internal/config"
	"fightboard/internal/eventlog"
	"fightboard/internal/observability"
)

func main() {
	if err := godotenv.Load("../.env"); err != nil {
		if err := godotenv.Load(".env"); err != nil {
			log.Println("no .env file found, using environment variables only")
		}
	} else {
		log.Println("loaded environment from ../.env")
	}

	log.Println("================================")
	log.Println(" ROUND SERVER")
	log.Println("================================")

	appConfig := config.Load()
	port := strconv.Itoa(appConfig.Server.Port)

	log.Printf("engine config: cast=%dms post_effect=%dms reaction=%dms post_cast=%dms",
		appConfig.Engine.CastDelayMS, appConfig.Engine.PostEffectDelayMS,
		appConfig.Engine.ReactionDelayMS, appConfig.Engine.PostCastDelayMS)

	eventLogPath := getEnvWithDefault("EVENT_LOG_PATH", "rounds.jsonl")
	elog := eventlog.New(appConfig.LogLimits.RingCapacity)
	if err := elog.Start(eventLogPath); err != nil {
		log.Printf("event log disabled: %v", err)
	} else {
		log.Printf("event log: %s", eventLogPath)
	}

	debugCfg := observability.DefaultConfig()
	if os.Getenv("DISABLE_DEBUG_SERVER") != "true" {
		if err := observability.StartDebugServer(debugCfg); err != nil {
			log.Printf("debug server disabled: %v", err)
		}
	}

	cat := catalog.New()
	server := api.NewServer(cat, appConfig.Engine.ToRoundOptions(), elog)

	go func() {
		if err := server.Start(":" + port); err != nil {
			log.Printf("round server exited: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("shutting down")
	server.Stop()
}

func getEnvWithDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
