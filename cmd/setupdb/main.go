// Command setupdb recreates the feedback table from scratch and loads fixed
// sample rows. This is operator-invoked maintenance; it destroys existing
// data and is never run by the live service.
package main

import (
	"context"
	"log"

	"feedboard/internal/config"
	"feedboard/internal/db"
	"feedboard/internal/logger"
	"feedboard/internal/repository"
	"feedboard/internal/snowflake"
)

var sampleEntries = []struct {
	message string
	rating  int
}{
	{"This is an amazing product! Highly recommend.", 5},
	{"The new update is a bit buggy.", 2},
	{"Works as expected. Solid 4-star experience.", 4},
	{"Customer support was very helpful. Five stars!", 5},
	{"Absolutely terrible, would not use again.", 1},
}

func main() {
	cfg := config.Load()
	logger.Init(logger.ParseLevel(cfg.LogLevel))

	if err := snowflake.Init(cfg.NodeID); err != nil {
		log.Fatalf("init snowflake node: %v", err)
	}

	dbConn, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer dbConn.Close()

	if err := db.Reset(dbConn); err != nil {
		log.Fatalf("reset schema: %v", err)
	}

	feedbackRepo := repository.NewFeedbackRepository(dbConn)
	ctx := context.Background()
	for _, sample := range sampleEntries {
		if _, err := feedbackRepo.Insert(ctx, sample.message, sample.rating); err != nil {
			log.Fatalf("insert sample entry: %v", err)
		}
	}

	log.Printf("database %s reset with %d sample entries", cfg.DBPath, len(sampleEntries))
}
