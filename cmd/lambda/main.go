package main

import (
	"log"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/jonfriesen/urlregex/internal/config"
	"github.com/jonfriesen/urlregex/internal/logging"
)

func main() {
	cfg, err := config.Load(config.New())
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.Logging(), nil)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	handler := NewHandler(logger, cfg.ScorerFunc())
	lambda.Start(handler.Handle)
}
