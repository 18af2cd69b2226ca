package main

import (
	"context"
	"fmt"
	"log"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/vignesh-goutham/solid/pkg/config"
	"github.com/vignesh-goutham/solid/pkg/demos"
	"github.com/vignesh-goutham/solid/pkg/engine"
	"github.com/vignesh-goutham/solid/pkg/logger"
)

// LambdaEvent represents the input event for the Lambda function
type LambdaEvent struct {
	Demo         string          `json:"demo"`
	Locale       string          `json:"locale,omitempty"`
	Method       string          `json:"method,omitempty"`
	Amount       decimal.Decimal `json:"amount"`
	StoreAmount  decimal.Decimal `json:"store_amount"`
	MedicalLeave bool            `json:"medical_leave,omitempty"`
	Retired      bool            `json:"retired,omitempty"`
}

// LambdaResponse represents the response from the Lambda function
type LambdaResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Output  string `json:"output,omitempty"`
	Error   string `json:"error,omitempty"`
}

var cfg = config.Load()

// Handler is the main Lambda function handler
func Handler(ctx context.Context, event LambdaEvent) (LambdaResponse, error) {
	logrus.WithField("demo", event.Demo).Info("received event")

	if event.Demo == "" {
		return LambdaResponse{
			Status:  "error",
			Message: "Demo name is required",
			Error:   "demo is empty",
		}, nil
	}

	demo, err := demos.ByName(event.Demo, demos.Options{
		Locale:       firstNonEmpty(event.Locale, cfg.Locale),
		Method:       firstNonEmpty(event.Method, cfg.PaymentMethod),
		Amount:       event.Amount,
		StoreAmount:  event.StoreAmount,
		MedicalLeave: event.MedicalLeave,
		Retired:      event.Retired,
		Log:          logrus.StandardLogger(),
	})
	if err != nil {
		return LambdaResponse{
			Status:  "error",
			Message: fmt.Sprintf("Unknown demo: %s", event.Demo),
			Error:   err.Error(),
		}, nil
	}

	results, err := engine.NewEngine([]demos.Demo{demo}, nil).Run(ctx)
	if err != nil {
		logrus.WithError(err).Error("demo failed")
		return LambdaResponse{
			Status:  "error",
			Message: "Failed to run demo",
			Error:   err.Error(),
		}, nil
	}

	return LambdaResponse{
		Status:  "success",
		Message: fmt.Sprintf("Demo %s completed successfully", event.Demo),
		Output:  results[0].Output,
	}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func main() {
	if _, err := logger.Init(logger.Config{Level: cfg.LogLevel}); err != nil {
		log.Fatalf("failed to set up logging: %v", err)
	}
	lambda.Start(Handler)
}
